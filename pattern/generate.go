// SPDX-License-Identifier: MIT
// Package: seedgraph/pattern
//
// generate.go - one complete generation pass.
//
// Steps:
//   1. Validate surface and colours (ErrNilSurface / ErrBadColor).
//   2. Seed a fresh generator from cfg.Seed; nothing survives between passes.
//   3. Place points inside the surface bounds.
//   4. Render (clear, lines, dots) and format the summary.

package pattern

import (
	"fmt"
	"image/color"

	"github.com/katalvlaran/seedgraph/prng"
)

// Stream identifiers for WithSeededColors.
const (
	lineColorStream uint32 = 1
	dotColorStream  uint32 = 2
)

// Generate runs one generation pass of cfg on s.
func Generate(s Surface, cfg Config, opts ...Option) (*Result, error) {
	if s == nil {
		return nil, fmt.Errorf("Generate: %w", ErrNilSurface)
	}
	o := newOptions(opts...)

	st, err := resolveStyle(cfg, o)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	width, height := s.Size()
	points := PlacePoints(prng.New(cfg.Seed), cfg.PointCount, width, height, o.padding)
	stats := Render(s, points, st)

	return &Result{
		Config:  cfg,
		Points:  points,
		Stats:   stats,
		Summary: cfg.Summary(),
	}, nil
}

// resolveStyle turns colour modes and options into a Style. A non-empty fixed
// colour must parse even in colourful mode.
func resolveStyle(cfg Config, o options) (Style, error) {
	st := Style{LineWidth: o.lineWidth, DotRadius: o.dotRadius}

	var err error
	if st.DotColor, err = fixedColor("dot", cfg.Dots); err != nil {
		return Style{}, err
	}
	if st.LineColor, err = fixedColor("line", cfg.Lines); err != nil {
		return Style{}, err
	}

	dotSrc, lineSrc := o.dotSource, o.lineSource
	switch {
	case o.seeded:
		dotSrc = SeededColors(prng.Derive(cfg.Seed, dotColorStream))
		lineSrc = SeededColors(prng.Derive(cfg.Seed, lineColorStream))
	case dotSrc == nil || lineSrc == nil:
		dotSrc, lineSrc = RandomColors(), RandomColors()
	}

	if cfg.Dots.Colorful {
		st.DotSource = dotSrc
	}
	if cfg.Lines.Colorful {
		st.LineSource = lineSrc
	}

	return st, nil
}

func fixedColor(what string, m ColorMode) (color.Color, error) {
	if m.Colorful && m.Fixed == "" {
		return color.Black, nil
	}
	c, err := ParseHexColor(m.Fixed)
	if err != nil {
		return nil, fmt.Errorf("%s color: %w", what, err)
	}
	return c, nil
}
