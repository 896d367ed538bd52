// SPDX-License-Identifier: MIT
// Package: seedgraph/pattern
//
// options.go - functional options for Generate.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Generate itself never panics on well-typed input.
//   • Later options override earlier ones.

package pattern

import "fmt"

// Option customizes a generation pass.
type Option func(*options)

type options struct {
	padding   float64
	lineWidth float64
	dotRadius float64

	// Colour sources for colourful modes; nil means "resolve in Generate".
	dotSource  ColorSource
	lineSource ColorSource
	seeded     bool
}

func newOptions(opts ...Option) options {
	o := options{
		padding:   DefaultPadding,
		lineWidth: DefaultLineWidth,
		dotRadius: DefaultDotRadius,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPadding sets the inset inside which points are placed.
// Panics if p < 0.
func WithPadding(p float64) Option {
	if p < 0 {
		panic(fmt.Sprintf("pattern: WithPadding(%g < 0)", p))
	}
	return func(o *options) { o.padding = p }
}

// WithLineWidth sets the stroke width of connecting lines.
// Panics if w <= 0.
func WithLineWidth(w float64) Option {
	if w <= 0 {
		panic(fmt.Sprintf("pattern: WithLineWidth(%g <= 0)", w))
	}
	return func(o *options) { o.lineWidth = w }
}

// WithDotRadius sets the dot radius; 0 draws no visible dots.
// Panics if r < 0.
func WithDotRadius(r float64) Option {
	if r < 0 {
		panic(fmt.Sprintf("pattern: WithDotRadius(%g < 0)", r))
	}
	return func(o *options) { o.dotRadius = r }
}

// WithColorSources sets the sources used by colourful dot and line modes.
// Panics if either is nil.
func WithColorSources(dots, lines ColorSource) Option {
	if dots == nil || lines == nil {
		panic("pattern: WithColorSources(nil)")
	}
	return func(o *options) {
		o.dotSource, o.lineSource = dots, lines
		o.seeded = false
	}
}

// WithSeededColors makes colourful modes reproducible: line and dot colours
// come from two mulberry32 streams derived from the pass seed.
func WithSeededColors() Option {
	return func(o *options) {
		o.dotSource, o.lineSource = nil, nil
		o.seeded = true
	}
}
