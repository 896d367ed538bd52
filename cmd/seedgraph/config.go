// SPDX-License-Identifier: MIT
// Package: seedgraph/cmd/seedgraph
//
// config.go - command-line flags and their validation.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strconv"
	"strings"

	"github.com/katalvlaran/seedgraph/pattern"
)

// Output formats.
const (
	formatPNG = "png"
	formatSVG = "svg"
)

var (
	errBadFormat  = errors.New("seedgraph: format must be png or svg")
	errBadSize    = errors.New("seedgraph: width and height must be positive")
	errBadBatch   = errors.New("seedgraph: batch must be at least 1")
	errBadWorkers = errors.New("seedgraph: workers must be at least 1")
	errBadLevel   = errors.New("seedgraph: unknown log level")
)

// cliConfig is the validated command line.
type cliConfig struct {
	seedText string
	seed     uint32

	pointCount int
	dots       pattern.ColorMode
	lines      pattern.ColorMode
	seeded     bool

	caption bool
	format  string
	outDir  string
	width   int
	height  int

	batch   int
	workers int
	stats   bool

	logLevel slog.Level
	logJSON  bool
}

// parseFlags parses args (without the program name). Usage and flag errors
// go to stderr.
func parseFlags(args []string, stderr io.Writer) (cliConfig, error) {
	fs := flag.NewFlagSet("seedgraph", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: seedgraph [flags]")
		fmt.Fprintln(stderr, "Renders a seeded fully-connected dot pattern to PNG or SVG.")
		fs.PrintDefaults()
	}

	var (
		seedText      = fs.String("seed", "", "numeric seed; empty picks a random one")
		random        = fs.Bool("random", false, "ignore -seed and pick a random seed")
		dots          = fs.String("dots", strconv.Itoa(pattern.DefaultPointCount), "number of dots")
		dotColor      = fs.String("dot-color", pattern.DefaultDotColor, "dot colour (#rgb or #rrggbb)")
		lineColor     = fs.String("line-color", pattern.DefaultLineColor, "line colour (#rgb or #rrggbb)")
		colorfulDots  = fs.Bool("colorful-dots", false, "give every dot its own colour")
		colorfulLines = fs.Bool("colorful-lines", false, "give every line its own colour")
		seededColors  = fs.Bool("seeded-colors", false, "derive colourful colours from the seed")
		caption       = fs.Bool("caption", true, "append the summary as a caption band")
		format        = fs.String("format", formatPNG, "output format: png or svg")
		outDir        = fs.String("out", ".", "output directory")
		width         = fs.Int("width", pattern.DefaultWidth, "canvas width in pixels")
		height        = fs.Int("height", pattern.DefaultHeight, "canvas height in pixels")
		batch         = fs.Int("batch", 1, "render this many consecutive seeds")
		workers       = fs.Int("workers", runtime.GOMAXPROCS(0), "concurrent renders in batch mode")
		stats         = fs.Bool("stats", false, "log edge count and total line length")
		logLevel      = fs.String("log-level", "info", "log level: debug, info, warn, error")
		logJSON       = fs.Bool("log-json", false, "log as JSON")
	)
	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}
	if fs.NArg() > 0 {
		return cliConfig{}, fmt.Errorf("seedgraph: unexpected arguments %q", fs.Args())
	}

	cfg := cliConfig{
		pointCount: pattern.ParsePointCount(*dots),
		dots:       pattern.ColorMode{Fixed: *dotColor, Colorful: *colorfulDots},
		lines:      pattern.ColorMode{Fixed: *lineColor, Colorful: *colorfulLines},
		seeded:     *seededColors,
		caption:    *caption,
		format:     strings.ToLower(*format),
		outDir:     *outDir,
		width:      *width,
		height:     *height,
		batch:      *batch,
		workers:    *workers,
		stats:      *stats,
		logJSON:    *logJSON,
	}

	if *random || *seedText == "" {
		cfg.seed = pattern.RandomSeed()
		cfg.seedText = strconv.FormatUint(uint64(cfg.seed), 10)
	} else {
		seed, err := pattern.ParseSeed(*seedText)
		if err != nil {
			return cliConfig{}, err
		}
		cfg.seed, cfg.seedText = seed, *seedText
	}

	if err := cfg.validate(); err != nil {
		return cliConfig{}, err
	}
	if err := cfg.logLevel.UnmarshalText([]byte(*logLevel)); err != nil {
		return cliConfig{}, fmt.Errorf("%w %q", errBadLevel, *logLevel)
	}
	return cfg, nil
}

func (c cliConfig) validate() error {
	if c.format != formatPNG && c.format != formatSVG {
		return fmt.Errorf("%w: got %q", errBadFormat, c.format)
	}
	if c.width <= 0 || c.height <= 0 {
		return fmt.Errorf("%w: got %dx%d", errBadSize, c.width, c.height)
	}
	if c.batch < 1 {
		return errBadBatch
	}
	if c.workers < 1 {
		return errBadWorkers
	}
	for _, m := range []pattern.ColorMode{c.dots, c.lines} {
		if m.Colorful && m.Fixed == "" {
			continue
		}
		if _, err := pattern.ParseHexColor(m.Fixed); err != nil {
			return err
		}
	}
	return nil
}

// patternConfig returns the generation input for the i-th seed of the run.
func (c cliConfig) patternConfig(i int) pattern.Config {
	return pattern.Config{
		Seed:       c.seed + uint32(i),
		PointCount: c.pointCount,
		Dots:       c.dots,
		Lines:      c.lines,
	}
}

// patternOptions returns the options shared by every pass of the run.
func (c cliConfig) patternOptions() []pattern.Option {
	if c.seeded {
		return []pattern.Option{pattern.WithSeededColors()}
	}
	return nil
}

// fileSeedText names the i-th output file. A single render keeps the seed as
// typed, so "007" stays "007".
func (c cliConfig) fileSeedText(i int) string {
	if c.batch == 1 {
		return c.seedText
	}
	return strconv.FormatUint(uint64(c.seed+uint32(i)), 10)
}
