// SPDX-License-Identifier: MIT
// Package: seedgraph/pattern
//
// types.go - data model of a generation pass.

package pattern

import "image/color"

// Canvas geometry and drawing defaults.
const (
	// DefaultWidth and DefaultHeight are the canvas size used by the CLI.
	DefaultWidth  = 800
	DefaultHeight = 600

	// DefaultPadding is the inset from every canvas edge inside which points are placed.
	DefaultPadding = 20.0

	// DefaultLineWidth is the stroke width of every connecting line.
	DefaultLineWidth = 0.7

	// DefaultDotRadius is the radius of every dot.
	DefaultDotRadius = 5.0

	// DefaultPointCount is used when the requested count is missing or invalid.
	DefaultPointCount = 20

	// DefaultDotColor and DefaultLineColor are the fixed colours used by the CLI.
	DefaultDotColor  = "#000000"
	DefaultLineColor = "#999999"
)

// White is the background every pass starts from.
var White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Point is a placed point in canvas pixel coordinates.
type Point struct {
	X, Y float64
}

// ColorMode selects how dots or lines are coloured: one fixed hex colour, or
// a fresh colour per element.
type ColorMode struct {
	// Fixed is the hex colour ("#rgb" or "#rrggbb") used when Colorful is false.
	Fixed string

	// Colorful requests an independent colour per element.
	Colorful bool
}

// Fixed returns a fixed-colour mode.
func Fixed(hex string) ColorMode {
	return ColorMode{Fixed: hex}
}

// Colorful returns the per-element colour mode.
func Colorful() ColorMode {
	return ColorMode{Colorful: true}
}

// String renders the mode the way the summary line shows it.
func (m ColorMode) String() string {
	if m.Colorful {
		return ColorfulLabel
	}
	return m.Fixed
}

// Config is the immutable input of one generation pass.
type Config struct {
	// Seed fully determines point placement.
	Seed uint32

	// PointCount is the number of points; ≤ 0 yields a blank canvas.
	PointCount int

	// Dots and Lines select the colouring of dots and connecting lines.
	Dots  ColorMode
	Lines ColorMode
}

// Summary formats the one-line description of c.
func (c Config) Summary() string {
	return FormatSummary(c.Seed, c.PointCount, c.Dots, c.Lines)
}

// Stats counts what a render pass drew.
type Stats struct {
	Lines int
	Dots  int
}

// Result is the output of Generate.
type Result struct {
	// Config echoes the input of the pass.
	Config Config

	// Points are the placed points in index order.
	Points []Point

	// Stats counts the primitives drawn.
	Stats Stats

	// Summary is the one-line description of the pass.
	Summary string
}

// Surface is anything a pass can draw on. A Surface is owned by one pass at
// a time; Clear must fully overwrite previous content.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// Clear fills the whole surface with c.
	Clear(c color.Color)

	// StrokeLine draws a straight line of the given width from a to b.
	StrokeLine(a, b Point, width float64, c color.Color)

	// FillCircle draws a filled circle.
	FillCircle(center Point, radius float64, c color.Color)
}
