// SPDX-License-Identifier: MIT
// Package: seedgraph/svgout
//
// canvas.go - streaming SVG surface.
//
// Coordinates are written as integers in a viewBox scaled by Scale, so a
// 0.7 px line becomes stroke-width 70 in user units and sub-pixel point
// positions survive to two decimals.

package svgout

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/seedgraph/pattern"
)

// Scale is the number of user units per pixel.
const Scale = 100

// Caption band geometry, in pixels. Matches the PNG export.
const (
	CaptionBandHeight = 40
	CaptionFontSize   = 14
	CaptionBaseline   = 25
)

// ErrClosed is returned when a canvas is used after Close.
var ErrClosed = errors.New("svgout: canvas closed")

var _ pattern.Surface = (*Canvas)(nil)

// Option configures a Canvas.
type Option func(*Canvas)

// WithCaption reserves a caption band below the drawing and writes text in
// it on Close.
func WithCaption(text string) Option {
	return func(c *Canvas) {
		c.caption = text
		c.withCaption = true
	}
}

// WithTitle sets the document <title>.
func WithTitle(text string) Option {
	return func(c *Canvas) {
		c.title = text
	}
}

// Canvas streams SVG elements to a writer as they are drawn. Elements are
// never rewritten, so Clear paints an opaque rectangle over everything
// emitted before it. Not safe for concurrent use.
type Canvas struct {
	out    *errWriter
	doc    *svg.SVG
	width  int
	height int

	title       string
	caption     string
	withCaption bool

	started bool
	closed  bool
}

// New returns a width×height canvas writing to w. Nothing is written until
// the first drawing call or Close.
func New(w io.Writer, width, height int, opts ...Option) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	out := &errWriter{w: w}
	c := &Canvas{
		out:    out,
		doc:    svg.New(out),
		width:  width,
		height: height,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Size returns the drawing area in pixels, excluding any caption band.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Clear covers the drawing area with col.
func (c *Canvas) Clear(col color.Color) {
	if !c.begin() {
		return
	}
	c.doc.Rect(0, 0, c.width*Scale, c.height*Scale, fill(col))
}

// StrokeLine emits a <line>.
func (c *Canvas) StrokeLine(a, b pattern.Point, width float64, col color.Color) {
	if !c.begin() {
		return
	}
	c.doc.Line(units(a.X), units(a.Y), units(b.X), units(b.Y),
		fmt.Sprintf("stroke:%s;stroke-width:%d%s", pattern.FormatHex(col), units(width), opacity("stroke", col)))
}

// FillCircle emits a <circle>.
func (c *Canvas) FillCircle(center pattern.Point, radius float64, col color.Color) {
	if !c.begin() {
		return
	}
	c.doc.Circle(units(center.X), units(center.Y), units(radius), fill(col))
}

// Close writes the caption band, if any, and ends the document. It returns
// the first write error seen by the canvas.
func (c *Canvas) Close() error {
	if c.closed {
		return ErrClosed
	}
	c.begin()
	if c.withCaption {
		top := c.height * Scale
		c.doc.Rect(0, top, c.width*Scale, CaptionBandHeight*Scale, fill(pattern.White))
		if c.caption != "" {
			c.doc.Text(c.width*Scale/2, top+CaptionBaseline*Scale, c.caption,
				fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-size:%dpx;fill:#000000", CaptionFontSize*Scale))
		}
	}
	c.doc.End()
	c.closed = true
	return c.out.err
}

// Err returns the first write error, or ErrClosed if drawing was attempted
// after Close.
func (c *Canvas) Err() error {
	return c.out.err
}

// begin writes the document header once. It reports false after Close.
func (c *Canvas) begin() bool {
	if c.closed {
		if c.out.err == nil {
			c.out.err = ErrClosed
		}
		return false
	}
	if c.started {
		return true
	}
	c.started = true

	h := c.height
	if c.withCaption {
		h += CaptionBandHeight
	}
	c.doc.Startview(c.width, h, 0, 0, c.width*Scale, h*Scale)
	if c.title != "" {
		c.doc.Title(c.title)
	}
	return true
}

func units(v float64) int {
	return int(math.Round(v * Scale))
}

func fill(col color.Color) string {
	return "fill:" + pattern.FormatHex(col) + opacity("fill", col)
}

// opacity returns a ";<prop>-opacity:x" suffix for translucent colours.
func opacity(prop string, col color.Color) string {
	_, _, _, a := col.RGBA()
	if a == 0xffff {
		return ""
	}
	return fmt.Sprintf(";%s-opacity:%.3f", prop, float64(a)/0xffff)
}

// errWriter records the first write error; later writes are dropped.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
