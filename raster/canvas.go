// SPDX-License-Identifier: MIT
// Package: seedgraph/raster
//
// canvas.go - anti-aliased RGBA surface.

package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/katalvlaran/seedgraph/pattern"
)

// kappa places cubic control points so four arcs approximate a circle.
const kappa = 0.5522847498307936

var _ pattern.Surface = (*Canvas)(nil)

// Canvas is a fixed-size RGBA drawing surface. Not safe for concurrent use.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// New returns a width×height canvas cleared to white.
// Non-positive dimensions yield an empty canvas.
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(0, 0),
	}
	c.Clear(pattern.White)
	return c
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the backing image. It is shared, not copied.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills every pixel with col, discarding previous content.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// StrokeLine draws a segment of the given width with butt caps.
// Zero-length segments draw nothing.
func (c *Canvas) StrokeLine(a, b pattern.Point, width float64, col color.Color) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	// Half-width normal.
	nx, ny := -dy/length*width/2, dx/length*width/2

	quad := [4]pattern.Point{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range quad {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	c.fill(minX, minY, maxX, maxY, col, func(z *vector.Rasterizer, ox, oy float64) {
		z.MoveTo(f32(quad[0].X-ox), f32(quad[0].Y-oy))
		for _, p := range quad[1:] {
			z.LineTo(f32(p.X-ox), f32(p.Y-oy))
		}
		z.ClosePath()
	})
}

// FillCircle draws a filled disc.
func (c *Canvas) FillCircle(center pattern.Point, radius float64, col color.Color) {
	if radius <= 0 {
		return
	}
	r, k := radius, radius*kappa

	c.fill(center.X-r, center.Y-r, center.X+r, center.Y+r, col, func(z *vector.Rasterizer, ox, oy float64) {
		cx, cy := center.X-ox, center.Y-oy
		z.MoveTo(f32(cx+r), f32(cy))
		z.CubeTo(f32(cx+r), f32(cy+k), f32(cx+k), f32(cy+r), f32(cx), f32(cy+r))
		z.CubeTo(f32(cx-k), f32(cy+r), f32(cx-r), f32(cy+k), f32(cx-r), f32(cy))
		z.CubeTo(f32(cx-r), f32(cy-k), f32(cx-k), f32(cy-r), f32(cx), f32(cy-r))
		z.CubeTo(f32(cx+k), f32(cy-r), f32(cx+r), f32(cy-k), f32(cx+r), f32(cy))
		z.ClosePath()
	})
}

// fill rasterises the path emitted by trace inside the bounding box
// [minX,maxX]×[minY,maxY], clipped to the canvas, and composites col over
// the canvas through the resulting coverage mask. trace receives the box
// origin and must emit coordinates relative to it.
func (c *Canvas) fill(minX, minY, maxX, maxY float64, col color.Color, trace func(z *vector.Rasterizer, ox, oy float64)) {
	box := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(c.img.Bounds())
	if box.Empty() {
		return
	}

	c.z.Reset(box.Dx(), box.Dy())
	c.z.DrawOp = draw.Over
	trace(c.z, float64(box.Min.X), float64(box.Min.Y))
	c.z.Draw(c.img, box, image.NewUniform(col), image.Point{})
}

func f32(v float64) float32 {
	return float32(v)
}
