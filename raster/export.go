// SPDX-License-Identifier: MIT
// Package: seedgraph/raster
//
// export.go - PNG export with an optional caption band.

package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Caption band geometry, in pixels.
const (
	CaptionBandHeight = 40
	CaptionFontSize   = 14
	CaptionBaseline   = 25
)

// Sentinel errors for export.
var (
	// ErrNilImage is returned when Export receives no image.
	ErrNilImage = errors.New("raster: nil image")
	// ErrFont indicates the caption font could not be loaded.
	ErrFont = errors.New("raster: caption font unavailable")
)

// parsedFont is shared; faces are built per export because an opentype
// face keeps mutable glyph buffers.
var parsedFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// ExportOption configures Export.
type ExportOption func(*exportOptions)

type exportOptions struct {
	caption     string
	withCaption bool
	level       png.CompressionLevel
}

// WithCaption appends a white band below the image with text centred in it.
// An empty text still adds the band.
func WithCaption(text string) ExportOption {
	return func(o *exportOptions) {
		o.caption = text
		o.withCaption = true
	}
}

// WithCompression sets the PNG compression level.
func WithCompression(level png.CompressionLevel) ExportOption {
	return func(o *exportOptions) {
		o.level = level
	}
}

// Export encodes img as PNG to w. The source image is never modified.
func Export(w io.Writer, img image.Image, opts ...ExportOption) error {
	if img == nil {
		return ErrNilImage
	}
	o := exportOptions{level: png.DefaultCompression}
	for _, opt := range opts {
		opt(&o)
	}

	out := img
	if o.withCaption {
		captioned, err := Captioned(img, o.caption)
		if err != nil {
			return err
		}
		out = captioned
	}

	enc := png.Encoder{CompressionLevel: o.level}
	if err := enc.Encode(w, out); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// Captioned returns a copy of img extended by CaptionBandHeight white rows,
// with text drawn in black, horizontally centred on the canvas width, on a
// baseline CaptionBaseline pixels below the bottom of img.
func Captioned(img image.Image, text string) (*image.RGBA, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	dst := image.NewRGBA(image.Rect(0, 0, w, h+CaptionBandHeight))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(0, 0, w, h), img, b.Min, draw.Src)

	if text == "" {
		return dst, nil
	}

	face, err := captionFace()
	if err != nil {
		return nil, err
	}
	defer face.Close()

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}
	adv := d.MeasureString(text)
	d.Dot = fixed.Point26_6{
		X: (fixed.I(w) - adv) / 2,
		Y: fixed.I(h + CaptionBaseline),
	}
	d.DrawString(text)
	return dst, nil
}

func captionFace() (font.Face, error) {
	f, err := parsedFont()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFont, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    CaptionFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFont, err)
	}
	return face, nil
}
