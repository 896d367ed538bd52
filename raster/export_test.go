package raster_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seedgraph/pattern"
	"github.com/katalvlaran/seedgraph/raster"
)

func decode(t *testing.T, buf *bytes.Buffer) image.Image {
	t.Helper()
	img, err := png.Decode(buf)
	require.NoError(t, err)
	return img
}

func bandHasInk(img image.Image, top int) bool {
	b := img.Bounds()
	for y := top; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, _ := img.At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || bb != 0xffff {
				return true
			}
		}
	}
	return false
}

func TestExport_Plain(t *testing.T) {
	c := raster.New(64, 48)
	c.FillCircle(pattern.Point{X: 32, Y: 24}, 5, red)

	var buf bytes.Buffer
	require.NoError(t, raster.Export(&buf, c.Image()))

	img := decode(t, &buf)
	assert.Equal(t, image.Rect(0, 0, 64, 48), img.Bounds())
	assertNear(t, red, img.At(32, 24), "dot survives encoding")
}

func TestExport_Caption(t *testing.T) {
	c := raster.New(400, 60)
	c.FillCircle(pattern.Point{X: 200, Y: 30}, 5, red)

	var buf bytes.Buffer
	err := raster.Export(&buf, c.Image(),
		raster.WithCaption("Seed: 1 | Dots: 3"),
		raster.WithCompression(png.BestSpeed),
	)
	require.NoError(t, err)

	img := decode(t, &buf)
	assert.Equal(t, image.Rect(0, 0, 400, 60+raster.CaptionBandHeight), img.Bounds())
	assertNear(t, red, img.At(200, 30), "canvas copied")
	assert.True(t, bandHasInk(img, 60), "caption drawn")

	// Text is centred: neither edge column of the band is inked.
	for y := 60; y < img.Bounds().Max.Y; y++ {
		assertNear(t, pattern.White, img.At(0, y), "left edge")
		assertNear(t, pattern.White, img.At(399, y), "right edge")
	}

	// The source canvas keeps its size.
	w, h := c.Size()
	assert.Equal(t, 400, w)
	assert.Equal(t, 60, h)
}

func TestExport_EmptyCaptionKeepsBand(t *testing.T) {
	c := raster.New(50, 20)

	var buf bytes.Buffer
	require.NoError(t, raster.Export(&buf, c.Image(), raster.WithCaption("")))

	img := decode(t, &buf)
	assert.Equal(t, 20+raster.CaptionBandHeight, img.Bounds().Dy())
	assert.False(t, bandHasInk(img, 20))
}

func TestExport_NilImage(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, raster.Export(&buf, nil), raster.ErrNilImage)

	_, err := raster.Captioned(nil, "x")
	assert.ErrorIs(t, err, raster.ErrNilImage)
}

func TestCaptioned_OffsetSource(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 30, 20))
	src.SetRGBA(10, 10, color.RGBA{G: 0xff, A: 0xff})

	out, err := raster.Captioned(src, "")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 10+raster.CaptionBandHeight), out.Bounds())
	assert.Equal(t, color.RGBA{G: 0xff, A: 0xff}, out.RGBAAt(0, 0))
}
