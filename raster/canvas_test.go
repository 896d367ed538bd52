package raster_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seedgraph/pattern"
	"github.com/katalvlaran/seedgraph/raster"
)

var (
	red  = color.RGBA{R: 0xff, A: 0xff}
	blue = color.RGBA{B: 0xff, A: 0xff}
)

// assertNear checks each channel within a small tolerance for coverage rounding.
func assertNear(t *testing.T, want color.RGBA, got color.Color, msg string) {
	t.Helper()
	g := color.RGBAModel.Convert(got).(color.RGBA)
	assert.InDelta(t, want.R, g.R, 3, "%s: R", msg)
	assert.InDelta(t, want.G, g.G, 3, "%s: G", msg)
	assert.InDelta(t, want.B, g.B, 3, "%s: B", msg)
	assert.InDelta(t, want.A, g.A, 3, "%s: A", msg)
}

func isWhite(img *image.RGBA, x, y int) bool {
	return img.RGBAAt(x, y) == color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}

func TestNew(t *testing.T) {
	c := raster.New(30, 20)
	w, h := c.Size()
	assert.Equal(t, 30, w)
	assert.Equal(t, 20, h)
	assert.True(t, isWhite(c.Image(), 0, 0))
	assert.True(t, isWhite(c.Image(), 29, 19))

	empty := raster.New(-1, -5)
	w, h = empty.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestClear(t *testing.T) {
	c := raster.New(8, 8)
	c.Clear(red)
	assert.Equal(t, red, c.Image().RGBAAt(3, 3))
	c.Clear(pattern.White)
	assert.True(t, isWhite(c.Image(), 3, 3))
}

func TestFillCircle(t *testing.T) {
	c := raster.New(100, 100)
	c.FillCircle(pattern.Point{X: 50, Y: 50}, 5, red)

	img := c.Image()
	assertNear(t, red, img.At(50, 50), "centre")
	assertNear(t, red, img.At(47, 50), "inside")
	assert.True(t, isWhite(img, 50, 40), "above")
	assert.True(t, isWhite(img, 0, 0), "corner")

	// Rim pixels are partially covered: neither white nor solid.
	rim := img.RGBAAt(54, 50)
	assert.NotEqual(t, red, rim)
	assert.False(t, isWhite(img, 54, 50))
}

func TestFillCircle_Clipped(t *testing.T) {
	c := raster.New(20, 20)
	require.NotPanics(t, func() {
		c.FillCircle(pattern.Point{X: 0, Y: 0}, 5, red)
		c.FillCircle(pattern.Point{X: 19, Y: 19}, 8, red)
		c.FillCircle(pattern.Point{X: -50, Y: -50}, 5, blue)
		c.FillCircle(pattern.Point{X: 10, Y: 10}, 0, blue)
	})
	assertNear(t, red, c.Image().At(0, 0), "top-left")
	assertNear(t, red, c.Image().At(19, 19), "bottom-right")
	assert.True(t, isWhite(c.Image(), 10, 10))
}

func TestStrokeLine(t *testing.T) {
	c := raster.New(100, 100)
	c.StrokeLine(pattern.Point{X: 10, Y: 50}, pattern.Point{X: 90, Y: 50}, 4, blue)

	img := c.Image()
	assertNear(t, blue, img.At(50, 49), "on line")
	assertNear(t, blue, img.At(50, 50), "on line")
	assert.True(t, isWhite(img, 50, 40), "above")
	assert.True(t, isWhite(img, 5, 50), "before butt cap")
	assert.True(t, isWhite(img, 95, 50), "after butt cap")
}

func TestStrokeLine_Thin(t *testing.T) {
	c := raster.New(20, 20)
	c.StrokeLine(pattern.Point{X: 0, Y: 10}, pattern.Point{X: 20, Y: 10}, pattern.DefaultLineWidth, color.Black)

	// A sub-pixel line blends with the background instead of painting solid.
	px := c.Image().RGBAAt(10, 9)
	px2 := c.Image().RGBAAt(10, 10)
	assert.False(t, isWhite(c.Image(), 10, 9) && isWhite(c.Image(), 10, 10))
	assert.NotEqual(t, uint8(0), px.R)
	assert.NotEqual(t, uint8(0), px2.R)
}

func TestStrokeLine_Degenerate(t *testing.T) {
	c := raster.New(20, 20)
	c.StrokeLine(pattern.Point{X: 5, Y: 5}, pattern.Point{X: 5, Y: 5}, 3, red)
	c.StrokeLine(pattern.Point{X: 1, Y: 1}, pattern.Point{X: 18, Y: 18}, 0, red)
	c.StrokeLine(pattern.Point{X: -30, Y: -30}, pattern.Point{X: -10, Y: -30}, 2, red)

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			require.True(t, isWhite(c.Image(), x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestGenerateOnCanvas(t *testing.T) {
	c := raster.New(pattern.DefaultWidth, pattern.DefaultHeight)
	c.Clear(red)

	res, err := pattern.Generate(c, pattern.Config{
		Seed:       1,
		PointCount: 3,
		Dots:       pattern.Fixed("#000000"),
		Lines:      pattern.Fixed("#999999"),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Stats.Lines)
	assert.Equal(t, 3, res.Stats.Dots)

	img := c.Image()
	assert.True(t, isWhite(img, 0, 0), "background cleared")
	for _, p := range res.Points {
		assertNear(t, color.RGBA{A: 0xff}, img.At(int(p.X), int(p.Y)), "dot")
	}
}

func TestGenerateOnCanvas_Deterministic(t *testing.T) {
	cfg := pattern.Config{
		Seed:       2024,
		PointCount: 12,
		Dots:       pattern.Fixed("#112233"),
		Lines:      pattern.Fixed("#445566"),
	}
	a, b := raster.New(200, 150), raster.New(200, 150)
	_, err := pattern.Generate(a, cfg)
	require.NoError(t, err)
	_, err = pattern.Generate(b, cfg)
	require.NoError(t, err)

	assert.Equal(t, a.Image().Pix, b.Image().Pix)
}
