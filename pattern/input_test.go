package pattern_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seedgraph/pattern"
)

func TestParseSeed(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr error
	}{
		{"1", 1, nil},
		{"007", 7, nil},
		{"0", 0, nil},
		{"99999999", 99999999, nil},
		{"4294967295", 4294967295, nil},
		{"4294967296", 0, nil},
		{"4294967297", 1, nil},
		{"", 0, pattern.ErrEmptySeed},
		{"12a", 0, pattern.ErrSeedNotNumeric},
		{"-1", 0, pattern.ErrSeedNotNumeric},
		{" 1", 0, pattern.ErrSeedNotNumeric},
		{"1.5", 0, pattern.ErrSeedNotNumeric},
		{"١٢", 0, pattern.ErrSeedNotNumeric},
	}
	for _, tc := range tests {
		got, err := pattern.ParseSeed(tc.in)
		if tc.wantErr != nil {
			assert.ErrorIs(t, err, tc.wantErr, "in=%q", tc.in)
			continue
		}
		require.NoError(t, err, "in=%q", tc.in)
		assert.Equal(t, tc.want, got, "in=%q", tc.in)
	}
}

func TestRandomSeed(t *testing.T) {
	for i := 0; i < 1000; i++ {
		assert.Less(t, pattern.RandomSeed(), uint32(pattern.RandomSeedLimit))
	}
}

func TestParsePointCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", pattern.DefaultPointCount},
		{"abc", pattern.DefaultPointCount},
		{"0", pattern.DefaultPointCount},
		{"-", pattern.DefaultPointCount},
		{"99999999999999999999999", pattern.DefaultPointCount},
		{"3", 3},
		{"  12", 12},
		{"12dots", 12},
		{"7.9", 7},
		{"+5", 5},
		{"-3", -3},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, pattern.ParsePointCount(tc.in), "in=%q", tc.in)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#000000", color.RGBA{A: 0xff}, false},
		{"#FF8000", color.RGBA{R: 0xff, G: 0x80, A: 0xff}, false},
		{"#abc", color.RGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}, false},
		{"000000", color.RGBA{}, true},
		{"#12345", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
		{"#+12345", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}
	for _, tc := range tests {
		got, err := pattern.ParseHexColor(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, pattern.ErrBadColor, "in=%q", tc.in)
			continue
		}
		require.NoError(t, err, "in=%q", tc.in)
		assert.Equal(t, tc.want, got, "in=%q", tc.in)
	}
}

func TestFormatHex(t *testing.T) {
	assert.Equal(t, "#ff8000", pattern.FormatHex(color.RGBA{R: 0xff, G: 0x80, A: 0xff}))
	assert.Equal(t, "#000000", pattern.FormatHex(color.Black))

	c, err := pattern.ParseHexColor(pattern.FormatHex(color.RGBA{R: 1, G: 2, B: 3, A: 0xff}))
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 0xff}, c)
}

func TestColorSources(t *testing.T) {
	a, b := pattern.SeededColors(7), pattern.SeededColors(7)
	for i := 0; i < 20; i++ {
		ca := a.NextColor()
		assert.Equal(t, ca, b.NextColor())
		assert.Equal(t, uint8(0xff), ca.A)
	}

	r := pattern.RandomColors()
	for i := 0; i < 20; i++ {
		assert.Equal(t, uint8(0xff), r.NextColor().A)
	}
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "pattern_seed1.png", pattern.ExportFileName("1", "png"))
	assert.Equal(t, "pattern_seed007.svg", pattern.ExportFileName("007", ".svg"))
	assert.Equal(t, "pattern_seedrandom.png", pattern.ExportFileName("", "png"))
}
