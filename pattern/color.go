// SPDX-License-Identifier: MIT
// Package: seedgraph/pattern
//
// color.go - hex colour parsing and per-element colour sources.

package pattern

import (
	"fmt"
	"image/color"
	"math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/seedgraph/prng"
)

// ColorfulLabel is what the summary shows for a per-element colour mode.
const ColorfulLabel = "Colorful"

// maxRandomColor bounds random colours to [0, 0xFFFFFE].
const maxRandomColor = 0xFFFFFF

// ParseHexColor parses "#rgb" or "#rrggbb" (case-insensitive, '#' required)
// into an opaque colour.
func ParseHexColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("ParseHexColor(%q): missing '#': %w", s, ErrBadColor)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("ParseHexColor(%q): want 3 or 6 digits: %w", s, ErrBadColor)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("ParseHexColor(%q): %w", s, ErrBadColor)
	}

	return rgb(uint32(v)), nil
}

// FormatHex renders c as "#rrggbb", ignoring alpha.
func FormatHex(c color.Color) string {
	r := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", r.R, r.G, r.B)
}

func rgb(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// ColorSource yields one colour per drawn element in colourful mode.
type ColorSource interface {
	NextColor() color.RGBA
}

// ColorFunc adapts a function to ColorSource.
type ColorFunc func() color.RGBA

// NextColor calls f.
func (f ColorFunc) NextColor() color.RGBA { return f() }

// RandomColors returns an unseeded, non-reproducible source of opaque
// 24-bit colours. Safe for concurrent use.
func RandomColors() ColorSource {
	return ColorFunc(func() color.RGBA {
		return rgb(uint32(rand.Float64() * maxRandomColor))
	})
}

// SeededColors returns a reproducible colour source backed by its own
// mulberry32 stream. Not safe for concurrent use.
func SeededColors(seed uint32) ColorSource {
	r := prng.New(seed)
	return ColorFunc(func() color.RGBA {
		return rgb(uint32(r.Next() * maxRandomColor))
	})
}
