package pattern_test

import (
	"image/color"

	"github.com/katalvlaran/seedgraph/pattern"
)

const (
	opClear  = "clear"
	opLine   = "line"
	opCircle = "circle"
)

// op is one recorded drawing call.
type op struct {
	kind string
	a, b pattern.Point
	size float64
	c    color.Color
}

// recorder is a Surface that keeps the calls made since the last Clear.
type recorder struct {
	w, h int
	ops  []op
}

func newRecorder() *recorder {
	return &recorder{w: pattern.DefaultWidth, h: pattern.DefaultHeight}
}

func (r *recorder) Size() (int, int) { return r.w, r.h }

func (r *recorder) Clear(c color.Color) {
	r.ops = []op{{kind: opClear, c: c}}
}

func (r *recorder) StrokeLine(a, b pattern.Point, width float64, c color.Color) {
	r.ops = append(r.ops, op{kind: opLine, a: a, b: b, size: width, c: c})
}

func (r *recorder) FillCircle(center pattern.Point, radius float64, c color.Color) {
	r.ops = append(r.ops, op{kind: opCircle, a: center, size: radius, c: c})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

// seedOnePoints are the first three points for seed 1 on an 800×600 canvas.
var seedOnePoints = []pattern.Point{
	{X: 496.5761948470026, Y: 21.532003860920668},
	{X: 420.8597503695637, Y: 569.3885417841375},
	{X: 755.9672026429325, Y: 177.41796165704727},
}

func fixedConfig(seed uint32, n int) pattern.Config {
	return pattern.Config{
		Seed:       seed,
		PointCount: n,
		Dots:       pattern.Fixed("#ff0000"),
		Lines:      pattern.Fixed("#0000ff"),
	}
}
