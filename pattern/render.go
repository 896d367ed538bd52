// SPDX-License-Identifier: MIT
// Package: seedgraph/pattern
//
// render.go - draws a placed point set onto a Surface.
//
// Order (fixed, it defines visual stacking):
//   1. Clear to White.
//   2. Lines: every pair (i,j), outer i ascending, inner j ascending from i+1.
//   3. Dots: every point in index order, so dots always sit on top of lines.

package pattern

import "image/color"

// Style carries the resolved drawing parameters of a pass.
type Style struct {
	LineWidth float64
	DotRadius float64

	// LineColor / DotColor are used for every element unless the matching
	// source is non-nil, in which case each element asks the source.
	LineColor  color.Color
	DotColor   color.Color
	LineSource ColorSource
	DotSource  ColorSource
}

// EdgeCount returns the number of unordered pairs among n points, N(N-1)/2.
func EdgeCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// EachEdge calls fn for every pair (i,j), i<j, in nested ascending order.
// Edges are never stored.
func EachEdge(n int, fn func(i, j int)) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			fn(i, j)
		}
	}
}

// Render clears s and draws the complete graph over points, dots last.
// Complexity: O(N²) line strokes + O(N) dots.
func Render(s Surface, points []Point, st Style) Stats {
	var stats Stats

	s.Clear(White)

	EachEdge(len(points), func(i, j int) {
		c := st.LineColor
		if st.LineSource != nil {
			c = st.LineSource.NextColor()
		}
		s.StrokeLine(points[i], points[j], st.LineWidth, c)
		stats.Lines++
	})

	for _, p := range points {
		c := st.DotColor
		if st.DotSource != nil {
			c = st.DotSource.NextColor()
		}
		s.FillCircle(p, st.DotRadius, c)
		stats.Dots++
	}

	return stats
}
