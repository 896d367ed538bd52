// SPDX-License-Identifier: MIT
// Package: seedgraph/pattern
//
// place.go - seeded point placement.
//
// Contract:
//   • Two draws per point, x before y, in point-index order.
//   • x ∈ [padding, width-padding), y ∈ [padding, height-padding).
//   • count ≤ 0 ⇒ empty (non-nil) slice.
//
// Determinism:
//   • Each product is rounded to float64 before the add (no fused multiply-add),
//     so coordinates are bit-identical on every architecture.

package pattern

// Source is a stream of floats in [0,1). *prng.Mulberry32 satisfies it.
type Source interface {
	Next() float64
}

// PlacePoints draws count points from rng inside a padding inset of a
// width×height canvas.
// Complexity: O(count) time and space.
func PlacePoints(rng Source, count, width, height int, padding float64) []Point {
	if count <= 0 {
		return []Point{}
	}

	spanX := float64(width) - 2*padding
	spanY := float64(height) - 2*padding

	points := make([]Point, count)
	for i := range points {
		x := padding + float64(rng.Next()*spanX)
		y := padding + float64(rng.Next()*spanY)
		points[i] = Point{X: x, Y: y}
	}

	return points
}
