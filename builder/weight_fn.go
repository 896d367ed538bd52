// Package builder provides helper functions and types
// for configuring edge weights in graph constructors.
package builder

import (
	"fmt"
	"math"
)

// DefaultEdgeWeight is the weight assigned to each edge when no custom
// WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// WeightFn produces the weight of the edge between vertex indices i and j.
// It must be deterministic in (i, j).
type WeightFn func(i, j int) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_, _ int) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}
	return func(_, _ int) int64 {
		return value
	}
}

// DistanceWeightFn returns a WeightFn yielding the Euclidean distance between
// coords[i] and coords[j], rounded to the nearest integer.
// Indices outside coords yield 0. The slice is captured, not copied.
func DistanceWeightFn(coords [][2]float64) WeightFn {
	return func(i, j int) int64 {
		if i < 0 || j < 0 || i >= len(coords) || j >= len(coords) {
			return 0
		}
		dx := coords[j][0] - coords[i][0]
		dy := coords[j][1] - coords[i][1]
		return int64(math.Round(math.Hypot(dx, dy)))
	}
}
