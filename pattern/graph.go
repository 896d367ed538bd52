// SPDX-License-Identifier: MIT
// Package: seedgraph/pattern
//
// graph.go - materialises the drawn complete graph as a core.Graph.

package pattern

import (
	"fmt"

	"github.com/katalvlaran/seedgraph/builder"
	"github.com/katalvlaran/seedgraph/core"
)

// Vertex metadata keys set by Graph.
const (
	MetaX = "x"
	MetaY = "y"
)

// Graph returns K_N over points: vertex "i" carries MetaX/MetaY, and every
// edge is weighted with its rounded pixel length. Edge insertion order matches
// the stroke order of Render. An empty point set yields an empty graph.
// Complexity: O(N²).
func Graph(points []Point) (*core.Graph, error) {
	gopts := []core.GraphOption{core.WithWeighted()}
	if len(points) == 0 {
		return core.NewGraph(gopts...), nil
	}

	coords := make([][2]float64, len(points))
	for i, p := range points {
		coords[i] = [2]float64{p.X, p.Y}
	}

	g, err := builder.BuildGraph(gopts, []builder.BuilderOption{
		builder.WithWeightFn(builder.DistanceWeightFn(coords)),
		builder.WithVertexMetadata(func(idx int) map[string]interface{} {
			return map[string]interface{}{MetaX: points[idx].X, MetaY: points[idx].Y}
		}),
	}, builder.Complete(len(points)))
	if err != nil {
		return nil, fmt.Errorf("Graph: %w", err)
	}

	return g, nil
}
