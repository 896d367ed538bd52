// Package builder_test contains functional tests for the Complete constructor
// and the BuildGraph orchestrator.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seedgraph/builder"
	"github.com/katalvlaran/seedgraph/core"
)

func TestComplete_Counts(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 5, 20} {
		g, err := builder.BuildGraph(nil, nil, builder.Complete(n))
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, n, g.VertexCount(), "n=%d", n)
		assert.Equal(t, n*(n-1)/2, g.EdgeCount(), "n=%d", n)
	}
}

func TestComplete_PairOrder(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(4))
	require.NoError(t, err)

	want := [][2]string{{"0", "1"}, {"0", "2"}, {"0", "3"}, {"1", "2"}, {"1", "3"}, {"2", "3"}}
	edges := g.Edges()
	require.Len(t, edges, len(want))
	for k, e := range edges {
		assert.Equal(t, want[k][0], e.From, "edge %d", k)
		assert.Equal(t, want[k][1], e.To, "edge %d", k)
		assert.Zero(t, e.Weight)
	}
}

func TestComplete_TooFew(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Complete(0))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestComplete_DirectedMirrors(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Complete(3))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())
	assert.True(t, g.HasEdge("2", "0"))
}

func TestComplete_DistanceWeights(t *testing.T) {
	coords := [][2]float64{{0, 0}, {3, 4}, {6, 8}}
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithWeightFn(builder.DistanceWeightFn(coords))},
		builder.Complete(3),
	)
	require.NoError(t, err)

	weights := make([]int64, 0, 3)
	for _, e := range g.Edges() {
		weights = append(weights, e.Weight)
	}
	assert.Equal(t, []int64{5, 10, 5}, weights)
	assert.Equal(t, int64(20), g.TotalWeight())
}

func TestComplete_IDSchemeAndMetadata(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithIDScheme(builder.SymbolNumberIDFn("p")),
		builder.WithVertexMetadata(func(idx int) map[string]interface{} {
			return map[string]interface{}{"index": idx}
		}),
	}, builder.Complete(2))
	require.NoError(t, err)

	assert.Equal(t, []string{"p0", "p1"}, g.Vertices())
	v, err := g.Vertex("p1")
	require.NoError(t, err)
	assert.Equal(t, 1, v.Metadata["index"])
}

func TestWeightFns(t *testing.T) {
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(0, 1))
	assert.Equal(t, int64(7), builder.ConstantWeightFn(7)(3, 4))
	assert.Zero(t, builder.DistanceWeightFn(nil)(0, 1))
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithVertexMetadata(nil) })
	assert.Panics(t, func() { builder.SymbolNumberIDFn("v")(-1) })
}
