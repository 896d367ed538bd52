// Package builder provides "functional-options"-style graph constructors on
// top of core.Graph. seedgraph uses it to materialise the complete graph K_N
// drawn by a pattern as graph data.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        creates a core.Graph, resolves options, runs constructors in order.
//     – Constructor:       func(g *core.Graph, cfg builderConfig) error.
//   - Topologies:
//     – Complete(n):       K_n, pairs emitted in (i,j), i<j lexicographic order.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithIDScheme, WithWeightFn, WithVertexMetadata.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolNumberIDFn:  prefix + decimal ("p0","p1",…).
//   - Edge-weight functions (WeightFn implementations):
//     – DefaultWeightFn:   constant DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – DistanceWeightFn:  rounded Euclidean distance between indexed coordinates.
//
// Guarantees:
//
//   - Determinism: same inputs/options and constructor order ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     method name ("Complete: n=0 < min=1: builder: parameter too small").
package builder
