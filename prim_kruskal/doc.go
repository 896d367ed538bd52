// Package prim_kruskal computes minimum spanning trees of undirected,
// weighted *core.Graph values with Kruskal's or Prim's algorithm.
//
// For a placed point set, the MST of its complete graph is the shortest set
// of lines that still connects every dot; its total weight is a compact
// fingerprint of how spread out a pattern is.
//
//   - Kruskal(g): stable sort of all edges by weight, then union-find.
//     O(E log E).
//   - Prim(g, root): grows one tree from root with a min-heap.
//     O(E log V).
//
// Both are deterministic: ties on weight resolve by edge insertion order, so
// the same graph always yields the same tree. Both return the same total
// weight on any connected graph.
//
// Errors:
//   - ErrInvalidGraph: nil, directed or unweighted graph.
//   - ErrEmptyRoot: Prim without a root.
//   - core.ErrVertexNotFound: Prim root not in graph.
//   - ErrDisconnected: empty graph, or no spanning tree exists.
package prim_kruskal
