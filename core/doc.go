// Package core provides a small, thread-safe in-memory Graph used to expose a
// generated pattern as graph data: one vertex per placed point, one edge per
// drawn line.
//
// The Graph G = (V,E) supports:
//
//   - Undirected (default) or directed edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops), both off by default
//   - Per-vertex Metadata, used by seedgraph to carry point coordinates
//   - Monotonic edge IDs ("e1", "e2", …) so Edges() preserves insertion order
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                       // O(1)
//	SetMetadata(id, key string, value any) error     // O(1)
//	Vertex(id string) (*Vertex, error)               // O(1)
//	HasVertex(id string) bool                        // O(1)
//	Vertices() []string                              // O(V log V), sorted
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight int64) (string, error) // O(1)
//	HasEdge(from, to string) bool                           // O(1)
//	Edges() []*Edge                                         // O(E log E), insertion order
//	Neighbors(id string) ([]*Edge, error)                   // O(deg)
//	Degree(id string) (int, error)                          // O(1)
//	TotalWeight() int64                                     // O(E)
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrBadWeight,
//	ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Lock order is always muVert → muEdgeAdj.
package core
