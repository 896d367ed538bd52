// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj.
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex if missing. Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string][]string)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// SetMetadata stores value under key on vertex id.
// Complexity: O(1).
func (g *Graph) SetMetadata(id, key string, value interface{}) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("SetMetadata(%q): %w", id, ErrVertexNotFound)
	}
	v.Metadata[key] = value

	return nil
}

// Vertex returns a copy of vertex id; the Metadata map is shared.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (*Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("Vertex(%q): %w", id, ErrVertexNotFound)
	}
	cp := *v

	return &cp, nil
}

// HasVertex reports whether vertex id exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edge endpoints incident to id.
// In undirected graphs this is the usual degree; in directed graphs it is
// in-degree + out-degree.
// Complexity: O(deg(id)).
func (g *Graph) Degree(id string) (int, error) {
	if !g.HasVertex(id) {
		return 0, fmt.Errorf("Degree(%q): %w", id, ErrVertexNotFound)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	deg := 0
	for _, ids := range g.adjacency[id] {
		deg += len(ids)
	}
	if g.directed {
		for from, row := range g.adjacency {
			if from == id {
				continue
			}
			deg += len(row[id])
		}
	}

	return deg, nil
}
