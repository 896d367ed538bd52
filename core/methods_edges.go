// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount/Neighbors,
//       plus TotalWeight. Also: nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order (by numeric edge ID).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock; queries under read lock.

package core

import (
	"fmt"
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to and returns its ID. Missing endpoints
// are created.
//
//   - If Weighted()==false and weight!=0, returns ErrBadWeight.
//   - If Looped()==false and from==to, returns ErrLoopNotAllowed.
//   - If Multigraph()==false and from→to already exists, returns ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", fmt.Errorf("AddEdge(%s→%s): %w", from, to, ErrMultiEdgeNotAllowed)
	}

	seq, eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight, seq: seq}
	g.adjacency[from][to] = append(g.adjacency[from][to], eid)
	if !g.directed && from != to {
		g.adjacency[to][from] = append(g.adjacency[to][from], eid)
	}

	return eid, nil
}

// HasEdge reports whether at least one edge from→to exists (either direction
// for undirected graphs).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Neighbors returns the edges leaving id (all incident edges when undirected),
// sorted by insertion order.
// Complexity: O(deg(id) log deg(id)).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("Neighbors(%q): %w", id, ErrVertexNotFound)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var out []*Edge
	for _, ids := range g.adjacency[id] {
		for _, eid := range ids {
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out, nil
}

// TotalWeight returns the sum of all edge weights.
// Complexity: O(E).
func (g *Graph) TotalWeight() int64 {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var sum int64
	for _, e := range g.edges {
		sum += e.Weight
	}

	return sum
}

// nextEdgeID reserves the next sequence number and renders it as "e<n>".
// Caller must hold muEdgeAdj for writing.
func nextEdgeID(g *Graph) (uint64, string) {
	g.nextEdgeID++
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return g.nextEdgeID, string(buf)
}
