// SPDX-License-Identifier: MIT
// Package: seedgraph/prim_kruskal
//
// prim.go - Prim's algorithm with a binary min-heap.

package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/seedgraph/core"
)

// Prim grows an MST from root and returns its edges in the order they were
// added together with their total weight.
//
// Steps:
//  1. Validate graph and root; a single vertex yields an empty tree.
//  2. Push root's incident edges; repeatedly pop the lightest edge that
//     reaches an unvisited vertex and push that vertex's edges.
//  3. Fewer than |V|-1 accepted edges means the graph is disconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, root string) ([]core.Edge, int64, error) {
	vertices, err := validate(g)
	if err != nil {
		return nil, 0, err
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !g.HasVertex(root) {
		return nil, 0, fmt.Errorf("Prim(%q): %w", root, core.ErrVertexNotFound)
	}
	n := len(vertices)
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var total int64
	pq := &edgeHeap{}

	visit := func(u string) error {
		visited[u] = true
		edges, err := g.Neighbors(u)
		if err != nil {
			return err
		}
		for _, e := range edges {
			to := e.To
			if to == u {
				to = e.From
			}
			if !visited[to] {
				pq.order++
				heap.Push(pq, candidate{edge: e, to: to, order: pq.order})
			}
		}
		return nil
	}

	if err = visit(root); err != nil {
		return nil, 0, err
	}
	for pq.Len() > 0 && len(mst) < n-1 {
		c := heap.Pop(pq).(candidate)
		if visited[c.to] {
			continue
		}
		mst = append(mst, *c.edge)
		total += c.edge.Weight
		if err = visit(c.to); err != nil {
			return nil, 0, err
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// candidate is an edge leaving the tree towards to.
type candidate struct {
	edge  *core.Edge
	to    string
	order uint64
}

// edgeHeap orders candidates by weight, then by push order.
type edgeHeap struct {
	items []candidate
	order uint64
}

func (h *edgeHeap) Len() int { return len(h.items) }

func (h *edgeHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.edge.Weight != b.edge.Weight {
		return a.edge.Weight < b.edge.Weight
	}
	return a.order < b.order
}

func (h *edgeHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *edgeHeap) Push(x any) { h.items = append(h.items, x.(candidate)) }

func (h *edgeHeap) Pop() any {
	old := h.items
	n := len(old)
	c := old[n-1]
	h.items = old[:n-1]

	return c
}
