// SPDX-License-Identifier: MIT
// Package: seedgraph/prim_kruskal
//
// kruskal.go - Kruskal's algorithm over a union-find forest.

package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/seedgraph/core"
)

// Kruskal returns the MST edges of g in the order they were accepted and
// their total weight.
//
// Steps:
//  1. Validate; a single vertex yields an empty tree.
//  2. Stable-sort non-loop edges by weight (ties keep insertion order).
//  3. Accept every edge joining two components until |V|-1 are taken.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Kruskal(g *core.Graph) ([]core.Edge, int64, error) {
	vertices, err := validate(g)
	if err != nil {
		return nil, 0, err
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	all := g.Edges()
	edges := make([]*core.Edge, 0, len(all))
	for _, e := range all {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	ds := newDisjointSet(vertices)
	mst := make([]core.Edge, 0, len(vertices)-1)
	var total int64
	for _, e := range edges {
		if !ds.union(e.From, e.To) {
			continue
		}
		mst = append(mst, *e)
		total += e.Weight
		if len(mst) == len(vertices)-1 {
			break
		}
	}

	if len(mst) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// disjointSet is a union-find forest with path halving and union by rank.
type disjointSet struct {
	parent map[string]string
	rank   map[string]int
}

func newDisjointSet(ids []string) *disjointSet {
	ds := &disjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		ds.parent[id] = id
	}

	return ds
}

func (ds *disjointSet) find(u string) string {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (ds *disjointSet) union(u, v string) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
