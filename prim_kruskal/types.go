// SPDX-License-Identifier: MIT
// Package: seedgraph/prim_kruskal
//
// types.go - sentinel errors, method selection and Compute.

package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seedgraph/core"
)

// Sentinel errors.
var (
	// ErrInvalidGraph indicates a nil, directed or unweighted graph.
	ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

	// ErrEmptyRoot indicates Prim was called without a start vertex.
	ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

	// ErrDisconnected indicates no spanning tree covers every vertex.
	ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

	// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown method")
)

// Method names accepted by Compute.
const (
	MethodPrim    = "prim"
	MethodKruskal = "kruskal"
)

// MSTOptions selects the algorithm and, for Prim, the root vertex.
type MSTOptions struct {
	Method string
	Root   string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod selects MethodPrim or MethodKruskal.
func WithMethod(m string) Option {
	return func(o *MSTOptions) { o.Method = m }
}

// WithRoot sets Prim's start vertex. Kruskal ignores it.
func WithRoot(root string) Option {
	return func(o *MSTOptions) { o.Root = root }
}

// DefaultOptions selects Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute runs the MST algorithm chosen by opts on g.
func Compute(g *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, o.Root)
	default:
		return nil, 0, fmt.Errorf("Compute(%q): %w", o.Method, ErrUnknownMethod)
	}
}

// validate checks the preconditions shared by both algorithms and returns
// the sorted vertex IDs.
func validate(g *core.Graph) ([]string, error) {
	if g == nil || !g.Weighted() || g.Directed() {
		return nil, ErrInvalidGraph
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, ErrDisconnected
	}

	return vertices, nil
}
