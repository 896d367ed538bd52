// SPDX-License-Identifier: MIT
// Package: seedgraph/builder
//
// impl_complete.go - implementation of the Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1),
//     attaching cfg.metaFn(i) when configured.
//   • Emits each unordered pair {i,j} with i<j exactly once, in the same
//     nested ascending order a renderer strokes them; mirrors j→i only if
//     g.Directed() is true.
//   • Weight policy: if g.Weighted() then cfg.weightFn(i,j) else 0.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges.
//   • Space: O(n) for the precomputed ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/seedgraph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if g == nil {
			return fmt.Errorf("%s: nil graph: %w", methodComplete, ErrConstructFailed)
		}
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, ids[i], err)
			}
			if cfg.metaFn == nil {
				continue
			}
			for k, v := range cfg.metaFn(i) {
				if err := g.SetMetadata(ids[i], k, v); err != nil {
					return fmt.Errorf("%s: SetMetadata(%s, %s): %w", methodComplete, ids[i], k, err)
				}
			}
		}

		useWeight := g.Weighted()
		for i := 0; i < n; i++ {
			u := ids[i]
			for j := i + 1; j < n; j++ {
				v := ids[j]

				var w int64
				if useWeight {
					w = cfg.weightFn(i, j)
				}

				if _, err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodComplete, u, v, w, err)
				}
				if g.Directed() {
					if _, err := g.AddEdge(v, u, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodComplete, v, u, w, err)
					}
				}
			}
		}

		return nil
	}
}
