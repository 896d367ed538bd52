// SPDX-License-Identifier: MIT
// Package: seedgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn      = DefaultIDFn       ("0","1","2",...)
//   • weightFn  = DefaultWeightFn   (constant DefaultEdgeWeight)
//   • metaFn    = nil               (no vertex metadata)

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// Weight for the edge between vertex indices i and j; weighted graphs only.
	weightFn WeightFn
	// Optional per-vertex metadata, applied right after the vertex is added.
	metaFn func(idx int) map[string]interface{}
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
