// SPDX-License-Identifier: MIT
// Package: seedgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.

package builder

// BuilderOption customizes a constructor by mutating a builderConfig
// before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithWeightFn overrides the per-edge weight function. It is consulted only
// when the core graph is weighted. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithVertexMetadata attaches the key/value pairs returned by fn(idx) to
// every vertex a constructor adds. Panics on nil.
func WithVertexMetadata(fn func(idx int) map[string]interface{}) BuilderOption {
	if fn == nil {
		panic("builder: WithVertexMetadata(nil)")
	}
	return func(c *builderConfig) {
		c.metaFn = fn
	}
}
