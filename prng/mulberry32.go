// SPDX-License-Identifier: MIT
// Package: seedgraph/prng
//
// mulberry32.go - the mulberry32 generator and seed derivation helpers.
//
// Contract:
//   • New(seed) captures seed as both the initial and the current state.
//   • Each draw adds Increment to the state, then mixes a copy of it.
//   • Next() = Uint32() / 2^32, exactly representable in float64.
//
// Determinism:
//   • uint32 arithmetic wraps natively; no masking is required.
//   • Derive(seed, stream) is a pure function of its inputs.

package prng

// Increment is the Weyl-sequence step added to the state on every draw.
const Increment uint32 = 0x6D2B79F5

// scale converts a 32-bit draw into [0,1).
const scale = 1.0 / 4294967296.0

// Mulberry32 is a seeded 32-bit generator. The zero value is a valid
// generator seeded with 0.
type Mulberry32 struct {
	state uint32 // advanced on every draw
	seed  uint32 // initial state, restored by Reset
}

// New returns a generator whose sequence is fully determined by seed.
// Complexity: O(1).
func New(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed, seed: seed}
}

// Uint32 advances the generator and returns the raw 32-bit output.
// Complexity: O(1), no allocations.
func (m *Mulberry32) Uint32() uint32 {
	m.state += Increment
	t := m.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return t ^ (t >> 14)
}

// Next advances the generator and returns a float64 in [0,1).
// Complexity: O(1), no allocations.
func (m *Mulberry32) Next() float64 {
	return float64(m.Uint32()) * scale
}

// Float64 is an alias of Next so a *Mulberry32 satisfies small
// "Float64() float64" source interfaces.
func (m *Mulberry32) Float64() float64 {
	return m.Next()
}

// Seed returns the seed the generator was created (or last reset) with.
func (m *Mulberry32) Seed() uint32 {
	return m.seed
}

// State returns the current accumulator value.
func (m *Mulberry32) State() uint32 {
	return m.state
}

// Reset rewinds the generator to its initial seed.
func (m *Mulberry32) Reset() {
	m.state = m.seed
}

// Derive mixes a parent seed and a stream identifier into a new 32-bit seed.
// Child streams derived with different identifiers are decorrelated from the
// parent and from each other. Uses the 32-bit murmur3 finaliser.
// Complexity: O(1).
func Derive(seed uint32, stream uint32) uint32 {
	x := seed ^ (stream * 0x9E3779B1)
	x ^= x >> 16
	x *= 0x85EBCA6B
	x ^= x >> 13
	x *= 0xC2B2AE35
	x ^= x >> 16
	return x
}
