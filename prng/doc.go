// Package prng provides the seeded pseudo-random number generator that drives
// every reproducible choice in seedgraph.
//
// The generator is mulberry32: a single 32-bit accumulator advanced by a
// fixed odd constant and passed through a short xor-shift / multiply mixer.
// All arithmetic is performed on uint32, so wraparound at 2^32 is native and
// the N-th draw for a given seed is bit-identical on every platform.
//
// Guarantees:
//
//   - Determinism: same seed ⇒ same sequence for the lifetime of a generator.
//   - Range: Next() ∈ [0,1); Uint32() covers the full 32-bit range.
//   - No errors: every uint32 seed (0 included) is valid.
//
// Concurrency:
//
//	A *Mulberry32 is NOT goroutine-safe. Give each generation pass its own
//	instance; use Derive to seed independent side streams.
//
// Quick example:
//
//	r := prng.New(1)
//	r.Next() // 0.6270739405881613
//	r.Next() // 0.002735721180215478
package prng
