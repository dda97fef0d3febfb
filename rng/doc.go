// Package rng provides the single deterministic randomness source every
// other voynich-ipsum component consumes: a seeded stream of float64
// values in [0,1).
//
// What
//
//   - Stream: a splitmix64 generator seeded from the IEEE-754 bit pattern
//     of a float64, so fractional seeds (1.5 vs 1) yield distinct streams
//     rather than being truncated.
//   - Source: the one-method interface (Float64) the engines depend on;
//     tests inject scripted fakes through it.
//   - Free helpers over Source: IntBetween (inclusive uniform int),
//     Maybe (Bernoulli trial), Shuffle (Fisher–Yates).
//
// Why
//
//	A constructed language must be reproducible from its seed. Every
//	typological coin flip and every generated syllable draws from one
//	explicit stream handed down through constructors — never from package
//	globals — so two Language instances can never interfere with each
//	other's stream positions.
//
// Determinism
//
//	The stream position advances by exactly one step per Float64 call and
//	is never reset; Skip(n) discards n draws (used by Scramble). For a
//	fixed seed the sequence of draws, and therefore every downstream
//	choice made in a fixed call order, is fully reproducible.
//
// Complexity
//
//   - Float64/IntBetween/Maybe: O(1) time, O(1) space.
//   - Shuffle: O(n) time, O(1) extra space.
package rng
