// Package: voynich/rng
//
// rng.go — seeded deterministic stream of floats in [0,1), plus the small
// helpers (IntBetween, Maybe, Shuffle) the engines use for discrete draws.
//
// Contract:
//   - New(seed) folds the float64 seed's bit pattern into a splitmix64
//     state; fractional seeds are honored, never truncated.
//   - Float64 returns a value in [0,1) with 53 bits of mantissa and
//     advances the stream by exactly one step.
//   - Skip(n) is observationally identical to n discarded Float64 calls.
//   - Helpers take a Source, not a *Stream, so tests can script draws.
//
// Determinism:
//   - No global state; each Stream owns its position exclusively.
//   - Helper draw counts are fixed (IntBetween and Maybe consume exactly
//     one draw; Shuffle consumes n-1), so call sequences replay exactly.

package rng

import "math"

// Source is the draw interface every engine consumes. Implementations
// must return values in [0,1).
type Source interface {
	Float64() float64
}

// splitmix64 mixing constants (Steele, Lea & Flood 2014).
const (
	smixGamma = 0x9E3779B97F4A7C15
	smixMixA  = 0xBF58476D1CE4E5B9
	smixMixB  = 0x94D049BB133111EB
)

// mantissaBits is the float64 mantissa width; draws use the top 53 bits.
const mantissaBits = 53

// Stream is a seeded splitmix64 generator. The zero value is usable but
// corresponds to seed 0; prefer New.
type Stream struct {
	state uint64
}

// New returns a Stream seeded from the bit pattern of seed. Two seeds
// with distinct float64 representations produce distinct streams.
func New(seed float64) *Stream {
	return &Stream{state: math.Float64bits(seed)}
}

// next advances the state and returns the next 64-bit output.
func (s *Stream) next() uint64 {
	s.state += smixGamma
	z := s.state
	z ^= z >> 30
	z *= smixMixA
	z ^= z >> 27
	z *= smixMixB
	z ^= z >> 31

	return z
}

// Float64 returns the next value in [0,1) and advances the stream.
func (s *Stream) Float64() float64 {
	return float64(s.next()>>(64-mantissaBits)) / (1 << mantissaBits)
}

// Skip discards n draws. Non-positive n is a no-op.
func (s *Stream) Skip(n int) {
	for i := 0; i < n; i++ {
		s.next()
	}
}

// IntBetween returns a uniform integer in [lo,hi] (both inclusive),
// consuming exactly one draw. Swapped bounds are reordered.
func IntBetween(src Source, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}

	// Float64 < 1 guarantees the result never exceeds hi.
	return lo + int(src.Float64()*float64(hi-lo+1))
}

// Maybe performs one Bernoulli trial: true with probability p.
// p <= 0 is always false; p >= 1 is always true. Consumes one draw.
func Maybe(src Source, p float64) bool {
	return src.Float64() < p
}

// Shuffle permutes n elements via Fisher–Yates using swap, drawing in a
// stable order (i = n-1 down to 1) for reproducibility.
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := IntBetween(src, 0, i)
		swap(i, j)
	}
}
