// Package: voynich/picker
//
// picker.go — weighted-discrete sampler and its combinators.
//
// Contract:
//   - New validates the table (non-empty, weights >= 0, total > 0) and
//     freezes cumulative boundaries in table order.
//   - Pick consumes exactly one draw: scale it by the total weight and
//     return the first entry whose cumulative boundary exceeds it; the
//     last positive-weight entry absorbs float slop.
//   - Zero-weight entries are legal and unreachable.
//   - PickN discards duplicate samples until n distinct values are held;
//     feasibility (n <= distinct values in the table) is on the caller.
//
// Determinism:
//   - Boundaries depend only on table order and weights; sampling depends
//     only on the injected Source. Fixed source ⇒ fixed output sequence.

package picker

import (
	"fmt"

	"github.com/dfhoughton/voynich-ipsum/rng"
)

// Entry pairs a candidate value with its non-negative selection weight.
type Entry[T any] struct {
	Value  T
	Weight float64
}

// Picker samples values from a fixed weighted table.
type Picker[T any] struct {
	src    rng.Source
	values []T
	bounds []float64 // cumulative weight boundaries, table order
	total  float64
}

// New compiles table into a Picker drawing from src. The table must be
// non-empty with non-negative weights and positive total mass.
func New[T any](src rng.Source, table []Entry[T]) (*Picker[T], error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("picker.New: %w", ErrEmptyTable)
	}

	p := &Picker[T]{
		src:    src,
		values: make([]T, len(table)),
		bounds: make([]float64, len(table)),
	}
	for i, e := range table {
		if e.Weight < 0 {
			return nil, fmt.Errorf("picker.New: entry %d weight %g: %w", i, e.Weight, ErrNegativeWeight)
		}
		p.total += e.Weight
		p.values[i] = e.Value
		p.bounds[i] = p.total
	}
	if p.total == 0 {
		return nil, fmt.Errorf("picker.New: %w", ErrZeroWeight)
	}

	return p, nil
}

// MustNew is New for static literal tables: it panics on a malformed
// table instead of returning an error.
func MustNew[T any](src rng.Source, table []Entry[T]) *Picker[T] {
	p, err := New(src, table)
	if err != nil {
		panic(err)
	}

	return p
}

// Pick samples one value, consuming exactly one draw from the source.
func (p *Picker[T]) Pick() T {
	draw := p.src.Float64() * p.total
	for i, bound := range p.bounds {
		// Strictly-greater boundary: a draw landing exactly on a
		// boundary belongs to the next entry, and zero-weight entries
		// (bound == previous bound) can never match.
		if draw < bound {
			return p.values[i]
		}
	}

	// Float slop (draw == total after rounding): last entry wins.
	return p.values[len(p.values)-1]
}

// Len reports the number of table entries (including zero-weight ones).
func (p *Picker[T]) Len() int {
	return len(p.values)
}

// PickN samples until n distinct values are collected, preserving first-
// seen order. The caller must not request more distinct values than the
// table can produce; that precondition is not enforced here.
func PickN[T comparable](p *Picker[T], n int) []T {
	seen := make(map[T]struct{}, n)
	out := make([]T, 0, n)
	for len(out) < n {
		v := p.Pick()
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// Maybe returns a closure performing one Bernoulli trial per call: true
// with probability threshold. Each call consumes one draw.
func Maybe(src rng.Source, threshold float64) func() bool {
	return func() bool {
		return rng.Maybe(src, threshold)
	}
}
