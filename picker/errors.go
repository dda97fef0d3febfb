// Package: voynich/picker
//
// errors.go — sentinel errors for weighted-table validation.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • New wraps sentinels with context via %w; MustNew panics with the
//     same wrapped error (static-table construction only).
//   • Pick never errors: a table that passed New always samples a value.

package picker

import "errors"

// ErrEmptyTable indicates a weighted table with no entries reached New.
// A sampler over nothing cannot produce a value; this is a construction
// error, never silently defaulted.
// Usage: if errors.Is(err, ErrEmptyTable) { /* supply entries */ }.
var ErrEmptyTable = errors.New("picker: empty weighted table")

// ErrNegativeWeight indicates an entry carried a weight below zero.
// Weights are probability mass; negatives are meaningless.
// Usage: if errors.Is(err, ErrNegativeWeight) { /* fix the table */ }.
var ErrNegativeWeight = errors.New("picker: negative weight")

// ErrZeroWeight indicates every entry weighed exactly zero, leaving no
// probability mass to distribute.
// Usage: if errors.Is(err, ErrZeroWeight) { /* give some entry mass */ }.
var ErrZeroWeight = errors.New("picker: all weights are zero")
