// Package picker implements the weighted-discrete sampling primitive
// ("picker") that every voynich-ipsum engine builds its choices on, plus
// the two combinators layered over it: distinct multi-picks and
// threshold coin flips.
//
// What
//
//   - Entry[T]: a (value, non-negative weight) pair.
//   - New / MustNew: compile a non-empty weighted table into a Picker[T]
//     whose Pick method samples one value per call, with probability
//     proportional to weight.
//   - PickN: resample a Picker until n distinct values are collected.
//   - Maybe: a closure performing a Bernoulli trial against a threshold.
//
// Why
//
//	Typology selection, phoneme inventories, affix slots, word order,
//	sentence types — the whole engine is weighted-discrete choice. One
//	audited primitive keeps the cumulative-boundary arithmetic and the
//	reproducibility tie-break (table order) in a single place.
//
// Determinism
//
//	Cumulative boundaries are computed once, in table order; Pick consumes
//	exactly one draw from the injected rng.Source and maps it through
//	those fixed boundaries. For a fixed source the output sequence is
//	fully reproducible; reordering a table is a semantic change.
//
// Errors
//
//	New returns ErrEmptyTable, ErrNegativeWeight, or ErrZeroWeight for
//	malformed tables; use errors.Is. MustNew panics on the same
//	conditions and is reserved for static literal tables.
//
// Complexity
//
//   - New: O(n) time and space over the table.
//   - Pick: O(n) time worst case (linear boundary scan), O(1) space.
//   - PickN: expected O(n·k) draws for k distinct values; termination is
//     the caller's responsibility (k must not exceed the table's distinct
//     value count).
package picker
