// Package phonology chooses a language's sound system — vowel nuclei,
// consonant inventory, cluster rules, syllable shape — and exposes the
// syllable generator the morphology layer builds every word from.
//
// What
//
//   - New(src, params): resolve a full phonological typology, drawing
//     whatever the caller left unset from the injected random stream.
//   - Syllable(): onset + nucleus + coda, each sampled from weighted
//     tables fixed at construction.
//   - SyllableCount(): the distinct-syllable capacity of the resolved
//     configuration (morphology pads stem length on cramped inventories).
//   - Config(): a deep, read-only snapshot of every resolved parameter.
//
// Why
//
//	Every later layer's legal production space is constrained here: which
//	letters may ever appear, whether syllables may close, whether "str"-
//	like clusters exist. Freezing those choices once keeps every word of
//	one language self-consistent.
//
// Determinism
//
//	All typological draws happen in a fixed, documented order inside New
//	(nuclei, then consonants, then syllable shape, then position
//	samplers). After New returns, the configuration is frozen; Syllable
//	only consumes the stream to instantiate syllables.
//
// Errors
//
//	New returns ErrEmptyInventory when an explicitly supplied (non-nil)
//	nucleus or consonant inventory is empty, and ErrUnknownComplexity for
//	an out-of-range complexity value. There are no error paths after
//	construction.
//
// Complexity
//
//   - New: O(P·C) over places × candidate phonemes plus the cluster
//     cartesian products (bounded by the static tables).
//   - Syllable: O(inventory) worst case per position (linear picker scan).
package phonology
