// Package: voynich/phonology
//
// errors.go — sentinel errors for phonology construction.
//
// Error policy:
//   • Sentinels only; branch with errors.Is.
//   • All errors are construction-time; Syllable never errors.

package phonology

import "errors"

// ErrEmptyInventory indicates an explicitly supplied (non-nil) nucleus or
// consonant inventory resolved to zero usable entries. An unset (nil)
// inventory is drawn instead; an empty one is a caller mistake and is
// never silently defaulted.
// Usage: if errors.Is(err, ErrEmptyInventory) { /* supply forms or nil */ }.
var ErrEmptyInventory = errors.New("phonology: empty inventory supplied")

// ErrUnknownComplexity indicates a Complexity value outside the declared
// enum reached construction or YAML decoding.
// Usage: if errors.Is(err, ErrUnknownComplexity) { /* fix the value */ }.
var ErrUnknownComplexity = errors.New("phonology: unknown complexity")
