// Package: voynich/morphology
//
// errors.go — sentinel errors for morphology construction.
//
// Error policy:
//   • Sentinels only; branch with errors.Is.
//   • All errors are construction-time; word generators never error, and
//     retry-capped closed-class fills degrade silently instead of failing.

package morphology

import "errors"

// ErrNilPhonology indicates New received no phonology engine to draw
// syllables from.
// Usage: if errors.Is(err, ErrNilPhonology) { /* wire the layers */ }.
var ErrNilPhonology = errors.New("morphology: nil phonology engine")

// ErrNilRegistry indicates New received no closed-class registry; the
// registry must be owned by the language instance and shared across all
// closed-class constructors.
// Usage: if errors.Is(err, ErrNilRegistry) { /* supply NewRegistry() */ }.
var ErrNilRegistry = errors.New("morphology: nil registry")

// ErrBadCount indicates ClosedClass was asked for fewer than one form.
// Usage: if errors.Is(err, ErrBadCount) { /* request n >= 1 */ }.
var ErrBadCount = errors.New("morphology: closed class needs a positive count")

// ErrUnknownComplexity indicates a StemComplexity value outside the
// declared enum reached construction or YAML decoding.
var ErrUnknownComplexity = errors.New("morphology: unknown stem complexity")

// ErrUnknownAffixStyle indicates an AffixStyle value outside the declared
// enum reached construction or YAML decoding.
var ErrUnknownAffixStyle = errors.New("morphology: unknown affix style")
