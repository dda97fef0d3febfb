// Package: voynich/syntax
//
// errors.go — sentinel errors for syntax construction.
//
// Error policy:
//   • Sentinels only; branch with errors.Is.
//   • All errors are construction-time; generators never error.

package syntax

import "errors"

// ErrNilMorphology indicates New received no morphology engine to draw
// words from.
// Usage: if errors.Is(err, ErrNilMorphology) { /* wire the layers */ }.
var ErrNilMorphology = errors.New("syntax: nil morphology engine")

// ErrUnknownOrder indicates a WordOrder value outside the declared enum
// reached construction or YAML decoding.
var ErrUnknownOrder = errors.New("syntax: unknown word order")

// ErrUnknownPlacement indicates a ParticlePlacement value outside the
// declared enum reached construction or YAML decoding.
var ErrUnknownPlacement = errors.New("syntax: unknown particle placement")
