// Package: voynich/language
//
// options.go — functional options for language construction.
//
// Contract (strict):
//   - Options are functional (type Option func(*settings)).
//   - Every knob has a deterministic default except the seed, whose
//     default is a process-supplied random value (the one documented
//     nondeterminism, opted out of via WithSeed).
//   - No hidden globals; everything flows through settings into New.

package language

import (
	"math/rand/v2"

	"github.com/dfhoughton/voynich-ipsum/morphology"
	"github.com/dfhoughton/voynich-ipsum/phonology"
	"github.com/dfhoughton/voynich-ipsum/syntax"
)

// defaultSeedSpan scales the process-random default seed into a roomy
// integer-plus-fraction range.
const defaultSeedSpan = 1 << 32

// Option customizes language construction.
type Option func(*settings)

// settings aggregates all construction knobs.
type settings struct {
	seed    float64
	seedSet bool
	phon    phonology.Params
	morph   morphology.Params
	syn     syntax.Params
}

// newSettings applies options in order (later overrides earlier) and
// resolves the default seed if none was supplied.
func newSettings(opts ...Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	if !s.seedSet {
		s.seed = rand.Float64() * defaultSeedSpan
	}

	return s
}

// WithSeed fixes the language's seed. Fractional seeds are honored as
// floats, not truncated; equal seeds (with equal options) yield
// identical languages and identical prose.
func WithSeed(seed float64) Option {
	return func(s *settings) {
		s.seed = seed
		s.seedSet = true
	}
}

// WithPhonology pins phonological parameters (inventories, syllable
// shape); anything left unset in params is still drawn from the stream.
func WithPhonology(params phonology.Params) Option {
	return func(s *settings) {
		s.phon = params
	}
}

// WithMorphology pins morphological parameters (analyticity, inflection,
// stem complexity, affix style).
func WithMorphology(params morphology.Params) Option {
	return func(s *settings) {
		s.morph = params
	}
}

// WithSyntax pins syntactic parameters (word order, particles,
// adposition position).
func WithSyntax(params syntax.Params) Option {
	return func(s *settings) {
		s.syn = params
	}
}
