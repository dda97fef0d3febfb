// Package: voynich/language
//
// language.go — the Language type: construction and the sentence-level
// call surface.
//
// Contract:
//   - Construction is single-pass and strictly layered: stream →
//     registry → phonology → morphology → syntax → self-name. Each
//     layer is fully configured before the next consumes it.
//   - After New returns, every layer's configuration is frozen; all
//     further calls only consume the stream to instantiate text.
//   - One Language owns one stream; concurrent calls into one instance
//     must be serialized by the caller (as with the engines).

package language

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/dfhoughton/voynich-ipsum/morphology"
	"github.com/dfhoughton/voynich-ipsum/phonology"
	"github.com/dfhoughton/voynich-ipsum/picker"
	"github.com/dfhoughton/voynich-ipsum/rng"
	"github.com/dfhoughton/voynich-ipsum/syntax"
)

// Language is one fully constructed language: frozen typology plus the
// advancing random stream that instantiates its prose.
type Language struct {
	src   *rng.Stream
	phon  *phonology.Engine
	morph *morphology.Engine
	syn   *syntax.Engine
	kind  *picker.Picker[sentenceKind]
	name  string
}

// New constructs a language from the given options. Omitting WithSeed
// uses a process-supplied random seed; everything else is deterministic
// in the seed and options.
func New(opts ...Option) (*Language, error) {
	s := newSettings(opts...)
	src := rng.New(s.seed)

	phon, err := phonology.New(src, s.phon)
	if err != nil {
		return nil, fmt.Errorf("language.New: %w", err)
	}
	morph, err := morphology.New(src, phon, morphology.NewRegistry(), s.morph)
	if err != nil {
		return nil, fmt.Errorf("language.New: %w", err)
	}
	syn, err := syntax.New(src, morph, s.syn)
	if err != nil {
		return nil, fmt.Errorf("language.New: %w", err)
	}

	l := &Language{
		src:   src,
		phon:  phon,
		morph: morph,
		syn:   syn,
		kind:  picker.MustNew(src, sentenceKindTable),
	}
	// The language names itself: a topic-free noun phrase, fixed now.
	l.name = capitalize(syn.NounPhrase(""))

	return l, nil
}

// Name returns the language's self-name, fixed at construction.
func (l *Language) Name() string {
	return l.name
}

// Assertion renders a declarative sentence; topics surface verbatim as
// noun-phrase stems while argument slots last.
func (l *Language) Assertion(topics ...string) string {
	return l.syn.Assertion(topics...)
}

// Question renders an interrogative sentence.
func (l *Language) Question(topics ...string) string {
	return l.syn.Question(topics...)
}

// Exclamation renders an exclamative sentence.
func (l *Language) Exclamation(topics ...string) string {
	return l.syn.Exclamation(topics...)
}

// NounPhrase renders a noun phrase; the first topic, if any, surfaces
// verbatim as the head noun's stem.
func (l *Language) NounPhrase(topics ...string) string {
	topic := ""
	if len(topics) > 0 {
		topic = topics[0]
	}

	return l.syn.NounPhrase(topic)
}

// Scramble advances the stream a drawn number of steps, decorrelating
// subsequent output from anything previously observed. The typology is
// untouched.
func (l *Language) Scramble() {
	l.src.Skip(rng.IntBetween(l.src, scrambleSkipMin, scrambleSkipMax))
}

// capitalize upper-cases the first rune.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
