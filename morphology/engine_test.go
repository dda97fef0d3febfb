// Package morphology_test checks registry semantics, typology resolution,
// stem passthrough, closed-class behavior, and determinism.
package morphology_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfhoughton/voynich-ipsum/morphology"
	"github.com/dfhoughton/voynich-ipsum/phonology"
	"github.com/dfhoughton/voynich-ipsum/rng"
)

const sampleWords = 300

func boolPtr(b bool) *bool { return &b }

// newStack wires stream → phonology → registry → morphology the way the
// language facade does, failing the test on any construction error.
func newStack(t *testing.T, seed float64, params morphology.Params) (*morphology.Engine, *morphology.Registry) {
	t.Helper()
	src := rng.New(seed)
	phon, err := phonology.New(src, phonology.Params{})
	require.NoError(t, err)
	reg := morphology.NewRegistry()
	morph, err := morphology.New(src, phon, reg, params)
	require.NoError(t, err)

	return morph, reg
}

// TestRegistryReserve: reserve-if-absent, no revocation, blank excluded.
func TestRegistryReserve(t *testing.T) {
	t.Parallel()

	reg := morphology.NewRegistry()
	assert.True(t, reg.Reserve("ka"))
	assert.False(t, reg.Reserve("ka"), "a granted form is never granted twice")
	assert.True(t, reg.Has("ka"))
	assert.False(t, reg.Reserve(""), "the blank form is implicit, never reservable")
	assert.Equal(t, 1, reg.Len())
}

// TestConstructorValidation: nil collaborators surface sentinels.
func TestConstructorValidation(t *testing.T) {
	t.Parallel()

	src := rng.New(1)
	phon, err := phonology.New(src, phonology.Params{})
	require.NoError(t, err)

	_, err = morphology.New(src, nil, morphology.NewRegistry(), morphology.Params{})
	assert.ErrorIs(t, err, morphology.ErrNilPhonology)

	_, err = morphology.New(src, phon, nil, morphology.Params{})
	assert.ErrorIs(t, err, morphology.ErrNilRegistry)
}

// TestDeterminism: twin stacks at one seed generate identical words.
func TestDeterminism(t *testing.T) {
	t.Parallel()

	a, _ := newStack(t, 4, morphology.Params{})
	b, _ := newStack(t, 4, morphology.Params{})
	require.Equal(t, a.Config(), b.Config())
	for i := 0; i < sampleWords; i++ {
		require.Equal(t, a.Noun(""), b.Noun(""), "noun %d diverged", i)
		require.Equal(t, a.Verb(""), b.Verb(""), "verb %d diverged", i)
		require.Equal(t, a.Pronoun(), b.Pronoun(), "pronoun %d diverged", i)
	}
}

// TestAnalyticIdentity: analytic languages leave stems uninflected.
func TestAnalyticIdentity(t *testing.T) {
	t.Parallel()

	morph, _ := newStack(t, 6, morphology.Params{Analytic: boolPtr(true)})
	cfg := morph.Config()
	assert.True(t, cfg.Analytic)
	assert.False(t, cfg.NounInflection, "analytic languages carry no nominal inflection")
	assert.False(t, cfg.VerbInflection, "analytic languages carry no verbal inflection")

	assert.Equal(t, "foo", morph.Noun("foo"))
	assert.Equal(t, "foo", morph.Verb("foo"))
}

// TestStemPassthrough: a supplied stem survives verbatim inside the
// inflected word, and inflection is visible on at least some words.
func TestStemPassthrough(t *testing.T) {
	t.Parallel()

	morph, _ := newStack(t, 9, morphology.Params{
		Analytic:       boolPtr(false),
		NounInflection: boolPtr(true),
		VerbInflection: boolPtr(true),
	})

	inflected := false
	for i := 0; i < sampleWords; i++ {
		noun := morph.Noun("xyzzy")
		require.Contains(t, noun, "xyzzy")
		verb := morph.Verb("xyzzy")
		require.Contains(t, verb, "xyzzy")
		if noun != "xyzzy" || verb != "xyzzy" {
			inflected = true
		}
	}
	assert.True(t, inflected, "inflection never surfaced across %d words", 2*sampleWords)
}

// TestWordGeneratorsProduce: every generator yields non-empty forms.
func TestWordGeneratorsProduce(t *testing.T) {
	t.Parallel()

	morph, _ := newStack(t, 11, morphology.Params{})
	for i := 0; i < sampleWords; i++ {
		assert.NotEmpty(t, morph.NounStem())
		assert.NotEmpty(t, morph.VerbStem())
		assert.NotEmpty(t, morph.Noun(""))
		assert.NotEmpty(t, morph.Verb(""))
		assert.NotEmpty(t, morph.Pronoun())
		assert.NotEmpty(t, morph.Adverb())
		assert.NotEmpty(t, morph.Particle())
	}
}

// TestClosedClass: count validation, membership bound, blank frequency,
// and registry growth.
func TestClosedClass(t *testing.T) {
	t.Parallel()

	morph, reg := newStack(t, 13, morphology.Params{})

	_, err := morph.ClosedClass(0, false)
	assert.ErrorIs(t, err, morphology.ErrBadCount)

	before := reg.Len()
	const classSize = 5
	class, err := morph.ClosedClass(classSize, true)
	require.NoError(t, err)
	assert.Greater(t, reg.Len(), before, "minted forms must be registered")

	seen := make(map[string]struct{})
	blanks := 0
	for i := 0; i < sampleWords; i++ {
		f := class()
		if f == "" {
			blanks++

			continue
		}
		seen[f] = struct{}{}
	}
	assert.LessOrEqual(t, len(seen), classSize, "a closed class never grows after construction")
	assert.Positive(t, blanks, "the blank form carries real weight")
}

// TestClosedClassesDisjoint: two classes over one registry never share
// a form. A rich phonology is pinned so the syllable space cannot run
// out (a spent space is allowed to degrade into collisions).
func TestClosedClassesDisjoint(t *testing.T) {
	t.Parallel()

	src := rng.New(17)
	closed := true
	phon, err := phonology.New(src, phonology.Params{
		Complexity:      phonology.ComplexityComplex,
		ClosedSyllables: &closed,
		InitialClusters: &closed,
	})
	require.NoError(t, err)
	morph, err := morphology.New(src, phon, morphology.NewRegistry(), morphology.Params{})
	require.NoError(t, err)

	a, err := morph.ClosedClass(6, false)
	require.NoError(t, err)
	b, err := morph.ClosedClass(6, false)
	require.NoError(t, err)

	formsA := make(map[string]struct{})
	for i := 0; i < sampleWords; i++ {
		formsA[a()] = struct{}{}
	}
	for i := 0; i < sampleWords; i++ {
		_, shared := formsA[b()]
		require.False(t, shared, "closed classes over one registry must not collide")
	}
}

// TestEnumRoundTrip: String/Parse agree for both enums.
func TestEnumRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []morphology.StemComplexity{
		morphology.StemSimple, morphology.StemModerate, morphology.StemComplex,
	} {
		parsed, err := morphology.ParseStemComplexity(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	_, err := morphology.ParseStemComplexity("polysynthetic")
	assert.ErrorIs(t, err, morphology.ErrUnknownComplexity)

	for _, a := range []morphology.AffixStyle{
		morphology.AffixSuffixing, morphology.AffixPrefixing, morphology.AffixBoth,
	} {
		parsed, err := morphology.ParseAffixStyle(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}
	_, err = morphology.ParseAffixStyle("infixing")
	assert.ErrorIs(t, err, morphology.ErrUnknownAffixStyle)
}

// TestReplayParams: a Config converted back to Params reproduces the
// same typology under a fresh stream.
func TestReplayParams(t *testing.T) {
	t.Parallel()

	original, _ := newStack(t, 21, morphology.Params{})
	replayed, _ := newStack(t, 77.5, original.Config().Params())
	assert.Equal(t, original.Config(), replayed.Config())
}

// TestStemsAreWordLike: stems hold no spaces (they must embed cleanly in
// phrases as single tokens).
func TestStemsAreWordLike(t *testing.T) {
	t.Parallel()

	morph, _ := newStack(t, 23, morphology.Params{})
	for i := 0; i < sampleWords; i++ {
		assert.False(t, strings.ContainsAny(morph.Noun(""), " \t\n"))
	}
}
