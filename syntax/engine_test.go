// Package syntax_test checks sentence well-formedness, topic fidelity,
// typology resolution, and determinism across the full stack below it.
package syntax_test

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfhoughton/voynich-ipsum/morphology"
	"github.com/dfhoughton/voynich-ipsum/phonology"
	"github.com/dfhoughton/voynich-ipsum/rng"
	"github.com/dfhoughton/voynich-ipsum/syntax"
)

const sampleSentences = 200

func boolPtr(b bool) *bool { return &b }

// newStack wires stream → phonology → morphology → syntax the way the
// language facade does.
func newStack(t *testing.T, seed float64, params syntax.Params) *syntax.Engine {
	t.Helper()
	src := rng.New(seed)
	phon, err := phonology.New(src, phonology.Params{})
	require.NoError(t, err)
	morph, err := morphology.New(src, phon, morphology.NewRegistry(), morphology.Params{})
	require.NoError(t, err)
	syn, err := syntax.New(src, morph, params)
	require.NoError(t, err)

	return syn
}

// startsUpper reports whether s begins with an uppercase rune.
func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)

	return unicode.IsUpper(r)
}

// TestConstructorValidation: a nil morphology engine is rejected.
func TestConstructorValidation(t *testing.T) {
	t.Parallel()

	_, err := syntax.New(rng.New(1), nil, syntax.Params{})
	assert.ErrorIs(t, err, syntax.ErrNilMorphology)
}

// TestSentenceWellFormedness: every sentence type carries its terminal
// mark and an uppercase first letter, across several seeds.
func TestSentenceWellFormedness(t *testing.T) {
	t.Parallel()

	for _, seed := range []float64{1, 2, 3.75, 19, 101} {
		seed := seed
		syn := newStack(t, seed, syntax.Params{})
		for i := 0; i < sampleSentences; i++ {
			a := syn.Assertion()
			require.True(t, strings.HasSuffix(a, "."), "assertion %q must end in a period", a)
			require.True(t, startsUpper(a), "assertion %q must start uppercase", a)

			q := syn.Question()
			require.True(t, strings.HasSuffix(q, "?"), "question %q must end in a question mark", q)
			require.True(t, startsUpper(q), "question %q must start uppercase", q)

			x := syn.Exclamation()
			require.True(t, strings.HasSuffix(x, "!"), "exclamation %q must end in a bang", x)
			require.True(t, startsUpper(x), "exclamation %q must start uppercase", x)
		}
	}
}

// TestTopicFidelity: a supplied topic surfaces verbatim (case-
// insensitively) in phrases and in all three sentence types.
func TestTopicFidelity(t *testing.T) {
	t.Parallel()

	const topic = "foo"
	for _, seed := range []float64{1, 5, 12.5, 33} {
		seed := seed
		syn := newStack(t, seed, syntax.Params{})
		for i := 0; i < sampleSentences; i++ {
			require.Contains(t, strings.ToLower(syn.NounPhrase(topic)), topic)
			require.Contains(t, strings.ToLower(syn.Assertion(topic)), topic)
			require.Contains(t, strings.ToLower(syn.Question(topic)), topic)
			require.Contains(t, strings.ToLower(syn.Exclamation(topic)), topic)
		}
	}
}

// TestDeterminism: twin stacks at one seed render identical sentences.
func TestDeterminism(t *testing.T) {
	t.Parallel()

	a := newStack(t, 8, syntax.Params{})
	b := newStack(t, 8, syntax.Params{})
	require.Equal(t, a.Config(), b.Config())
	for i := 0; i < sampleSentences; i++ {
		require.Equal(t, a.Assertion("ka"), b.Assertion("ka"), "sentence %d diverged", i)
		require.Equal(t, a.Question(), b.Question())
		require.Equal(t, a.NounPhrase(""), b.NounPhrase(""))
	}
}

// TestConfigResolved: drawn typology is concrete and in range.
func TestConfigResolved(t *testing.T) {
	t.Parallel()

	cfg := newStack(t, 14, syntax.Params{}).Config()
	assert.NotEqual(t, syntax.OrderUnset, cfg.Order)
	assert.NotEqual(t, syntax.PlacementUnset, cfg.AssertionParticle)
	assert.NotEqual(t, syntax.PlacementUnset, cfg.QuestionParticle)
	assert.GreaterOrEqual(t, cfg.ModifierChance, 0.05)
	assert.Less(t, cfg.ModifierChance, 0.2, "modifier continuation stays below 0.2")
}

// TestSuppliedTypology: explicit Params pass through to Config.
func TestSuppliedTypology(t *testing.T) {
	t.Parallel()

	syn := newStack(t, 3, syntax.Params{
		Order:             syntax.OrderVSO,
		SubjectRequired:   boolPtr(true),
		Prepositions:      boolPtr(true),
		ModifierFirst:     boolPtr(false),
		Auxiliaries:       boolPtr(false),
		AssertionParticle: syntax.PlacementNone,
		QuestionParticle:  syntax.PlacementFinal,
	})
	cfg := syn.Config()
	assert.Equal(t, syntax.OrderVSO, cfg.Order)
	assert.True(t, cfg.SubjectRequired)
	assert.True(t, cfg.Prepositions)
	assert.False(t, cfg.ModifierFirst)
	assert.False(t, cfg.Auxiliaries)
	assert.Equal(t, syntax.PlacementNone, cfg.AssertionParticle)
	assert.Equal(t, syntax.PlacementFinal, cfg.QuestionParticle)
}

// TestPhraseGeneratorsProduce: phrase-level generators yield non-empty
// multi-or-single token strings without stray whitespace.
func TestPhraseGeneratorsProduce(t *testing.T) {
	t.Parallel()

	syn := newStack(t, 27, syntax.Params{})
	for i := 0; i < sampleSentences; i++ {
		for _, s := range []string{syn.NounPhrase(""), syn.VerbPhrase(), syn.AdpositionPhrase()} {
			require.NotEmpty(t, s)
			require.Equal(t, strings.TrimSpace(s), s)
			require.NotContains(t, s, "  ", "no double spaces in %q", s)
		}
	}
}

// TestEnumRoundTrip: String/Parse agree for both enums.
func TestEnumRoundTrip(t *testing.T) {
	t.Parallel()

	for _, o := range []syntax.WordOrder{
		syntax.OrderSOV, syntax.OrderSVO, syntax.OrderVSO, syntax.OrderVOS,
		syntax.OrderOVS, syntax.OrderOSV, syntax.OrderFree,
	} {
		parsed, err := syntax.ParseWordOrder(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, parsed)
	}
	_, err := syntax.ParseWordOrder("vsvo")
	assert.ErrorIs(t, err, syntax.ErrUnknownOrder)

	for _, p := range []syntax.ParticlePlacement{
		syntax.PlacementNone, syntax.PlacementInitial, syntax.PlacementFinal,
	} {
		parsed, err := syntax.ParsePlacement(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
	_, err = syntax.ParsePlacement("medial")
	assert.ErrorIs(t, err, syntax.ErrUnknownPlacement)
}

// TestReplayParams: a Config converted back to Params reproduces the
// same typology under a fresh stream.
func TestReplayParams(t *testing.T) {
	t.Parallel()

	original := newStack(t, 31, syntax.Params{}).Config()
	replayed := newStack(t, 404.25, original.Params()).Config()

	assert.Equal(t, original.Order, replayed.Order)
	assert.Equal(t, original.SubjectRequired, replayed.SubjectRequired)
	assert.Equal(t, original.Prepositions, replayed.Prepositions)
	assert.Equal(t, original.ModifierFirst, replayed.ModifierFirst)
	assert.Equal(t, original.Auxiliaries, replayed.Auxiliaries)
	assert.Equal(t, original.AssertionParticle, replayed.AssertionParticle)
	assert.Equal(t, original.QuestionParticle, replayed.QuestionParticle)
}
