// Package phonology_test checks typology resolution, inventory closure of
// generated syllables, determinism, and supplied-parameter handling.
package phonology_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfhoughton/voynich-ipsum/phonology"
	"github.com/dfhoughton/voynich-ipsum/rng"
)

const sampleSyllables = 500

func boolPtr(b bool) *bool { return &b }

// newEngine builds an engine at a seed, failing the test on error.
func newEngine(t *testing.T, seed float64, params phonology.Params) *phonology.Engine {
	t.Helper()
	e, err := phonology.New(rng.New(seed), params)
	require.NoError(t, err)

	return e
}

// TestDeterminism: twin engines at one seed emit identical syllables.
func TestDeterminism(t *testing.T) {
	t.Parallel()

	a := newEngine(t, 1, phonology.Params{})
	b := newEngine(t, 1, phonology.Params{})
	require.Equal(t, a.Config(), b.Config())
	for i := 0; i < sampleSyllables; i++ {
		require.Equal(t, a.Syllable(), b.Syllable(), "syllable %d diverged", i)
	}
}

// TestSyllablesStayInsideInventory: every generated syllable decomposes
// into the resolved inventory's phonemes (greedy longest-match scan).
func TestSyllablesStayInsideInventory(t *testing.T) {
	t.Parallel()

	for _, seed := range []float64{1, 2.5, 7, 42, 99.25} {
		seed := seed
		e := newEngine(t, seed, phonology.Params{})
		cfg := e.Config()

		// All phoneme forms, longest first, plus doubled single nuclei.
		forms := append(append([]string(nil), cfg.Nuclei...), cfg.Consonants...)
		for _, n := range cfg.Nuclei {
			if len(n) == 1 {
				forms = append(forms, n+n)
			}
		}
		sort.Slice(forms, func(i, j int) bool { return len(forms[i]) > len(forms[j]) })

		for i := 0; i < sampleSyllables; i++ {
			syl := e.Syllable()
			require.NotEmpty(t, syl, "seed %v produced an empty syllable", seed)

			rest := syl
			for rest != "" {
				matched := false
				for _, f := range forms {
					if strings.HasPrefix(rest, f) {
						rest = rest[len(f):]
						matched = true

						break
					}
				}
				require.True(t, matched, "seed %v: syllable %q holds foreign material %q", seed, syl, rest)
			}
		}
	}
}

// TestConfigResolved: every field of a drawn config is concrete.
func TestConfigResolved(t *testing.T) {
	t.Parallel()

	cfg := newEngine(t, 3, phonology.Params{}).Config()
	assert.NotEqual(t, phonology.ComplexityUnset, cfg.Complexity)
	assert.NotEmpty(t, cfg.Nuclei)
	assert.NotEmpty(t, cfg.Consonants)
	assert.Positive(t, cfg.SyllableCount)
	assert.Greater(t, cfg.OnsetAbsence, 0.0)
	assert.Less(t, cfg.ClusterRatio, 0.5+0.0001, "clusters stay at most half as frequent")
}

// TestConfigImmutable: mutating a snapshot never affects generation.
func TestConfigImmutable(t *testing.T) {
	t.Parallel()

	a := newEngine(t, 5, phonology.Params{})
	b := newEngine(t, 5, phonology.Params{})

	cfg := a.Config()
	for i := range cfg.Nuclei {
		cfg.Nuclei[i] = "zzz"
	}
	cfg.Consonants = nil

	for i := 0; i < sampleSyllables; i++ {
		require.Equal(t, b.Syllable(), a.Syllable())
	}
	assert.NotEqual(t, "zzz", a.Config().Nuclei[0])
}

// TestSuppliedInventories: explicit inventories pass through verbatim.
func TestSuppliedInventories(t *testing.T) {
	t.Parallel()

	e := newEngine(t, 8, phonology.Params{
		Nuclei:          []string{"a", "o"},
		Consonants:      []string{"t", "k", "s"},
		ClosedSyllables: boolPtr(false),
		InitialClusters: boolPtr(false),
		LongVowels:      boolPtr(false),
	})
	cfg := e.Config()
	assert.Equal(t, phonology.ComplexityCustom, cfg.Complexity)
	assert.Equal(t, []string{"a", "o"}, cfg.Nuclei)
	assert.ElementsMatch(t, []string{"t", "k", "s"}, cfg.Consonants)
	assert.False(t, cfg.ClosedSyllables)
	assert.False(t, cfg.FinalClusters, "final clusters require closed syllables")

	// Open syllables over a 3×2 inventory: onset optional, no coda.
	for i := 0; i < sampleSyllables; i++ {
		syl := e.Syllable()
		last := syl[len(syl)-1:]
		assert.Contains(t, []string{"a", "o"}, last, "open syllable %q must end in a nucleus", syl)
	}
}

// TestEmptyInventoryRejected: non-nil empty inventories are construction
// errors, never silently defaulted.
func TestEmptyInventoryRejected(t *testing.T) {
	t.Parallel()

	_, err := phonology.New(rng.New(1), phonology.Params{Nuclei: []string{}})
	assert.ErrorIs(t, err, phonology.ErrEmptyInventory)

	_, err = phonology.New(rng.New(1), phonology.Params{Consonants: []string{""}})
	assert.ErrorIs(t, err, phonology.ErrEmptyInventory)
}

// TestComplexityRoundTrip: String/Parse and the YAML forms agree.
func TestComplexityRoundTrip(t *testing.T) {
	t.Parallel()

	for _, c := range []phonology.Complexity{
		phonology.ComplexityMinimal, phonology.ComplexitySimple,
		phonology.ComplexityCanonical, phonology.ComplexityComplex,
		phonology.ComplexityCustom,
	} {
		parsed, err := phonology.ParseComplexity(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := phonology.ParseComplexity("baroque")
	assert.ErrorIs(t, err, phonology.ErrUnknownComplexity)
}

// TestReplayParams: a Config converted back to Params reproduces the
// same inventories and shape flags under any fresh stream.
func TestReplayParams(t *testing.T) {
	t.Parallel()

	original := newEngine(t, 12, phonology.Params{}).Config()
	replayed := newEngine(t, 999, original.Params()).Config()

	assert.Equal(t, original.Nuclei, replayed.Nuclei)
	assert.Equal(t, original.Consonants, replayed.Consonants)
	assert.Equal(t, original.ClosedSyllables, replayed.ClosedSyllables)
	assert.Equal(t, original.InitialClusters, replayed.InitialClusters)
	assert.Equal(t, original.FinalClusters, replayed.FinalClusters)
}
