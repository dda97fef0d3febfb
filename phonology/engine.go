// Package: voynich/phonology
//
// engine.go — phonological typology resolution and the syllable generator.
//
// Contract:
//   - New resolves every unset Params field by drawing from src in a
//     fixed order: nuclei → consonants → syllable shape → position
//     samplers. That order is part of the reproducibility contract.
//   - After New returns the typology is frozen; Syllable only consumes
//     the stream to instantiate syllables (one draw per position sampler,
//     plus one long-vowel coin for single-letter nuclei when enabled).
//   - Returns only sentinel errors (ErrEmptyInventory,
//     ErrUnknownComplexity); never panics at runtime.
//
// Determinism:
//   - Inventory assembly iterates static tables in declared order and
//     picked sets in pick order; no map iteration feeds a draw.

package phonology

import (
	"fmt"

	"github.com/dfhoughton/voynich-ipsum/picker"
	"github.com/dfhoughton/voynich-ipsum/rng"
)

// Typology draw probabilities and domains (no magic literals).
const (
	syllabicNucleusChance   = 0.02 // consonant-like nuclei (l r m n)
	longVowelLanguageChance = 0.25 // does the language double vowels at all
	longVowelChanceMin      = 0.1  // per-nucleus doubling chance, lower bound
	longVowelChanceSpan     = 0.4  // ... drawn span above the bound
	voicedChance            = 0.6  // voiced obstruent series present
	fricativeChance         = 0.85
	affricateChance         = 0.4
	nasalChance             = 0.9
	approximantChance       = 0.8
	minPlaces               = 2
	maxPlaces               = 5
	minCanonicalDiphthongs  = 2
	maxCanonicalDiphthongs  = 4
	minComplexNuclei        = 6
	maxComplexNuclei        = 17
	closedSyllableChance    = 0.65
	initialClusterChance    = 0.4
	finalClusterChance      = 0.3
	onsetAbsenceMin         = 0.05
	onsetAbsenceSpan        = 0.25
	codaAbsenceMin          = 0.30
	codaAbsenceSpan         = 0.40
	clusterRatioMin         = 0.1 // clusters vs simple consonants, lower bound
	clusterRatioSpan        = 0.4 // ... keeps the ratio at or below one half
	formWeightFloor         = 0.25
	clusterWeightFloor      = 0.05
)

// tierTable weights the vowel-complexity tiers for languages that leave
// the tier unset.
var tierTable = []picker.Entry[Complexity]{
	{Value: ComplexityMinimal, Weight: 1},
	{Value: ComplexitySimple, Weight: 4},
	{Value: ComplexityCanonical, Weight: 6},
	{Value: ComplexityComplex, Weight: 2},
}

// Engine owns one language's frozen sound system.
type Engine struct {
	src      rng.Source
	cfg      Config
	byManner [mannerCount][]string
	nucleus  *picker.Picker[string]
	onset    func() string
	coda     func() string
}

// New resolves a phonological typology from params, drawing unset fields
// from src in a fixed order.
func New(src rng.Source, params Params) (*Engine, error) {
	e := &Engine{src: src}
	if err := e.chooseNuclei(params); err != nil {
		return nil, err
	}
	if err := e.chooseConsonants(params); err != nil {
		return nil, err
	}
	e.chooseShape(params)
	e.buildSamplers()
	e.countSyllables()

	return e, nil
}

// Syllable generates one syllable: onset + nucleus + coda.
func (e *Engine) Syllable() string {
	return e.onset() + e.nucleusForm() + e.coda()
}

// SyllableCount reports the distinct-syllable capacity of the resolved
// configuration. Morphology reads it to pad stem length when the space
// is cramped.
func (e *Engine) SyllableCount() int {
	return e.cfg.SyllableCount
}

// Config returns a deep, mutation-safe snapshot of the resolved typology.
func (e *Engine) Config() Config {
	return e.cfg.clone()
}

// nucleusForm samples a nucleus, applying the per-language long-vowel
// doubling chance to single-letter nuclei.
func (e *Engine) nucleusForm() string {
	n := e.nucleus.Pick()
	if e.cfg.LongVowelChance > 0 && len(n) == 1 && rng.Maybe(e.src, e.cfg.LongVowelChance) {
		n += n
	}

	return n
}

// chooseNuclei resolves the nucleus inventory, the syllabic-consonant
// allowance, and the long-vowel chance, then fixes the nucleus sampler.
func (e *Engine) chooseNuclei(params Params) error {
	var nuclei []string
	switch {
	case params.Nuclei != nil:
		nuclei = dedup(params.Nuclei)
		if len(nuclei) == 0 {
			return fmt.Errorf("phonology.New: nuclei: %w", ErrEmptyInventory)
		}
		e.cfg.Complexity = params.Complexity
		if e.cfg.Complexity == ComplexityUnset {
			e.cfg.Complexity = ComplexityCustom
		}
	default:
		tier := params.Complexity
		if tier == ComplexityUnset {
			tier = picker.MustNew(e.src, tierTable).Pick()
		}
		drawn, err := e.drawTier(tier)
		if err != nil {
			return err
		}
		nuclei = drawn
		e.cfg.Complexity = tier
	}

	// Rarely, consonant-like sounds may serve as syllable peaks.
	if params.Nuclei == nil && rng.Maybe(e.src, syllabicNucleusChance) {
		nuclei = dedup(append(nuclei, syllabicNuclei...))
	}
	e.cfg.SyllabicNuclei = containsAny(nuclei, syllabicNuclei)

	// Long vowels: one language-level coin, then a per-nucleus chance
	// applied at generation time.
	hasLong := rng.Maybe(e.src, longVowelLanguageChance)
	if params.LongVowels != nil {
		hasLong = *params.LongVowels
	}
	if hasLong {
		e.cfg.LongVowelChance = longVowelChanceMin + e.src.Float64()*longVowelChanceSpan
	}

	e.cfg.Nuclei = nuclei
	entries := make([]picker.Entry[string], len(nuclei))
	for i, n := range nuclei {
		entries[i] = picker.Entry[string]{Value: n, Weight: formWeightFloor + e.src.Float64()}
	}
	e.nucleus = picker.MustNew(e.src, entries)

	return nil
}

// drawTier materializes a nucleus inventory for a complexity tier.
func (e *Engine) drawTier(tier Complexity) ([]string, error) {
	switch tier {
	case ComplexityMinimal:
		return append([]string(nil), minimalNuclei...), nil
	case ComplexitySimple:
		return append([]string(nil), simpleNuclei...), nil
	case ComplexityCanonical:
		n := rng.IntBetween(e.src, minCanonicalDiphthongs, maxCanonicalDiphthongs)
		extra := picker.PickN(picker.MustNew(e.src, canonicalDiphthongs), n)

		return append(append([]string(nil), simpleNuclei...), extra...), nil
	case ComplexityComplex:
		n := rng.IntBetween(e.src, minComplexNuclei, maxComplexNuclei)

		return picker.PickN(picker.MustNew(e.src, complexNuclei), n), nil
	default:
		return nil, fmt.Errorf("phonology.New: tier %d: %w", uint8(tier), ErrUnknownComplexity)
	}
}

// chooseConsonants resolves the consonant inventory, grouped by manner.
func (e *Engine) chooseConsonants(params Params) error {
	if params.Consonants != nil {
		forms := dedup(params.Consonants)
		if len(forms) == 0 {
			return fmt.Errorf("phonology.New: consonants: %w", ErrEmptyInventory)
		}
		for _, f := range forms {
			m, known := mannerIndex[f]
			if !known {
				m = mStop
			}
			e.byManner[m] = append(e.byManner[m], f)
		}
		e.cfg.Consonants = e.flatConsonants()

		return nil
	}

	places := picker.PickN(picker.MustNew(e.src, placeTable), rng.IntBetween(e.src, minPlaces, maxPlaces))
	voiced := rng.Maybe(e.src, voicedChance)

	// Manner coins, drawn in fixed order; stops are unconditional.
	allowed := map[manner]bool{
		mStop:        true,
		mFricative:   rng.Maybe(e.src, fricativeChance),
		mAffricate:   rng.Maybe(e.src, affricateChance),
		mNasal:       rng.Maybe(e.src, nasalChance),
		mApproximant: rng.Maybe(e.src, approximantChance),
	}

	seen := make(map[string]struct{})
	for _, m := range sampledManners {
		if !allowed[m] {
			continue
		}
		for _, pl := range places {
			for _, vc := range []voicing{vVoiceless, vVoiced} {
				// Sonorants are voiced regardless of the voicing series;
				// obstruents only gain the voiced series if the coin said so.
				sonorant := m == mNasal || m == mApproximant
				if vc == vVoiced && !voiced && !sonorant {
					continue
				}
				for i, form := range phonemeTable[m][pl][vc] {
					// Rank i joins with geometrically decaying probability.
					if i > 0 && !rng.Maybe(e.src, 1/float64(uint(1)<<uint(i))) {
						continue
					}
					if _, dup := seen[form]; dup {
						continue
					}
					seen[form] = struct{}{}
					e.byManner[m] = append(e.byManner[m], form)
				}
			}
		}
	}
	e.cfg.Consonants = e.flatConsonants()

	return nil
}

// chooseShape resolves the syllable-shape booleans. Final clusters
// require closed syllables.
func (e *Engine) chooseShape(params Params) {
	e.cfg.ClosedSyllables = rng.Maybe(e.src, closedSyllableChance)
	if params.ClosedSyllables != nil {
		e.cfg.ClosedSyllables = *params.ClosedSyllables
	}
	e.cfg.InitialClusters = rng.Maybe(e.src, initialClusterChance)
	if params.InitialClusters != nil {
		e.cfg.InitialClusters = *params.InitialClusters
	}
	e.cfg.FinalClusters = e.cfg.ClosedSyllables && rng.Maybe(e.src, finalClusterChance)
	if params.FinalClusters != nil {
		e.cfg.FinalClusters = *params.FinalClusters && e.cfg.ClosedSyllables
	}
}

// buildSamplers fixes the onset and coda samplers over
// {absent, simple consonant, cluster}.
func (e *Engine) buildSamplers() {
	e.cfg.ClusterRatio = clusterRatioMin + e.src.Float64()*clusterRatioSpan

	var onsetClusters, codaClusters []picker.Entry[string]
	if e.cfg.InitialClusters {
		onsetClusters = e.clusterCandidates(onsetClusterPatterns)
		if len(onsetClusters) == 0 {
			e.cfg.InitialClusters = false
		}
	}
	if e.cfg.FinalClusters {
		codaClusters = e.clusterCandidates(codaClusterPatterns)
		if len(codaClusters) == 0 {
			e.cfg.FinalClusters = false
		}
	}

	e.cfg.OnsetAbsence = onsetAbsenceMin + e.src.Float64()*onsetAbsenceSpan
	e.onset = e.positionSampler(onsetClusters, e.cfg.OnsetAbsence)

	if !e.cfg.ClosedSyllables {
		e.cfg.CodaAbsence = 1
		e.coda = func() string { return "" }

		return
	}
	e.cfg.CodaAbsence = codaAbsenceMin + e.src.Float64()*codaAbsenceSpan
	e.coda = e.positionSampler(codaClusters, e.cfg.CodaAbsence)
}

// clusterCandidates builds weighted cluster strings as cartesian products
// over the pattern's manner classes; each candidate's weight is drawn
// fresh. Patterns touching an empty manner class yield nothing.
func (e *Engine) clusterCandidates(patterns [][]manner) []picker.Entry[string] {
	var entries []picker.Entry[string]
	for _, pattern := range patterns {
		combos := []string{""}
		for _, m := range pattern {
			forms := e.byManner[m]
			if len(forms) == 0 {
				combos = nil

				break
			}
			next := make([]string, 0, len(combos)*len(forms))
			for _, prefix := range combos {
				for _, f := range forms {
					next = append(next, prefix+f)
				}
			}
			combos = next
		}
		for _, cluster := range combos {
			entries = append(entries, picker.Entry[string]{
				Value:  cluster,
				Weight: clusterWeightFloor + e.src.Float64(),
			})
		}
	}

	return entries
}

// positionSampler builds the three-way {absent, simple, cluster} sampler
// for one syllable position. The cluster option carries ClusterRatio
// times the simple option's mass, and the absence weight keeps the three
// a coherent distribution.
func (e *Engine) positionSampler(clusters []picker.Entry[string], absence float64) func() string {
	flat := e.flatConsonants()
	simpleEntries := make([]picker.Entry[string], len(flat))
	for i, c := range flat {
		simpleEntries[i] = picker.Entry[string]{Value: c, Weight: formWeightFloor + e.src.Float64()}
	}
	simple := picker.MustNew(e.src, simpleEntries)

	present := 1 - absence
	options := []picker.Entry[func() string]{
		{Value: func() string { return "" }, Weight: absence},
	}
	if len(clusters) > 0 {
		cluster := picker.MustNew(e.src, clusters)
		options = append(options,
			picker.Entry[func() string]{Value: simple.Pick, Weight: present / (1 + e.cfg.ClusterRatio)},
			picker.Entry[func() string]{Value: cluster.Pick, Weight: present * e.cfg.ClusterRatio / (1 + e.cfg.ClusterRatio)},
		)
	} else {
		options = append(options, picker.Entry[func() string]{Value: simple.Pick, Weight: present})
	}
	outer := picker.MustNew(e.src, options)

	return func() string { return outer.Pick()() }
}

// countSyllables records the distinct-syllable capacity of the frozen
// configuration: onset options × nucleus options × coda options.
func (e *Engine) countSyllables() {
	flat := len(e.cfg.Consonants)

	onsetOptions := 1 + flat // absent + simple
	if e.cfg.InitialClusters {
		onsetOptions += clusterCount(e.byManner, onsetClusterPatterns)
	}

	nucleusOptions := len(e.cfg.Nuclei)
	if e.cfg.LongVowelChance > 0 {
		for _, n := range e.cfg.Nuclei {
			if len(n) == 1 {
				nucleusOptions++ // the doubled form is a distinct nucleus
			}
		}
	}

	codaOptions := 1
	if e.cfg.ClosedSyllables {
		codaOptions += flat
		if e.cfg.FinalClusters {
			codaOptions += clusterCount(e.byManner, codaClusterPatterns)
		}
	}

	e.cfg.SyllableCount = onsetOptions * nucleusOptions * codaOptions
}

// flatConsonants flattens the by-manner groups in declared manner order.
func (e *Engine) flatConsonants() []string {
	var flat []string
	for _, m := range sampledManners {
		flat = append(flat, e.byManner[m]...)
	}

	return flat
}

// clusterCount sizes the cartesian products without materializing them.
func clusterCount(byManner [mannerCount][]string, patterns [][]manner) int {
	total := 0
	for _, pattern := range patterns {
		n := 1
		for _, m := range pattern {
			n *= len(byManner[m])
		}
		total += n
	}

	return total
}

// dedup preserves first-seen order while dropping repeats and empties.
func dedup(forms []string) []string {
	seen := make(map[string]struct{}, len(forms))
	out := make([]string, 0, len(forms))
	for _, f := range forms {
		if f == "" {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}

	return out
}

// containsAny reports whether forms contains any of the probes.
func containsAny(forms, probes []string) bool {
	set := make(map[string]struct{}, len(forms))
	for _, f := range forms {
		set[f] = struct{}{}
	}
	for _, p := range probes {
		if _, ok := set[p]; ok {
			return true
		}
	}

	return false
}
