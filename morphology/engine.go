// Package: voynich/morphology
//
// engine.go — morphological typology resolution, stem generation, and
// the public word generators.
//
// Contract:
//   - New resolves unset Params by drawing in a fixed order: analytic →
//     inflection coins → derivation → stem complexity → affix style →
//     derivational bank → inflectors → pronouns → adverbs → particles.
//   - After New the typology and every closed class are frozen; word
//     generators only consume the stream to instantiate forms.
//   - A supplied stem passes through Noun/Verb verbatim: affixes attach
//     around it, never inside it.
//   - Closed-class fills and mints are capped at mintAttempts draws and
//     then degrade silently (under-filled or possibly-colliding forms).

package morphology

import (
	"fmt"
	"strings"

	"github.com/dfhoughton/voynich-ipsum/phonology"
	"github.com/dfhoughton/voynich-ipsum/picker"
	"github.com/dfhoughton/voynich-ipsum/rng"
)

// Typology draw probabilities and class-size domains.
const (
	analyticChance       = 0.3
	nounInflectionChance = 0.8
	verbInflectionChance = 0.9
	derivationChance     = 0.6
	frequentAdverbChance = 0.6
	derivBankMin         = 3
	derivBankMax         = 6
	pronounFormsMin      = 4
	pronounFormsMax      = 8
	adverbFormsMin       = 3
	adverbFormsMax       = 6
	particleFormsMin     = 4
	particleFormsMax     = 8
	// mintAttempts caps every closed-class fill; exhaustion degrades
	// silently rather than looping on a spent phoneme space.
	mintAttempts = 1000
	// briefSamples syllables are drawn and the shortest kept, biasing
	// closed-class and affix material toward brevity.
	briefSamples = 4
	// Freshly drawn form weights, and the blank form's mean multiple.
	formWeightFloor   = 0.5
	formWeightSpan    = 1.0
	blankWeightFactor = 2.0
	// Cramped syllable spaces get padded stem lengths.
	tightSyllableSpace = 8
	smallSyllableSpace = 30
)

// tierTable weights the stem-complexity tiers for languages that leave
// the tier unset.
var tierTable = []picker.Entry[StemComplexity]{
	{Value: StemSimple, Weight: 3},
	{Value: StemModerate, Weight: 5},
	{Value: StemComplex, Weight: 2},
}

// stemLengthTables maps each tier to its syllable-count distribution.
var stemLengthTables = map[StemComplexity][]picker.Entry[int]{
	StemSimple:   {{Value: 1, Weight: 4}, {Value: 2, Weight: 2}},
	StemModerate: {{Value: 1, Weight: 2}, {Value: 2, Weight: 4}, {Value: 3, Weight: 1}},
	StemComplex:  {{Value: 2, Weight: 3}, {Value: 3, Weight: 3}, {Value: 4, Weight: 1}},
}

// styleTable weights affix placement (suffixing dominates cross-
// linguistically).
var styleTable = []picker.Entry[AffixStyle]{
	{Value: AffixSuffixing, Weight: 6},
	{Value: AffixPrefixing, Weight: 2},
	{Value: AffixBoth, Weight: 2},
}

// derivCountTable weights how many derivational affixes wrap a stem.
var derivCountTable = []picker.Entry[int]{
	{Value: 0, Weight: 8},
	{Value: 1, Weight: 3},
	{Value: 2, Weight: 1},
	{Value: 3, Weight: 1},
}

// Engine owns one language's frozen word-formation machinery.
type Engine struct {
	src  rng.Source
	phon *phonology.Engine
	reg  *Registry
	cfg  Config

	brief      bool // shortest-of-N syllables for closed-class material
	stemPad    int  // extra syllables on cramped phonologies
	stemLen    *picker.Picker[int]
	derivBank  *picker.Picker[string]
	derivCount *picker.Picker[int]
	nounInf    inflector
	verbInf    inflector
	pronoun    func() string
	freqAdverb func() string
	particle   func() string
}

// New resolves a morphological typology over phon, registering every
// minted closed-class form in reg.
func New(src rng.Source, phon *phonology.Engine, reg *Registry, params Params) (*Engine, error) {
	if phon == nil {
		return nil, fmt.Errorf("morphology.New: %w", ErrNilPhonology)
	}
	if reg == nil {
		return nil, fmt.Errorf("morphology.New: %w", ErrNilRegistry)
	}

	e := &Engine{src: src, phon: phon, reg: reg}
	phonCfg := phon.Config()
	e.brief = phonCfg.ClosedSyllables || phonCfg.InitialClusters

	if err := e.chooseTypology(params); err != nil {
		return nil, err
	}
	if err := e.buildClasses(); err != nil {
		return nil, err
	}

	return e, nil
}

// chooseTypology resolves the boolean and enum typology in fixed order.
func (e *Engine) chooseTypology(params Params) error {
	e.cfg.Analytic = rng.Maybe(e.src, analyticChance)
	if params.Analytic != nil {
		e.cfg.Analytic = *params.Analytic
	}

	if !e.cfg.Analytic {
		e.cfg.NounInflection = rng.Maybe(e.src, nounInflectionChance)
		e.cfg.VerbInflection = rng.Maybe(e.src, verbInflectionChance)
		if params.NounInflection != nil {
			e.cfg.NounInflection = *params.NounInflection
		}
		if params.VerbInflection != nil {
			e.cfg.VerbInflection = *params.VerbInflection
		}
	}

	e.cfg.Derivation = rng.Maybe(e.src, derivationChance)
	if params.Derivation != nil {
		e.cfg.Derivation = *params.Derivation
	}

	e.cfg.Complexity = params.Complexity
	if e.cfg.Complexity == StemUnset {
		e.cfg.Complexity = picker.MustNew(e.src, tierTable).Pick()
	}
	lengths, ok := stemLengthTables[e.cfg.Complexity]
	if !ok {
		return fmt.Errorf("morphology.New: tier %d: %w", uint8(e.cfg.Complexity), ErrUnknownComplexity)
	}
	e.stemLen = picker.MustNew(e.src, lengths)

	// A cramped syllable space cannot keep short stems distinct; pad.
	switch space := e.phon.SyllableCount(); {
	case space < tightSyllableSpace:
		e.stemPad = 2
	case space < smallSyllableSpace:
		e.stemPad = 1
	}

	e.cfg.AffixStyle = params.AffixStyle
	if e.cfg.AffixStyle == AffixUnset {
		e.cfg.AffixStyle = picker.MustNew(e.src, styleTable).Pick()
	}
	if _, ok = affixStyleNames[e.cfg.AffixStyle]; !ok {
		return fmt.Errorf("morphology.New: style %d: %w", uint8(e.cfg.AffixStyle), ErrUnknownAffixStyle)
	}

	return nil
}

// buildClasses pre-generates the derivational bank, the inflectors, and
// the built-in closed classes, in fixed order.
func (e *Engine) buildClasses() error {
	if e.cfg.Derivation {
		forms := e.mintDistinct(rng.IntBetween(e.src, derivBankMin, derivBankMax))
		if len(forms) == 0 {
			forms = []string{e.briefSyllable()} // spent space: best effort
		}
		entries := make([]picker.Entry[string], len(forms))
		for i, f := range forms {
			entries[i] = picker.Entry[string]{Value: f, Weight: formWeightFloor + e.src.Float64()*formWeightSpan}
		}
		e.derivBank = picker.MustNew(e.src, entries)
		e.derivCount = picker.MustNew(e.src, derivCountTable)
	}

	var err error
	if e.cfg.NounInflection {
		if e.nounInf, err = e.buildInflector(nominalSlotsMin, nominalSlotsMax); err != nil {
			return err
		}
	}
	if e.cfg.VerbInflection {
		if e.verbInf, err = e.buildInflector(verbalSlotsMin, verbalSlotsMax); err != nil {
			return err
		}
	}

	if e.pronoun, err = e.ClosedClass(rng.IntBetween(e.src, pronounFormsMin, pronounFormsMax), false); err != nil {
		return err
	}
	if e.freqAdverb, err = e.ClosedClass(rng.IntBetween(e.src, adverbFormsMin, adverbFormsMax), false); err != nil {
		return err
	}
	if e.particle, err = e.ClosedClass(rng.IntBetween(e.src, particleFormsMin, particleFormsMax), false); err != nil {
		return err
	}

	return nil
}

// ClosedClass mints up to n distinct registered forms and wraps them in
// a freshly weighted sampler. With includeBlank the empty form joins at
// roughly double an individual form's average weight. Under-fill on a
// spent phoneme space is silent; callers get a smaller class.
func (e *Engine) ClosedClass(n int, includeBlank bool) (func() string, error) {
	if n < 1 {
		return nil, fmt.Errorf("morphology.ClosedClass: n=%d: %w", n, ErrBadCount)
	}

	forms := e.mintDistinct(n)
	if len(forms) == 0 {
		forms = []string{e.briefSyllable()}
	}

	entries := make([]picker.Entry[string], 0, len(forms)+1)
	total := 0.0
	for _, f := range forms {
		w := formWeightFloor + e.src.Float64()*formWeightSpan
		total += w
		entries = append(entries, picker.Entry[string]{Value: f, Weight: w})
	}
	if includeBlank {
		entries = append(entries, picker.Entry[string]{
			Value:  "",
			Weight: blankWeightFactor * total / float64(len(forms)),
		})
	}

	return picker.MustNew(e.src, entries).Pick, nil
}

// NounStem returns a fresh uninflected noun stem.
func (e *Engine) NounStem() string {
	return e.derive(e.stem())
}

// VerbStem returns a fresh uninflected verb stem (also the bare form
// auxiliaries pair with).
func (e *Engine) VerbStem() string {
	return e.derive(e.stem())
}

// Noun renders an inflected noun over stem; an empty stem means "mint a
// fresh one". The stem survives verbatim inside the result.
func (e *Engine) Noun(stem string) string {
	if stem == "" {
		stem = e.NounStem()
	}
	if e.cfg.Analytic || !e.cfg.NounInflection {
		return stem
	}

	return e.nounInf.apply(stem)
}

// Verb renders an inflected verb over stem; an empty stem means "mint a
// fresh one".
func (e *Engine) Verb(stem string) string {
	if stem == "" {
		stem = e.VerbStem()
	}
	if e.cfg.Analytic || !e.cfg.VerbInflection {
		return stem
	}

	return e.verbInf.apply(stem)
}

// Pronoun samples a closed-class pronoun, nominally inflected.
func (e *Engine) Pronoun() string {
	stem := e.pronoun()
	if e.cfg.Analytic || !e.cfg.NounInflection {
		return stem
	}

	return e.nounInf.apply(stem)
}

// Adverb usually samples the frequent closed subset, occasionally
// minting an open-class adverbial stem.
func (e *Engine) Adverb() string {
	if rng.Maybe(e.src, frequentAdverbChance) {
		return e.freqAdverb()
	}

	return e.derive(e.stem())
}

// Particle samples the language's default discourse particle set.
func (e *Engine) Particle() string {
	return e.particle()
}

// Config returns the resolved typology by value (mutation-safe).
func (e *Engine) Config() Config {
	return e.cfg
}

// stem concatenates a tier-drawn number of syllables (plus the cramped-
// space pad).
func (e *Engine) stem() string {
	n := e.stemLen.Pick() + e.stemPad
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(e.phon.Syllable())
	}

	return b.String()
}

// derive wraps stem with 0–3 derivational affixes from the bank, placed
// per the affix style.
func (e *Engine) derive(stem string) string {
	if !e.cfg.Derivation {
		return stem
	}
	n := e.derivCount.Pick()
	for i := 0; i < n; i++ {
		affix := e.derivBank.Pick()
		if e.prefixSide() {
			stem = affix + stem
		} else {
			stem += affix
		}
	}

	return stem
}

// briefSyllable draws closed-class material: the shortest of briefSamples
// syllables when the phonology is permissive enough to make length vary,
// a single draw otherwise.
func (e *Engine) briefSyllable() string {
	best := e.phon.Syllable()
	if !e.brief {
		return best
	}
	for i := 1; i < briefSamples; i++ {
		if s := e.phon.Syllable(); len(s) < len(best) {
			best = s
		}
	}

	return best
}

// mintDistinct collects up to n distinct registered forms within the
// attempt budget; a short result is the documented soft failure.
func (e *Engine) mintDistinct(n int) []string {
	out := make([]string, 0, n)
	for attempts := 0; attempts < mintAttempts && len(out) < n; attempts++ {
		if f := e.briefSyllable(); e.reg.Reserve(f) {
			out = append(out, f)
		}
	}

	return out
}
