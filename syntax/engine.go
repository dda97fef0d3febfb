// Package: voynich/syntax
//
// engine.go — syntactic typology resolution and phrase generators.
//
// Contract:
//   - New resolves unset Params by drawing in a fixed order: word order →
//     subject requirement → adpositions → modifier direction →
//     auxiliaries → modifier chance → assertion particle → question
//     particle → relative particle → adposition class → auxiliary class.
//   - The clause arrangement function is selected once from a lookup
//     table keyed by the word-order enum; calls never re-branch on it.
//   - Adposition position correlates with word order: verb-initial
//     languages prefer prepositions, verb-final languages postpositions.

package syntax

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dfhoughton/voynich-ipsum/morphology"
	"github.com/dfhoughton/voynich-ipsum/picker"
	"github.com/dfhoughton/voynich-ipsum/rng"
)

// Typology draw probabilities and class-size domains.
const (
	subjectRequiredChance = 0.7
	modifierFirstChance   = 0.5
	auxAnalyticChance     = 0.7 // auxiliaries when the language is analytic
	auxSyntheticChance    = 0.25
	auxUseChance          = 0.5 // per verb phrase, when auxiliaries exist
	advBeforeChance       = 0.5 // per adverbial: precede or follow the verb
	modifierChanceMin     = 0.05
	modifierChanceSpan    = 0.15 // keeps the continuation chance below 0.2
	// Preposition chance by verb position.
	prepVerbInitialChance = 0.85
	prepSVOChance         = 0.7
	prepFreeChance        = 0.5
	prepVerbFinalChance   = 0.2
	// Particle class sizes.
	assertFormsMin     = 1
	assertFormsMax     = 3
	questionFormsMin   = 1
	questionFormsMax   = 2
	adpositionFormsMin = 2
	adpositionFormsMax = 4
	auxFormsMin        = 1
	auxFormsMax        = 3
	// maxModifierDepth bounds noun-phrase recursion. Termination is
	// already probabilistic (continuation chance < 0.2); the bound only
	// caps worst-case output size for testability.
	maxModifierDepth = 8
)

// orderTable weights basic word orders by cross-linguistic frequency
// (SOV most common, OVS/OSV rarest).
var orderTable = []picker.Entry[WordOrder]{
	{Value: OrderSOV, Weight: 41},
	{Value: OrderSVO, Weight: 35},
	{Value: OrderVSO, Weight: 9},
	{Value: OrderVOS, Weight: 3},
	{Value: OrderOVS, Weight: 1},
	{Value: OrderOSV, Weight: 1},
	{Value: OrderFree, Weight: 10},
}

// Placement tables for the two sentence particles.
var (
	assertPlacementTable = []picker.Entry[ParticlePlacement]{
		{Value: PlacementNone, Weight: 5},
		{Value: PlacementInitial, Weight: 1},
		{Value: PlacementFinal, Weight: 2},
	}
	questionPlacementTable = []picker.Entry[ParticlePlacement]{
		{Value: PlacementNone, Weight: 3},
		{Value: PlacementInitial, Weight: 2},
		{Value: PlacementFinal, Weight: 3},
	}
)

// argCountTable weights clause argument counts (toward fewer), and
// advCountTable adverbial counts (toward zero).
var (
	argCountTable = []picker.Entry[int]{
		{Value: 0, Weight: 2},
		{Value: 1, Weight: 5},
		{Value: 2, Weight: 3},
	}
	advCountTable = []picker.Entry[int]{
		{Value: 0, Weight: 6},
		{Value: 1, Weight: 2},
		{Value: 2, Weight: 1},
	}
)

// modifierKind tags the noun-phrase modifier variants.
type modifierKind uint8

const (
	modBareNoun modifierKind = iota
	modAdpositionPhrase
	modNestedPhrase
	modRelativeClause
)

// modKindTable weights the modifier variants (bare nouns dominate).
var modKindTable = []picker.Entry[modifierKind]{
	{Value: modBareNoun, Weight: 5},
	{Value: modAdpositionPhrase, Weight: 3},
	{Value: modNestedPhrase, Weight: 2},
	{Value: modRelativeClause, Weight: 2},
}

// Terminal punctuation per sentence type.
const (
	assertionMark   = "."
	questionMark    = "?"
	exclamationMark = "!"
)

// Engine owns one language's frozen clause typology.
type Engine struct {
	src   rng.Source
	morph *morphology.Engine
	cfg   Config

	arrange     arrangeFn
	argCount    *picker.Picker[int]
	advCount    *picker.Picker[int]
	modKind     *picker.Picker[modifierKind]
	adposition  func() string
	relParticle func() string
	assertPart  func() string // nil when placement is none
	questPart   func() string // nil when placement is none
	auxiliary   func() string // nil without auxiliaries
}

// New resolves a syntactic typology over morph.
func New(src rng.Source, morph *morphology.Engine, params Params) (*Engine, error) {
	if morph == nil {
		return nil, fmt.Errorf("syntax.New: %w", ErrNilMorphology)
	}

	e := &Engine{src: src, morph: morph}
	if err := e.chooseTypology(params); err != nil {
		return nil, err
	}
	if err := e.buildClasses(params); err != nil {
		return nil, err
	}

	e.argCount = picker.MustNew(e.src, argCountTable)
	e.advCount = picker.MustNew(e.src, advCountTable)
	e.modKind = picker.MustNew(e.src, modKindTable)

	return e, nil
}

// chooseTypology resolves the order-level typology in fixed order.
func (e *Engine) chooseTypology(params Params) error {
	e.cfg.Order = params.Order
	if e.cfg.Order == OrderUnset {
		e.cfg.Order = picker.MustNew(e.src, orderTable).Pick()
	}
	arrange, ok := arrangements[e.cfg.Order]
	if !ok {
		return fmt.Errorf("syntax.New: order %d: %w", uint8(e.cfg.Order), ErrUnknownOrder)
	}
	e.arrange = arrange

	e.cfg.SubjectRequired = rng.Maybe(e.src, subjectRequiredChance)
	if params.SubjectRequired != nil {
		e.cfg.SubjectRequired = *params.SubjectRequired
	}

	e.cfg.Prepositions = rng.Maybe(e.src, e.prepositionChance())
	if params.Prepositions != nil {
		e.cfg.Prepositions = *params.Prepositions
	}

	e.cfg.ModifierFirst = rng.Maybe(e.src, modifierFirstChance)
	if params.ModifierFirst != nil {
		e.cfg.ModifierFirst = *params.ModifierFirst
	}

	auxChance := auxSyntheticChance
	if e.morph.Config().Analytic {
		auxChance = auxAnalyticChance
	}
	e.cfg.Auxiliaries = rng.Maybe(e.src, auxChance)
	if params.Auxiliaries != nil {
		e.cfg.Auxiliaries = *params.Auxiliaries
	}

	e.cfg.ModifierChance = modifierChanceMin + e.src.Float64()*modifierChanceSpan

	return nil
}

// prepositionChance correlates adposition position with word order.
func (e *Engine) prepositionChance() float64 {
	switch e.cfg.Order {
	case OrderVSO, OrderVOS:
		return prepVerbInitialChance
	case OrderSVO, OrderOVS:
		return prepSVOChance
	case OrderFree:
		return prepFreeChance
	default: // verb-final: OrderSOV, OrderOSV
		return prepVerbFinalChance
	}
}

// buildClasses resolves particle placements and mints the particle
// classes, in fixed order.
func (e *Engine) buildClasses(params Params) error {
	var err error

	e.cfg.AssertionParticle, e.assertPart, err = e.particleClass(
		params.AssertionParticle, assertPlacementTable, assertFormsMin, assertFormsMax)
	if err != nil {
		return err
	}

	e.cfg.QuestionParticle, e.questPart, err = e.particleClass(
		params.QuestionParticle, questionPlacementTable, questionFormsMin, questionFormsMax)
	if err != nil {
		return err
	}

	if e.relParticle, err = e.morph.ClosedClass(1, false); err != nil {
		return err
	}
	count := rng.IntBetween(e.src, adpositionFormsMin, adpositionFormsMax)
	if e.adposition, err = e.morph.ClosedClass(count, false); err != nil {
		return err
	}
	if e.cfg.Auxiliaries {
		count = rng.IntBetween(e.src, auxFormsMin, auxFormsMax)
		if e.auxiliary, err = e.morph.ClosedClass(count, false); err != nil {
			return err
		}
	}

	return nil
}

// particleClass resolves one sentence particle's placement and, when
// present, mints its closed form class.
func (e *Engine) particleClass(
	supplied ParticlePlacement,
	table []picker.Entry[ParticlePlacement],
	minForms, maxForms int,
) (ParticlePlacement, func() string, error) {
	placement := supplied
	if placement == PlacementUnset {
		placement = picker.MustNew(e.src, table).Pick()
	}
	if _, ok := placementNames[placement]; !ok {
		return PlacementUnset, nil, fmt.Errorf("syntax.New: placement %d: %w", uint8(placement), ErrUnknownPlacement)
	}
	if placement == PlacementNone {
		return placement, nil, nil
	}

	sampler, err := e.morph.ClosedClass(rng.IntBetween(e.src, minForms, maxForms), false)
	if err != nil {
		return PlacementUnset, nil, err
	}

	return placement, sampler, nil
}

// Config returns the resolved typology by value (mutation-safe).
func (e *Engine) Config() Config {
	return e.cfg
}

// NounPhrase assembles a noun phrase; a non-empty topic surfaces
// verbatim as the head noun's stem.
func (e *Engine) NounPhrase(topic string) string {
	return e.nounPhrase(topic, 0)
}

// VerbPhrase assembles a verb phrase: adverbials around a head verb, or
// an auxiliary-plus-bare-stem pair.
func (e *Engine) VerbPhrase() string {
	return e.verbPhrase()
}

// AdpositionPhrase assembles an adposition phrase over a fresh noun
// phrase.
func (e *Engine) AdpositionPhrase() string {
	return e.adpositionPhrase(0)
}

// Assertion renders a declarative sentence about the given topics.
func (e *Engine) Assertion(topics ...string) string {
	return e.sentence(e.assertPart, e.cfg.AssertionParticle, assertionMark, topics)
}

// Question renders an interrogative sentence about the given topics.
func (e *Engine) Question(topics ...string) string {
	return e.sentence(e.questPart, e.cfg.QuestionParticle, questionMark, topics)
}

// Exclamation renders an exclamative sentence about the given topics;
// it shares the assertion particle.
func (e *Engine) Exclamation(topics ...string) string {
	return e.sentence(e.assertPart, e.cfg.AssertionParticle, exclamationMark, topics)
}

// sentence wraps one clause with its discourse particle and terminal
// mark, capitalizing the first letter.
func (e *Engine) sentence(particle func() string, placement ParticlePlacement, mark string, topics []string) string {
	body := e.clause(topics, 0)
	if particle != nil {
		switch placement {
		case PlacementInitial:
			body = particle() + " " + body
		case PlacementFinal:
			body = body + " " + particle()
		}
	}

	return capitalize(body) + mark
}

// capitalize upper-cases the first rune.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// nounPhrase renders a head noun plus a probabilistically terminated
// modifier chain (continuation chance fixed per language, capped by
// maxModifierDepth).
func (e *Engine) nounPhrase(topic string, depth int) string {
	parts := []string{e.morph.Noun(topic)}
	for depth < maxModifierDepth && rng.Maybe(e.src, e.cfg.ModifierChance) {
		mod := e.modifier(depth + 1)
		if e.cfg.ModifierFirst {
			parts = append([]string{mod}, parts...)
		} else {
			parts = append(parts, mod)
		}
	}

	return strings.Join(parts, " ")
}

// modifier draws one modifier variant.
func (e *Engine) modifier(depth int) string {
	switch e.modKind.Pick() {
	case modAdpositionPhrase:
		return e.adpositionPhrase(depth)
	case modNestedPhrase:
		return e.nounPhrase("", depth)
	case modRelativeClause:
		return e.relParticle() + " " + e.clause(nil, depth)
	default: // modBareNoun: a bare noun used adjectivally
		return e.morph.Noun("")
	}
}

// adpositionPhrase places an adposition before or after a nested noun
// phrase per the resolved typology.
func (e *Engine) adpositionPhrase(depth int) string {
	adp := e.adposition()
	np := e.nounPhrase("", depth)
	if e.cfg.Prepositions {
		return adp + " " + np
	}

	return np + " " + adp
}

// verbPhrase renders the verbal head (auxiliary + bare stem, or one
// inflected verb) with 0–2 adverbials placed by per-adverbial coins.
func (e *Engine) verbPhrase() string {
	var head string
	if e.auxiliary != nil && rng.Maybe(e.src, auxUseChance) {
		head = e.auxiliary() + " " + e.morph.VerbStem()
	} else {
		head = e.morph.Verb("")
	}
	n := e.advCount.Pick()
	for i := 0; i < n; i++ {
		adv := e.morph.Adverb()
		if rng.Maybe(e.src, advBeforeChance) {
			head = adv + " " + head
		} else {
			head += " " + adv
		}
	}

	return head
}
