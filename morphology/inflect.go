// Package: voynich/morphology
//
// inflect.go — inflectors: fixed sequences of affix slots around a stem.
//
// Contract:
//   - An inflector is built once per open word class; its slot count,
//     each slot's closed form set, and each slot's side of the stem are
//     all fixed at construction and never change between calls.
//   - Applying an inflector concatenates prefix-slot outputs, the stem,
//     then suffix-slot outputs; each slot consumes one draw per call.
//   - Every slot includes the blank form, so inflection is frequently
//     invisible — as in real text, most words are not maximally marked.

package morphology

import (
	"strings"

	"github.com/dfhoughton/voynich-ipsum/rng"
)

// Slot layout domains.
const (
	nominalSlotsMin = 1
	nominalSlotsMax = 2
	verbalSlotsMin  = 1
	verbalSlotsMax  = 4
	slotFormsMin    = 2
	slotFormsMax    = 6
	bothSideChance  = 0.5 // prefix side, when the style allows both sides
)

// inflector applies a fixed affix-slot layout to a stem. The zero value
// is the identity inflector (analytic languages, disabled inflection).
type inflector struct {
	pre  []func() string
	post []func() string
}

// apply renders one inflected word-form around stem.
func (inf inflector) apply(stem string) string {
	if len(inf.pre) == 0 && len(inf.post) == 0 {
		return stem
	}

	var b strings.Builder
	for _, slot := range inf.pre {
		b.WriteString(slot())
	}
	b.WriteString(stem)
	for _, slot := range inf.post {
		b.WriteString(slot())
	}

	return b.String()
}

// buildInflector pre-generates an inflector with a slot count in
// [minSlots,maxSlots], each slot a blank-including closed class placed
// per the language's affix style.
func (e *Engine) buildInflector(minSlots, maxSlots int) (inflector, error) {
	var inf inflector
	slots := rng.IntBetween(e.src, minSlots, maxSlots)
	for i := 0; i < slots; i++ {
		slot, err := e.ClosedClass(rng.IntBetween(e.src, slotFormsMin, slotFormsMax), true)
		if err != nil {
			return inflector{}, err
		}
		if e.prefixSide() {
			inf.pre = append(inf.pre, slot)
		} else {
			inf.post = append(inf.post, slot)
		}
	}

	return inf, nil
}

// prefixSide decides the stem side for one affix, per the affix style.
// Only the "both" style consumes a draw.
func (e *Engine) prefixSide() bool {
	switch e.cfg.AffixStyle {
	case AffixPrefixing:
		return true
	case AffixBoth:
		return rng.Maybe(e.src, bothSideChance)
	default: // AffixSuffixing
		return false
	}
}
