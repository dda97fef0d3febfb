// Package: voynich/phonology
//
// phonemes.go — static phoneme reference tables (Latin orthography).
//
// These tables are immutable after module load and shared by every
// language instance; all per-language variation comes from which cells
// are selected, never from mutating the tables.
//
// Ranking convention: within each (manner, place, voicing) cell the
// alternatives are ordered by cross-linguistic frequency; rank i joins a
// language's inventory with probability 1/2^i (rank 0 always joins).

package phonology

import "github.com/dfhoughton/voynich-ipsum/picker"

// manner is the articulation manner axis of the consonant table.
type manner uint8

const (
	mStop manner = iota
	mFricative
	mAffricate
	mNasal
	mApproximant
	mannerCount
)

// sampledManners fixes the iteration order for inventory assembly.
var sampledManners = []manner{mStop, mFricative, mAffricate, mNasal, mApproximant}

// place is the articulation place axis of the consonant table.
type place uint8

const (
	pLabial place = iota
	pAlveolar
	pPalatal
	pVelar
	pGlottal
)

// voicing is the mechanism axis; sonorants (nasals, approximants) are
// listed under vVoiced and ignore the language's voicing selection.
type voicing uint8

const (
	vVoiceless voicing = iota
	vVoiced
)

// phonemeTable cross-references manner × place × voicing to ranked
// orthographic alternatives.
var phonemeTable = map[manner]map[place]map[voicing][]string{
	mStop: {
		pLabial:   {vVoiceless: {"p"}, vVoiced: {"b"}},
		pAlveolar: {vVoiceless: {"t"}, vVoiced: {"d"}},
		pPalatal:  {vVoiceless: {"ky"}, vVoiced: {"gy"}},
		pVelar:    {vVoiceless: {"k", "q"}, vVoiced: {"g"}},
	},
	mFricative: {
		pLabial:   {vVoiceless: {"f"}, vVoiced: {"v"}},
		pAlveolar: {vVoiceless: {"s"}, vVoiced: {"z"}},
		pPalatal:  {vVoiceless: {"sh"}, vVoiced: {"zh"}},
		pVelar:    {vVoiceless: {"kh", "x"}, vVoiced: {"gh"}},
		pGlottal:  {vVoiceless: {"h"}},
	},
	mAffricate: {
		pLabial:   {vVoiceless: {"pf"}},
		pAlveolar: {vVoiceless: {"ts"}, vVoiced: {"dz"}},
		pPalatal:  {vVoiceless: {"ch"}, vVoiced: {"j"}},
	},
	mNasal: {
		pLabial:   {vVoiced: {"m"}},
		pAlveolar: {vVoiced: {"n"}},
		pPalatal:  {vVoiced: {"ny"}},
		pVelar:    {vVoiced: {"ng"}},
	},
	mApproximant: {
		pLabial:   {vVoiced: {"w"}},
		pAlveolar: {vVoiced: {"l", "r"}},
		pPalatal:  {vVoiced: {"y"}},
	},
}

// mannerIndex maps every orthographic form back to its manner, for
// classifying caller-supplied consonant inventories. Unknown forms are
// classed as stops (the least cluster-friendly default).
var mannerIndex = buildMannerIndex()

func buildMannerIndex() map[string]manner {
	idx := make(map[string]manner)
	for _, m := range sampledManners {
		for _, byVoicing := range phonemeTable[m] {
			for _, ranked := range byVoicing {
				for _, form := range ranked {
					idx[form] = m
				}
			}
		}
	}

	return idx
}

// placeTable weights places of articulation for inventory selection
// (coronal and peripheral places dominate cross-linguistically).
var placeTable = []picker.Entry[place]{
	{Value: pAlveolar, Weight: 10},
	{Value: pLabial, Weight: 8},
	{Value: pVelar, Weight: 8},
	{Value: pPalatal, Weight: 4},
	{Value: pGlottal, Weight: 3},
}

// Nucleus candidate sets per complexity tier.
var (
	minimalNuclei = []string{"a", "i", "u"}
	simpleNuclei  = []string{"a", "e", "i", "o", "u"}

	// canonicalDiphthongs extend the five-vowel core for the canonical tier.
	canonicalDiphthongs = []picker.Entry[string]{
		{Value: "ai", Weight: 4}, {Value: "au", Weight: 3},
		{Value: "ei", Weight: 3}, {Value: "oi", Weight: 3},
		{Value: "ou", Weight: 2}, {Value: "ia", Weight: 2},
		{Value: "ua", Weight: 2}, {Value: "ie", Weight: 2},
	}

	// complexNuclei is the large candidate pool for the complex tier
	// (6–17 distinct picks); monophthongs rank high, marginal nuclei low.
	complexNuclei = []picker.Entry[string]{
		{Value: "a", Weight: 10}, {Value: "e", Weight: 9},
		{Value: "i", Weight: 9}, {Value: "o", Weight: 8},
		{Value: "u", Weight: 8}, {Value: "ai", Weight: 4},
		{Value: "au", Weight: 3}, {Value: "ei", Weight: 3},
		{Value: "oi", Weight: 3}, {Value: "ou", Weight: 3},
		{Value: "ea", Weight: 2}, {Value: "ia", Weight: 2},
		{Value: "ie", Weight: 2}, {Value: "ua", Weight: 2},
		{Value: "ui", Weight: 2}, {Value: "y", Weight: 2},
		{Value: "ae", Weight: 1}, {Value: "ao", Weight: 1},
		{Value: "ee", Weight: 1}, {Value: "eo", Weight: 1},
		{Value: "iu", Weight: 1}, {Value: "oe", Weight: 1},
		{Value: "oo", Weight: 1}, {Value: "uo", Weight: 1},
	}

	// syllabicNuclei join the nucleus pool in the rare languages that
	// allow consonant-like syllable peaks.
	syllabicNuclei = []string{"l", "r", "m", "n"}
)

// Cluster patterns: cartesian products over manner classes generate the
// candidate cluster strings; a pattern whose classes are empty in a given
// language simply yields nothing.
var (
	onsetClusterPatterns = [][]manner{
		{mFricative, mStop},               // st, sk, ...
		{mStop, mApproximant},             // pl, tr, ...
		{mFricative, mApproximant},        // sl, sw, ...
		{mFricative, mStop, mApproximant}, // str, spl, ...
	}
	codaClusterPatterns = [][]manner{
		{mNasal, mStop},            // nt, mp, ...
		{mApproximant, mStop},      // rt, lk, ...
		{mApproximant, mFricative}, // ls, rs, ...
	}
)
