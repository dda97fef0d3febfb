// Package: voynich/phonology
//
// config.go — input Params, the resolved Config snapshot, and the
// Complexity enum with its YAML string forms.
//
// Contract:
//   - Params fields are optional: nil pointers / nil slices / unset enums
//     mean "draw this from the stream". A non-nil empty slice is an
//     ErrEmptyInventory, not a request to draw.
//   - Config is fully resolved: every field holds a concrete value after
//     New returns, and the Engine hands out deep copies only — mutating a
//     returned Config never affects generation.

package phonology

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Complexity is the vowel-inventory tier. The zero value means "unset:
// draw a tier"; ComplexityCustom marks a caller-supplied inventory.
type Complexity uint8

const (
	ComplexityUnset Complexity = iota
	ComplexityMinimal
	ComplexitySimple
	ComplexityCanonical
	ComplexityComplex
	ComplexityCustom
)

// complexityNames is the canonical string form, used by String and YAML.
var complexityNames = map[Complexity]string{
	ComplexityUnset:     "unset",
	ComplexityMinimal:   "minimal",
	ComplexitySimple:    "simple",
	ComplexityCanonical: "canonical",
	ComplexityComplex:   "complex",
	ComplexityCustom:    "custom",
}

// String returns the canonical name; out-of-range values render a
// numeric placeholder and are rejected elsewhere (ParseComplexity, New).
func (c Complexity) String() string {
	if name, ok := complexityNames[c]; ok {
		return name
	}

	return fmt.Sprintf("complexity(%d)", uint8(c))
}

// ParseComplexity inverts String; unknown names wrap ErrUnknownComplexity.
func ParseComplexity(name string) (Complexity, error) {
	for c, n := range complexityNames {
		if n == name {
			return c, nil
		}
	}

	return ComplexityUnset, fmt.Errorf("phonology: %q: %w", name, ErrUnknownComplexity)
}

// MarshalYAML encodes the tier as its canonical string.
func (c Complexity) MarshalYAML() (interface{}, error) {
	if _, ok := complexityNames[c]; !ok {
		return nil, fmt.Errorf("phonology: %d: %w", uint8(c), ErrUnknownComplexity)
	}

	return c.String(), nil
}

// UnmarshalYAML decodes the canonical string form.
func (c *Complexity) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseComplexity(name)
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}

// Params carries the caller's optional phonological choices; anything
// left unset is drawn during New.
type Params struct {
	// Complexity fixes the vowel tier; ignored when Nuclei is supplied.
	Complexity Complexity
	// Nuclei supplies the nucleus inventory verbatim (deduplicated).
	Nuclei []string
	// Consonants supplies the consonant inventory verbatim; forms are
	// classified by manner via the static table, unknown forms as stops.
	Consonants []string
	// Syllable-shape overrides; nil means "flip the language's coin".
	ClosedSyllables *bool
	InitialClusters *bool
	FinalClusters   *bool
	// LongVowels forces doubled-nucleus support on or off.
	LongVowels *bool
}

// Config is the fully-resolved phonological typology. All slices are
// deep-copied on the way out; the snapshot is safe to mutate and to
// archive (YAML tags below).
type Config struct {
	Complexity      Complexity `yaml:"complexity"`
	Nuclei          []string   `yaml:"nuclei"`
	Consonants      []string   `yaml:"consonants"`
	SyllabicNuclei  bool       `yaml:"syllabic_nuclei"`
	LongVowelChance float64    `yaml:"long_vowel_chance"`
	ClosedSyllables bool       `yaml:"closed_syllables"`
	InitialClusters bool       `yaml:"initial_clusters"`
	FinalClusters   bool       `yaml:"final_clusters"`
	OnsetAbsence    float64    `yaml:"onset_absence"`
	CodaAbsence     float64    `yaml:"coda_absence"`
	ClusterRatio    float64    `yaml:"cluster_ratio"`
	SyllableCount   int        `yaml:"syllable_count"`
}

// clone returns a deep copy (fresh slice backing arrays).
func (c Config) clone() Config {
	out := c
	out.Nuclei = append([]string(nil), c.Nuclei...)
	out.Consonants = append([]string(nil), c.Consonants...)

	return out
}

// Params converts a resolved Config back into construction Params, for
// replaying a language's phonological typology under a fresh stream.
func (c Config) Params() Params {
	closed, initial, final := c.ClosedSyllables, c.InitialClusters, c.FinalClusters
	long := c.LongVowelChance > 0

	return Params{
		Complexity:      c.Complexity,
		Nuclei:          append([]string(nil), c.Nuclei...),
		Consonants:      append([]string(nil), c.Consonants...),
		ClosedSyllables: &closed,
		InitialClusters: &initial,
		FinalClusters:   &final,
		LongVowels:      &long,
	}
}
