// Package: voynich/morphology
//
// config.go — input Params, the resolved Config snapshot, and the
// StemComplexity / AffixStyle enums with YAML string forms.
//
// Contract:
//   - Params fields are optional: nil pointers / unset enums mean "draw".
//   - Config is fully resolved after New and handed out by value; the
//     snapshot is safe to mutate and to archive.

package morphology

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// StemComplexity is the stem length tier. Zero value means "unset".
type StemComplexity uint8

const (
	StemUnset StemComplexity = iota
	StemSimple
	StemModerate
	StemComplex
)

var stemComplexityNames = map[StemComplexity]string{
	StemUnset:    "unset",
	StemSimple:   "simple",
	StemModerate: "moderate",
	StemComplex:  "complex",
}

func (s StemComplexity) String() string {
	if name, ok := stemComplexityNames[s]; ok {
		return name
	}

	return fmt.Sprintf("stem_complexity(%d)", uint8(s))
}

// ParseStemComplexity inverts String; unknown names wrap ErrUnknownComplexity.
func ParseStemComplexity(name string) (StemComplexity, error) {
	for s, n := range stemComplexityNames {
		if n == name {
			return s, nil
		}
	}

	return StemUnset, fmt.Errorf("morphology: %q: %w", name, ErrUnknownComplexity)
}

// MarshalYAML encodes the tier as its canonical string.
func (s StemComplexity) MarshalYAML() (interface{}, error) {
	if _, ok := stemComplexityNames[s]; !ok {
		return nil, fmt.Errorf("morphology: %d: %w", uint8(s), ErrUnknownComplexity)
	}

	return s.String(), nil
}

// UnmarshalYAML decodes the canonical string form.
func (s *StemComplexity) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseStemComplexity(name)
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}

// AffixStyle fixes which side(s) of the stem affixes attach to.
type AffixStyle uint8

const (
	AffixUnset AffixStyle = iota
	AffixSuffixing
	AffixPrefixing
	AffixBoth
)

var affixStyleNames = map[AffixStyle]string{
	AffixUnset:     "unset",
	AffixSuffixing: "suffixing",
	AffixPrefixing: "prefixing",
	AffixBoth:      "both",
}

func (a AffixStyle) String() string {
	if name, ok := affixStyleNames[a]; ok {
		return name
	}

	return fmt.Sprintf("affix_style(%d)", uint8(a))
}

// ParseAffixStyle inverts String; unknown names wrap ErrUnknownAffixStyle.
func ParseAffixStyle(name string) (AffixStyle, error) {
	for a, n := range affixStyleNames {
		if n == name {
			return a, nil
		}
	}

	return AffixUnset, fmt.Errorf("morphology: %q: %w", name, ErrUnknownAffixStyle)
}

// MarshalYAML encodes the style as its canonical string.
func (a AffixStyle) MarshalYAML() (interface{}, error) {
	if _, ok := affixStyleNames[a]; !ok {
		return nil, fmt.Errorf("morphology: %d: %w", uint8(a), ErrUnknownAffixStyle)
	}

	return a.String(), nil
}

// UnmarshalYAML decodes the canonical string form.
func (a *AffixStyle) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseAffixStyle(name)
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}

// Params carries the caller's optional morphological choices; anything
// left unset is drawn during New.
type Params struct {
	// Analytic disables all inflection when true (words equal stems).
	Analytic *bool
	// NounInflection / VerbInflection only apply to non-analytic
	// languages; nil means "flip the language's coin".
	NounInflection *bool
	VerbInflection *bool
	// Derivation controls the derivational affix bank.
	Derivation *bool
	// Complexity fixes the stem length tier.
	Complexity StemComplexity
	// AffixStyle fixes affix placement.
	AffixStyle AffixStyle
}

// Config is the fully-resolved morphological typology.
type Config struct {
	Analytic       bool           `yaml:"analytic"`
	NounInflection bool           `yaml:"noun_inflection"`
	VerbInflection bool           `yaml:"verb_inflection"`
	Derivation     bool           `yaml:"derivation"`
	Complexity     StemComplexity `yaml:"stem_complexity"`
	AffixStyle     AffixStyle     `yaml:"affix_style"`
}

// Params converts a resolved Config back into construction Params, for
// replaying a language's morphological typology under a fresh stream.
func (c Config) Params() Params {
	analytic, noun, verb, deriv := c.Analytic, c.NounInflection, c.VerbInflection, c.Derivation

	return Params{
		Analytic:       &analytic,
		NounInflection: &noun,
		VerbInflection: &verb,
		Derivation:     &deriv,
		Complexity:     c.Complexity,
		AffixStyle:     c.AffixStyle,
	}
}
