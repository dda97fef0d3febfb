// Package: voynich/syntax
//
// config.go — input Params, the resolved Config snapshot, and the
// WordOrder / ParticlePlacement enums with YAML string forms.
//
// Contract:
//   - Params fields are optional: nil pointers / unset enums mean "draw".
//   - Config is fully resolved after New and handed out by value.

package syntax

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// WordOrder is the basic clause constituent order. The zero value means
// "unset: draw one"; OrderFree shuffles per clause.
type WordOrder uint8

const (
	OrderUnset WordOrder = iota
	OrderSOV
	OrderSVO
	OrderVSO
	OrderVOS
	OrderOVS
	OrderOSV
	OrderFree
)

var wordOrderNames = map[WordOrder]string{
	OrderUnset: "unset",
	OrderSOV:   "sov",
	OrderSVO:   "svo",
	OrderVSO:   "vso",
	OrderVOS:   "vos",
	OrderOVS:   "ovs",
	OrderOSV:   "osv",
	OrderFree:  "free",
}

func (o WordOrder) String() string {
	if name, ok := wordOrderNames[o]; ok {
		return name
	}

	return fmt.Sprintf("word_order(%d)", uint8(o))
}

// ParseWordOrder inverts String; unknown names wrap ErrUnknownOrder.
func ParseWordOrder(name string) (WordOrder, error) {
	for o, n := range wordOrderNames {
		if n == name {
			return o, nil
		}
	}

	return OrderUnset, fmt.Errorf("syntax: %q: %w", name, ErrUnknownOrder)
}

// MarshalYAML encodes the order as its canonical string.
func (o WordOrder) MarshalYAML() (interface{}, error) {
	if _, ok := wordOrderNames[o]; !ok {
		return nil, fmt.Errorf("syntax: %d: %w", uint8(o), ErrUnknownOrder)
	}

	return o.String(), nil
}

// UnmarshalYAML decodes the canonical string form.
func (o *WordOrder) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseWordOrder(name)
	if err != nil {
		return err
	}
	*o = parsed

	return nil
}

// ParticlePlacement positions a sentence particle. The zero value means
// "unset: draw one"; PlacementNone disables the particle.
type ParticlePlacement uint8

const (
	PlacementUnset ParticlePlacement = iota
	PlacementNone
	PlacementInitial
	PlacementFinal
)

var placementNames = map[ParticlePlacement]string{
	PlacementUnset:   "unset",
	PlacementNone:    "none",
	PlacementInitial: "initial",
	PlacementFinal:   "final",
}

func (p ParticlePlacement) String() string {
	if name, ok := placementNames[p]; ok {
		return name
	}

	return fmt.Sprintf("placement(%d)", uint8(p))
}

// ParsePlacement inverts String; unknown names wrap ErrUnknownPlacement.
func ParsePlacement(name string) (ParticlePlacement, error) {
	for p, n := range placementNames {
		if n == name {
			return p, nil
		}
	}

	return PlacementUnset, fmt.Errorf("syntax: %q: %w", name, ErrUnknownPlacement)
}

// MarshalYAML encodes the placement as its canonical string.
func (p ParticlePlacement) MarshalYAML() (interface{}, error) {
	if _, ok := placementNames[p]; !ok {
		return nil, fmt.Errorf("syntax: %d: %w", uint8(p), ErrUnknownPlacement)
	}

	return p.String(), nil
}

// UnmarshalYAML decodes the canonical string form.
func (p *ParticlePlacement) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParsePlacement(name)
	if err != nil {
		return err
	}
	*p = parsed

	return nil
}

// Params carries the caller's optional syntactic choices; anything left
// unset is drawn during New.
type Params struct {
	Order             WordOrder
	SubjectRequired   *bool
	Prepositions      *bool
	ModifierFirst     *bool
	Auxiliaries       *bool
	AssertionParticle ParticlePlacement
	QuestionParticle  ParticlePlacement
}

// Config is the fully-resolved syntactic typology.
type Config struct {
	Order             WordOrder         `yaml:"word_order"`
	SubjectRequired   bool              `yaml:"subject_required"`
	Prepositions      bool              `yaml:"prepositions"`
	ModifierFirst     bool              `yaml:"modifier_first"`
	Auxiliaries       bool              `yaml:"auxiliaries"`
	AssertionParticle ParticlePlacement `yaml:"assertion_particle"`
	QuestionParticle  ParticlePlacement `yaml:"question_particle"`
	ModifierChance    float64           `yaml:"modifier_chance"`
}

// Params converts a resolved Config back into construction Params, for
// replaying a language's syntactic typology under a fresh stream.
func (c Config) Params() Params {
	subject, prep, mod, aux := c.SubjectRequired, c.Prepositions, c.ModifierFirst, c.Auxiliaries

	return Params{
		Order:             c.Order,
		SubjectRequired:   &subject,
		Prepositions:      &prep,
		ModifierFirst:     &mod,
		Auxiliaries:       &aux,
		AssertionParticle: c.AssertionParticle,
		QuestionParticle:  c.QuestionParticle,
	}
}
