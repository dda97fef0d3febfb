// Package: voynich/language
//
// config.go — the aggregated config snapshot and its YAML archive form.
//
// Contract:
//   - Config is a deep, mutation-safe copy: editing a snapshot never
//     affects the instance it came from.
//   - YAML/ParseConfig round-trip the snapshot with human-readable enum
//     strings; Replay turns a snapshot back into construction options.
//   - Replaying reproduces the same typology, not the same word-by-word
//     output — that additionally needs the original seed and call order.

package language

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dfhoughton/voynich-ipsum/morphology"
	"github.com/dfhoughton/voynich-ipsum/phonology"
	"github.com/dfhoughton/voynich-ipsum/syntax"
)

// Config aggregates the three layers' fully-resolved typology.
type Config struct {
	Phonology  phonology.Config  `yaml:"phonology"`
	Morphology morphology.Config `yaml:"morphology"`
	Syntax     syntax.Config     `yaml:"syntax"`
}

// Config returns a deep snapshot of the instance's resolved typology.
func (l *Language) Config() Config {
	return Config{
		Phonology:  l.phon.Config(),
		Morphology: l.morph.Config(),
		Syntax:     l.syn.Config(),
	}
}

// YAML encodes the snapshot for archiving.
func (c Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("language: encode config: %w", err)
	}

	return out, nil
}

// ParseConfig decodes an archived snapshot.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("language: decode config: %w", err)
	}

	return c, nil
}

// Replay converts a snapshot into construction options pinning its
// typology. Combine with WithSeed for full reproduction.
func Replay(c Config) []Option {
	return []Option{
		WithPhonology(c.Phonology.Params()),
		WithMorphology(c.Morphology.Params()),
		WithSyntax(c.Syntax.Params()),
	}
}
