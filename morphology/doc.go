// Package morphology turns the phonology layer's syllables into words:
// open-class stems with derivation and inflection, and the closed word
// classes (pronouns, frequent adverbs, particles) a language fixes once.
//
// What
//
//   - Registry: the one per-language collection of minted closed-class
//     forms, with a reserve-if-absent operation; every closed-class
//     constructor shares it, so no particle, pronoun, affix, or slot
//     form ever collides with another.
//   - New(src, phonology, registry, params): resolve the morphological
//     typology (analytic?, inflection?, derivation?, stem complexity,
//     affix placement) and pre-build the inflectors and closed classes.
//   - Word generators: Noun/Verb (optionally over a supplied stem),
//     NounStem/VerbStem (raw, uninflected), Pronoun, Adverb, Particle.
//   - ClosedClass(n, blank): the particle-minting primitive the syntax
//     layer reuses for its own particle sets.
//
// Why
//
//	Stems are cheap and infinite; grammatical material is scarce and
//	fixed. Splitting the two — open generation versus registered closed
//	classes — is what makes the output feel like one language instead of
//	noise.
//
// Determinism
//
//	Typology draws happen in a fixed order inside New; inflector slot
//	layouts are fixed at construction and never change between calls.
//	Closed-class fills are capped at a fixed attempt budget; on
//	exhaustion generation degrades silently to possibly-colliding or
//	under-filled classes (the output is cosmetic filler, not a
//	correctness-critical artifact).
//
// Errors
//
//	New validates its collaborators (ErrNilPhonology, ErrNilRegistry) and
//	enum values; ClosedClass rejects non-positive counts (ErrBadCount).
//	Word generators never error.
package morphology
