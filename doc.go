// Package voynich synthesizes an entire constructed language — sounds,
// words, grammar — from a single numeric seed, then writes filler prose
// in it: pronounceable, statistically text-shaped, and meaning-free.
//
// 🚀 What is voynich-ipsum?
//
//	A deterministic, dependency-injected generative-grammar engine:
//		• Phonology: vowel/consonant inventories, clusters, syllable shapes
//		• Morphology: stems, derivation, inflection, closed word classes
//		• Syntax: word order, particles, noun/verb phrases, full clauses
//		• Language: self-naming facade with sentence/paragraph/essay output
//		• Pickers: reusable weighted-discrete samplers driving it all
//
// ✨ Why choose voynich-ipsum?
//
//   - Reproducible – one float64 seed fixes the whole language and its prose
//   - Self-consistent – each layer's typology constrains the next layer's
//     legal productions; no impossible words, no stray phonemes
//   - Pure Go – no cgo, no I/O, no globals; one explicit random stream
//   - Archivable – config snapshots round-trip through YAML for replay
//
// Under the hood, everything is organized in dependency order:
//
//	rng/        — seeded splitmix64 stream of floats in [0,1)
//	picker/     — weighted samplers, distinct-pick and maybe combinators
//	phonology/  — sound inventory + syllable generator
//	morphology/ — stems, affixes, inflectors, closed-class registry
//	syntax/     — clause typology, phrase assembly, sentence wrapping
//	language/   — the facade: New, Name, Assertion…Essay, Scramble, Config
//
// Quick taste:
//
//	lang, _ := language.New(language.WithSeed(1))
//	fmt.Println(lang.Name())          // e.g. "Fashani"
//	fmt.Println(lang.Assertion("ka")) // a sentence about "ka", ending in "."
//	text, _ := lang.Essay(5)          // five blank-line-separated paragraphs
//
// Construction is single-pass and strictly layered; after New returns, the
// typology is frozen and every further call only consumes the random stream.
//
//	go get github.com/dfhoughton/voynich-ipsum/language
package voynich
