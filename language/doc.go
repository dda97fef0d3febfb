// Package language is the facade of voynich-ipsum: it wires the
// phonology, morphology, and syntax engines together from one seed and
// composes their sentences into paragraphs and essays.
//
// What
//
//   - New(opts...): build a complete language. WithSeed locks the whole
//     language and all of its future prose; per-layer With*(Params)
//     options pin any typological parameter the caller cares about.
//   - Name(): the language's self-name, derived at construction and
//     fixed for the instance's lifetime.
//   - Assertion / Question / Exclamation / NounPhrase: sentence- and
//     phrase-level generation, with optional verbatim topics.
//   - Paragraph / Essay: multi-sentence composition over a shared,
//     deduplicated topic pool.
//   - Scramble(): advance the random stream a drawn number of steps to
//     decorrelate subsequent output without touching the typology.
//   - Config(): a deep, mutation-safe snapshot of all three layers'
//     resolved typology; YAML round-trip plus Replay reproduce the same
//     typology (not word-for-word output) under any fresh seed.
//
// Why
//
//	Callers want "five paragraphs of plausible text about X" without
//	caring which layer owns clusters or clitics. The facade owns the
//	fixed construction order (stream → registry → phonology →
//	morphology → syntax → self-name) and the only mutable state: the
//	stream position.
//
// Determinism
//
//	Two instances built with the same seed and options return identical
//	names and identical output sequences for identical call sequences.
//	Instances never share stream state.
//
// Errors
//
//	New surfaces the layers' construction errors unchanged (errors.Is
//	against the layer sentinels works through the facade). Essay rejects
//	a non-positive paragraph count with ErrParagraphCount. Generation
//	calls never error.
//
// Usage
//
//	lang, err := language.New(language.WithSeed(1))
//	if err != nil { ... }
//	fmt.Println(lang.Name())
//	fmt.Println(lang.Assertion("kafo"))
//	text, err := lang.Essay(5, "kafo", "mirun")
package language
