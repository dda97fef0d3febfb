// Package syntax fixes a language's clause-level typology — word order,
// adposition and particle placement, modifier direction — and assembles
// phrases, clauses, and punctuated sentences from the morphology layer's
// words.
//
// What
//
//   - New(src, morphology, params): resolve the syntactic typology once
//     (basic word order among SOV/SVO/VSO/VOS/OVS/OSV/free, subject
//     requirement, pre- vs postpositions, modifier direction,
//     auxiliaries, assertion/question particle placement) and mint the
//     particle classes it needs.
//   - Phrase generators: NounPhrase (with optional verbatim topic),
//     VerbPhrase, AdpositionPhrase.
//   - Sentence generators: Assertion, Question, Exclamation — each wraps
//     a clause with its configured discourse particle, capitalizes the
//     first letter, and terminates with "." "?" "!".
//
// Why
//
//	Word order is the loudest typological signal in text. Fixing one
//	arrangement function per language (selected from a lookup table
//	keyed by the order enum, not re-branched per call) is what makes
//	five pages of filler read as one language.
//
// Determinism
//
//	Typology draws happen in a fixed order inside New; afterwards every
//	call only consumes the stream to instantiate phrases. Noun-phrase
//	modifiers chain on a per-language continuation chance below 0.2, so
//	termination is probabilistic; an explicit recursion depth bound
//	(maxModifierDepth) additionally caps worst-case output size.
//
// Errors
//
//	New validates its collaborator (ErrNilMorphology) and enum values
//	(ErrUnknownOrder, ErrUnknownPlacement). Generators never error.
package syntax
