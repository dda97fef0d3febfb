// Package: voynich/language
//
// compose.go — paragraph and essay composition over shared topic pools.
//
// Contract:
//   - An essay's paragraphs share one topic pool; each sentence redraws
//     its type and its 0–2-topic subset from that pool.
//   - Essay validates its paragraph count (ErrParagraphCount) and
//     returns no partial output on error.
//   - Topic pools are supplied topics plus deduplicated generated stems
//     up to a drawn size; pool filling is attempt-capped the same way
//     closed-class minting is (best-effort on degenerate stem spaces).

package language

import (
	"fmt"
	"strings"

	"github.com/dfhoughton/voynich-ipsum/picker"
	"github.com/dfhoughton/voynich-ipsum/rng"
)

// Composition domains.
const (
	topicPoolMin      = 2
	topicPoolMax      = 5
	poolFillAttempts  = 100
	sentencesMin      = 3
	sentencesMax      = 8
	sentenceTopicsMax = 2
	scrambleSkipMin   = 1
	scrambleSkipMax   = 512
	paragraphSep      = "\n\n"
	sentenceSep       = " "
)

// sentenceKind tags the sentence-type variants.
type sentenceKind uint8

const (
	kindAssertion sentenceKind = iota
	kindQuestion
	kindExclamation
)

// sentenceKindTable weights sentence types heavily toward assertion, as
// in real prose.
var sentenceKindTable = []picker.Entry[sentenceKind]{
	{Value: kindAssertion, Weight: 8},
	{Value: kindQuestion, Weight: 1},
	{Value: kindExclamation, Weight: 1},
}

// Paragraph composes one paragraph over a fresh topic pool seeded with
// the given topics.
func (l *Language) Paragraph(topics ...string) string {
	return l.paragraph(l.topicPool(topics))
}

// Essay composes count blank-line-separated paragraphs sharing one
// topic pool. A non-positive count is an argument error.
func (l *Language) Essay(count int, topics ...string) (string, error) {
	if count < 1 {
		return "", fmt.Errorf("language.Essay: count=%d: %w", count, ErrParagraphCount)
	}

	pool := l.topicPool(topics)
	paragraphs := make([]string, count)
	for i := range paragraphs {
		paragraphs[i] = l.paragraph(pool)
	}

	return strings.Join(paragraphs, paragraphSep), nil
}

// paragraph renders a drawn number of sentences, each with a fresh type
// and topic subset.
func (l *Language) paragraph(pool []string) string {
	n := rng.IntBetween(l.src, sentencesMin, sentencesMax)
	sentences := make([]string, n)
	for i := range sentences {
		topics := l.sentenceTopics(pool)
		switch l.kind.Pick() {
		case kindQuestion:
			sentences[i] = l.syn.Question(topics...)
		case kindExclamation:
			sentences[i] = l.syn.Exclamation(topics...)
		default:
			sentences[i] = l.syn.Assertion(topics...)
		}
	}

	return strings.Join(sentences, sentenceSep)
}

// sentenceTopics draws one sentence's topic subset: up to
// sentenceTopicsMax distinct pool members, possibly none.
func (l *Language) sentenceTopics(pool []string) []string {
	limit := sentenceTopicsMax
	if len(pool) < limit {
		limit = len(pool)
	}
	k := rng.IntBetween(l.src, 0, limit)
	if k == 0 {
		return nil
	}

	shuffled := append([]string(nil), pool...)
	rng.Shuffle(l.src, len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[:k]
}

// topicPool merges the supplied topics with freshly generated stems, up
// to a drawn pool size, deduplicated.
func (l *Language) topicPool(supplied []string) []string {
	target := rng.IntBetween(l.src, topicPoolMin, topicPoolMax)

	seen := make(map[string]struct{})
	pool := make([]string, 0, target)
	for _, t := range supplied {
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		pool = append(pool, t)
	}

	for attempts := 0; attempts < poolFillAttempts && len(pool) < target; attempts++ {
		stem := l.morph.NounStem()
		if _, dup := seen[stem]; dup {
			continue
		}
		seen[stem] = struct{}{}
		pool = append(pool, stem)
	}

	return pool
}
