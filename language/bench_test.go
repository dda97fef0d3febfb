// Package language_test benchmarks for the hot generation paths.
package language_test

import (
	"testing"

	"github.com/dfhoughton/voynich-ipsum/language"
)

// benchLanguage builds one fixed-seed language for all benchmarks.
func benchLanguage(b *testing.B) *language.Language {
	b.Helper()
	lang, err := language.New(language.WithSeed(1))
	if err != nil {
		b.Fatalf("New: %v", err)
	}

	return lang
}

// BenchmarkAssertion measures single-sentence generation.
func BenchmarkAssertion(b *testing.B) {
	lang := benchLanguage(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lang.Assertion()
	}
}

// BenchmarkParagraph measures paragraph composition with topic pooling.
func BenchmarkParagraph(b *testing.B) {
	lang := benchLanguage(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lang.Paragraph()
	}
}

// BenchmarkEssay measures five-paragraph essay composition.
func BenchmarkEssay(b *testing.B) {
	lang := benchLanguage(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lang.Essay(5); err != nil {
			b.Fatalf("Essay: %v", err)
		}
	}
}
