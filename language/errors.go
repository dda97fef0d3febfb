// Package: voynich/language
//
// errors.go — sentinel errors for the facade.
//
// Error policy:
//   • Sentinels only; branch with errors.Is.
//   • Layer construction errors pass through New unwrapped in meaning:
//     errors.Is against phonology/morphology/syntax sentinels still works.

package language

import "errors"

// ErrParagraphCount indicates Essay was asked for fewer than one
// paragraph. Argument errors are fatal and return no partial output.
// Usage: if errors.Is(err, ErrParagraphCount) { /* request n >= 1 */ }.
var ErrParagraphCount = errors.New("language: essay needs a positive paragraph count")
