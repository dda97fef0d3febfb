// Package: voynich/syntax
//
// clause.go — clause assembly and the per-word-order arrangement table.
//
// Contract:
//   - One arrangement function per word-order variant, selected once at
//     construction; the subject is the first argument, objects follow.
//   - VOS/OVS/OSV arrangements reverse the object list relative to
//     their mirror orders; OrderFree shuffles the arguments and splices
//     the verb phrase at a drawn position.
//   - Each argument is realized as a noun phrase fed the next unused
//     topic; once topics run out, arguments get random stems. Surplus
//     topics are ignored.

package syntax

import (
	"strings"

	"github.com/dfhoughton/voynich-ipsum/rng"
)

// arrangeFn lays out one verb phrase and its argument noun phrases.
type arrangeFn func(e *Engine, verb string, args []string) []string

// arrangements keys every word-order variant to its layout. Selection
// happens once in New; unknown orders are rejected there.
var arrangements = map[WordOrder]arrangeFn{
	OrderSOV: func(_ *Engine, verb string, args []string) []string {
		return append(append([]string{}, args...), verb)
	},
	OrderSVO: func(_ *Engine, verb string, args []string) []string {
		if len(args) == 0 {
			return []string{verb}
		}

		return append([]string{args[0], verb}, args[1:]...)
	},
	OrderVSO: func(_ *Engine, verb string, args []string) []string {
		return append([]string{verb}, args...)
	},
	OrderVOS: func(_ *Engine, verb string, args []string) []string {
		return append([]string{verb}, reversed(args)...)
	},
	OrderOVS: func(_ *Engine, verb string, args []string) []string {
		if len(args) == 0 {
			return []string{verb}
		}

		return append(append(reversed(args[1:]), verb), args[0])
	},
	OrderOSV: func(_ *Engine, verb string, args []string) []string {
		if len(args) == 0 {
			return []string{verb}
		}

		return append(append(reversed(args[1:]), args[0]), verb)
	},
	OrderFree: func(e *Engine, verb string, args []string) []string {
		shuffled := append([]string{}, args...)
		rng.Shuffle(e.src, len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		at := rng.IntBetween(e.src, 0, len(shuffled))
		out := make([]string, 0, len(shuffled)+1)
		out = append(out, shuffled[:at]...)
		out = append(out, verb)

		return append(out, shuffled[at:]...)
	},
}

// reversed returns a reversed copy.
func reversed(xs []string) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}

	return out
}

// clause assembles one clause: draw the argument count (at least one
// when a subject is required), realize the verb phrase and arguments,
// and lay them out per the language's arrangement.
func (e *Engine) clause(topics []string, depth int) string {
	n := e.argCount.Pick()
	// A required subject, or a caller-supplied topic, guarantees at
	// least one argument slot; surplus topics are still ignored.
	if n == 0 && (e.cfg.SubjectRequired || len(topics) > 0) {
		n = 1
	}

	verb := e.verbPhrase()
	args := make([]string, n)
	for i := range args {
		topic := ""
		if i < len(topics) {
			topic = topics[i]
		}
		args[i] = e.nounPhrase(topic, depth)
	}

	return strings.Join(e.arrange(e, verb, args), " ")
}
