package tinyregex

import (
	"unicode/utf8"

	"github.com/yuzuki-re/tinyregex/prefilter"
)

// automaton is the capability surface the matcher needs from a compiled
// state machine. dfa.DFA and dfa/lazy.DFA each satisfy this once
// instantiated with their own state type, letting one generic matching
// routine drive either variant without the two packages sharing a state
// representation.
type automaton[S any] interface {
	Start() S
	IsAccept(S) bool
	IsDead(S) bool
	Transition(c rune, current S) S
}

// engine is the variant-erased matching core a compiled Regex holds: the
// closures below are produced once, at compile time, by instantiating the
// generic routines against whichever concrete DFA type Compile built.
type engine struct {
	isMatch func(s string) bool
	findAt  func(s string, start int) (Match, bool)
}

func buildEngine[S any](d automaton[S], pf *prefilter.Prefilter, enablePrefilter bool) engine {
	usePF := enablePrefilter && pf.HasLiteral()
	return engine{
		isMatch: func(s string) bool {
			return isMatchOn(d, s, pf, usePF)
		},
		findAt: func(s string, start int) (Match, bool) {
			return findAtOn(d, s, start, pf, usePF)
		},
	}
}

// scanFrom walks d from its start state over s[i:], returning the furthest
// byte offset at which an accepting state was reached and whether one was
// reached at all. The walk stops early on the dead state; it never
// backtracks.
func scanFrom[S any](d automaton[S], s string, i int) (bestEnd int, matched bool) {
	q := d.Start()
	pos := i
	if d.IsAccept(q) {
		matched = true
		bestEnd = pos
	}
	for _, c := range s[i:] {
		q = d.Transition(c, q)
		pos += utf8.RuneLen(c)
		if d.IsDead(q) {
			return bestEnd, matched
		}
		if d.IsAccept(q) {
			matched = true
			bestEnd = pos
		}
	}
	return bestEnd, matched
}

func isMatchOn[S any](d automaton[S], s string, pf *prefilter.Prefilter, usePF bool) bool {
	if d.IsAccept(d.Start()) {
		return true
	}
	if usePF {
		haystack := []byte(s)
		for pos := 0; pos <= len(s); {
			cand := pf.Find(haystack, pos)
			if cand == -1 {
				return false
			}
			if cand < len(s) && !utf8.RuneStart(s[cand]) {
				pos = cand + 1
				continue
			}
			if _, matched := scanFrom(d, s, cand); matched {
				return true
			}
			pos = cand + 1
		}
		return false
	}
	for i := range s {
		if _, matched := scanFrom(d, s, i); matched {
			return true
		}
	}
	return false
}

// findAtOn implements leftmost-longest search restricted to starting
// positions at or after start.
func findAtOn[S any](d automaton[S], s string, start int, pf *prefilter.Prefilter, usePF bool) (Match, bool) {
	if start > len(s) {
		return Match{}, false
	}

	if usePF {
		haystack := []byte(s)
		for pos := start; pos <= len(s); {
			cand := pf.Find(haystack, pos)
			if cand == -1 {
				return Match{}, false
			}
			if cand < len(s) && !utf8.RuneStart(s[cand]) {
				pos = cand + 1
				continue
			}
			if bestEnd, matched := scanFrom(d, s, cand); matched {
				return Match{source: s, start: cand, end: bestEnd}, true
			}
			pos = cand + 1
		}
		return Match{}, false
	}

	for i := start; i <= len(s); i++ {
		if i < len(s) && !utf8.RuneStart(s[i]) {
			continue
		}
		if bestEnd, matched := scanFrom(d, s, i); matched {
			return Match{source: s, start: i, end: bestEnd}, true
		}
	}
	return Match{}, false
}
