package lazy

import (
	"testing"

	"github.com/yuzuki-re/tinyregex/dfa"
	"github.com/yuzuki-re/tinyregex/nfa"
	"github.com/yuzuki-re/tinyregex/syntax"
	"github.com/yuzuki-re/tinyregex/token"
)

func mustBuild(t *testing.T, pattern string) *nfa.NFA {
	t.Helper()
	tokens, err := token.Tokenize(pattern)
	if err != nil {
		t.Fatalf("tokenize(%q): %v", pattern, err)
	}
	root, err := syntax.Parse(tokens)
	if err != nil {
		t.Fatalf("parse(%q): %v", pattern, err)
	}
	return nfa.Build(root)
}

func run(d *DFA, input string) StateID {
	state := d.Start()
	for _, c := range input {
		state = d.Transition(c, state)
		if d.IsDead(state) {
			return state
		}
	}
	return state
}

func TestLazyDFALiteralMatch(t *testing.T) {
	d := New(mustBuild(t, "ab"))

	if final := run(d, "ab"); !d.IsAccept(final) {
		t.Fatalf("expected %q to be accepted", "ab")
	}
	if final := run(d, "a"); d.IsAccept(final) {
		t.Fatalf("expected %q to be rejected", "a")
	}
}

func TestLazyDFAStatesBuiltOnDemand(t *testing.T) {
	d := New(mustBuild(t, "a*b*c*"))

	if got := len(d.states); got != 1 {
		t.Fatalf("expected only the start state to exist before any Transition call, got %d states", got)
	}
	run(d, "aabbcc")
	if got := len(d.states); got <= 1 {
		t.Fatalf("expected additional states to be allocated after searching, got %d", got)
	}
}

func TestLazyDFACachesRepeatedTransitions(t *testing.T) {
	d := New(mustBuild(t, "a*"))

	run(d, "aaaa")
	countAfterFirst := len(d.states)
	run(d, "aaaa")
	if got := len(d.states); got != countAfterFirst {
		t.Fatalf("expected no new states from a repeated scan, got %d states (was %d)", got, countAfterFirst)
	}
}

func TestLazyDFADotMatchesAnyScalar(t *testing.T) {
	d := New(mustBuild(t, "."))

	for _, s := range []string{"a", "9", "中"} {
		if final := run(d, s); !d.IsAccept(final) {
			t.Fatalf("expected %q to be accepted by '.'", s)
		}
	}
}

func TestLazyDFADeadStateIsSink(t *testing.T) {
	d := New(mustBuild(t, "ab"))

	final := run(d, "x")
	if final != DeadState {
		t.Fatalf("expected an unknown symbol to reach DeadState, got %d", final)
	}
	if d.Transition('a', DeadState) != DeadState {
		t.Fatal("DeadState must be a sink")
	}
	if d.IsAccept(DeadState) {
		t.Fatal("DeadState must never accept")
	}
}

func TestLazyDFAAgreesWithEagerDFA(t *testing.T) {
	patterns := []string{"a", "a|b", "a*", "[a-z]*a", "[^xyz]", "(ab|cd)*", "."}
	inputs := []string{"", "a", "b", "ab", "cd", "abab", "x", "hello", "za"}

	for _, pattern := range patterns {
		n := mustBuild(t, pattern)
		lazyDFA := New(n)
		eagerDFA := dfa.New(n)

		for _, in := range inputs {
			lazyFinal := run(lazyDFA, in)
			eagerAccepted := eagerDFA.IsAccept(runEager(eagerDFA, in))
			lazyAccepted := lazyDFA.IsAccept(lazyFinal)

			if lazyAccepted != eagerAccepted {
				t.Errorf("pattern %q input %q: lazy accept=%v, eager accept=%v", pattern, in, lazyAccepted, eagerAccepted)
			}
		}
	}
}

func runEager(d *dfa.DFA, input string) dfa.StateID {
	state := d.Start()
	for _, c := range input {
		state = d.Transition(c, state)
		if d.IsDead(state) {
			return state
		}
	}
	return state
}
