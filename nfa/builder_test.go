package nfa

import (
	"testing"

	"github.com/yuzuki-re/tinyregex/syntax"
	"github.com/yuzuki-re/tinyregex/token"
)

func mustParse(t *testing.T, pattern string) *syntax.Node {
	t.Helper()
	tokens, err := token.Tokenize(pattern)
	if err != nil {
		t.Fatalf("tokenize(%q): %v", pattern, err)
	}
	root, err := syntax.Parse(tokens)
	if err != nil {
		t.Fatalf("parse(%q): %v", pattern, err)
	}
	return root
}

func TestBuildCharFragment(t *testing.T) {
	root := mustParse(t, "a")
	n := Build(root)

	if len(n.States) != 2 {
		t.Fatalf("got %d states, want 2", len(n.States))
	}
	start := n.state(n.Start)
	if got, ok := start.Transitions['a']; !ok || got != n.Accept {
		t.Fatalf("start state transitions = %v, want {'a': %d}", start.Transitions, n.Accept)
	}
}

func TestBuildNegCharDeadSinkIsUnreachableToAccept(t *testing.T) {
	root := mustParse(t, "[^ab]")
	n := Build(root)

	start := n.state(n.Start)
	if start.Default != n.Accept {
		t.Fatalf("default transition = %d, want accept %d", start.Default, n.Accept)
	}

	for _, c := range []rune{'a', 'b'} {
		deadID, ok := start.Transitions[c]
		if !ok {
			t.Fatalf("expected labeled transition for %q", c)
		}
		dead := n.state(deadID)
		if len(dead.Transitions) != 0 || len(dead.EpsilonTransitions) != 0 {
			t.Fatalf("dead sink for %q should have no transitions, got %+v", c, dead)
		}
	}
}

func TestBuildDotHasEmptyExclusionAndNoSink(t *testing.T) {
	root := mustParse(t, ".")
	n := Build(root)

	start := n.state(n.Start)
	if start.Default != n.Accept {
		t.Fatalf("default transition = %d, want accept %d", start.Default, n.Accept)
	}
	if len(start.Transitions) != 0 {
		t.Fatalf("dot should have no labeled transitions, got %v", start.Transitions)
	}
}

func TestEpsilonClosureIsSortedAndDeduped(t *testing.T) {
	root := mustParse(t, "a|a")
	n := Build(root)

	closure := n.EpsilonClosure(n.Start)
	for i := 1; i < len(closure); i++ {
		if closure[i-1] >= closure[i] {
			t.Fatalf("closure not strictly ascending: %v", closure)
		}
	}
}

func TestBuildEmptyFragment(t *testing.T) {
	root := mustParse(t, "a|")
	n := Build(root)

	closure := n.EpsilonClosure(n.Start)
	found := false
	for _, id := range closure {
		if id == n.Accept {
			found = true
		}
	}
	if !found {
		t.Fatal("epsilon-closure of start should reach accept directly for \"a|\"")
	}
}
