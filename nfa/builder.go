package nfa

import "github.com/yuzuki-re/tinyregex/syntax"

// Build translates a parse tree into a Thompson NFA. Each AST node
// compiles to a fragment with one entry state and one accept state; Build
// wires the top fragment's entry/accept up as the NFA's Start/Accept.
//
// State IDs are allocated in whatever order the recursive descent visits
// fragments; the contract promised here is only that they end up dense and
// unique, not any particular numbering.
func Build(root *syntax.Node) *NFA {
	n := &NFA{}
	entry, accept := buildFragment(n, root)
	n.Start = entry
	n.Accept = accept
	return n
}

// buildFragment compiles one AST node into a fragment and returns its
// (entry, accept) state pair.
func buildFragment(n *NFA, node *syntax.Node) (entry, accept StateID) {
	switch node.Kind {
	case syntax.KindEmpty:
		return buildEmpty(n)
	case syntax.KindChar:
		return buildChar(n, node.Ch)
	case syntax.KindConcat:
		return buildConcat(n, node.Left, node.Right)
	case syntax.KindUnion:
		return buildUnion(n, node.Left, node.Right)
	case syntax.KindRepeat:
		return buildRepeat(n, node.Child)
	case syntax.KindNegChar:
		return buildNegChar(n, node.Excluded)
	default:
		panic("nfa: unhandled syntax.Kind")
	}
}

// buildEmpty compiles the empty-string fragment: entry --ε--> accept. This
// is the dedicated Empty fragment used in place of reusing a NUL
// character transition — the empty alternative of seq and the empty branch
// of "a|" both resolve to this, never to a literal transition.
func buildEmpty(n *NFA) (entry, accept StateID) {
	entry = n.addState()
	accept = n.addState()
	n.addEpsilon(entry, accept)
	return entry, accept
}

// buildChar compiles: entry --c--> accept.
func buildChar(n *NFA, c rune) (entry, accept StateID) {
	entry = n.addState()
	accept = n.addState()
	n.state(entry).Transitions[c] = accept
	return entry, accept
}

// buildConcat compiles: entry --ε--> A.entry; A.accept --ε--> B.entry;
// B.accept --ε--> accept.
func buildConcat(n *NFA, left, right *syntax.Node) (entry, accept StateID) {
	entry = n.addState()
	leftEntry, leftAccept := buildFragment(n, left)
	rightEntry, rightAccept := buildFragment(n, right)
	accept = n.addState()

	n.addEpsilon(entry, leftEntry)
	n.addEpsilon(leftAccept, rightEntry)
	n.addEpsilon(rightAccept, accept)
	return entry, accept
}

// buildUnion compiles: entry --ε--> A.entry and --ε--> B.entry;
// A.accept --ε--> accept; B.accept --ε--> accept.
func buildUnion(n *NFA, left, right *syntax.Node) (entry, accept StateID) {
	entry = n.addState()
	leftEntry, leftAccept := buildFragment(n, left)
	rightEntry, rightAccept := buildFragment(n, right)
	accept = n.addState()

	n.addEpsilon(entry, leftEntry)
	n.addEpsilon(entry, rightEntry)
	n.addEpsilon(leftAccept, accept)
	n.addEpsilon(rightAccept, accept)
	return entry, accept
}

// buildRepeat compiles: entry --ε--> A.entry; entry --ε--> accept;
// A.accept --ε--> A.entry; A.accept --ε--> entry.
func buildRepeat(n *NFA, child *syntax.Node) (entry, accept StateID) {
	entry = n.addState()
	childEntry, childAccept := buildFragment(n, child)
	accept = n.addState()

	n.addEpsilon(entry, childEntry)
	n.addEpsilon(entry, accept)
	n.addEpsilon(childAccept, childEntry)
	n.addEpsilon(childAccept, entry)
	return entry, accept
}

// buildNegChar compiles a class that matches any scalar not in excluded
// (an empty set is the '.' wildcard). Every excluded scalar gets a labeled
// transition to a dead sink state that can never reach accept; every other
// scalar falls through the default transition straight to accept. This is
// the default-transition mechanism ("alphabet compression"): it
// represents a potentially huge exclusion/inclusion set in at most three
// states and |excluded| labeled transitions instead of one state per
// Unicode scalar.
func buildNegChar(n *NFA, excluded map[rune]struct{}) (entry, accept StateID) {
	entry = n.addState()
	accept = n.addState()

	if len(excluded) > 0 {
		dead := n.addState() // no outgoing transitions: a true sink
		for c := range excluded {
			n.state(entry).Transitions[c] = dead
		}
	}
	n.state(entry).Default = accept
	return entry, accept
}
