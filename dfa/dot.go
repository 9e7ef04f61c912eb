package dfa

import (
	"fmt"
	"io"
)

// WriteDOT writes a Graphviz DOT rendering of d to w: accepting states as
// double circles, labeled transitions for each recorded character, and a
// "default" edge where a state falls back to its default transition. The
// dead state is omitted, matching its role as an implicit sink.
// It is a debugging aid only: nothing in the matching path calls it.
func (d *DFA) WriteDOT(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph DFA {"); err != nil {
		return err
	}
	fmt.Fprintln(w, "\tnode [shape=circle]")

	for id, s := range d.states {
		sid := StateID(id)
		if d.accept[sid] {
			fmt.Fprintf(w, "\tn%d [shape=doublecircle]\n", sid)
		}
		for c, next := range s.transitions {
			fmt.Fprintf(w, "\tn%d -> n%d [label=%q]\n", sid, next, string(c))
		}
		if s.def != DeadState {
			fmt.Fprintf(w, "\tn%d -> n%d [label=\"default\"]\n", sid, s.def)
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
