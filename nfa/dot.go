package nfa

import (
	"fmt"
	"io"
)

// WriteDOT writes a Graphviz DOT rendering of n to w: one node per state,
// labeled transitions for ordinary edges, "default" edges for the
// alphabet-compression fallback, and "epsilon" edges for Thompson splices.
// It is a debugging aid only: nothing in subset construction calls it.
func (n *NFA) WriteDOT(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph NFA {"); err != nil {
		return err
	}
	fmt.Fprintln(w, "\tnode [shape=circle]")
	fmt.Fprintf(w, "\tn%d [shape=doublecircle]\n", n.Accept)

	for id, s := range n.States {
		for c, next := range s.Transitions {
			if _, err := fmt.Fprintf(w, "\tn%d -> n%d [label=%q]\n", id, next, string(c)); err != nil {
				return err
			}
		}
		for _, next := range s.EpsilonTransitions {
			fmt.Fprintf(w, "\tn%d -> n%d [label=\"epsilon\"]\n", id, next)
		}
		if s.Default != DeadState {
			fmt.Fprintf(w, "\tn%d -> n%d [label=\"default\"]\n", id, s.Default)
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
