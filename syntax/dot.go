package syntax

import (
	"fmt"
	"io"
)

// WriteDOT writes a Graphviz DOT rendering of n to w, one node per tree
// node labeled with its Kind and payload, edges following Left/Right/Child.
// It is a debugging aid only: nothing in the matching path calls it.
func (n *Node) WriteDOT(w io.Writer) error {
	fmt.Fprintln(w, "digraph Node {")
	fmt.Fprintln(w, "\tnode [shape=circle]")
	next := 0
	if _, err := writeNodeDOT(w, n, &next); err != nil {
		return err
	}
	fmt.Fprintln(w, "}")
	return nil
}

// writeNodeDOT writes n's own node line plus its children's, assigning each
// node the next free id from *next, and returns the id it assigned to n.
func writeNodeDOT(w io.Writer, n *Node, next *int) (int, error) {
	id := *next
	*next++

	var label string
	switch n.Kind {
	case KindEmpty:
		label = "Empty"
	case KindChar:
		label = fmt.Sprintf("Char %q", n.Ch)
	case KindConcat:
		label = "Concat"
	case KindUnion:
		label = "Union"
	case KindRepeat:
		label = "Repeat"
	case KindNegChar:
		label = fmt.Sprintf("NegChar (%d excluded)", len(n.Excluded))
	}
	if _, err := fmt.Fprintf(w, "\tn%d [label=%q]\n", id, label); err != nil {
		return 0, err
	}

	for _, child := range []*Node{n.Left, n.Right, n.Child} {
		if child == nil {
			continue
		}
		childID, err := writeNodeDOT(w, child, next)
		if err != nil {
			return 0, err
		}
		if _, err := fmt.Fprintf(w, "\tn%d -> n%d\n", id, childID); err != nil {
			return 0, err
		}
	}
	return id, nil
}
