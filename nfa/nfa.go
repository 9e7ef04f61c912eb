// Package nfa compiles a syntax.Node parse tree into a Thompson NFA with
// epsilon transitions, following the classical fragment construction:
// every AST node compiles to a fragment with exactly one entry state and
// one accept state.
//
// States are addressed by dense, monotonically increasing StateID values
// allocated from a single counter per NFA, the same scheme
// github.com/coregx/coregex/nfa uses (StateID uint32) cut down from
// byte-range/capture-aware states to this dialect's rune-keyed transitions
// plus one default-transition fallback field.
package nfa

import (
	"github.com/yuzuki-re/tinyregex/internal/conv"
	"github.com/yuzuki-re/tinyregex/internal/sparse"
)

// StateID addresses a state in an NFA's dense state table.
type StateID uint32

// DeadState is the sentinel meaning "no default transition" on an NFA
// state, or "no outgoing transition at all" for the synthetic sink states
// NegChar fragments route excluded scalars to. It is the maximum
// representable StateID.
const DeadState StateID = 1<<32 - 1

// State is a single NFA state: a set of ordinary labeled transitions, an
// ordered list of epsilon targets, and a default transition used when no
// labeled transition matches (the mechanism that keeps NegChar and '.'
// finite over the Unicode scalar space).
type State struct {
	Transitions        map[rune]StateID
	EpsilonTransitions []StateID
	Default            StateID
}

func newState() *State {
	return &State{
		Transitions: make(map[rune]StateID),
		Default:     DeadState,
	}
}

// NFA is a dense, integer-indexed automaton with epsilon transitions. It
// has no shared or cyclic node references; transitions are plain StateID
// lookups into States.
type NFA struct {
	States []*State
	Start  StateID
	Accept StateID
}

func (n *NFA) state(id StateID) *State { return n.States[id] }

// TransitionsOf returns id's labeled transitions, for use by subset
// construction in package dfa and dfa/lazy.
func (n *NFA) TransitionsOf(id StateID) map[rune]StateID { return n.States[id].Transitions }

// DefaultOf returns id's default transition (DeadState if it has none), for
// use by subset construction in package dfa and dfa/lazy.
func (n *NFA) DefaultOf(id StateID) StateID { return n.States[id].Default }

// addState appends a freshly allocated state and returns its ID.
func (n *NFA) addState() StateID {
	id := conv.IntToUint32(len(n.States))
	n.States = append(n.States, newState())
	return StateID(id)
}

func (n *NFA) addEpsilon(from, to StateID) {
	s := n.state(from)
	s.EpsilonTransitions = append(s.EpsilonTransitions, to)
}

// EpsilonClosure returns the least set containing start that is closed
// under epsilon transitions, as a sorted, deduplicated slice. The
// sort order is the subset sort order that canonicalizes DFA
// state identity: dfa.New and dfa/lazy.DFA both key states by this slice.
//
// The visited set is a sparse.SparseSet sized to the NFA's state table
// rather than a map, since closures are computed repeatedly during subset
// construction and the universe of possible state IDs is known up front.
func (n *NFA) EpsilonClosure(start StateID) []StateID {
	visited := sparse.NewSparseSet(conv.IntToUint32(len(n.States)))
	stack := []StateID{start}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited.Contains(uint32(id)) {
			continue
		}
		visited.Insert(uint32(id))

		for _, next := range n.state(id).EpsilonTransitions {
			stack = append(stack, next)
		}
	}

	sorted := visited.Sorted()
	out := make([]StateID, len(sorted))
	for i, v := range sorted {
		out[i] = StateID(v)
	}
	return out
}
