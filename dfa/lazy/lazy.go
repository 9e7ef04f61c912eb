// Package lazy implements a DFA that determinizes states on demand during
// matching instead of up front (the "on-the-fly"
// expansion-on-read counterpart to package dfa's eager subset construction).
//
// Grounded on github.com/coregx/coregex/dfa/lazy.DFA: same "cache of states
// keyed by canonical NFA subset, built as the search visits them" shape,
// cut down to this dialect's needs — no byte classes, no PikeVM fallback,
// no start-table per look-behind context, since there are no anchors or
// word-boundary assertions to make the start state context-dependent. A
// DFA here has exactly one start state and its transition table grows
// monotonically as Transition is called.
//
// Thread safety: like coregex's lazy DFA, not thread-safe. The cache
// mutates on every previously-unseen subset, so concurrent callers need
// one DFA each (cheap: construction only resolves the start state until
// the first Transition call).
package lazy

import (
	"sort"

	"github.com/yuzuki-re/tinyregex/internal/conv"
	"github.com/yuzuki-re/tinyregex/nfa"
)

// StateID addresses a state in the DFA's growing state table.
type StateID uint32

// DeadState is the sentinel state corresponding to the empty NFA subset.
const DeadState StateID = 1<<32 - 1

type state struct {
	subset      []nfa.StateID
	transitions map[rune]StateID
	accept      bool
}

func newState(subset []nfa.StateID, accept bool) *state {
	return &state{
		subset:      subset,
		transitions: make(map[rune]StateID),
		accept:      accept,
	}
}

// DFA is a deterministic automaton whose states are computed the first time
// they are reached and cached under their canonical NFA subset for reuse.
type DFA struct {
	nfa    *nfa.NFA
	states []*state
	byKey  map[string]StateID
	start  StateID
}

// New builds a lazy DFA over n. Unlike dfa.New, this does no subset
// construction at all yet: it only resolves the start state, since that is
// the one state every search needs immediately.
func New(n *nfa.NFA) *DFA {
	d := &DFA{
		nfa:   n,
		byKey: make(map[string]StateID),
	}
	startSubset := canonicalize(n.EpsilonClosure(n.Start))
	d.start, _ = d.resolve(startSubset)
	return d
}

// Start returns the DFA's start state.
func (d *DFA) Start() StateID { return d.start }

// IsAccept reports whether state is an accepting state.
func (d *DFA) IsAccept(state StateID) bool {
	if state == DeadState {
		return false
	}
	return d.states[state].accept
}

// IsDead reports whether state is the dead state.
func (d *DFA) IsDead(state StateID) bool { return state == DeadState }

// Transition returns the state reached from current on input c, computing
// and caching it the first time this (state, c) pair is visited.
func (d *DFA) Transition(c rune, current StateID) StateID {
	if current == DeadState {
		return DeadState
	}
	s := d.states[current]

	if next, ok := s.transitions[c]; ok {
		return next
	}

	next := stepOnChar(d.nfa, s.subset, c)
	nextID, _ := d.resolve(next)
	s.transitions[c] = nextID
	return nextID
}

// resolve returns subset's DFA state, allocating and caching a fresh one
// the first time this canonical subset is seen. The empty subset always
// maps to DeadState without occupying a states slot.
func (d *DFA) resolve(subset []nfa.StateID) (StateID, bool) {
	if len(subset) == 0 {
		return DeadState, false
	}
	key := canonicalKey(subset)
	if id, ok := d.byKey[key]; ok {
		return id, false
	}
	id := StateID(conv.IntToUint32(len(d.states)))
	d.states = append(d.states, newState(subset, containsNFAState(subset, d.nfa.Accept)))
	d.byKey[key] = id
	return id, true
}

func canonicalize(ids []nfa.StateID) []nfa.StateID {
	if len(ids) == 0 {
		return nil
	}
	sorted := append([]nfa.StateID(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	out := sorted[:1]
	for _, id := range sorted[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}

func canonicalKey(subset []nfa.StateID) string {
	buf := make([]byte, 0, len(subset)*5)
	for _, id := range subset {
		buf = append(buf, byte(id>>24), byte(id>>16), byte(id>>8), byte(id), ',')
	}
	return string(buf)
}

// stepOnChar computes the canonicalized union of epsilon-closures reached
// by following c from every state in subset, falling back to each state's
// default transition when it has no labeled edge for c. As in package
// dfa, a state whose default is nfa.DeadState contributes nothing: its
// closure is never computed, since nfa.EpsilonClosure would index out of
// bounds on that sentinel.
func stepOnChar(n *nfa.NFA, subset []nfa.StateID, c rune) []nfa.StateID {
	var next []nfa.StateID
	for _, id := range subset {
		if target, ok := n.TransitionsOf(id)[c]; ok {
			next = append(next, n.EpsilonClosure(target)...)
		} else if def := n.DefaultOf(id); def != nfa.DeadState {
			next = append(next, n.EpsilonClosure(def)...)
		}
	}
	return canonicalize(next)
}

func containsNFAState(subset []nfa.StateID, target nfa.StateID) bool {
	for _, id := range subset {
		if id == target {
			return true
		}
	}
	return false
}
