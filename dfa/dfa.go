// Package dfa subset-constructs a deterministic finite automaton from an
// NFA eagerly, at pattern-compile time.
//
// The eager DFA is fully immutable once built and therefore trivially safe
// to share across goroutines for concurrent matching against different
// inputs. Its sibling package dfa/lazy builds the same kind of
// automaton on demand during scanning instead. The Automaton interface
// defined here is the Go rendering of original_source/src/dfa.rs's DFAExt
// trait; only this package's DFA implements it, since dfa/lazy.DFA has the
// same method set over its own lazy.StateID type. The root package's
// generic matcher drives both.
package dfa

import (
	"fmt"
	"sort"

	"github.com/yuzuki-re/tinyregex/internal/conv"
	"github.com/yuzuki-re/tinyregex/nfa"
)

// StateID addresses a state in the DFA's dense state table.
type StateID uint32

// DeadState is the sentinel DFA state: once entered it is never left, and
// it corresponds to the empty subset of NFA states.
const DeadState StateID = 1<<32 - 1

// Automaton is the capability surface the eager DFA exposes to the matcher.
// It is the Go analogue of DFAExt from original_source, kept deliberately
// thin: everything the matcher needs and nothing else. dfa/lazy.DFA offers
// the same methods over lazy.StateID and so does not implement it.
type Automaton interface {
	// Start returns the DFA's start state.
	Start() StateID
	// IsAccept reports whether state is an accepting state.
	IsAccept(state StateID) bool
	// IsDead reports whether state is the dead state.
	IsDead(state StateID) bool
	// Transition returns the state reached from state on input c.
	Transition(c rune, state StateID) StateID
}

type state struct {
	transitions map[rune]StateID
	def         StateID
}

func newState() *state {
	return &state{transitions: make(map[rune]StateID), def: DeadState}
}

// DFA is a fully-constructed, immutable deterministic finite automaton.
type DFA struct {
	states []*state
	start  StateID
	accept map[StateID]bool
}

var _ Automaton = (*DFA)(nil)

// Start returns the DFA's start state.
func (d *DFA) Start() StateID { return d.start }

// IsAccept reports whether state is an accepting state.
func (d *DFA) IsAccept(state StateID) bool { return d.accept[state] }

// IsDead reports whether state is the dead state.
func (d *DFA) IsDead(state StateID) bool { return state == DeadState }

// Transition returns the state reached from state on input c: the labeled
// transition for c if one was recorded, else the state's default.
func (d *DFA) Transition(c rune, current StateID) StateID {
	if current == DeadState {
		return DeadState
	}
	s := d.states[current]
	if next, ok := s.transitions[c]; ok {
		return next
	}
	return s.def
}

// canonicalize sorts and deduplicates an NFA state-ID slice so it can serve
// as a subset's canonical identity ("the DFA state is the set of NFA
// states"). nfa.EpsilonClosure already returns sorted, deduped slices, but
// unions of several closures must be recanonicalized.
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

// canonicalKey turns a canonicalized subset into a comparable map key.
func canonicalKey(subset []nfa.StateID) string {
	buf := make([]byte, 0, len(subset)*5)
	for _, id := range subset {
		buf = append(buf,
			byte(id>>24), byte(id>>16), byte(id>>8), byte(id), ',')
	}
	return string(buf)
}

func stateTransitions(n *nfa.NFA, id nfa.StateID) map[rune]nfa.StateID {
	return n.TransitionsOf(id)
}

func stateDefault(n *nfa.NFA, id nfa.StateID) nfa.StateID {
	return n.DefaultOf(id)
}

// New subset-constructs an unbounded DFA from n. It never fails: without a
// state cap there is nothing for construction to reject.
func New(n *nfa.NFA) *DFA {
	d, err := NewWithLimit(n, 0)
	if err != nil {
		panic(err) // unreachable: maxStates == 0 means unlimited
	}
	return d
}

// NewWithLimit subset-constructs a DFA from n, same as New, but aborts and
// returns an error the moment the number of distinct subsets would exceed
// maxStates. maxStates <= 0 means unlimited, matching New. This is what
// Config.MaxDFAStates wires into CompileWithConfig: a caller compiling an
// untrusted pattern can bound how much memory eager subset construction is
// allowed to allocate, rather than let a pathological class-heavy pattern
// build an unbounded number of states.
//
// The worklist drains because there are finitely many distinct subsets of
// n's states, and every subset is enqueued at most once.
func NewWithLimit(n *nfa.NFA, maxStates int) (*DFA, error) {
	d := &DFA{
		states: nil,
		accept: make(map[StateID]bool),
	}

	subsetToID := make(map[string]StateID)
	idToSubset := make(map[StateID][]nfa.StateID)

	startSubset := canonicalize(n.EpsilonClosure(n.Start))
	start, _, err := d.lookupOrAllocate(startSubset, subsetToID, idToSubset, maxStates)
	if err != nil {
		return nil, err
	}
	d.start = start

	worklist := []StateID{d.start}

	for len(worklist) > 0 {
		id := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if id == DeadState {
			continue
		}
		subset := idToSubset[id]

		for _, c := range collectAlphabet(n, subset) {
			next := stepOnChar(n, subset, c)
			nextID, isNew, err := d.lookupOrAllocate(next, subsetToID, idToSubset, maxStates)
			if err != nil {
				return nil, err
			}
			if isNew {
				worklist = append(worklist, nextID)
			}
			d.states[id].transitions[c] = nextID
		}

		next := stepOnDefault(n, subset)
		nextID, isNew, err := d.lookupOrAllocate(next, subsetToID, idToSubset, maxStates)
		if err != nil {
			return nil, err
		}
		if isNew {
			worklist = append(worklist, nextID)
		}
		d.states[id].def = nextID
	}

	for id, subset := range idToSubset {
		if containsNFAState(subset, n.Accept) {
			d.accept[id] = true
		}
	}

	return d, nil
}

// lookupOrAllocate returns subset's DFA state, allocating a new one (and
// reporting isNew) the first time this canonical subset is seen. The empty
// subset always maps to DeadState without ever occupying a states slot.
// When maxStates > 0, allocating the state that would make len(d.states)
// exceed it returns an error instead.
func (d *DFA) lookupOrAllocate(subset []nfa.StateID, subsetToID map[string]StateID, idToSubset map[StateID][]nfa.StateID, maxStates int) (id StateID, isNew bool, err error) {
	if len(subset) == 0 {
		return DeadState, false, nil
	}
	key := canonicalKey(subset)
	if id, ok := subsetToID[key]; ok {
		return id, false, nil
	}
	if maxStates > 0 && len(d.states) >= maxStates {
		return 0, false, fmt.Errorf("dfa: state count exceeds limit of %d", maxStates)
	}
	id = StateID(conv.IntToUint32(len(d.states)))
	d.states = append(d.states, newState())
	subsetToID[key] = id
	idToSubset[id] = subset
	return id, true, nil
}

// collectAlphabet returns, in ascending order, every scalar with a labeled
// transition out of any state in subset (the union of every key).
func collectAlphabet(n *nfa.NFA, subset []nfa.StateID) []rune {
	seen := make(map[rune]bool)
	var chars []rune
	for _, id := range subset {
		for c := range stateTransitions(n, id) {
			if !seen[c] {
				seen[c] = true
				chars = append(chars, c)
			}
		}
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}

// stepOnChar computes the canonicalized union of epsilon-closures reached
// by following c from every state in subset, falling back to each state's
// default transition when it has no labeled edge for c. A
// state whose default is nfa.DeadState contributes nothing: its closure is
// never computed, since nfa.EpsilonClosure would index out of bounds on
// that sentinel.
func stepOnChar(n *nfa.NFA, subset []nfa.StateID, c rune) []nfa.StateID {
	var next []nfa.StateID
	for _, id := range subset {
		if target, ok := stateTransitions(n, id)[c]; ok {
			next = append(next, n.EpsilonClosure(target)...)
		} else if def := stateDefault(n, id); def != nfa.DeadState {
			next = append(next, n.EpsilonClosure(def)...)
		}
	}
	return canonicalize(next)
}

// stepOnDefault computes the canonicalized union of epsilon-closures of
// every state's default transition.
// As in stepOnChar, nfa.DeadState defaults contribute the empty set.
func stepOnDefault(n *nfa.NFA, subset []nfa.StateID) []nfa.StateID {
	var next []nfa.StateID
	for _, id := range subset {
		if def := stateDefault(n, id); def != nfa.DeadState {
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
