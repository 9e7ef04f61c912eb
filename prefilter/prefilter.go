// Package prefilter wraps a pattern's literal prefix (package literal) and
// simd.IndexByte into a candidate-start-position scan that runs ahead of
// the DFA.
//
// A prefilter never changes match semantics: it only tells the matcher
// where a match COULD start, purely by checking whether the first byte of
// the candidate literal is present. The DFA/lazy-DFA walk starting at that
// candidate is always still run in full and is solely authoritative over
// whether a match exists; a prefilter miss never suppresses a real match
// because it is only ever used to skip positions that cannot possibly be
// the first scalar of the literal. This mirrors the
// github.com/coregx/coregex/prefilter.Prefilter contract minus
// IsComplete/HeapBytes/the Teddy and Aho-Corasick multi-literal strategies,
// none of which this dialect's single-prefix extraction needs.
package prefilter

import (
	"github.com/yuzuki-re/tinyregex/literal"
	"github.com/yuzuki-re/tinyregex/simd"
	"github.com/yuzuki-re/tinyregex/syntax"
)

// Prefilter finds candidate start positions for a pattern's literal prefix.
type Prefilter struct {
	prefix     string
	firstByte  byte
	hasLiteral bool
}

// New builds a Prefilter from root's AST. If root has no usable literal
// prefix, the returned Prefilter's Find always reports every position as a
// candidate (it degrades to a no-op, never to a false negative).
func New(root *syntax.Node) *Prefilter {
	prefix := literal.Prefix(root)
	if prefix == "" {
		return &Prefilter{}
	}
	return &Prefilter{
		prefix:     prefix,
		firstByte:  prefix[0],
		hasLiteral: true,
	}
}

// HasLiteral reports whether this Prefilter has a usable literal prefix. A
// caller can use this to skip prefilter bookkeeping entirely for patterns
// like "a*" or "[ab]" that start unanchored.
func (p *Prefilter) HasLiteral() bool { return p.hasLiteral }

// Prefix returns the literal prefix this Prefilter was built from, or "" if
// it has none.
func (p *Prefilter) Prefix() string { return p.prefix }

// Find returns the index of the first byte at or after start in haystack
// that could begin a match, or -1 if none exists. When there is no literal
// prefix it returns start unconditionally (every position is a candidate).
func (p *Prefilter) Find(haystack []byte, start int) int {
	if !p.hasLiteral {
		if start > len(haystack) {
			return -1
		}
		return start
	}
	if start >= len(haystack) {
		return -1
	}
	rel := simd.IndexByte(haystack[start:], p.firstByte)
	if rel == -1 {
		return -1
	}
	return start + rel
}
