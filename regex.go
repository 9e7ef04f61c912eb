// Package tinyregex is a small regular-expression engine: pattern text is
// tokenized, parsed into a tree, compiled into a Thompson NFA, and
// subset-constructed into a DFA (eager or lazy) that a generic matching
// core drives to answer "does it match", "first match", and "all matches".
//
// The dialect is deliberately restricted: concatenation, alternation,
// Kleene star, grouping, positive and negated character classes with
// ranges, the "any character" dot, and a handful of backslash escapes.
// There are no capture groups, no backreferences, no bounded repetition,
// no `+` or `?`, no anchors, and no case-insensitive or multiline modes.
//
// Example usage:
//
//	re, err := tinyregex.Compile(`[a-zA-Z][a-zA-Z0-9]*`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if m, ok := re.Find("hello114514"); ok {
//	    fmt.Println(m.AsStr())
//	}
package tinyregex

import (
	"iter"
	"unicode/utf8"

	"github.com/yuzuki-re/tinyregex/dfa"
	"github.com/yuzuki-re/tinyregex/dfa/lazy"
	"github.com/yuzuki-re/tinyregex/nfa"
	"github.com/yuzuki-re/tinyregex/prefilter"
	"github.com/yuzuki-re/tinyregex/syntax"
	"github.com/yuzuki-re/tinyregex/token"
)

// Regex is a compiled pattern. It is safe for concurrent use across
// goroutines when built with Config.DFA == Eager (the default); see
// Config's doc comment for the Lazy caveat.
type Regex struct {
	pattern string
	config  Config
	engine  engine
}

// Compile parses pattern and builds a Regex using DefaultConfig.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if pattern fails to compile. It is
// intended for patterns fixed at init time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// CompileWithConfig parses pattern and builds a Regex under config.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	tokens, err := token.Tokenize(pattern)
	if err != nil {
		return nil, &Error{Pattern: pattern, Err: err}
	}
	root, err := syntax.Parse(tokens)
	if err != nil {
		return nil, &Error{Pattern: pattern, Err: err}
	}

	n := nfa.Build(root)
	pf := prefilter.New(root)

	var eng engine
	switch config.DFA {
	case Lazy:
		eng = buildEngine(lazy.New(n), pf, config.EnablePrefilter)
	default:
		d, err := dfa.NewWithLimit(n, config.MaxDFAStates)
		if err != nil {
			return nil, &Error{Pattern: pattern, Err: err}
		}
		eng = buildEngine(d, pf, config.EnablePrefilter)
	}

	return &Regex{pattern: pattern, config: config, engine: eng}, nil
}

// String returns the source pattern text the Regex was compiled from.
func (r *Regex) String() string { return r.pattern }

// IsMatch reports whether s contains any match of the pattern.
func (r *Regex) IsMatch(s string) bool {
	return r.engine.isMatch(s)
}

// Find returns the leftmost-longest match in s, if any.
func (r *Regex) Find(s string) (Match, bool) {
	return r.engine.findAt(s, 0)
}

// FindAt is like Find but only considers matches starting at or after
// startByte, which must fall on a UTF-8 scalar boundary. Returned offsets
// are absolute into s.
func (r *Regex) FindAt(s string, startByte int) (Match, bool) {
	return r.engine.findAt(s, startByte)
}

// FindAll returns an iterator over every non-overlapping match in s, left
// to right. A zero-width match advances the cursor by one scalar so the
// iteration always terminates.
func (r *Regex) FindAll(s string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		cursor := 0
		for {
			m, ok := r.engine.findAt(s, cursor)
			if !ok {
				return
			}
			if !yield(m) {
				return
			}
			if m.IsEmpty() {
				next, size := nextScalarBoundary(s, m.end)
				if size == 0 {
					return
				}
				cursor = next
			} else {
				cursor = m.end
			}
		}
	}
}

// nextScalarBoundary returns the byte offset one scalar past i in s, and
// the size of the scalar advanced over (0 if i is already at or past the
// end of s).
func nextScalarBoundary(s string, i int) (next int, size int) {
	if i >= len(s) {
		return i, 0
	}
	for j := i + 1; j <= len(s); j++ {
		if j == len(s) || utf8.RuneStart(s[j]) {
			return j, j - i
		}
	}
	return len(s), len(s) - i
}
