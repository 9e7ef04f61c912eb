package tinyregex

// Variant selects which DFA construction strategy a compiled Regex uses.
// Both are built from the same NFA and accept the same language; they
// differ only in when the state graph is materialized and in the
// concurrency guarantees that follow from that (see Config's doc comment).
type Variant int

const (
	// Eager subset-constructs the full DFA at compile time. The result is
	// immutable and safe to share across goroutines.
	Eager Variant = iota
	// Lazy determinizes states on demand during scanning, caching each one
	// the first time it is visited. Cheaper to compile, but the DFA's
	// cache mutates on every previously unseen transition.
	Lazy
)

// Config controls how Compile builds a Regex.
//
// The zero Config is a valid, if suboptimal, configuration: Eager DFA with
// prefiltering disabled. Most callers should start from DefaultConfig and
// override individual fields instead.
type Config struct {
	// DFA selects the eager or lazy construction strategy.
	//
	// Eager-DFA matching is fully immutable and therefore trivially safe to
	// share across goroutines: multiple concurrent searches against the
	// same compiled Regex on different inputs are independent. Lazy-DFA
	// matching mutates the DFA's transition cache on each newly visited
	// state, so a Regex built with Lazy must not be used concurrently from
	// more than one goroutine without external synchronization around
	// every search call.
	DFA Variant

	// EnablePrefilter turns on literal-prefix prefiltering (package
	// prefilter) ahead of the DFA walk. It never changes which matches are
	// found — a miss only means the DFA is skipped for positions that
	// provably cannot start a match — so disabling it only costs time, not
	// correctness. Patterns with no usable literal prefix get no benefit
	// from it either way.
	EnablePrefilter bool

	// MaxDFAStates bounds how many states eager subset construction
	// (dfa.NewWithLimit) may allocate before CompileWithConfig fails with
	// an error, instead of letting a pathological class-heavy pattern
	// build an unbounded number of states. Zero means unlimited. Only the
	// Eager variant is subset-constructed up front, so this has no effect
	// when DFA == Lazy: a lazy DFA's state cache only ever grows to the
	// number of distinct subsets an actual search visits.
	MaxDFAStates int
}

// DefaultConfig returns the configuration Compile uses: an eager DFA with
// prefiltering enabled and no cap on DFA state count.
func DefaultConfig() Config {
	return Config{
		DFA:             Eager,
		EnablePrefilter: true,
		MaxDFAStates:    0,
	}
}
