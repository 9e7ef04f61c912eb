// Package conv provides safe integer conversion helpers for the automaton
// packages (nfa, dfa, dfa/lazy).
//
// State counters are plain ints while on the builder's call stack but are
// stored as the dense uint32 IDs nfa.StateID and dfa.StateID use. These
// helpers perform the narrowing with a bounds check instead of silently
// wrapping, since an overflow here means a pattern produced more states
// than the dense ID space can address.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
func IntToUint32(n int) uint32 {
	// Compare in uint so the check is correct on 32-bit platforms too,
	// where int cannot represent math.MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("tinyregex/internal/conv: int value out of uint32 range")
	}
	return uint32(n)
}
