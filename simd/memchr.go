// Package simd provides a SWAR (SIMD-within-a-register) byte search used to
// accelerate the literal prefilter.
//
// github.com/coregx/coregex/simd dispatches at build-time between amd64
// assembly (AVX2/SSSE3) and a pure-Go SWAR fallback. This port keeps only
// the portable SWAR path: it has no
// platform-specific assembly, so every architecture gets the same
// IndexByte, and golang.org/x/sys/cpu is used purely to report what
// acceleration a production build of this engine *could* use, not to pick
// between code paths.
package simd

import (
	"encoding/binary"
	"math/bits"
)

// IndexByte returns the index of the first occurrence of needle in
// haystack, or -1 if it is absent. It implements the memchrGeneric
// technique: 8 bytes are compared at once via a broadcast-and-XOR trick,
// falling back to a byte-at-a-time scan for the remainder and for inputs too
// short to fill a word.
func IndexByte(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * 0x0101010101010101
	i := 0
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		xor := chunk ^ mask
		const lo8 = 0x0101010101010101
		const hi8 = 0x8080808080808080
		hasZero := (xor - lo8) & ^xor & hi8
		if hasZero != 0 {
			return i + bits.TrailingZeros64(hasZero)/8
		}
		i += 8
	}

	for i < n {
		if haystack[i] == needle {
			return i
		}
		i++
	}
	return -1
}
