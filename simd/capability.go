package simd

import "golang.org/x/sys/cpu"

// Capability reports what vector acceleration the running CPU offers. This
// engine's own IndexByte never branches on it — it is a single portable SWAR
// routine — but cmd/regrep surfaces it with -verbose so operators can tell
// whether a future assembly-accelerated build of this package would help on
// their hardware, the same information an hasAVX2-style flag gates
// code paths on.
type Capability struct {
	AVX2  bool
	SSE42 bool
	NEON  bool
}

// DetectCapability inspects the current CPU's feature flags.
func DetectCapability() Capability {
	return Capability{
		AVX2:  cpu.X86.HasAVX2,
		SSE42: cpu.X86.HasSSE42,
		NEON:  cpu.ARM64.HasASIMD,
	}
}
