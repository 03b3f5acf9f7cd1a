// Package zen3 implements the automaton backend for Zen 3 class
// x86-64 cores. The backend requires AVX2, SHA-NI, and AES-NI; there
// is no software fallback. Capability failures are fatal.
package zen3

import (
	"fmt"
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// Features is the capability token for the backend. Constructing an
// Executor consumes one; a token with missing features panics.
type Features struct {
	AVX2  bool
	SHANI bool
	AESNI bool
}

// Detect queries the running CPU.
func Detect() Features {
	return Features{
		AVX2:  cpuid.CPU.Has(cpuid.AVX2),
		SHANI: cpuid.CPU.Has(cpuid.SHA),
		AESNI: cpuid.CPU.Has(cpuid.AESNI),
	}
}

// AllFeatures returns a token with every capability present,
// for callers that have already validated the host.
func AllFeatures() Features {
	return Features{AVX2: true, SHANI: true, AESNI: true}
}

// AllPresent reports whether every required feature is available.
func (f Features) AllPresent() bool {
	return f.AVX2 && f.SHANI && f.AESNI
}

// Missing returns the names of absent features.
func (f Features) Missing() []string {
	var out []string
	if !f.AVX2 {
		out = append(out, "AVX2")
	}
	if !f.SHANI {
		out = append(out, "SHA-NI")
	}
	if !f.AESNI {
		out = append(out, "AES-NI")
	}
	return out
}

// RequireAll panics if any feature is missing. Running without the
// full set cannot meet the timing bounds, so there is nothing to
// degrade to.
func (f Features) RequireAll() {
	if !f.AllPresent() {
		panic(fmt.Sprintf("UOR CONFORMANCE VIOLATION: missing CPU features: %s",
			strings.Join(f.Missing(), ", ")))
	}
}
