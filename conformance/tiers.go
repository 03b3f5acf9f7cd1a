// Package conformance checks measured execution against the timing
// tiers and records the results in a journal.
package conformance

import (
	"fmt"
	"math"
	"time"

	"github.com/UOR-Foundation/UOR-Framework/automaton"
)

// Tier is a named performance envelope. Tiers are ordered; a higher
// tier implies every lower one.
type Tier int

const (
	// TierNonConformant is below every envelope.
	TierNonConformant Tier = iota
	// TierMinimum is the floor for a conforming executor.
	TierMinimum
	// TierOptimized is the tuned envelope.
	TierOptimized
	// TierTheoretical is the Zen 3 port-bound limit.
	TierTheoretical
)

func (t Tier) String() string {
	switch t {
	case TierNonConformant:
		return "non-conformant"
	case TierMinimum:
		return "minimum"
	case TierOptimized:
		return "optimized"
	case TierTheoretical:
		return "theoretical"
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// Conformant reports whether t meets at least the minimum envelope.
func (t Tier) Conformant() bool {
	return t >= TierMinimum
}

// Min returns the lower of two tiers.
func Min(a, b Tier) Tier {
	if b < a {
		return b
	}
	return a
}

// Target is the cycle budget for a tier: single wavefront latency, a
// 64-wavefront fused sequence, and sustained register file throughput.
type Target struct {
	WavefrontCycles int64
	SequenceCycles  int64
	BitsPerCycle    int64
}

func (t Tier) Target() Target {
	switch t {
	case TierMinimum:
		return Target{WavefrontCycles: 5, SequenceCycles: 200, BitsPerCycle: 512}
	case TierOptimized:
		return Target{WavefrontCycles: 3, SequenceCycles: 100, BitsPerCycle: 1600}
	case TierTheoretical:
		// 16 loads + 64 compute + 8 stores
		return Target{WavefrontCycles: 1, SequenceCycles: 88, BitsPerCycle: automaton.StateBits}
	}
	return Target{}
}

// FromWavefrontCycles classifies a single-wavefront latency.
func FromWavefrontCycles(cycles int64) Tier {
	switch {
	case cycles <= 0:
		return TierNonConformant
	case cycles <= 1:
		return TierTheoretical
	case cycles <= 3:
		return TierOptimized
	case cycles <= 5:
		return TierMinimum
	}
	return TierNonConformant
}

// FromSequenceCycles classifies a fused 64-wavefront sequence.
func FromSequenceCycles(cycles int64) Tier {
	switch {
	case cycles <= 0:
		return TierNonConformant
	case cycles <= 88:
		return TierTheoretical
	case cycles <= 100:
		return TierOptimized
	case cycles <= 200:
		return TierMinimum
	}
	return TierNonConformant
}

// FromBitsPerCycle classifies sustained throughput.
func FromBitsPerCycle(bpc int64) Tier {
	switch {
	case bpc >= automaton.StateBits:
		return TierTheoretical
	case bpc >= 1600:
		return TierOptimized
	case bpc >= 512:
		return TierMinimum
	}
	return TierNonConformant
}

// ErrViolation reports a measurement outside a tier's budget.
type ErrViolation struct {
	Tier     Tier
	Check    string
	Measured int64
	Target   int64
}

func (e ErrViolation) Error() string {
	return fmt.Sprintf("UOR CONFORMANCE VIOLATION: %s %s (measured %d, target %d)",
		e.Tier, e.Check, e.Measured, e.Target)
}

// ErrBadMeasurement reports a cycle count that cannot be validated.
type ErrBadMeasurement struct {
	Cycles int64
}

func (e ErrBadMeasurement) Error() string {
	return fmt.Sprintf("conformance: cannot validate %d cycles", e.Cycles)
}

// BitsPerCycle is the full register file amortized over the cycles
// one transition took. 4992 bits moved in 9 cycles is 554 bits/cycle.
func BitsPerCycle(cycles int64) int64 {
	if cycles <= 0 {
		return 0
	}
	return automaton.StateBits / cycles
}

// NsToCycles converts wall time to cycles at hz, rounding up.
func NsToCycles(d time.Duration, hz float64) int64 {
	return int64(math.Ceil(d.Seconds() * hz))
}

// BitsPerCycleFromNs is the throughput implied by a transition that
// took ns nanoseconds on a ghz-clocked core.
func BitsPerCycleFromNs(ns, ghz float64) int64 {
	return BitsPerCycle(int64(math.Ceil(ns * ghz)))
}

// ValidateWavefrontLatency checks a single-wavefront cycle count.
func ValidateWavefrontLatency(tier Tier, cycles int64) error {
	if cycles <= 0 {
		return ErrBadMeasurement{Cycles: cycles}
	}
	if tgt := tier.Target().WavefrontCycles; cycles > tgt {
		return ErrViolation{Tier: tier, Check: "wavefront latency", Measured: cycles, Target: tgt}
	}
	return nil
}

// ValidateSequenceLatency checks a fused 64-wavefront sequence and
// returns the per-wavefront cycle count.
func ValidateSequenceLatency(tier Tier, cycles int64) (int64, error) {
	if cycles <= 0 {
		return 0, ErrBadMeasurement{Cycles: cycles}
	}
	perWavefront := (cycles + 63) / 64
	if tgt := tier.Target().SequenceCycles; cycles > tgt {
		return perWavefront, ErrViolation{Tier: tier, Check: "sequence latency", Measured: cycles, Target: tgt}
	}
	return perWavefront, nil
}

// ValidateThroughput checks the bits/cycle implied by a single
// transition's cycle count.
func ValidateThroughput(tier Tier, cycles int64) error {
	if cycles <= 0 {
		return ErrBadMeasurement{Cycles: cycles}
	}
	bpc := BitsPerCycle(cycles)
	if tgt := tier.Target().BitsPerCycle; bpc < tgt {
		return ErrViolation{Tier: tier, Check: "throughput", Measured: bpc, Target: tgt}
	}
	return nil
}
