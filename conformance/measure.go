package conformance

import (
	"context"
	"time"

	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"github.com/UOR-Foundation/UOR-Framework/automaton"
)

const (
	// wavefronts timed back to back for the latency figure
	wavefrontIters = 1 << 16
	// fused sequence repetitions
	sequenceIters = 1 << 8
)

// Report holds the cycle figures from one measurement run.
type Report struct {
	HostHz          float64
	WavefrontCycles int64
	SequenceCycles  int64
	BitsPerCycle    int64
}

// Validate checks every figure against the tier. The first violation
// wins.
func (r Report) Validate(tier Tier) error {
	if err := ValidateWavefrontLatency(tier, r.WavefrontCycles); err != nil {
		return err
	}
	if _, err := ValidateSequenceLatency(tier, r.SequenceCycles); err != nil {
		return err
	}
	return ValidateThroughput(tier, r.WavefrontCycles)
}

// Tier classifies the report: the lowest tier across all three
// figures.
func (r Report) Tier() Tier {
	t := FromWavefrontCycles(r.WavefrontCycles)
	t = Min(t, FromSequenceCycles(r.SequenceCycles))
	return Min(t, FromBitsPerCycle(r.BitsPerCycle))
}

// Measure times be on the standard probes: single xor wavefronts for
// latency and throughput, and a fused 64-wavefront sequence. hz is
// the sustained clock of the host core.
func Measure(ctx context.Context, be automaton.Backend, hz float64) (*Report, error) {
	s := automaton.State{}
	wf := automaton.XorWavefront()

	start := time.Now()
	s, err := be.StepN(ctx, s, wf, wavefrontIters)
	if err != nil {
		return nil, err
	}
	perWavefront := time.Since(start) / wavefrontIters

	seq := automaton.NewProgram().
		Extend(automaton.Sha256Compress()).
		Extend(automaton.Sha256Compress()).
		Build()
	start = time.Now()
	for i := 0; i < sequenceIters; i++ {
		if s, err = be.RunFused(ctx, s, seq); err != nil {
			return nil, err
		}
	}
	perSequence := time.Since(start) / sequenceIters

	r := &Report{
		HostHz:          hz,
		WavefrontCycles: NsToCycles(perWavefront, hz),
		SequenceCycles:  NsToCycles(perSequence, hz),
	}
	r.BitsPerCycle = BitsPerCycle(r.WavefrontCycles)
	logctx.Info(ctx, "measured",
		zap.Int64("wavefront_cycles", r.WavefrontCycles),
		zap.Int64("sequence_cycles", r.SequenceCycles),
		zap.Int64("bits_per_cycle", r.BitsPerCycle))
	return r, nil
}
