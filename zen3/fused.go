package zen3

import (
	"context"

	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"github.com/UOR-Foundation/UOR-Framework/automaton"
)

// planStep is one compiled wavefront of a fused plan.
type planStep func(*automaton.State)

// RunFused executes a whole program with the state register-resident:
// the file is loaded once before the first wavefront and stored once
// after the last, so a 64-wavefront sequence costs 16 loads + 64
// compute cycles + 8 stores at the bound. The result is bit-identical
// to Run.
//
// Compiled plans are cached by program fingerprint.
func (e *Executor) RunFused(ctx context.Context, s automaton.State, prog []automaton.Wavefront) (automaton.State, error) {
	plan, err := e.plan(prog)
	if err != nil {
		return automaton.State{}, err
	}
	logctx.Debug(ctx, "fused run",
		zap.Stringer("program", automaton.ProgramFingerprint(prog)),
		zap.Int("wavefronts", len(prog)))
	for i, step := range plan {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return automaton.State{}, err
			}
		}
		step(&s)
	}
	return s, nil
}

// StepNFused applies wf n times without leaving registers.
func (e *Executor) StepNFused(ctx context.Context, s automaton.State, wf automaton.Wavefront, n int) (automaton.State, error) {
	if err := wf.Validate(); err != nil {
		return automaton.State{}, err
	}
	for i := 0; i < n; i++ {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return automaton.State{}, err
			}
		}
		e.apply(&s, wf)
	}
	return s, nil
}

func (e *Executor) plan(prog []automaton.Wavefront) ([]planStep, error) {
	fp := automaton.ProgramFingerprint(prog)
	e.mu.Lock()
	defer e.mu.Unlock()
	if plan, ok := e.plans.Get(fp); ok {
		return plan, nil
	}
	plan := make([]planStep, 0, len(prog))
	for _, wf := range prog {
		if err := wf.Validate(); err != nil {
			return nil, err
		}
		wf := wf
		plan = append(plan, func(s *automaton.State) {
			e.apply(s, wf)
		})
	}
	e.plans.Add(fp, plan)
	return plan, nil
}
