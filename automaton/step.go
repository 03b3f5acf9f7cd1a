package automaton

import "context"

// Complement captures the bits a wavefront destroys. Re-combining a
// complement with the successor state recovers the predecessor exactly.
type Complement State

// Stepper is the base capability: apply wavefronts one at a time.
// Run folds Step over the program and must equal the step-by-step
// result bit for bit.
type Stepper interface {
	Step(s State, wf Wavefront) (State, error)
	StepN(ctx context.Context, s State, wf Wavefront, n int) (State, error)
	Run(ctx context.Context, s State, prog []Wavefront) (State, error)
}

// LosslessStepper executes wavefronts reversibly. StepTracked returns
// the successor state and the complement of destroyed information;
// StepInverse undoes a step, consuming the complement when the
// operation requires one (pass nil otherwise).
type LosslessStepper interface {
	StepTracked(s State, wf Wavefront) (State, Complement, error)
	StepInverse(s State, wf Wavefront, c *Complement) (State, error)
}

// FusedStepper keeps the state register-resident across a whole
// program. RunFused is bit-identical to Run; only the load and store
// overhead is amortized, one load of the file before the first
// wavefront and one store after the last.
type FusedStepper interface {
	RunFused(ctx context.Context, s State, prog []Wavefront) (State, error)
	StepNFused(ctx context.Context, s State, wf Wavefront, n int) (State, error)
}

// Backend is the full capability set a conformant executor provides.
type Backend interface {
	Stepper
	LosslessStepper
	FusedStepper
}
