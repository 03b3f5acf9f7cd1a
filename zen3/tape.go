package zen3

import (
	"fmt"

	"github.com/UOR-Foundation/UOR-Framework/automaton"
	"github.com/UOR-Foundation/UOR-Framework/internal/ringbuf"
)

// Tape is a stepper with a bounded rewind window. Every step runs
// tracked, and the wavefront plus its complement are kept so the run
// can be undone step by step. Steps older than the window fall off
// and can no longer be rewound to.
type Tape struct {
	e   *Executor
	win ringbuf.RingBuf[tapeEntry]
}

type tapeEntry struct {
	wf automaton.Wavefront
	c  automaton.Complement
}

// NewTape wraps e with a rewind window of capacity steps.
func NewTape(e *Executor, capacity int) *Tape {
	return &Tape{e: e, win: ringbuf.New[tapeEntry](capacity)}
}

// Step applies wf and records it. Wavefronts whose inverse is not
// defined are rejected up front so the tape never holds a step it
// cannot undo.
func (t *Tape) Step(s automaton.State, wf automaton.Wavefront) (automaton.State, error) {
	if !reversibleWavefront(wf) {
		return automaton.State{}, automaton.ErrNotInvertible{Op: nonInvertibleOp(wf.Ports)}
	}
	out, c, err := t.e.StepTracked(s, wf)
	if err != nil {
		return automaton.State{}, err
	}
	t.win.PushBack(tapeEntry{wf: wf, c: c})
	return out, nil
}

// Depth is the number of steps currently available to Rewind.
func (t *Tape) Depth() int {
	return t.win.Len()
}

// Rewind undoes the most recent n steps.
func (t *Tape) Rewind(s automaton.State, n int) (automaton.State, error) {
	for i := 0; i < n; i++ {
		if t.win.Len() == 0 {
			return automaton.State{}, ErrTapeExhausted{Requested: n, Available: i}
		}
		ent := t.win.PopBack()
		var err error
		if s, err = t.e.StepInverse(s, ent.wf, &ent.c); err != nil {
			return automaton.State{}, err
		}
	}
	return s, nil
}

// ErrTapeExhausted reports a rewind past the window.
type ErrTapeExhausted struct {
	Requested, Available int
}

func (e ErrTapeExhausted) Error() string {
	return fmt.Sprintf("tape: rewind of %d steps exhausted the window after %d", e.Requested, e.Available)
}

// reversibleWavefront matches the shapes whose inverse restores the
// predecessor exactly: single-port rotates and shifts, and the uniform
// bitwise and arithmetic pairs. Mixed shapes are excluded because the
// inverse dispatch undoes only one of their ports, and the AES pair is
// excluded because aesdec with the same round key does not undo
// aesenc.
func reversibleWavefront(wf automaton.Wavefront) bool {
	p0, p1, p5 := wf.Ports.Port0, wf.Ports.Port1, wf.Ports.Port5
	if p1.Code == automaton.OpNop && p5.Code == automaton.OpNop {
		switch p0.Code {
		case automaton.OpNop,
			automaton.OpShL, automaton.OpShR,
			automaton.OpRotL, automaton.OpRotR:
			return true
		}
		return false
	}
	if p0.Code != automaton.OpNop || p1.Code != p5.Code {
		return false
	}
	switch p1.Code {
	case automaton.OpXor, automaton.OpNot, automaton.OpAdd, automaton.OpSub,
		automaton.OpAnd, automaton.OpOr:
		return true
	}
	return false
}
