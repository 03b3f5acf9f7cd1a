package zen3

import (
	"math/bits"

	"github.com/UOR-Foundation/UOR-Framework/automaton"
)

// Lossless execution. Operations that destroy bits capture them in a
// complement state; the complement plus the successor recovers the
// predecessor exactly. Invertible operations need no complement and
// leave it zero.

// StepTracked applies wf and captures the complement. The state
// result is identical to Step.
func (e *Executor) StepTracked(s automaton.State, wf automaton.Wavefront) (automaton.State, automaton.Complement, error) {
	if err := wf.Validate(); err != nil {
		return automaton.State{}, automaton.Complement{}, err
	}
	var c automaton.Complement
	cs := (*automaton.State)(&c)

	p0, p1, p5 := wf.Ports.Port0, wf.Ports.Port1, wf.Ports.Port5
	switch {
	case p0.Code == automaton.OpShL:
		shlTracked(&s, cs, p0.N)
	case p0.Code == automaton.OpShR:
		shrTracked(&s, cs, p0.N)
	case p1.Code == automaton.OpAnd && p5.Code == automaton.OpAnd:
		andTracked(&s, cs)
	case p1.Code == automaton.OpOr && p5.Code == automaton.OpOr:
		orTracked(&s, cs)
	default:
		e.apply(&s, wf)
		return s, c, nil
	}

	e.gprTracked(&s, cs, wf)
	return s, c, nil
}

// StepInverse undoes one application of wf. Operations that destroy
// information consume the complement captured by StepTracked; pass nil
// for self-invertible wavefronts.
func (e *Executor) StepInverse(s automaton.State, wf automaton.Wavefront, c *automaton.Complement) (automaton.State, error) {
	if err := wf.Validate(); err != nil {
		return automaton.State{}, err
	}

	p0, p1, p5 := wf.Ports.Port0, wf.Ports.Port1, wf.Ports.Port5
	needsComp := p0.NeedsComplement() || p1.NeedsComplement() || p5.NeedsComplement()
	if needsComp && c == nil {
		return automaton.State{}, automaton.ErrMissingComplement{Op: destructiveOp(wf.Ports)}
	}

	var cs *automaton.State
	if c != nil {
		cs = (*automaton.State)(c)
	}

	switch {
	case p0.Code == automaton.OpShL:
		shlInverse(&s, cs, p0.N)
	case p0.Code == automaton.OpShR:
		shrInverse(&s, cs, p0.N)
	case p1.Code == automaton.OpAnd && p5.Code == automaton.OpAnd:
		andInverse(&s, cs)
	case p1.Code == automaton.OpOr && p5.Code == automaton.OpOr:
		orInverse(&s, cs)

	case p1.Code == automaton.OpXor && p5.Code == automaton.OpXor:
		xorWavefront(&s)
	case p1.Code == automaton.OpNot && p5.Code == automaton.OpNot:
		notWavefront(&s)
	case p1.Code == automaton.OpAdd && p5.Code == automaton.OpAdd:
		subWavefront(&s)
	case p1.Code == automaton.OpSub && p5.Code == automaton.OpSub:
		addWavefront(&s)
	case p0.Code == automaton.OpRotL:
		rotrWavefront(&s, p0.N)
	case p0.Code == automaton.OpRotR:
		rotlWavefront(&s, p0.N)
	case p1.Code == automaton.OpAesRound && p5.Code == automaton.OpAesRound:
		aesDecWavefront(&s)
	case p1.Code == automaton.OpAesRoundDec && p5.Code == automaton.OpAesRoundDec:
		aesWavefront(&s)

	case p0.Code == automaton.OpNop && p1.Code == automaton.OpNop && p5.Code == automaton.OpNop:
		return s, nil

	default:
		return automaton.State{}, automaton.ErrNotInvertible{Op: nonInvertibleOp(wf.Ports)}
	}

	e.gprInverse(&s, cs, wf)
	return s, nil
}

func destructiveOp(pa automaton.PortAssignment) automaton.Op {
	for _, op := range [3]automaton.Op{pa.Port0, pa.Port1, pa.Port5} {
		if op.NeedsComplement() {
			return op
		}
	}
	return pa.Port0
}

func nonInvertibleOp(pa automaton.PortAssignment) automaton.Op {
	for _, op := range [3]automaton.Op{pa.Port0, pa.Port1, pa.Port5} {
		if !op.Invertible() && !op.NeedsComplement() {
			return op
		}
	}
	return pa.Port5
}

// Tracked vector paths over all 8 destination registers.

// shlTracked captures the high n bits: comp = v >> (32-n).
func shlTracked(s, c *automaton.State, n uint8) {
	for i := 0; i < 8; i++ {
		for j := range s.Vec[i] {
			v := s.Vec[i][j]
			c.Vec[i][j] = srl32(v, 32-n)
			s.Vec[i][j] = sll32(v, n)
		}
	}
}

// shrTracked captures the low n bits: comp = v & ((1<<n)-1).
func shrTracked(s, c *automaton.State, n uint8) {
	mask := sll32(1, n) - 1
	for i := 0; i < 8; i++ {
		for j := range s.Vec[i] {
			v := s.Vec[i][j]
			c.Vec[i][j] = v & mask
			s.Vec[i][j] = srl32(v, n)
		}
	}
}

// andTracked captures the masked-out bits: comp = dest &^ operand.
func andTracked(s, c *automaton.State) {
	for i := 0; i < 8; i++ {
		for j := range s.Vec[i] {
			d, o := s.Vec[i][j], s.Vec[i+8][j]
			c.Vec[i][j] = d &^ o
			s.Vec[i][j] = d & o
		}
	}
}

// orTracked captures the overwritten bits: comp = ^dest & operand.
func orTracked(s, c *automaton.State) {
	for i := 0; i < 8; i++ {
		for j := range s.Vec[i] {
			d, o := s.Vec[i][j], s.Vec[i+8][j]
			c.Vec[i][j] = ^d & o
			s.Vec[i][j] = d | o
		}
	}
}

// Inverse vector paths.

// shlInverse reconstructs (result >> n) | (complement << (32-n)).
func shlInverse(s, c *automaton.State, n uint8) {
	for i := 0; i < 8; i++ {
		for j := range s.Vec[i] {
			s.Vec[i][j] = srl32(s.Vec[i][j], n) | sll32(c.Vec[i][j], 32-n)
		}
	}
}

// shrInverse reconstructs (result << n) | complement.
func shrInverse(s, c *automaton.State, n uint8) {
	for i := 0; i < 8; i++ {
		for j := range s.Vec[i] {
			s.Vec[i][j] = sll32(s.Vec[i][j], n) | c.Vec[i][j]
		}
	}
}

// andInverse reconstructs result | complement.
func andInverse(s, c *automaton.State) {
	for i := 0; i < 8; i++ {
		for j := range s.Vec[i] {
			s.Vec[i][j] |= c.Vec[i][j]
		}
	}
}

// orInverse reconstructs result &^ complement.
func orInverse(s, c *automaton.State) {
	for i := 0; i < 8; i++ {
		for j := range s.Vec[i] {
			s.Vec[i][j] &^= c.Vec[i][j]
		}
	}
}

// General register tracking. The operation selection matches
// gprWavefront; destructive operations store their complement in the
// Gpr side of the complement state.

func (e *Executor) gprTracked(s, c *automaton.State, wf automaton.Wavefront) {
	if wf.GprMask == 0 {
		return
	}
	op := wf.Ports.Port1
	if op.Code == automaton.OpNop {
		op = wf.Ports.Port5
	}
	for i := 0; i < 7; i++ {
		if (wf.GprMask>>i)&1 == 0 {
			continue
		}
		g, o := s.Gpr[i], s.Gpr[i+7]
		switch op.Code {
		case automaton.OpShL:
			c.Gpr[i] = g >> (64 - op.N)
		case automaton.OpShR:
			c.Gpr[i] = g & (1<<op.N - 1)
		case automaton.OpAnd:
			c.Gpr[i] = g &^ o
		case automaton.OpOr:
			c.Gpr[i] = ^g & o
		}
		s.Gpr[i] = gprOp(op, g, o)
	}
}

func (e *Executor) gprInverse(s, c *automaton.State, wf automaton.Wavefront) {
	if wf.GprMask == 0 {
		return
	}
	op := wf.Ports.Port1
	if op.Code == automaton.OpNop {
		op = wf.Ports.Port5
	}
	for i := 0; i < 7; i++ {
		if (wf.GprMask>>i)&1 == 0 {
			continue
		}
		g, o := s.Gpr[i], s.Gpr[i+7]
		switch op.Code {
		case automaton.OpXor:
			s.Gpr[i] = g ^ o
		case automaton.OpNot:
			s.Gpr[i] = ^g
		case automaton.OpAdd:
			s.Gpr[i] = g - o
		case automaton.OpSub:
			s.Gpr[i] = g + o
		case automaton.OpRotL:
			s.Gpr[i] = bits.RotateLeft64(g, -int(op.N))
		case automaton.OpRotR:
			s.Gpr[i] = bits.RotateLeft64(g, int(op.N))
		case automaton.OpShL:
			s.Gpr[i] = g>>op.N | c.Gpr[i]<<(64-op.N)
		case automaton.OpShR:
			s.Gpr[i] = g<<op.N | c.Gpr[i]
		case automaton.OpAnd:
			s.Gpr[i] = g | c.Gpr[i]
		case automaton.OpOr:
			s.Gpr[i] = g &^ c.Gpr[i]
		}
	}
}
