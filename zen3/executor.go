package zen3

import (
	"context"
	"math/bits"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"github.com/UOR-Foundation/UOR-Framework/automaton"
)

// destination registers are bits 0-7, paired with operands in bits 8-15
const fullDestMask = 0x00FF

var _ automaton.Backend = (*Executor)(nil)

// Executor applies wavefronts with Zen 3 port semantics. It implements
// automaton.Backend. The zero Executor is not usable; construct with
// New or NewUnchecked.
type Executor struct {
	mu    sync.Mutex
	plans *simplelru.LRU[automaton.Fingerprint, []planStep]
}

// New validates the capability token and returns an executor.
// It panics if any required CPU feature is missing.
func New(f Features) *Executor {
	f.RequireAll()
	return NewUnchecked()
}

// NewUnchecked skips capability validation. Callers must have already
// validated the host.
func NewUnchecked() *Executor {
	plans, err := simplelru.NewLRU[automaton.Fingerprint, []planStep](100, nil)
	if err != nil {
		panic(err)
	}
	return &Executor{plans: plans}
}

// Step applies one wavefront and returns the successor state.
func (e *Executor) Step(s automaton.State, wf automaton.Wavefront) (automaton.State, error) {
	if err := wf.Validate(); err != nil {
		return automaton.State{}, err
	}
	e.apply(&s, wf)
	return s, nil
}

// StepN applies wf n times.
func (e *Executor) StepN(ctx context.Context, s automaton.State, wf automaton.Wavefront, n int) (automaton.State, error) {
	if err := wf.Validate(); err != nil {
		return automaton.State{}, err
	}
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return automaton.State{}, err
		}
		e.apply(&s, wf)
	}
	return s, nil
}

// Run folds Step over the program.
func (e *Executor) Run(ctx context.Context, s automaton.State, prog []automaton.Wavefront) (automaton.State, error) {
	for _, wf := range prog {
		if err := wf.Validate(); err != nil {
			return automaton.State{}, err
		}
	}
	for i, wf := range prog {
		if err := ctx.Err(); err != nil {
			return automaton.State{}, err
		}
		e.apply(&s, wf)
		if i > 0 && i%4096 == 0 {
			logctx.Debug(ctx, "run progress", zap.Int("wavefront", i), zap.Int("total", len(prog)))
		}
	}
	return s, nil
}

// apply dispatches on the port assignment. Uniform assignments take
// the wide paths over all 8 register pairs; everything else falls
// through to the generic 3-port path.
func (e *Executor) apply(s *automaton.State, wf automaton.Wavefront) {
	destMask := wf.VecMask & fullDestMask
	if destMask != fullDestMask && destMask != 0 {
		e.maskedWavefront(s, wf)
		e.gprWavefront(s, wf)
		return
	}

	p0, p1, p5 := wf.Ports.Port0, wf.Ports.Port1, wf.Ports.Port5
	switch {
	case p0.Code == automaton.OpNop && p1.Code == automaton.OpXor && p5.Code == automaton.OpXor:
		xorWavefront(s)
	case p0.Code == automaton.OpNop && p1.Code == automaton.OpAnd && p5.Code == automaton.OpAnd:
		andWavefront(s)
	case p0.Code == automaton.OpNop && p1.Code == automaton.OpOr && p5.Code == automaton.OpOr:
		orWavefront(s)
	case p0.Code == automaton.OpNop && p1.Code == automaton.OpNot && p5.Code == automaton.OpNot:
		notWavefront(s)
	case p0.Code == automaton.OpNop && p1.Code == automaton.OpAdd && p5.Code == automaton.OpAdd:
		addWavefront(s)
	case p0.Code == automaton.OpNop && p1.Code == automaton.OpSub && p5.Code == automaton.OpSub:
		subWavefront(s)

	case p0.Code == automaton.OpRotL && p1.Code == automaton.OpNop && p5.Code == automaton.OpNop:
		rotlWavefront(s, p0.N)
	case p0.Code == automaton.OpRotR && p1.Code == automaton.OpNop && p5.Code == automaton.OpNop:
		rotrWavefront(s, p0.N)
	case p0.Code == automaton.OpShL && p1.Code == automaton.OpNop && p5.Code == automaton.OpNop:
		shlWavefront(s, p0.N)
	case p0.Code == automaton.OpShR && p1.Code == automaton.OpNop && p5.Code == automaton.OpNop:
		shrWavefront(s, p0.N)

	case p0.Code == automaton.OpRotR && p1.Code == automaton.OpXor && p5.Code == automaton.OpXor:
		rotateXorWavefront(s, p0.N)
	case p0.Code == automaton.OpShR && p1.Code == automaton.OpXor && p5.Code == automaton.OpXor:
		shiftXorWavefront(s, p0.N)

	case p0.Code == automaton.OpSha256Round:
		sha256Wavefront(s)
	case p1.Code == automaton.OpSha256Msg1 && p5.Code == automaton.OpSha256Msg2:
		sha256MsgWavefront(s)
	case p1.Code == automaton.OpAesRound && p5.Code == automaton.OpAesRound:
		aesWavefront(s)
	case p1.Code == automaton.OpAesRoundDec && p5.Code == automaton.OpAesRoundDec:
		aesDecWavefront(s)

	case p5.Code == automaton.OpShuffle:
		shuffleWavefront(s)
	case p5.Code == automaton.OpPermute:
		permuteWavefront(s)

	default:
		genericWavefront(s, wf.Ports)
	}

	e.gprWavefront(s, wf)
}

// Wide ALU paths: Vec[i] op= Vec[i+8] for i in 0..8, both issue ports
// saturated.

func xorWavefront(s *automaton.State) {
	for i := 0; i < 8; i++ {
		for j := range s.Vec[i] {
			s.Vec[i][j] ^= s.Vec[i+8][j]
		}
	}
}

func andWavefront(s *automaton.State) {
	for i := 0; i < 8; i++ {
		for j := range s.Vec[i] {
			s.Vec[i][j] &= s.Vec[i+8][j]
		}
	}
}

func orWavefront(s *automaton.State) {
	for i := 0; i < 8; i++ {
		for j := range s.Vec[i] {
			s.Vec[i][j] |= s.Vec[i+8][j]
		}
	}
}

func notWavefront(s *automaton.State) {
	for i := 0; i < 8; i++ {
		for j := range s.Vec[i] {
			s.Vec[i][j] = ^s.Vec[i][j]
		}
	}
}

func addWavefront(s *automaton.State) {
	for i := 0; i < 8; i++ {
		for j := range s.Vec[i] {
			s.Vec[i][j] += s.Vec[i+8][j]
		}
	}
}

func subWavefront(s *automaton.State) {
	for i := 0; i < 8; i++ {
		for j := range s.Vec[i] {
			s.Vec[i][j] -= s.Vec[i+8][j]
		}
	}
}

// rotr32 matches the vector emulation (x >> n) | (x << (32-n)),
// where shifts of 32 or more produce zero.
func rotr32(x uint32, n uint8) uint32 {
	return srl32(x, n) | sll32(x, 32-n)
}

func rotl32(x uint32, n uint8) uint32 {
	return sll32(x, n) | srl32(x, 32-n)
}

func srl32(x uint32, n uint8) uint32 {
	if n >= 32 {
		return 0
	}
	return x >> n
}

func sll32(x uint32, n uint8) uint32 {
	if n >= 32 {
		return 0
	}
	return x << n
}

func rotlWavefront(s *automaton.State, n uint8) {
	for i := 0; i < 8; i++ {
		for j := range s.Vec[i] {
			s.Vec[i][j] = rotl32(s.Vec[i][j], n)
		}
	}
}

func rotrWavefront(s *automaton.State, n uint8) {
	for i := 0; i < 8; i++ {
		for j := range s.Vec[i] {
			s.Vec[i][j] = rotr32(s.Vec[i][j], n)
		}
	}
}

func shlWavefront(s *automaton.State, n uint8) {
	for i := 0; i < 8; i++ {
		for j := range s.Vec[i] {
			s.Vec[i][j] = sll32(s.Vec[i][j], n)
		}
	}
}

func shrWavefront(s *automaton.State, n uint8) {
	for i := 0; i < 8; i++ {
		for j := range s.Vec[i] {
			s.Vec[i][j] = srl32(s.Vec[i][j], n)
		}
	}
}

func shuffleWavefront(s *automaton.State) {
	for i := 0; i < 8; i++ {
		s.Vec[i] = shuffleReg(s.Vec[i], s.Vec[i+8])
	}
}

func permuteWavefront(s *automaton.State) {
	for i := 0; i < 8; i++ {
		s.Vec[i] = permuteReg(s.Vec[i], s.Vec[i+8])
	}
}

// rotateXorWavefront is the Σ-function shape: port 0 rotates v0 while
// ports 1 and 5 xor. v1 ^= v8, then v0 = rotr(v0, n) ^ v9.
func rotateXorWavefront(s *automaton.State, n uint8) {
	for j := range s.Vec[0] {
		s.Vec[1][j] ^= s.Vec[8][j]
		s.Vec[0][j] = rotr32(s.Vec[0][j], n) ^ s.Vec[9][j]
	}
}

// shiftXorWavefront is the σ-function shape: v0 >>= n, v1 ^= v8.
func shiftXorWavefront(s *automaton.State, n uint8) {
	for j := range s.Vec[0] {
		s.Vec[0][j] = srl32(s.Vec[0][j], n)
		s.Vec[1][j] ^= s.Vec[8][j]
	}
}

// genericWavefront handles arbitrary port combinations: port 0 writes
// v0, port 1 writes v1 with operand v9, port 5 writes v2 with
// operand v10.
func genericWavefront(s *automaton.State, ports automaton.PortAssignment) {
	r0 := s.Vec[0]
	switch ports.Port0.Code {
	case automaton.OpRotR:
		for j := range r0 {
			r0[j] = rotr32(r0[j], ports.Port0.N)
		}
	case automaton.OpRotL:
		for j := range r0 {
			r0[j] = rotl32(r0[j], ports.Port0.N)
		}
	case automaton.OpShR:
		for j := range r0 {
			r0[j] = srl32(r0[j], ports.Port0.N)
		}
	case automaton.OpShL:
		for j := range r0 {
			r0[j] = sll32(r0[j], ports.Port0.N)
		}
	}

	r1 := s.Vec[1]
	switch ports.Port1.Code {
	case automaton.OpXor:
		for j := range r1 {
			r1[j] ^= s.Vec[9][j]
		}
	case automaton.OpAnd:
		for j := range r1 {
			r1[j] &= s.Vec[9][j]
		}
	case automaton.OpOr:
		for j := range r1 {
			r1[j] |= s.Vec[9][j]
		}
	case automaton.OpNot:
		for j := range r1 {
			r1[j] = ^r1[j]
		}
	case automaton.OpAdd:
		for j := range r1 {
			r1[j] += s.Vec[9][j]
		}
	case automaton.OpSub:
		for j := range r1 {
			r1[j] -= s.Vec[9][j]
		}
	}

	r2 := s.Vec[2]
	switch ports.Port5.Code {
	case automaton.OpXor:
		for j := range r2 {
			r2[j] ^= s.Vec[10][j]
		}
	case automaton.OpAnd:
		for j := range r2 {
			r2[j] &= s.Vec[10][j]
		}
	case automaton.OpOr:
		for j := range r2 {
			r2[j] |= s.Vec[10][j]
		}
	case automaton.OpNot:
		for j := range r2 {
			r2[j] = ^r2[j]
		}
	case automaton.OpAdd:
		for j := range r2 {
			r2[j] += s.Vec[10][j]
		}
	case automaton.OpSub:
		for j := range r2 {
			r2[j] -= s.Vec[10][j]
		}
	case automaton.OpShuffle:
		r2 = shuffleReg(s.Vec[2], s.Vec[10])
	case automaton.OpPermute:
		r2 = permuteReg(s.Vec[2], s.Vec[10])
	}

	s.Vec[0] = r0
	s.Vec[1] = r1
	s.Vec[2] = r2
}

// maskedWavefront derives a single operation from the ports (port 0
// shifts and rotates win, then port 1, then port 5) and applies it to
// the destination registers selected by the low 8 mask bits.
func (e *Executor) maskedWavefront(s *automaton.State, wf automaton.Wavefront) {
	destMask := wf.VecMask & fullDestMask
	op := wf.Ports.Port0
	switch op.Code {
	case automaton.OpRotR, automaton.OpRotL, automaton.OpShR, automaton.OpShL:
	default:
		if wf.Ports.Port1.Code != automaton.OpNop {
			op = wf.Ports.Port1
		} else {
			op = wf.Ports.Port5
		}
	}

	for i := 0; i < 8; i++ {
		if (destMask>>i)&1 == 0 {
			continue
		}
		d, o := s.Vec[i], s.Vec[i+8]
		switch op.Code {
		case automaton.OpXor:
			for j := range d {
				d[j] ^= o[j]
			}
		case automaton.OpAnd:
			for j := range d {
				d[j] &= o[j]
			}
		case automaton.OpOr:
			for j := range d {
				d[j] |= o[j]
			}
		case automaton.OpNot:
			for j := range d {
				d[j] = ^d[j]
			}
		case automaton.OpAdd:
			for j := range d {
				d[j] += o[j]
			}
		case automaton.OpSub:
			for j := range d {
				d[j] -= o[j]
			}
		case automaton.OpRotR:
			for j := range d {
				d[j] = rotr32(d[j], op.N)
			}
		case automaton.OpRotL:
			for j := range d {
				d[j] = rotl32(d[j], op.N)
			}
		case automaton.OpShR:
			for j := range d {
				d[j] = srl32(d[j], op.N)
			}
		case automaton.OpShL:
			for j := range d {
				d[j] = sll32(d[j], op.N)
			}
		case automaton.OpShuffle:
			d = shuffleReg(d, o)
		case automaton.OpPermute:
			d = permuteReg(d, o)
		}
		s.Vec[i] = d
	}
}

// gprWavefront runs the general register file: Gpr[i] op= Gpr[i+7]
// for the seven pairs (0,7)..(6,13) under the mask, 448 extra bits
// per wavefront. The operation comes from port 1, falling back to
// port 5.
func (e *Executor) gprWavefront(s *automaton.State, wf automaton.Wavefront) {
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
		s.Gpr[i] = gprOp(op, s.Gpr[i], s.Gpr[i+7])
	}
}

func gprOp(op automaton.Op, g, o uint64) uint64 {
	switch op.Code {
	case automaton.OpXor:
		return g ^ o
	case automaton.OpAnd:
		return g & o
	case automaton.OpOr:
		return g | o
	case automaton.OpNot:
		return ^g
	case automaton.OpAdd:
		return g + o
	case automaton.OpSub:
		return g - o
	case automaton.OpRotL:
		return bits.RotateLeft64(g, int(op.N))
	case automaton.OpRotR:
		return bits.RotateLeft64(g, -int(op.N))
	case automaton.OpShL:
		return g << op.N
	case automaton.OpShR:
		return g >> op.N
	}
	return g
}

// shuffleReg is the byte shuffle within each 128-bit half: a high
// index bit clears the byte, otherwise the low 4 bits select within
// the half.
func shuffleReg(a, idx [automaton.VecLanes]uint32) [automaton.VecLanes]uint32 {
	ab := regBytes(a)
	ib := regBytes(idx)
	var out [32]byte
	for half := 0; half < 2; half++ {
		base := half * 16
		for i := 0; i < 16; i++ {
			sel := ib[base+i]
			if sel&0x80 == 0 {
				out[base+i] = ab[base+int(sel&0x0F)]
			}
		}
	}
	return regFromBytes(out)
}

// permuteReg is the dword permute across the full register: result
// lane j = a[idx[j] mod 8].
func permuteReg(a, idx [automaton.VecLanes]uint32) (out [automaton.VecLanes]uint32) {
	for j := range out {
		out[j] = a[idx[j]&7]
	}
	return out
}

func regBytes(a [automaton.VecLanes]uint32) (out [32]byte) {
	for j, lane := range a {
		out[j*4] = byte(lane)
		out[j*4+1] = byte(lane >> 8)
		out[j*4+2] = byte(lane >> 16)
		out[j*4+3] = byte(lane >> 24)
	}
	return out
}

func regFromBytes(b [32]byte) (out [automaton.VecLanes]uint32) {
	for j := range out {
		out[j] = uint32(b[j*4]) | uint32(b[j*4+1])<<8 | uint32(b[j*4+2])<<16 | uint32(b[j*4+3])<<24
	}
	return out
}
