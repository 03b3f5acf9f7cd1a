package automaton

import "fmt"

// OpCode enumerates the wavefront operations.
type OpCode uint8

const (
	OpNop OpCode = iota
	OpXor
	OpAnd
	OpOr
	OpNot
	OpAdd
	OpSub
	OpRotL
	OpRotR
	OpShL
	OpShR
	OpSha256Round
	OpSha256Msg1
	OpSha256Msg2
	OpAesRound
	OpAesRoundDec
	OpShuffle
	OpPermute
)

var opNames = map[OpCode]string{
	OpNop:         "nop",
	OpXor:         "xor",
	OpAnd:         "and",
	OpOr:          "or",
	OpNot:         "not",
	OpAdd:         "add",
	OpSub:         "sub",
	OpRotL:        "rotl",
	OpRotR:        "rotr",
	OpShL:         "shl",
	OpShR:         "shr",
	OpSha256Round: "sha256rnds2",
	OpSha256Msg1:  "sha256msg1",
	OpSha256Msg2:  "sha256msg2",
	OpAesRound:    "aesenc",
	OpAesRoundDec: "aesdec",
	OpShuffle:     "shuffle",
	OpPermute:     "permute",
}

// Op is one operation issued on one port during a wavefront.
// N carries the distance for rotates and shifts and is zero otherwise.
type Op struct {
	Code OpCode
	N    uint8
}

func Nop() Op { return Op{} }
func Xor() Op { return Op{Code: OpXor} }
func And() Op { return Op{Code: OpAnd} }
func Or() Op { return Op{Code: OpOr} }
func Not() Op { return Op{Code: OpNot} }
func Add() Op { return Op{Code: OpAdd} }
func Sub() Op { return Op{Code: OpSub} }
func RotL(n uint8) Op { return Op{Code: OpRotL, N: n} }
func RotR(n uint8) Op { return Op{Code: OpRotR, N: n} }
func ShL(n uint8) Op { return Op{Code: OpShL, N: n} }
func ShR(n uint8) Op { return Op{Code: OpShR, N: n} }
func Sha256Round() Op { return Op{Code: OpSha256Round} }
func Sha256Msg1() Op { return Op{Code: OpSha256Msg1} }
func Sha256Msg2() Op { return Op{Code: OpSha256Msg2} }
func AesRound() Op { return Op{Code: OpAesRound} }
func AesRoundDec() Op { return Op{Code: OpAesRoundDec} }
func Shuffle() Op { return Op{Code: OpShuffle} }
func Permute() Op { return Op{Code: OpPermute} }

func (o Op) String() string {
	name := opNames[o.Code]
	switch o.Code {
	case OpRotL, OpRotR, OpShL, OpShR:
		return fmt.Sprintf("%s(%d)", name, o.N)
	}
	return name
}

// Port0 reports whether o can issue on port 0 (rotate, shift, SHA round).
func (o Op) Port0() bool {
	switch o.Code {
	case OpNop, OpRotL, OpRotR, OpShL, OpShR, OpSha256Round:
		return true
	}
	return false
}

// Port1 reports whether o can issue on port 1 (ALU, AES, SHA schedule).
func (o Op) Port1() bool {
	switch o.Code {
	case OpNop, OpXor, OpAnd, OpOr, OpNot, OpAdd, OpSub,
		OpAesRound, OpAesRoundDec, OpSha256Msg1, OpSha256Msg2:
		return true
	}
	return false
}

// Port5 reports whether o can issue on port 5 (the port 1 set plus the
// byte and dword permutes).
func (o Op) Port5() bool {
	return o.Port1() || o.Code == OpShuffle || o.Code == OpPermute
}

// Invertible reports whether a step of o undoes with no extra
// information: re-application, the mirror operation, or the opposite
// rotation. Operations that destroy bits invert only through their
// complement and report false here.
func (o Op) Invertible() bool {
	switch o.Code {
	case OpNop, OpXor, OpNot, OpAdd, OpSub, OpRotL, OpRotR,
		OpAesRound, OpAesRoundDec, OpShuffle, OpPermute:
		return true
	}
	return false
}

// NeedsComplement reports whether o destroys information that must be
// captured for lossless execution.
func (o Op) NeedsComplement() bool {
	switch o.Code {
	case OpShL, OpShR, OpAnd, OpOr, OpSha256Round:
		return true
	}
	return false
}

// PortAssignment is the operation issued on each of the three ports
// during a single wavefront.
type PortAssignment struct {
	Port0 Op
	Port1 Op
	Port5 Op
}

// Validate returns an error naming the first port whose operation
// cannot issue there.
func (pa PortAssignment) Validate() error {
	if !pa.Port0.Port0() {
		return ErrBadPortOp{Port: 0, Op: pa.Port0}
	}
	if !pa.Port1.Port1() {
		return ErrBadPortOp{Port: 1, Op: pa.Port1}
	}
	if !pa.Port5.Port5() {
		return ErrBadPortOp{Port: 5, Op: pa.Port5}
	}
	return nil
}

// Uniform port assignments issue the same ALU operation on ports 1 and 5.

func NopPorts() PortAssignment { return PortAssignment{} }

func AllXor() PortAssignment { return PortAssignment{Port1: Xor(), Port5: Xor()} }
func AllAnd() PortAssignment { return PortAssignment{Port1: And(), Port5: And()} }
func AllOr() PortAssignment  { return PortAssignment{Port1: Or(), Port5: Or()} }
func AllNot() PortAssignment { return PortAssignment{Port1: Not(), Port5: Not()} }
func AllAdd() PortAssignment { return PortAssignment{Port1: Add(), Port5: Add()} }
func AllSub() PortAssignment { return PortAssignment{Port1: Sub(), Port5: Sub()} }

// RotateAndXor rotates right by n on port 0 while xoring on ports 1
// and 5.
// This is the σ-function shape of the SHA-256 schedule.
func RotateAndXor(n uint8) PortAssignment {
	return PortAssignment{Port0: RotR(n), Port1: Xor(), Port5: Xor()}
}

// ShiftAndXor shifts right by n on port 0 while xoring on ports 1 and 5.
func ShiftAndXor(n uint8) PortAssignment {
	return PortAssignment{Port0: ShR(n), Port1: Xor(), Port5: Xor()}
}

// Sha256RoundPorts issues the full hardware round: two rounds of
// compression on port 0 with both schedule helpers alongside.
func Sha256RoundPorts() PortAssignment {
	return PortAssignment{Port0: Sha256Round(), Port1: Sha256Msg1(), Port5: Sha256Msg2()}
}

// AesRoundPorts issues dual AES encryption rounds on ports 1 and 5.
func AesRoundPorts() PortAssignment {
	return PortAssignment{Port1: AesRound(), Port5: AesRound()}
}

// AesDecRoundPorts issues dual AES decryption rounds.
func AesDecRoundPorts() PortAssignment {
	return PortAssignment{Port1: AesRoundDec(), Port5: AesRoundDec()}
}

// Sha256MsgPorts issues only the message schedule helpers.
func Sha256MsgPorts() PortAssignment {
	return PortAssignment{Port1: Sha256Msg1(), Port5: Sha256Msg2()}
}

func ShufflePorts() PortAssignment { return PortAssignment{Port5: Shuffle()} }
func PermutePorts() PortAssignment { return PortAssignment{Port5: Permute()} }

func RotLOnly(n uint8) PortAssignment { return PortAssignment{Port0: RotL(n)} }
func RotROnly(n uint8) PortAssignment { return PortAssignment{Port0: RotR(n)} }
func ShLOnly(n uint8) PortAssignment  { return PortAssignment{Port0: ShL(n)} }
func ShROnly(n uint8) PortAssignment  { return PortAssignment{Port0: ShR(n)} }

const (
	// FullVecMask selects all 16 vector registers.
	FullVecMask = 0xFFFF
	// FullGprMask selects all 14 general registers.
	FullGprMask = 0x3FFF
)

// Wavefront is one parallel transition of the whole register file.
// Applying a wavefront costs one cycle at the theoretical bound and
// never touches memory.
type Wavefront struct {
	Ports   PortAssignment
	VecMask uint16
	GprMask uint16
}

// NewWavefront returns a wavefront over the full register file.
func NewWavefront(pa PortAssignment) Wavefront {
	return Wavefront{Ports: pa, VecMask: FullVecMask, GprMask: FullGprMask}
}

// WithMasks restricts the wavefront to the selected registers.
func (w Wavefront) WithMasks(vec, gpr uint16) Wavefront {
	w.VecMask = vec & FullVecMask
	w.GprMask = gpr & FullGprMask
	return w
}

// Validate checks the port assignment.
func (w Wavefront) Validate() error {
	return w.Ports.Validate()
}

type ErrBadPortOp struct {
	Port int
	Op   Op
}

func (e ErrBadPortOp) Error() string {
	return fmt.Sprintf("operation %v cannot issue on port %d", e.Op, e.Port)
}

type ErrStateSize struct {
	Got int
}

func (e ErrStateSize) Error() string {
	return fmt.Sprintf("state must be %d taxons, got %d", StateTaxons, e.Got)
}

type ErrNotInvertible struct {
	Op Op
}

func (e ErrNotInvertible) Error() string {
	return fmt.Sprintf("operation %v is not invertible", e.Op)
}

type ErrMissingComplement struct {
	Op Op
}

func (e ErrMissingComplement) Error() string {
	return fmt.Sprintf("operation %v needs a complement to invert", e.Op)
}
