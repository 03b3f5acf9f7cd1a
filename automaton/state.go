// Package automaton defines the machine model: the 4992-bit register
// file, wavefront transitions over the three issue ports, programs of
// wavefronts, and the capability interfaces backends implement.
package automaton

import (
	"encoding/binary"
	"fmt"

	"lukechampine.com/blake3"

	"github.com/UOR-Foundation/UOR-Framework/taxon"
)

const (
	// VecCount is the number of 256-bit vector registers.
	VecCount = 16
	// VecTaxons is the number of taxons per vector register.
	VecTaxons = 32
	// VecLanes is the number of 32-bit lanes per vector register.
	VecLanes = 8
	// GprCount is the number of 64-bit general registers.
	GprCount = 14
	// GprTaxons is the number of taxons per general register.
	GprTaxons = 8

	// StateTaxons is the taxon count of the whole register file.
	StateTaxons = VecCount*VecTaxons + GprCount*GprTaxons
	// StateBits is the bit width of one state: 4992.
	StateBits = StateTaxons * 8

	// gprOffset is the flat taxon index of the first general register.
	gprOffset = VecCount * VecTaxons
)

// State is the complete register file. The state is the unit of
// transition: a wavefront maps one State to the next. Value semantics;
// copying a State copies all 4992 bits.
//
// Lanes are stored in x86 memory order: byte 0 of a vector register is
// the low byte of lane 0.
type State struct {
	Vec [VecCount][VecLanes]uint32
	Gpr [GprCount]uint64
}

// Zero returns the all-zero state.
func Zero() State {
	return State{}
}

// IsZero reports whether every bit of the state is clear.
func (s *State) IsZero() bool {
	return *s == State{}
}

// AppendBytes appends the canonical 624-byte serialization: vector
// registers first, then general registers, all little-endian.
func (s *State) AppendBytes(out []byte) []byte {
	for i := range s.Vec {
		for _, lane := range s.Vec[i] {
			out = binary.LittleEndian.AppendUint32(out, lane)
		}
	}
	for _, g := range s.Gpr {
		out = binary.LittleEndian.AppendUint64(out, g)
	}
	return out
}

// Bytes returns the canonical serialization of s.
func (s *State) Bytes() []byte {
	return s.AppendBytes(make([]byte, 0, StateTaxons))
}

// FromBytes parses a canonical 624-byte serialization.
func FromBytes(b []byte) (State, error) {
	if len(b) != StateTaxons {
		return State{}, ErrStateSize{Got: len(b)}
	}
	var s State
	for i := range s.Vec {
		for j := range s.Vec[i] {
			s.Vec[i][j] = binary.LittleEndian.Uint32(b)
			b = b[4:]
		}
	}
	for i := range s.Gpr {
		s.Gpr[i] = binary.LittleEndian.Uint64(b)
		b = b[8:]
	}
	return s, nil
}

// TaxonCount implements taxon.Addressable.
func (s *State) TaxonCount() int {
	return StateTaxons
}

// AppendTaxons implements taxon.Addressable. The flat view places the
// vector file first; the general registers start at flat index 512.
func (s *State) AppendTaxons(out []taxon.Taxon) []taxon.Taxon {
	for _, b := range s.Bytes() {
		out = append(out, taxon.New(b))
	}
	return out
}

// FromTaxons reconstructs a state from its flat taxon view.
func FromTaxons(ts []taxon.Taxon) (State, error) {
	if len(ts) != StateTaxons {
		return State{}, ErrStateSize{Got: len(ts)}
	}
	b := make([]byte, 0, StateTaxons)
	for _, t := range ts {
		b = append(b, t.Value())
	}
	return FromBytes(b)
}

// Taxon returns the taxon at flat index i.
func (s *State) Taxon(i int) taxon.Taxon {
	if i < gprOffset {
		reg, off := i/VecTaxons, i%VecTaxons
		lane := s.Vec[reg][off/4]
		return taxon.New(uint8(lane >> (8 * (off % 4))))
	}
	i -= gprOffset
	reg, off := i/GprTaxons, i%GprTaxons
	return taxon.New(uint8(s.Gpr[reg] >> (8 * off)))
}

// Fingerprint is a blake3 digest of a state or a program.
type Fingerprint [32]byte

func (f Fingerprint) String() string {
	return fmt.Sprintf("%x", f[:8])
}

// Fingerprint returns the digest of the canonical serialization.
func (s *State) Fingerprint() (ret Fingerprint) {
	h := blake3.New(32, nil)
	h.Write(s.Bytes())
	h.Sum(ret[:0])
	return ret
}
