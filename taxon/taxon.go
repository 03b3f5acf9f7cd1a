// Package taxon implements the byte-level universe of the framework: the
// 256 taxa, their Braille identities, the ring structure on Z/256, and
// fixed-width words built from taxa.
package taxon

import (
	"fmt"
	"math/bits"
)

const (
	// Cardinality is the number of distinct taxa.
	Cardinality = 256
	// BrailleBase is the first codepoint of the Unicode Braille block.
	BrailleBase = 0x2800
	// BrailleMax is the last codepoint of the Unicode Braille block.
	BrailleMax = 0x28FF
)

// Triadic structure constants.
const (
	T = 3
	O = 8
	B = 32
)

// Taxon is a single byte with its identity in the Braille block.
// The zero value is the zero taxon.
type Taxon struct {
	v uint8
}

// New returns the taxon for v.
func New(v uint8) Taxon {
	return Taxon{v: v}
}

// Value returns the underlying byte.
func (t Taxon) Value() uint8 {
	return t.v
}

// Codepoint returns the Unicode codepoint identifying t,
// in [BrailleBase, BrailleMax].
func (t Taxon) Codepoint() rune {
	return rune(BrailleBase + int(t.v))
}

// Braille returns the Braille character identifying t.
func (t Taxon) Braille() rune {
	return t.Codepoint()
}

// Domain returns the triadic domain of t, determined by t mod 3.
func (t Taxon) Domain() Domain {
	return domainFromResidue(t.v % 3)
}

// Rank returns the position of t within its domain, t div 3.
func (t Taxon) Rank() uint8 {
	return t.v / 3
}

// Succ returns the next taxon, wrapping 255 to 0.
func (t Taxon) Succ() Taxon {
	return Taxon{v: t.v + 1}
}

// Pred returns the previous taxon, wrapping 0 to 255.
func (t Taxon) Pred() Taxon {
	return Taxon{v: t.v - 1}
}

// Not returns the bitwise complement.
func (t Taxon) Not() Taxon {
	return Taxon{v: t.v ^ 0xFF}
}

// IsBasis reports whether exactly one bit of t is set.
func (t Taxon) IsBasis() bool {
	return t.v != 0 && t.v&(t.v-1) == 0
}

// Weight returns the number of set bits.
func (t Taxon) Weight() uint8 {
	return uint8(bits.OnesCount8(t.v))
}

// Curvature returns the Hamming distance from t to its successor.
// A value with L trailing 1-bits flips L+1 bits when incremented,
// capped at 8 for the wrap 255 -> 0. The mean over all 256 values
// is 510/256.
func (t Taxon) Curvature() uint8 {
	c := uint8(bits.TrailingZeros8(^t.v)) + 1
	if c > 8 {
		c = 8
	}
	return c
}

func (t Taxon) String() string {
	return fmt.Sprintf("%c(%d)", t.Braille(), t.v)
}
