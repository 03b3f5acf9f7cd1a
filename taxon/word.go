package taxon

import "encoding/binary"

// Addressable is anything with a canonical taxon decomposition.
// Taxon index 0 is always the most significant byte.
type Addressable interface {
	// TaxonCount returns the fixed number of taxons in the decomposition.
	TaxonCount() int
	// AppendTaxons appends the decomposition to out.
	AppendTaxons(out []Taxon) []Taxon
}

// Word2 is a 2-taxon word.
type Word2 uint16

// Word4 is a 4-taxon word.
type Word4 uint32

// Word8 is an 8-taxon word.
type Word8 uint64

func (w Word2) TaxonCount() int { return 2 }
func (w Word4) TaxonCount() int { return 4 }
func (w Word8) TaxonCount() int { return 8 }

func (w Word2) AppendTaxons(out []Taxon) []Taxon {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(w))
	return appendBytes(out, b[:])
}

func (w Word4) AppendTaxons(out []Taxon) []Taxon {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(w))
	return appendBytes(out, b[:])
}

func (w Word8) AppendTaxons(out []Taxon) []Taxon {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(w))
	return appendBytes(out, b[:])
}

// Taxon returns the i'th taxon, counting from the most significant byte.
func (w Word2) Taxon(i int) Taxon {
	return New(uint8(w >> (8 * (1 - i))))
}

func (w Word4) Taxon(i int) Taxon {
	return New(uint8(w >> (8 * (3 - i))))
}

func (w Word8) Taxon(i int) Taxon {
	return New(uint8(w >> (8 * (7 - i))))
}

func Word2FromTaxons(ts []Taxon) (Word2, error) {
	if len(ts) != 2 {
		return 0, ErrTaxonCount{Want: 2, Got: len(ts)}
	}
	return Word2(uint16(ts[0].v)<<8 | uint16(ts[1].v)), nil
}

func Word4FromTaxons(ts []Taxon) (Word4, error) {
	if len(ts) != 4 {
		return 0, ErrTaxonCount{Want: 4, Got: len(ts)}
	}
	var w Word4
	for _, t := range ts {
		w = w<<8 | Word4(t.v)
	}
	return w, nil
}

func Word8FromTaxons(ts []Taxon) (Word8, error) {
	if len(ts) != 8 {
		return 0, ErrTaxonCount{Want: 8, Got: len(ts)}
	}
	var w Word8
	for _, t := range ts {
		w = w<<8 | Word8(t.v)
	}
	return w, nil
}

func appendBytes(out []Taxon, b []byte) []Taxon {
	for _, x := range b {
		out = append(out, New(x))
	}
	return out
}

// Word is a variable-width word of taxons, most significant first.
type Word []Taxon

// ZeroWord returns the n-taxon zero word.
func ZeroWord(n int) Word {
	return make(Word, n)
}

// MaxWord returns the n-taxon word with every bit set.
func MaxWord(n int) Word {
	w := make(Word, n)
	for i := range w {
		w[i] = New(0xFF)
	}
	return w
}

// WordFromBytes interprets b as a word.
func WordFromBytes(b []byte) Word {
	w := make(Word, len(b))
	for i, x := range b {
		w[i] = New(x)
	}
	return w
}

func (w Word) TaxonCount() int {
	return len(w)
}

func (w Word) AppendTaxons(out []Taxon) []Taxon {
	return append(out, w...)
}

// Bytes returns the byte representation of w.
func (w Word) Bytes() []byte {
	b := make([]byte, len(w))
	for i, t := range w {
		b[i] = t.v
	}
	return b
}

// IsZero reports whether every taxon of w is zero.
func (w Word) IsZero() bool {
	for _, t := range w {
		if t.v != 0 {
			return false
		}
	}
	return true
}
