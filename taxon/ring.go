package taxon

import "math/bits"

// Ring arithmetic on Z/256. All operations wrap.

// Add returns t + o mod 256.
func (t Taxon) Add(o Taxon) Taxon {
	return Taxon{v: t.v + o.v}
}

// Sub returns t - o mod 256.
func (t Taxon) Sub(o Taxon) Taxon {
	return Taxon{v: t.v - o.v}
}

// Neg returns the additive inverse.
func (t Taxon) Neg() Taxon {
	return Taxon{v: -t.v}
}

// Mul returns t * o mod 256.
func (t Taxon) Mul(o Taxon) Taxon {
	return Taxon{v: t.v * o.v}
}

// MulInverse returns the multiplicative inverse of t mod 256.
// Only odd values are units; even values return ErrNotUnit.
// Uses Newton's iteration, which doubles correct bits each round,
// so three rounds suffice for 8 bits.
func (t Taxon) MulInverse() (Taxon, error) {
	if t.v&1 == 0 {
		return Taxon{}, ErrNotUnit{Value: t.v}
	}
	x := t.v
	for i := 0; i < 3; i++ {
		x = x * (2 - t.v*x)
	}
	return Taxon{v: x}, nil
}

// Div returns t * o^-1 mod 256, or ErrNotUnit if o is even.
func (t Taxon) Div(o Taxon) (Taxon, error) {
	inv, err := o.MulInverse()
	if err != nil {
		return Taxon{}, err
	}
	return t.Mul(inv), nil
}

// Pow returns t^n mod 256 by square and multiply. Pow(0) is 1 for
// every base, including zero.
func (t Taxon) Pow(n uint8) Taxon {
	result := uint8(1)
	base := t.v
	for n > 0 {
		if n&1 == 1 {
			result *= base
		}
		base *= base
		n >>= 1
	}
	return Taxon{v: result}
}

// RotL rotates the bits of t left by n.
func (t Taxon) RotL(n uint8) Taxon {
	return Taxon{v: bits.RotateLeft8(t.v, int(n&7))}
}

// RotR rotates the bits of t right by n.
func (t Taxon) RotR(n uint8) Taxon {
	return Taxon{v: bits.RotateLeft8(t.v, -int(n&7))}
}

// ShL shifts left by n, losing high bits. n >= 8 yields zero.
func (t Taxon) ShL(n uint8) Taxon {
	if n >= 8 {
		return Taxon{}
	}
	return Taxon{v: t.v << n}
}

// ShR shifts right by n, losing low bits. n >= 8 yields zero.
func (t Taxon) ShR(n uint8) Taxon {
	if n >= 8 {
		return Taxon{}
	}
	return Taxon{v: t.v >> n}
}

// Xor returns the bitwise exclusive or.
func (t Taxon) Xor(o Taxon) Taxon {
	return Taxon{v: t.v ^ o.v}
}

// And returns the bitwise and.
func (t Taxon) And(o Taxon) Taxon {
	return Taxon{v: t.v & o.v}
}

// Or returns the bitwise or.
func (t Taxon) Or(o Taxon) Taxon {
	return Taxon{v: t.v | o.v}
}
