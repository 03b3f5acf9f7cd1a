package zen3

import (
	"math/bits"

	"github.com/UOR-Foundation/UOR-Framework/automaton"
)

// 128-bit half-register access. Half 0 is lanes 0-3.

func loadHalf(s *automaton.State, reg, half int) (x [4]uint32) {
	copy(x[:], s.Vec[reg][half*4:])
	return x
}

func storeHalf(s *automaton.State, reg, half int, x [4]uint32) {
	copy(s.Vec[reg][half*4:], x[:])
}

// sha256Wavefront executes two compression rounds the way sha256rnds2
// does: abef is the low half of v0, cdgh the high half, and the round
// words come from the low half of v2.
func sha256Wavefront(s *automaton.State) {
	abef := loadHalf(s, 0, 0)
	cdgh := loadHalf(s, 0, 1)
	msg := loadHalf(s, 2, 0)

	cdgh = sha256Rnds2(cdgh, abef, msg[0], msg[1])
	abef = sha256Rnds2(abef, cdgh, msg[2], msg[3])

	storeHalf(s, 0, 0, abef)
	storeHalf(s, 0, 1, cdgh)
}

// sha256MsgWavefront runs both message schedule helpers: msg1 on the
// low halves of v0/v1 and msg2 on the low halves of v1/v2.
func sha256MsgWavefront(s *automaton.State) {
	x0 := loadHalf(s, 0, 0)
	x1 := loadHalf(s, 1, 0)
	x2 := loadHalf(s, 2, 0)

	storeHalf(s, 0, 0, sha256Msg1(x0, x1))
	storeHalf(s, 1, 0, sha256Msg2(x1, x2))
}

func aesWavefront(s *automaton.State) {
	s0 := loadHalf(s, 0, 0)
	s1 := loadHalf(s, 0, 1)
	k0 := loadHalf(s, 8, 0)
	k1 := loadHalf(s, 8, 1)

	storeHalf(s, 0, 0, aesEncRound(s0, k0))
	storeHalf(s, 0, 1, aesEncRound(s1, k1))
}

func aesDecWavefront(s *automaton.State) {
	s0 := loadHalf(s, 0, 0)
	s1 := loadHalf(s, 0, 1)
	k0 := loadHalf(s, 8, 0)
	k1 := loadHalf(s, 8, 1)

	storeHalf(s, 0, 0, aesDecRound(s0, k0))
	storeHalf(s, 0, 1, aesDecRound(s1, k1))
}

// SHA-256 round functions.

func bsig0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
}

func bsig1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
}

func ssig0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3)
}

func ssig1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ (x >> 10)
}

// sha256Rnds2 performs two rounds exactly as the instruction does.
// dest holds CDGH, src holds ABEF (lane 3 is A), and wk0/wk1 are the
// pre-added round constants. The result is the updated ABEF.
func sha256Rnds2(dest, src [4]uint32, wk0, wk1 uint32) [4]uint32 {
	a, b, e, f := src[3], src[2], src[1], src[0]
	c, d, g, h := dest[3], dest[2], dest[1], dest[0]

	for _, wk := range [2]uint32{wk0, wk1} {
		ch := (e & f) ^ (^e & g)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t1 := h + bsig1(e) + ch + wk
		t2 := bsig0(a) + maj

		h, g, f = g, f, e
		e = d + t1
		d, c, b = c, b, a
		a = t1 + t2
	}
	return [4]uint32{f, e, b, a}
}

// sha256Msg1 computes w[i] + σ0(w[i+1]) for four schedule words.
func sha256Msg1(v1, v2 [4]uint32) [4]uint32 {
	w0, w1, w2, w3 := v1[0], v1[1], v1[2], v1[3]
	w4 := v2[0]
	return [4]uint32{
		w0 + ssig0(w1),
		w1 + ssig0(w2),
		w2 + ssig0(w3),
		w3 + ssig0(w4),
	}
}

// sha256Msg2 finishes the schedule with σ1 of the two newest words.
func sha256Msg2(v1, v2 [4]uint32) [4]uint32 {
	w14, w15 := v2[2], v2[3]
	w16 := v1[0] + ssig1(w14)
	w17 := v1[1] + ssig1(w15)
	w18 := v1[2] + ssig1(w16)
	w19 := v1[3] + ssig1(w17)
	return [4]uint32{w16, w17, w18, w19}
}

// AES round primitives. The S-boxes are built once from the GF(2^8)
// inverse and the affine transform.

var (
	sbox    [256]byte
	invSbox [256]byte
)

func init() {
	// multiplicative inverses via a log table over generator 3
	var logT, expT [256]byte
	p := byte(1)
	for i := 0; i < 255; i++ {
		expT[i] = p
		logT[p] = byte(i)
		p ^= gfDouble(p)
	}
	inv := func(x byte) byte {
		if x == 0 {
			return 0
		}
		return expT[(255-int(logT[x]))%255]
	}
	for i := 0; i < 256; i++ {
		x := inv(byte(i))
		y := x ^ bits.RotateLeft8(x, 1) ^ bits.RotateLeft8(x, 2) ^
			bits.RotateLeft8(x, 3) ^ bits.RotateLeft8(x, 4) ^ 0x63
		sbox[i] = y
		invSbox[y] = byte(i)
	}
}

func gfDouble(x byte) byte {
	d := x << 1
	if x&0x80 != 0 {
		d ^= 0x1B
	}
	return d
}

func gfMul(x, y byte) byte {
	var acc byte
	for y != 0 {
		if y&1 != 0 {
			acc ^= x
		}
		x = gfDouble(x)
		y >>= 1
	}
	return acc
}

func halfBytes(x [4]uint32) (out [16]byte) {
	for j, lane := range x {
		out[j*4] = byte(lane)
		out[j*4+1] = byte(lane >> 8)
		out[j*4+2] = byte(lane >> 16)
		out[j*4+3] = byte(lane >> 24)
	}
	return out
}

func halfFromBytes(b [16]byte) (out [4]uint32) {
	for j := range out {
		out[j] = uint32(b[j*4]) | uint32(b[j*4+1])<<8 | uint32(b[j*4+2])<<16 | uint32(b[j*4+3])<<24
	}
	return out
}

// aesEncRound is aesenc: ShiftRows, SubBytes, MixColumns, AddRoundKey.
func aesEncRound(state, key [4]uint32) [4]uint32 {
	in := halfBytes(state)
	var sh [16]byte
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			sh[4*c+r] = sbox[in[4*((c+r)&3)+r]]
		}
	}
	var out [16]byte
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := sh[4*c], sh[4*c+1], sh[4*c+2], sh[4*c+3]
		out[4*c] = gfDouble(a0) ^ gfDouble(a1) ^ a1 ^ a2 ^ a3
		out[4*c+1] = a0 ^ gfDouble(a1) ^ gfDouble(a2) ^ a2 ^ a3
		out[4*c+2] = a0 ^ a1 ^ gfDouble(a2) ^ gfDouble(a3) ^ a3
		out[4*c+3] = gfDouble(a0) ^ a0 ^ a1 ^ a2 ^ gfDouble(a3)
	}
	res := halfFromBytes(out)
	for j := range res {
		res[j] ^= key[j]
	}
	return res
}

// aesDecRound is aesdec: InvShiftRows, InvSubBytes, InvMixColumns,
// AddRoundKey.
func aesDecRound(state, key [4]uint32) [4]uint32 {
	in := halfBytes(state)
	var sh [16]byte
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			sh[4*c+r] = invSbox[in[4*((c-r)&3)+r]]
		}
	}
	var out [16]byte
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := sh[4*c], sh[4*c+1], sh[4*c+2], sh[4*c+3]
		out[4*c] = gfMul(a0, 0x0E) ^ gfMul(a1, 0x0B) ^ gfMul(a2, 0x0D) ^ gfMul(a3, 0x09)
		out[4*c+1] = gfMul(a0, 0x09) ^ gfMul(a1, 0x0E) ^ gfMul(a2, 0x0B) ^ gfMul(a3, 0x0D)
		out[4*c+2] = gfMul(a0, 0x0D) ^ gfMul(a1, 0x09) ^ gfMul(a2, 0x0E) ^ gfMul(a3, 0x0B)
		out[4*c+3] = gfMul(a0, 0x0B) ^ gfMul(a1, 0x0D) ^ gfMul(a2, 0x09) ^ gfMul(a3, 0x0E)
	}
	res := halfFromBytes(out)
	for j := range res {
		res[j] ^= key[j]
	}
	return res
}
