package zen3

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/UOR-Foundation/UOR-Framework/automaton"
	"github.com/UOR-Foundation/UOR-Framework/internal/testutil"
)

var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// TestSha256Rnds2Compress runs a whole single-block compression
// through sha256Rnds2 and checks the digest against crypto/sha256.
func TestSha256Rnds2Compress(t *testing.T) {
	t.Parallel()
	msg := []byte("abc")

	var block [64]byte
	copy(block[:], msg)
	block[len(msg)] = 0x80
	binary.BigEndian.PutUint64(block[56:], uint64(len(msg))*8)

	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 64; i++ {
		w[i] = ssig1(w[i-2]) + w[i-7] + ssig0(w[i-15]) + w[i-16]
	}

	// lane 3 is A in ABEF, C in CDGH
	abef := [4]uint32{0x9b05688c, 0x510e527f, 0xbb67ae85, 0x6a09e667}
	cdgh := [4]uint32{0x5be0cd19, 0x1f83d9ab, 0xa54ff53a, 0x3c6ef372}
	h0, h1 := abef, cdgh
	for i := 0; i < 64; i += 2 {
		abef, cdgh = sha256Rnds2(cdgh, abef, w[i]+sha256K[i], w[i+1]+sha256K[i+1]), abef
	}
	for j := range abef {
		abef[j] += h0[j]
		cdgh[j] += h1[j]
	}

	want := sha256.Sum256(msg)
	got := [8]uint32{abef[3], abef[2], cdgh[3], cdgh[2], abef[1], abef[0], cdgh[1], cdgh[0]}
	for i, word := range got {
		require.Equal(t, binary.BigEndian.Uint32(want[i*4:]), word, "digest word %d", i)
	}
}

func TestSha256MsgLaneOrder(t *testing.T) {
	t.Parallel()
	v1 := [4]uint32{10, 20, 30, 40}
	v2 := [4]uint32{50, 60, 70, 80}

	m1 := sha256Msg1(v1, v2)
	require.Equal(t, [4]uint32{
		10 + ssig0(20),
		20 + ssig0(30),
		30 + ssig0(40),
		40 + ssig0(50),
	}, m1)

	m2 := sha256Msg2(v1, v2)
	w16 := 10 + ssig1(70)
	w17 := 20 + ssig1(80)
	require.Equal(t, [4]uint32{
		w16,
		w17,
		30 + ssig1(w16),
		40 + ssig1(w17),
	}, m2)
}

func TestSha256Wavefront(t *testing.T) {
	t.Parallel()
	e := NewUnchecked()
	s := testutil.RandomState(20)

	out, err := e.Step(s, automaton.Sha256RoundWavefront())
	require.NoError(t, err)

	abef := loadHalf(&s, 0, 0)
	cdgh := loadHalf(&s, 0, 1)
	msg := loadHalf(&s, 2, 0)
	cdgh = sha256Rnds2(cdgh, abef, msg[0], msg[1])
	abef = sha256Rnds2(abef, cdgh, msg[2], msg[3])
	require.Equal(t, abef, loadHalf(&out, 0, 0))
	require.Equal(t, cdgh, loadHalf(&out, 0, 1))
	require.Equal(t, s.Vec[1], out.Vec[1])
	require.Equal(t, s.Vec[2], out.Vec[2])
}

func TestSboxTables(t *testing.T) {
	t.Parallel()
	require.Equal(t, byte(0x63), sbox[0x00])
	require.Equal(t, byte(0x7c), sbox[0x01])
	require.Equal(t, byte(0xed), sbox[0x53])
	require.Equal(t, byte(0x16), sbox[0xff])
	require.Equal(t, byte(0x52), invSbox[0x00])
	for i := 0; i < 256; i++ {
		require.Equal(t, byte(i), invSbox[sbox[i]])
	}
}

func TestGfMul(t *testing.T) {
	t.Parallel()
	require.Equal(t, byte(0xc1), gfMul(0x57, 0x83))
	require.Equal(t, byte(0xfe), gfMul(0x57, 0x13))
	require.Equal(t, byte(0), gfMul(0xab, 0))
	require.Equal(t, byte(0xab), gfMul(0xab, 1))
}

func TestAesRoundUniformState(t *testing.T) {
	t.Parallel()
	// all-zero state: SubBytes gives 0x63 everywhere and a uniform
	// column is a MixColumns fixed point
	enc := aesEncRound([4]uint32{}, [4]uint32{})
	require.Equal(t, [4]uint32{0x63636363, 0x63636363, 0x63636363, 0x63636363}, enc)

	dec := aesDecRound([4]uint32{}, [4]uint32{})
	require.Equal(t, [4]uint32{0x52525252, 0x52525252, 0x52525252, 0x52525252}, dec)
}

func TestAesRoundKeyXor(t *testing.T) {
	t.Parallel()
	key := [4]uint32{0xA5A5A5A5, 0x5A5A5A5A, 0xFFFFFFFF, 0}
	noKey := aesEncRound([4]uint32{1, 2, 3, 4}, [4]uint32{})
	withKey := aesEncRound([4]uint32{1, 2, 3, 4}, key)
	for j := range key {
		require.Equal(t, noKey[j]^key[j], withKey[j])
	}
}

func TestAesWavefront(t *testing.T) {
	t.Parallel()
	e := NewUnchecked()
	var s automaton.State
	for j := range s.Vec[8] {
		s.Vec[8][j] = 0x11111111
	}

	out, err := e.Step(s, automaton.AesEncWavefront())
	require.NoError(t, err)
	for j := range out.Vec[0] {
		require.Equal(t, uint32(0x63636363^0x11111111), out.Vec[0][j])
	}
	require.Equal(t, s.Vec[1], out.Vec[1])
	require.Equal(t, s.Vec[8], out.Vec[8])
	require.Equal(t, s.Gpr, out.Gpr)
}
