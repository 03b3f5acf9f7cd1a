package uor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	uor "github.com/UOR-Foundation/UOR-Framework"
	"github.com/UOR-Foundation/UOR-Framework/automaton"
	"github.com/UOR-Foundation/UOR-Framework/internal/testutil"
)

func TestHashMatchesStateFingerprint(t *testing.T) {
	t.Parallel()
	s := testutil.RandomState(60)
	require.Equal(t, s.Fingerprint(), uor.Hash(s.Bytes()))
	require.NotEqual(t, uor.Hash(nil), uor.Hash([]byte{0}))
}

func TestProgramFingerprint(t *testing.T) {
	t.Parallel()
	a := uor.ProgramFingerprint(automaton.Sha256Compress())
	b := uor.ProgramFingerprint(automaton.Aes128Encrypt())
	require.NotEqual(t, a, b)
	require.Equal(t, a, uor.ProgramFingerprint(automaton.Sha256Compress()))
}

func TestZero(t *testing.T) {
	t.Parallel()
	z := uor.Zero()
	require.Equal(t, uor.StateTaxons, len(z.Bytes()))
	require.Equal(t, uor.StateBits, 8*uor.StateTaxons)
	for _, b := range z.Bytes() {
		require.Zero(t, b)
	}
}
