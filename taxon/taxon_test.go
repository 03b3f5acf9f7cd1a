package taxon

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodepoint(t *testing.T) {
	t.Parallel()
	require.Equal(t, rune(0x2800), New(0).Codepoint())
	require.Equal(t, rune(0x28FF), New(255).Codepoint())
	require.Equal(t, '⠃', New(3).Braille())
}

func TestDomainRank(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		V      uint8
		Domain Domain
		Rank   uint8
	}{
		{0, Theta, 0},
		{1, Psi, 0},
		{2, Delta, 0},
		{3, Theta, 1},
		{254, Delta, 84},
		{255, Theta, 85},
	}
	for _, tc := range tcs {
		require.Equal(t, tc.Domain, New(tc.V).Domain(), "value %d", tc.V)
		require.Equal(t, tc.Rank, New(tc.V).Rank(), "value %d", tc.V)
	}
}

func TestDomainCardinalities(t *testing.T) {
	t.Parallel()
	var counts [3]int
	for v := 0; v < Cardinality; v++ {
		counts[New(uint8(v)).Domain()]++
	}
	require.Equal(t, DomainCardinalities, counts)
	require.Equal(t, 'Θ', Theta.Symbol())
	require.Equal(t, 'Ψ', Psi.Symbol())
	require.Equal(t, 'Δ', Delta.Symbol())
}

func TestSuccPredWrap(t *testing.T) {
	t.Parallel()
	require.Equal(t, New(0), New(255).Succ())
	require.Equal(t, New(255), New(0).Pred())
	for v := 0; v < Cardinality; v++ {
		x := New(uint8(v))
		require.Equal(t, x, x.Succ().Pred())
	}
}

func TestNotInvolution(t *testing.T) {
	t.Parallel()
	for v := 0; v < Cardinality; v++ {
		x := New(uint8(v))
		require.Equal(t, x, x.Not().Not())
	}
	require.Equal(t, New(255), New(0).Not())
}

func TestBasis(t *testing.T) {
	t.Parallel()
	var basis []uint8
	for v := 0; v < Cardinality; v++ {
		if New(uint8(v)).IsBasis() {
			basis = append(basis, uint8(v))
		}
	}
	require.Equal(t, []uint8{1, 2, 4, 8, 16, 32, 64, 128}, basis)
}

func TestWeight(t *testing.T) {
	t.Parallel()
	require.Equal(t, uint8(0), New(0).Weight())
	require.Equal(t, uint8(8), New(255).Weight())
	require.Equal(t, uint8(1), New(16).Weight())
	require.Equal(t, uint8(4), New(0b01011010).Weight())
}

func TestCurvature(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		V    uint8
		Curv uint8
	}{
		{0, 1}, {1, 2}, {2, 1}, {3, 3}, {7, 4},
		{15, 5}, {31, 6}, {63, 7}, {127, 8}, {255, 8},
	}
	for _, tc := range tcs {
		require.Equal(t, tc.Curv, New(tc.V).Curvature(), "value %d", tc.V)
	}
	// mean curvature over the whole population is 510/256
	var sum int
	for v := 0; v < Cardinality; v++ {
		sum += int(New(uint8(v)).Curvature())
	}
	require.Equal(t, 510, sum)
}
