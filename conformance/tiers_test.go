package conformance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/UOR-Foundation/UOR-Framework/internal/testutil"
	"github.com/UOR-Foundation/UOR-Framework/zen3"
)

func TestTargets(t *testing.T) {
	t.Parallel()
	require.Equal(t, Target{WavefrontCycles: 5, SequenceCycles: 200, BitsPerCycle: 512}, TierMinimum.Target())
	require.Equal(t, Target{WavefrontCycles: 3, SequenceCycles: 100, BitsPerCycle: 1600}, TierOptimized.Target())
	require.Equal(t, Target{WavefrontCycles: 1, SequenceCycles: 88, BitsPerCycle: 4992}, TierTheoretical.Target())
}

func TestBitsPerCycle(t *testing.T) {
	t.Parallel()
	require.Equal(t, int64(4992), BitsPerCycle(1))
	require.Equal(t, int64(998), BitsPerCycle(5))
	require.Equal(t, int64(554), BitsPerCycle(9))
	require.Equal(t, int64(499), BitsPerCycle(10))
	require.Zero(t, BitsPerCycle(0))
}

func TestValidateThroughput(t *testing.T) {
	t.Parallel()
	require.NoError(t, ValidateThroughput(TierMinimum, 5))
	require.NoError(t, ValidateThroughput(TierMinimum, 9))

	err := ValidateThroughput(TierMinimum, 10)
	require.Error(t, err)
	require.ErrorAs(t, err, &ErrViolation{})
	require.Contains(t, err.Error(), "UOR CONFORMANCE VIOLATION")

	require.ErrorAs(t, ValidateThroughput(TierMinimum, 0), &ErrBadMeasurement{})
}

func TestValidateLatency(t *testing.T) {
	t.Parallel()
	require.NoError(t, ValidateWavefrontLatency(TierMinimum, 5))
	require.Error(t, ValidateWavefrontLatency(TierMinimum, 6))
	require.NoError(t, ValidateWavefrontLatency(TierOptimized, 3))
	require.Error(t, ValidateWavefrontLatency(TierTheoretical, 2))

	perWf, err := ValidateSequenceLatency(TierMinimum, 200)
	require.NoError(t, err)
	require.Equal(t, int64(4), perWf)
	_, err = ValidateSequenceLatency(TierMinimum, 201)
	require.Error(t, err)
	perWf, err = ValidateSequenceLatency(TierTheoretical, 88)
	require.NoError(t, err)
	require.Equal(t, int64(2), perWf)
}

func TestTierClassification(t *testing.T) {
	t.Parallel()
	require.Equal(t, TierTheoretical, FromWavefrontCycles(1))
	require.Equal(t, TierOptimized, FromWavefrontCycles(2))
	require.Equal(t, TierMinimum, FromWavefrontCycles(5))
	require.Equal(t, TierNonConformant, FromWavefrontCycles(6))
	require.Equal(t, TierNonConformant, FromWavefrontCycles(0))

	require.Equal(t, TierTheoretical, FromSequenceCycles(88))
	require.Equal(t, TierOptimized, FromSequenceCycles(100))
	require.Equal(t, TierMinimum, FromSequenceCycles(200))
	require.Equal(t, TierNonConformant, FromSequenceCycles(201))

	require.Equal(t, TierTheoretical, FromBitsPerCycle(4992))
	require.Equal(t, TierMinimum, FromBitsPerCycle(998))
	require.Equal(t, TierNonConformant, FromBitsPerCycle(499))

	require.True(t, TierMinimum.Conformant())
	require.False(t, TierNonConformant.Conformant())
	require.Equal(t, TierMinimum, Min(TierTheoretical, TierMinimum))

	r := Report{WavefrontCycles: 3, SequenceCycles: 150, BitsPerCycle: 1664}
	require.Equal(t, TierMinimum, r.Tier())
}

func TestBitsPerCycleFromNs(t *testing.T) {
	t.Parallel()
	// 1ns at 4GHz is 4 cycles, 4992/4 = 1248
	require.Equal(t, int64(1248), BitsPerCycleFromNs(1, 4))
	require.Equal(t, int64(4992), BitsPerCycleFromNs(0.2, 4.7))
}

func TestNsToCycles(t *testing.T) {
	t.Parallel()
	require.Equal(t, int64(4), NsToCycles(time.Nanosecond, 4e9))
	require.Equal(t, int64(5), NsToCycles(time.Nanosecond, 4.7e9))
	require.Equal(t, int64(4000), NsToCycles(time.Microsecond, 4e9))
}

func TestReportValidate(t *testing.T) {
	t.Parallel()
	r := Report{WavefrontCycles: 4, SequenceCycles: 150}
	require.NoError(t, r.Validate(TierMinimum))
	require.Error(t, r.Validate(TierOptimized))

	bad := Report{WavefrontCycles: 7, SequenceCycles: 150}
	err := bad.Validate(TierMinimum)
	require.ErrorAs(t, err, &ErrViolation{})
}

func TestMeasure(t *testing.T) {
	t.Parallel()
	ctx := testutil.Context(t)
	be := zen3.NewUnchecked()

	r, err := Measure(ctx, be, 4e9)
	require.NoError(t, err)
	require.Positive(t, r.WavefrontCycles)
	require.Positive(t, r.SequenceCycles)
	require.Positive(t, r.BitsPerCycle)
}
