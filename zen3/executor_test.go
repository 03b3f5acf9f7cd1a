package zen3

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/UOR-Foundation/UOR-Framework/automaton"
	"github.com/UOR-Foundation/UOR-Framework/internal/testutil"
)

func TestStepXor(t *testing.T) {
	t.Parallel()
	e := NewUnchecked()
	s := testutil.RandomState(1)

	out, err := e.Step(s, automaton.XorWavefront())
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		for j := range out.Vec[i] {
			require.Equal(t, s.Vec[i][j]^s.Vec[i+8][j], out.Vec[i][j])
		}
		require.Equal(t, s.Vec[i+8], out.Vec[i+8])
	}
	for i := 0; i < 7; i++ {
		require.Equal(t, s.Gpr[i]^s.Gpr[i+7], out.Gpr[i])
		require.Equal(t, s.Gpr[i+7], out.Gpr[i+7])
	}
}

func TestStepAddSub(t *testing.T) {
	t.Parallel()
	e := NewUnchecked()
	s := testutil.RandomState(2)

	mid, err := e.Step(s, automaton.AddWavefront())
	require.NoError(t, err)
	require.NotEqual(t, s, mid)
	out, err := e.Step(mid, automaton.SubWavefront())
	require.NoError(t, err)
	require.Equal(t, s, out)
}

func TestStepNotInvolution(t *testing.T) {
	t.Parallel()
	e := NewUnchecked()
	s := testutil.RandomState(3)

	mid, err := e.Step(s, automaton.NotWavefront())
	require.NoError(t, err)
	for j := range mid.Vec[0] {
		require.Equal(t, ^s.Vec[0][j], mid.Vec[0][j])
	}
	require.Equal(t, ^s.Gpr[0], mid.Gpr[0])
	out, err := e.Step(mid, automaton.NotWavefront())
	require.NoError(t, err)
	require.Equal(t, s, out)
}

func TestStepRotate(t *testing.T) {
	t.Parallel()
	e := NewUnchecked()
	var s automaton.State
	s.Vec[0][0] = 1
	s.Vec[7][7] = 0x80000000
	s.Gpr[0] = 0xFF

	out, err := e.Step(s, automaton.RotLWavefront(5))
	require.NoError(t, err)
	require.Equal(t, uint32(32), out.Vec[0][0])
	require.Equal(t, uint32(0x10), out.Vec[7][7])
	// rotates ride port 0, so the general registers never see them
	require.Equal(t, uint64(0xFF), out.Gpr[0])

	back, err := e.Step(out, automaton.RotRWavefront(5))
	require.NoError(t, err)
	require.Equal(t, s, back)
}

func TestStepShiftZeroFill(t *testing.T) {
	t.Parallel()
	e := NewUnchecked()
	var s automaton.State
	s.Vec[0][0] = 0xFF000001
	s.Vec[15][0] = 0xDEADBEEF

	out, err := e.Step(s, automaton.NewWavefront(automaton.ShLOnly(8)))
	require.NoError(t, err)
	require.Equal(t, uint32(0x00000100), out.Vec[0][0])
	require.Equal(t, uint32(0xDEADBEEF), out.Vec[15][0])

	// shift counts of 32 or more clear the lane instead of wrapping
	wide, err := e.Step(s, automaton.NewWavefront(automaton.ShROnly(40)))
	require.NoError(t, err)
	require.Zero(t, wide.Vec[0][0])
}

func TestRotateXorFusedShape(t *testing.T) {
	t.Parallel()
	e := NewUnchecked()
	s := testutil.RandomState(4)

	out, err := e.Step(s, automaton.NewWavefront(automaton.RotateAndXor(7)))
	require.NoError(t, err)
	for j := range out.Vec[0] {
		require.Equal(t, rotr32(s.Vec[0][j], 7)^s.Vec[9][j], out.Vec[0][j])
		require.Equal(t, s.Vec[1][j]^s.Vec[8][j], out.Vec[1][j])
	}
	require.Equal(t, s.Vec[2], out.Vec[2])
}

func TestShiftXorFusedShape(t *testing.T) {
	t.Parallel()
	e := NewUnchecked()
	s := testutil.RandomState(5)

	out, err := e.Step(s, automaton.NewWavefront(automaton.ShiftAndXor(3)))
	require.NoError(t, err)
	for j := range out.Vec[0] {
		require.Equal(t, s.Vec[0][j]>>3, out.Vec[0][j])
		require.Equal(t, s.Vec[1][j]^s.Vec[8][j], out.Vec[1][j])
	}
}

func TestGenericPorts(t *testing.T) {
	t.Parallel()
	e := NewUnchecked()
	s := testutil.RandomState(6)

	wf := automaton.NewWavefront(automaton.PortAssignment{
		Port0: automaton.RotR(3),
		Port1: automaton.Xor(),
		Port5: automaton.And(),
	})
	out, err := e.Step(s, wf)
	require.NoError(t, err)
	for j := range out.Vec[0] {
		require.Equal(t, rotr32(s.Vec[0][j], 3), out.Vec[0][j])
		require.Equal(t, s.Vec[1][j]^s.Vec[9][j], out.Vec[1][j])
		require.Equal(t, s.Vec[2][j]&s.Vec[10][j], out.Vec[2][j])
	}
	require.Equal(t, s.Vec[3], out.Vec[3])
	// the general registers take the port 1 operation
	require.Equal(t, s.Gpr[0]^s.Gpr[7], out.Gpr[0])
}

func TestMaskedVec(t *testing.T) {
	t.Parallel()
	e := NewUnchecked()
	s := testutil.RandomState(7)

	wf := automaton.XorWavefront().WithMasks(0b101, 0)
	out, err := e.Step(s, wf)
	require.NoError(t, err)
	for j := range out.Vec[0] {
		require.Equal(t, s.Vec[0][j]^s.Vec[8][j], out.Vec[0][j])
		require.Equal(t, s.Vec[2][j]^s.Vec[10][j], out.Vec[2][j])
	}
	require.Equal(t, s.Vec[1], out.Vec[1])
	require.Equal(t, s.Gpr, out.Gpr)
}

func TestMaskedRotate(t *testing.T) {
	t.Parallel()
	e := NewUnchecked()
	s := testutil.RandomState(8)

	wf := automaton.RotRWavefront(11).WithMasks(0b1, automaton.FullGprMask)
	out, err := e.Step(s, wf)
	require.NoError(t, err)
	for j := range out.Vec[0] {
		require.Equal(t, rotr32(s.Vec[0][j], 11), out.Vec[0][j])
	}
	require.Equal(t, s.Vec[1], out.Vec[1])
	require.Equal(t, s.Gpr, out.Gpr)
}

func TestGprMask(t *testing.T) {
	t.Parallel()
	e := NewUnchecked()
	s := testutil.RandomState(9)

	wf := automaton.XorWavefront().WithMasks(automaton.FullVecMask, 0b1)
	out, err := e.Step(s, wf)
	require.NoError(t, err)
	require.Equal(t, s.Gpr[0]^s.Gpr[7], out.Gpr[0])
	for i := 1; i < automaton.GprCount; i++ {
		require.Equal(t, s.Gpr[i], out.Gpr[i])
	}
}

func TestShuffleClearAndPermute(t *testing.T) {
	t.Parallel()
	e := NewUnchecked()
	s := testutil.RandomState(10)
	for i := 8; i < 16; i++ {
		for j := range s.Vec[i] {
			s.Vec[i][j] = 0x80808080 // high bit set clears every byte
		}
	}
	out, err := e.Step(s, automaton.ShuffleWavefront())
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		require.Equal(t, [automaton.VecLanes]uint32{}, out.Vec[i])
	}

	s = testutil.RandomState(11)
	for i := 8; i < 16; i++ {
		for j := range s.Vec[i] {
			s.Vec[i][j] = 3
		}
	}
	out, err = e.Step(s, automaton.PermuteWavefront())
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		for j := range out.Vec[i] {
			require.Equal(t, s.Vec[i][3], out.Vec[i][j])
		}
	}
}

func TestRunFoldsStep(t *testing.T) {
	t.Parallel()
	ctx := testutil.Context(t)
	e := NewUnchecked()
	s := testutil.RandomState(12)
	prog := automaton.NewProgram().
		Push(automaton.XorWavefront()).
		Push(automaton.AddWavefront()).
		Push(automaton.RotRWavefront(2)).
		Push(automaton.NotWavefront()).
		Build()

	got, err := e.Run(ctx, s, prog)
	require.NoError(t, err)

	want := s
	for _, wf := range prog {
		want, err = e.Step(want, wf)
		require.NoError(t, err)
	}
	require.Equal(t, want, got)
}

func TestStepNXorCancels(t *testing.T) {
	t.Parallel()
	ctx := testutil.Context(t)
	e := NewUnchecked()
	s := testutil.RandomState(13)

	out, err := e.StepN(ctx, s, automaton.XorWavefront(), 2)
	require.NoError(t, err)
	require.Equal(t, s, out)
}

func TestStepRejectsBadPorts(t *testing.T) {
	t.Parallel()
	e := NewUnchecked()
	wf := automaton.NewWavefront(automaton.PortAssignment{Port0: automaton.Xor()})
	_, err := e.Step(automaton.State{}, wf)
	require.Error(t, err)
	require.ErrorAs(t, err, &automaton.ErrBadPortOp{})
}

func TestStepNCancelled(t *testing.T) {
	t.Parallel()
	ctx, cf := context.WithCancel(context.Background())
	cf()
	e := NewUnchecked()
	_, err := e.StepN(ctx, automaton.State{}, automaton.XorWavefront(), 10)
	require.ErrorIs(t, err, context.Canceled)
}
