package testutil

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"github.com/UOR-Foundation/UOR-Framework/automaton"
)

func Context(t testing.TB) context.Context {
	ctx := context.Background()
	ctx, cf := context.WithCancel(ctx)
	t.Cleanup(cf)
	l, err := zap.NewDevelopment()
	require.NoError(t, err)
	ctx = logctx.NewContext(ctx, l)
	return ctx
}

// RandomState fills a register file deterministically from seed.
func RandomState(seed int64) automaton.State {
	rng := rand.New(rand.NewSource(seed))
	var s automaton.State
	for i := range s.Vec {
		for j := range s.Vec[i] {
			s.Vec[i][j] = rng.Uint32()
		}
	}
	for i := range s.Gpr {
		s.Gpr[i] = rng.Uint64()
	}
	return s
}

// TempDBPath returns a path for a database file in a directory
// removed during Cleanup.
func TempDBPath(t testing.TB) string {
	return filepath.Join(t.TempDir(), "uor.db")
}
