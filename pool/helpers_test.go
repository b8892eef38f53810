package pool

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memkit/pool/fit"
)

// newReadyPool returns an initialized Manager for tests.
func newReadyPool(t *testing.T, wordSize, words int, s fit.Strategy) *Manager {
	t.Helper()
	m, err := New(wordSize, s)
	require.NoError(t, err)
	require.NoError(t, m.Initialize(words))
	t.Cleanup(func() { _ = m.Shutdown() })
	return m
}

// assertInvariants checks the structural invariants that must hold in
// every reachable Ready state: the regions tile [0, words) exactly, no
// two list-consecutive regions are both free, and the allocation table
// matches the used-region count.
func assertInvariants(t *testing.T, m *Manager) {
	t.Helper()
	if !m.Ready() {
		return
	}
	next := 0
	prevFree := false
	for i, r := range m.Regions() {
		require.Equal(t, next, r.Pos, "gap or overlap before region %d", i)
		require.Positive(t, r.Extent, "zero-extent region at %d", r.Pos)
		if i > 0 {
			require.False(t, prevFree && r.Free, "adjacent free regions at %d", r.Pos)
		}
		prevFree = r.Free
		next = r.End()
	}
	require.Equal(t, m.Words(), next, "regions must cover the whole arena")
	require.Len(t, m.table, m.ledger.UsedCount(),
		"allocation table must match used-region count")
}
