package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memkit/pool/fit"
)

// assertTiles verifies the coverage invariant: regions tile [0, words)
// in order with no gaps, overlaps or zero extents.
func assertTiles(t *testing.T, l *Ledger, words int) {
	t.Helper()
	next := 0
	for _, r := range l.Regions() {
		require.Equal(t, next, r.Pos, "regions must tile without gaps")
		require.Positive(t, r.Extent)
		next = r.End()
	}
	require.Equal(t, words, next, "regions must cover the whole span")
}

// assertNoAdjacentFree verifies that no two list-consecutive regions
// are both free.
func assertNoAdjacentFree(t *testing.T, l *Ledger) {
	t.Helper()
	rs := l.Regions()
	for i := 0; i+1 < len(rs); i++ {
		require.False(t, rs[i].Free && rs[i+1].Free,
			"adjacent free regions at %d and %d", rs[i].Pos, rs[i+1].Pos)
	}
}

func TestReset(t *testing.T) {
	var l Ledger
	l.Reset(64)

	require.Equal(t, 1, l.Len())
	assert.Equal(t, []Region{{Pos: 0, Extent: 64, Free: true}}, l.Regions())
	assert.Equal(t, 64, l.FreeWords())

	l.Reset(0)
	assert.Equal(t, 0, l.Len(), "zero-word span must not create a zero-extent region")
}

func TestCommit_Split(t *testing.T) {
	var l Ledger
	l.Reset(64)

	require.NoError(t, l.Commit(0, 10))
	assert.Equal(t, []Region{
		{Pos: 0, Extent: 10, Free: false},
		{Pos: 10, Extent: 54, Free: true},
	}, l.Regions())
	assertTiles(t, &l, 64)
}

func TestCommit_ExactFit(t *testing.T) {
	var l Ledger
	l.Reset(10)

	require.NoError(t, l.Commit(0, 10))
	assert.Equal(t, []Region{{Pos: 0, Extent: 10, Free: false}}, l.Regions())
	assert.Equal(t, 0, l.FreeWords())
}

func TestCommit_MiddleHole(t *testing.T) {
	var l Ledger
	l.Reset(30)
	require.NoError(t, l.Commit(0, 10))
	require.NoError(t, l.Commit(10, 10))
	require.True(t, l.Release(0))

	// Holes at [0,10) and [20,30); commit into the first one.
	require.NoError(t, l.Commit(0, 4))
	assert.Equal(t, []Region{
		{Pos: 0, Extent: 4, Free: false},
		{Pos: 4, Extent: 6, Free: true},
		{Pos: 10, Extent: 10, Free: false},
		{Pos: 20, Extent: 10, Free: true},
	}, l.Regions())
	assertTiles(t, &l, 30)
}

func TestCommit_Failures(t *testing.T) {
	var l Ledger
	l.Reset(20)
	require.NoError(t, l.Commit(0, 5))

	before := l.Regions()

	err := l.Commit(3, 2)
	require.ErrorIs(t, err, ErrNoFreeRegion, "no region starts at 3")

	err = l.Commit(0, 2)
	require.ErrorIs(t, err, ErrNoFreeRegion, "region at 0 is used")

	err = l.Commit(5, 100)
	require.ErrorIs(t, err, ErrNoFreeRegion, "hole too small")

	err = l.Commit(5, 0)
	require.ErrorIs(t, err, ErrBadExtent)

	assert.Equal(t, before, l.Regions(), "failed commits must not mutate the ledger")
}

func TestRelease_CoalescesBothSides(t *testing.T) {
	var l Ledger
	l.Reset(30)
	require.NoError(t, l.Commit(0, 10))
	require.NoError(t, l.Commit(10, 10))
	require.NoError(t, l.Commit(20, 10))

	require.True(t, l.Release(0))
	require.True(t, l.Release(20))
	require.True(t, l.Release(10), "middle release must merge with both neighbors")

	assert.Equal(t, []Region{{Pos: 0, Extent: 30, Free: true}}, l.Regions())
	assertNoAdjacentFree(t, &l)
}

func TestRelease_Unknown(t *testing.T) {
	var l Ledger
	l.Reset(20)
	require.NoError(t, l.Commit(0, 5))
	before := l.Regions()

	assert.False(t, l.Release(5), "offset 5 is free, not used")
	assert.False(t, l.Release(3), "no region starts at 3")
	assert.Equal(t, before, l.Regions())
}

// TestCoalesce_RequiresNumericContiguity pins the resolution of the
// list-adjacency question: list neighbors merge only when their word
// ranges actually touch.
func TestCoalesce_RequiresNumericContiguity(t *testing.T) {
	l := Ledger{regions: []Region{
		{Pos: 0, Extent: 4, Free: true},
		{Pos: 10, Extent: 4, Free: true}, // synthetic gap
	}}
	l.Coalesce()
	assert.Equal(t, 2, l.Len(), "non-contiguous holes must not merge")

	l = Ledger{regions: []Region{
		{Pos: 0, Extent: 4, Free: true},
		{Pos: 4, Extent: 6, Free: true},
		{Pos: 10, Extent: 2, Free: false},
	}}
	l.Coalesce()
	assert.Equal(t, []Region{
		{Pos: 0, Extent: 10, Free: true},
		{Pos: 10, Extent: 2, Free: false},
	}, l.Regions())
}

func TestSnapshotFree(t *testing.T) {
	var l Ledger
	l.Reset(30)
	require.NoError(t, l.Commit(0, 10))
	require.NoError(t, l.Commit(10, 10))
	require.True(t, l.Release(0))

	holes := l.SnapshotFree()
	assert.Equal(t, []fit.Hole{{Pos: 0, Extent: 10}, {Pos: 20, Extent: 10}}, holes)

	// Snapshot mutation must not leak into the ledger.
	holes[0].Extent = 999
	assert.Equal(t, 20, l.FreeWords())
}

func TestCounters(t *testing.T) {
	var l Ledger
	l.Reset(40)
	require.NoError(t, l.Commit(0, 8))
	require.NoError(t, l.Commit(8, 4))

	assert.Equal(t, 2, l.UsedCount())
	assert.Equal(t, 28, l.FreeWords())
	assert.Equal(t, 28, l.LargestFree())
}
