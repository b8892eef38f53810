package pool

import (
	"fmt"
	"os"

	"github.com/joshuapare/memkit/internal/arena"
	"github.com/joshuapare/memkit/pool/fit"
	"github.com/joshuapare/memkit/pool/region"
)

// Debug flag - set to true for verbose region tracing (compile-time toggle).
const debugPool = false

// Runtime flag for allocation logging - controlled by MEMKIT_LOG_ALLOC env var.
var logAlloc = os.Getenv("MEMKIT_LOG_ALLOC") != ""

// Ref is a word offset into the pool's arena, handed out by Alloc and
// accepted by Free.
type Ref = uint32

// Manager owns one arena and its region ledger and satisfies
// allocation requests through a pluggable fit strategy.
//
// A Manager starts uninitialized; Initialize creates the arena and
// Shutdown tears it down. Alloc, Free and the exporters are defined
// only between the two.
type Manager struct {
	wordSize int
	strategy fit.Strategy

	arena  *arena.Arena
	ledger region.Ledger
	table  map[Ref]int // word offset -> originally requested bytes

	stats Stats
}

// New creates an uninitialized Manager allocating in wordSize-byte
// words with s as the placement strategy.
func New(wordSize int, s fit.Strategy) (*Manager, error) {
	if wordSize <= 0 {
		return nil, ErrBadWordSize
	}
	if s == nil {
		return nil, ErrNilStrategy
	}
	return &Manager{wordSize: wordSize, strategy: s}, nil
}

// Initialize (re)creates the arena with the given word count and
// resets all bookkeeping. Any prior arena is torn down first, so a
// Manager can be re-initialized at will.
func (m *Manager) Initialize(words int) error {
	if err := m.Shutdown(); err != nil {
		return fmt.Errorf("pool: teardown before init: %w", err)
	}
	a, err := arena.New(words, m.wordSize)
	if err != nil {
		return err
	}
	m.arena = a
	m.ledger.Reset(words)
	m.table = make(map[Ref]int)
	return nil
}

// Shutdown releases the arena and clears all bookkeeping. Calling it
// on an uninitialized Manager is a no-op.
func (m *Manager) Shutdown() error {
	if m.arena == nil {
		return nil
	}
	err := m.arena.Release()
	m.arena = nil
	m.ledger.Reset(0)
	m.table = nil
	return err
}

// Ready reports whether the Manager holds a live arena.
func (m *Manager) Ready() bool { return m.arena != nil }

// Alloc reserves sizeInBytes bytes, rounded up to whole words, and
// returns the reserved span's word offset together with its
// word-rounded byte view. Placement is delegated to the active fit
// strategy over a snapshot of the current holes.
//
// On failure nothing is mutated. A strategy answering with an offset
// the ledger cannot commit is reported as ErrNoSpace.
func (m *Manager) Alloc(sizeInBytes int) (Ref, []byte, error) {
	m.stats.AllocCalls++
	if !m.Ready() {
		m.stats.FailedAllocs++
		return 0, nil, ErrNotReady
	}
	if sizeInBytes <= 0 {
		m.stats.FailedAllocs++
		return 0, nil, ErrZeroSize
	}

	words := m.arena.BytesToWords(sizeInBytes)
	holes := m.ledger.SnapshotFree()
	pos, ok := m.strategy.Select(words, holes)
	if !ok {
		if logAlloc {
			fmt.Fprintf(os.Stderr, "[ALLOC] no fit: need=%d words, holes=%d, largest=%d\n",
				words, len(holes), m.ledger.LargestFree())
		}
		m.stats.FailedAllocs++
		return 0, nil, ErrNoSpace
	}

	before := m.ledger.Len()
	if err := m.ledger.Commit(pos, words); err != nil {
		if logAlloc {
			fmt.Fprintf(os.Stderr, "[ALLOC] strategy offset %d rejected: %v\n", pos, err)
		}
		m.stats.FailedAllocs++
		return 0, nil, ErrNoSpace
	}
	if m.ledger.Len() > before {
		m.stats.Splits++
	}

	ref := Ref(pos)
	m.table[ref] = sizeInBytes
	m.stats.BytesAllocated += int64(sizeInBytes)
	if debugPool {
		debugLogf("alloc %d bytes -> ref=%d (%d words)", sizeInBytes, ref, words)
	}
	return ref, m.arena.Slice(pos, words), nil
}

// Free returns the allocation at ref to the pool and coalesces
// neighboring holes. Out-of-range refs, unknown refs and repeated
// frees are ignored so a bad free can never corrupt region state;
// Stats().BadFrees counts them.
func (m *Manager) Free(ref Ref) {
	m.stats.FreeCalls++
	if !m.Ready() || !m.arena.Contains(int(ref)) {
		m.stats.BadFrees++
		return
	}
	size, ok := m.table[ref]
	if !ok {
		m.stats.BadFrees++
		return
	}
	if !m.ledger.Release(int(ref)) {
		m.stats.BadFrees++
		return
	}
	delete(m.table, ref)
	m.stats.BytesFreed += int64(size)
	if debugPool {
		debugLogf("free ref=%d (%d bytes)", ref, size)
	}
}

// SetStrategy installs s as the placement strategy for subsequent
// allocations. A nil strategy is ignored.
func (m *Manager) SetStrategy(s fit.Strategy) {
	if s == nil {
		return
	}
	m.strategy = s
}

// WordSize returns the allocation granularity in bytes.
func (m *Manager) WordSize() int { return m.wordSize }

// Words returns the arena capacity in words, 0 when not Ready.
func (m *Manager) Words() int {
	if !m.Ready() {
		return 0
	}
	return m.arena.Words()
}

// Capacity returns the arena capacity in bytes, 0 when not Ready.
func (m *Manager) Capacity() int {
	if !m.Ready() {
		return 0
	}
	return m.arena.Capacity()
}

// Bytes returns the live arena contents, nil when not Ready. The
// slice is a view, not a copy, and goes stale on Shutdown.
func (m *Manager) Bytes() []byte {
	if !m.Ready() {
		return nil
	}
	return m.arena.Bytes()
}

// Holes returns the current free regions in position order, nil when
// not Ready.
func (m *Manager) Holes() []fit.Hole {
	if !m.Ready() {
		return nil
	}
	return m.ledger.SnapshotFree()
}

// Regions returns a copy of the full region sequence, nil when not
// Ready.
func (m *Manager) Regions() []region.Region {
	if !m.Ready() {
		return nil
	}
	return m.ledger.Regions()
}

// Stats returns a copy of the lifetime counters.
func (m *Manager) Stats() Stats { return m.stats }

// debugLogf writes a debug trace line to stderr.
func debugLogf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[POOL] "+format+"\n", args...)
}
