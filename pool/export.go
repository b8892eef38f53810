package pool

import (
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/memkit/pool/export"
)

// FreeList returns the uint16 free-region export: a count followed by
// (pos, extent) pairs, little-endian, in position order. Nil when not
// Ready.
func (m *Manager) FreeList() []byte {
	if !m.Ready() {
		return nil
	}
	return export.FreeList(m.ledger.SnapshotFree())
}

// Bitmap returns the word-occupancy bitmap export: a two-byte
// little-endian byte count followed by packed bits, set = allocated.
// Nil when not Ready.
func (m *Manager) Bitmap() []byte {
	if !m.Ready() {
		return nil
	}
	return export.Bitmap(m.arena.Words(), m.ledger.SnapshotFree())
}

// WriteMemoryMap writes the text memory map of the current holes to w.
func (m *Manager) WriteMemoryMap(w io.Writer) error {
	if !m.Ready() {
		return ErrNotReady
	}
	return export.WriteMemoryMap(w, m.ledger.SnapshotFree())
}

// DumpMemoryMap writes the text memory map to the file at path,
// creating or truncating it with permissive mode. A sink that cannot
// be opened is reported as ErrSink, distinct from pool state errors;
// the Manager's own state is never affected.
func (m *Manager) DumpMemoryMap(path string) error {
	if !m.Ready() {
		return ErrNotReady
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o777)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSink, err)
	}
	werr := m.WriteMemoryMap(f)
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}
