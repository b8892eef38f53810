package pool

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary describes pool occupancy at a point in time.
type Summary struct {
	WordSize    int // Bytes per word
	Words       int // Arena capacity in words
	FreeWords   int // Words not currently allocated
	Holes       int // Number of free regions
	LargestHole int // Extent of the largest free region, in words
	Allocations int // Outstanding allocations
}

// Summarize computes the current occupancy summary. The zero Summary
// is returned when the Manager is not Ready.
func (m *Manager) Summarize() Summary {
	if !m.Ready() {
		return Summary{}
	}
	return Summary{
		WordSize:    m.wordSize,
		Words:       m.arena.Words(),
		FreeWords:   m.ledger.FreeWords(),
		Holes:       len(m.ledger.SnapshotFree()),
		LargestHole: m.ledger.LargestFree(),
		Allocations: m.ledger.UsedCount(),
	}
}

// WriteSummary writes a human-readable occupancy report to w, with
// grouped digits for the byte counts. Like the other exporters it is
// diagnostic output, not a machine format.
func (m *Manager) WriteSummary(w io.Writer) error {
	if !m.Ready() {
		return ErrNotReady
	}
	s := m.Summarize()
	p := message.NewPrinter(language.English)

	usedWords := s.Words - s.FreeWords
	_, err := p.Fprintf(w,
		"Capacity:     %d words (%d bytes, %d-byte words)\n"+
			"In use:       %d words (%d bytes) across %d allocations\n"+
			"Free:         %d words (%d bytes) in %d holes\n"+
			"Largest hole: %d words\n",
		s.Words, s.Words*s.WordSize, s.WordSize,
		usedWords, usedWords*s.WordSize, s.Allocations,
		s.FreeWords, s.FreeWords*s.WordSize, s.Holes,
		s.LargestHole,
	)
	return err
}
