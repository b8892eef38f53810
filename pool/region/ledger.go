package region

import (
	"slices"

	"github.com/joshuapare/memkit/pool/fit"
)

// Ledger is the ordered collection of regions covering one span. The
// zero value is an empty ledger tracking nothing.
//
// Split remainders are inserted directly after the region they were
// carved from, so the sequence stays position-sorted at all times.
type Ledger struct {
	regions []Region
}

// Reset discards all state and re-creates the single free region
// spanning words. A zero-word span produces an empty ledger rather
// than a zero-extent region.
func (l *Ledger) Reset(words int) {
	l.regions = l.regions[:0]
	if words > 0 {
		l.regions = append(l.regions, Region{Pos: 0, Extent: words, Free: true})
	}
}

// SnapshotFree returns the free regions in position order. The result
// is an independent copy, safe to hand to a fit strategy.
func (l *Ledger) SnapshotFree() []fit.Hole {
	holes := make([]fit.Hole, 0, len(l.regions))
	for _, r := range l.regions {
		if r.Free {
			holes = append(holes, fit.Hole{Pos: r.Pos, Extent: r.Extent})
		}
	}
	return holes
}

// Commit marks words words of the free region starting at pos as used.
// When the region is larger than needed it is split: the used part
// keeps pos, and the free remainder is inserted right after it. The
// ledger is untouched on failure.
func (l *Ledger) Commit(pos, words int) error {
	if words <= 0 {
		return ErrBadExtent
	}
	for i, r := range l.regions {
		if r.Pos != pos || !r.Free {
			continue
		}
		if r.Extent < words {
			return ErrNoFreeRegion
		}
		if r.Extent > words {
			rest := Region{Pos: pos + words, Extent: r.Extent - words, Free: true}
			l.regions[i].Extent = words
			l.regions = slices.Insert(l.regions, i+1, rest)
		}
		l.regions[i].Free = false
		return nil
	}
	return ErrNoFreeRegion
}

// Release flips the used region starting at pos back to free and
// coalesces. It reports whether such a region existed; false means the
// offset is not currently allocated and nothing changed.
func (l *Ledger) Release(pos int) bool {
	for i, r := range l.regions {
		if r.Pos == pos && !r.Free {
			l.regions[i].Free = true
			l.Coalesce()
			return true
		}
	}
	return false
}

// Coalesce merges runs of consecutive free regions. Neighbors merge
// only when numerically contiguous (a.End() == b.Pos); because the
// ledger keeps regions position-sorted and exactly tiling, list
// neighbors always are, but the check stands on its own.
func (l *Ledger) Coalesce() {
	i := 0
	for i+1 < len(l.regions) {
		a, b := l.regions[i], l.regions[i+1]
		if a.Free && b.Free && a.End() == b.Pos {
			l.regions[i].Extent += b.Extent
			l.regions = slices.Delete(l.regions, i+1, i+2)
			continue
		}
		i++
	}
}

// Regions returns a copy of the full region sequence in position order.
func (l *Ledger) Regions() []Region {
	return slices.Clone(l.regions)
}

// Len returns the number of tracked regions.
func (l *Ledger) Len() int { return len(l.regions) }

// FreeWords returns the total number of free words.
func (l *Ledger) FreeWords() int {
	n := 0
	for _, r := range l.regions {
		if r.Free {
			n += r.Extent
		}
	}
	return n
}

// UsedCount returns the number of regions currently in use.
func (l *Ledger) UsedCount() int {
	n := 0
	for _, r := range l.regions {
		if !r.Free {
			n++
		}
	}
	return n
}

// LargestFree returns the extent of the largest free region, 0 when
// there is none.
func (l *Ledger) LargestFree() int {
	n := 0
	for _, r := range l.regions {
		if r.Free && r.Extent > n {
			n = r.Extent
		}
	}
	return n
}
