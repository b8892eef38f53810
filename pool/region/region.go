// Package region tracks the free and used regions of a word-addressed
// span and implements the split-on-commit and coalesce-on-release
// algorithms the pool is built on.
package region

// Region is a contiguous run of words, either free or in use. The
// ledger keeps regions ordered by position; together they tile the
// managed span exactly, with no gaps or overlaps.
type Region struct {
	Pos    int
	Extent int
	Free   bool
}

// End returns the first word offset past the region.
func (r Region) End() int { return r.Pos + r.Extent }
