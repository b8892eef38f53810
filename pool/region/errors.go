package region

import "errors"

var (
	// ErrNoFreeRegion indicates no free region large enough starts at the
	// committed offset. A strategy that returns such an offset has broken
	// the selection protocol; the ledger is left untouched.
	ErrNoFreeRegion = errors.New("region: no free region at offset")

	// ErrBadExtent indicates a commit for a non-positive word count.
	// Zero-byte requests are rejected upstream; this guards the ledger
	// against ever creating a zero-extent region.
	ErrBadExtent = errors.New("region: commit extent must be positive")
)
