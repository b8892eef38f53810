package pool

// Stats holds lifetime counters for one Manager. The counters are
// diagnostics only and never change an operation's outcome.
type Stats struct {
	AllocCalls     int   // Total Alloc() calls
	FreeCalls      int   // Total Free() calls
	FailedAllocs   int   // Allocations rejected (not ready, zero size, no fit)
	BadFrees       int   // Frees ignored (out of range, unknown, repeated)
	Splits         int   // Free regions split by an allocation
	BytesAllocated int64 // Requested bytes across successful allocations
	BytesFreed     int64 // Requested bytes returned by successful frees
}

// Live returns the number of outstanding allocations implied by the
// counters alone.
func (s Stats) Live() int {
	return (s.AllocCalls - s.FailedAllocs) - (s.FreeCalls - s.BadFrees)
}
