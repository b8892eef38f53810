// Package pool implements a word-addressed memory pool with pluggable
// placement strategies.
//
// # Overview
//
// A Manager owns a fixed arena and a ledger of free and used regions.
// Allocation requests are rounded up to whole words, handed to the
// active fit strategy as a snapshot of the current holes, and
// committed by splitting the chosen hole. Frees coalesce adjacent
// holes back together. The pool is a teaching and experimentation
// harness for classic free-space management, not a production
// allocator.
//
// # Usage Example
//
//	m, err := pool.New(8, fit.BestFit{})
//	if err != nil {
//	    return err
//	}
//	if err := m.Initialize(96); err != nil {
//	    return err
//	}
//	defer m.Shutdown()
//
//	ref, data, err := m.Alloc(40)
//	if err != nil {
//	    return err
//	}
//	// Use data...
//	m.Free(ref)
//
// # Strategies
//
// The placement decision is a fit.Strategy value, swappable at runtime
// with SetStrategy. fit.BestFit, fit.WorstFit and fit.FirstFit are
// built in; any function of the right shape can be installed through
// fit.Func.
//
// # Introspection
//
// FreeList, Bitmap, WriteMemoryMap/DumpMemoryMap and WriteSummary
// render read-only snapshots of pool state. None of them mutate the
// ledger.
//
// # Error Contract
//
// Alloc reports failure through sentinel errors (ErrNotReady,
// ErrZeroSize, ErrNoSpace). Free is deliberately fail-silent: unknown
// refs, out-of-range refs and double frees are no-ops so a bad free
// can never corrupt region state. Stats().BadFrees counts them.
//
// # Thread Safety
//
// A Manager is not thread-safe. It assumes exclusive single-owner
// access; callers that share one must serialize externally.
package pool
