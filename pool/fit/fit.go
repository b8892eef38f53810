// Package fit provides placement strategies for choosing which free
// region satisfies an allocation request.
//
// A strategy is a pure selection over a read-only snapshot of holes;
// it never mutates ledger state. The built-ins are BestFit, WorstFit
// and FirstFit, and any function of the right shape can be installed
// through Func.
package fit

// Hole describes one free region in a snapshot handed to a Strategy.
// Pos and Extent are in words.
type Hole struct {
	Pos    int
	Extent int
}

// Strategy selects the free region that should satisfy an allocation.
//
// Select receives the requested size in words and a position-ordered
// snapshot of free regions. It returns the chosen region's word offset
// and true, or false when no region is large enough. Implementations
// must treat the snapshot as read-only.
type Strategy interface {
	Select(words int, free []Hole) (pos int, ok bool)
}

// Func adapts a bare function to the Strategy interface.
type Func func(words int, free []Hole) (int, bool)

// Select calls f.
func (f Func) Select(words int, free []Hole) (int, bool) { return f(words, free) }

// ByName returns the built-in strategy registered under name: "best",
// "worst" or "first".
func ByName(name string) (Strategy, bool) {
	switch name {
	case "best":
		return BestFit{}, true
	case "worst":
		return WorstFit{}, true
	case "first":
		return FirstFit{}, true
	}
	return nil, false
}
