package fit

// FirstFit chooses the first qualifying hole in snapshot order. It is
// the cheapest of the built-ins and doubles as a reference for adding
// strategies beyond best/worst fit.
type FirstFit struct{}

// Select implements Strategy.
func (FirstFit) Select(words int, free []Hole) (int, bool) {
	if words <= 0 {
		return 0, false
	}
	for _, h := range free {
		if h.Extent >= words {
			return h.Pos, true
		}
	}
	return 0, false
}
