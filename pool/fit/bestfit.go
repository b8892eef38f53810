package fit

// BestFit chooses the qualifying hole with the least leftover space.
// Ties go to the earliest hole in snapshot order, keeping the choice
// deterministic for equal-waste candidates.
type BestFit struct{}

// Select implements Strategy.
func (BestFit) Select(words int, free []Hole) (int, bool) {
	if words <= 0 {
		return 0, false
	}
	pos, waste := -1, 0
	for _, h := range free {
		if h.Extent < words {
			continue
		}
		if pos < 0 || h.Extent-words < waste {
			pos, waste = h.Pos, h.Extent-words
		}
	}
	if pos < 0 {
		return 0, false
	}
	return pos, true
}
