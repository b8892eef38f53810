package fit

// WorstFit chooses the largest qualifying hole, leaving the biggest
// possible remainder. Ties go to the earliest hole in snapshot order.
type WorstFit struct{}

// Select implements Strategy.
func (WorstFit) Select(words int, free []Hole) (int, bool) {
	if words <= 0 {
		return 0, false
	}
	pos, biggest := -1, 0
	for _, h := range free {
		if h.Extent < words {
			continue
		}
		if pos < 0 || h.Extent > biggest {
			pos, biggest = h.Pos, h.Extent
		}
	}
	if pos < 0 {
		return 0, false
	}
	return pos, true
}
