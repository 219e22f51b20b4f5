package outlier

// maxLookahead bounds how many living neighbors a sweep inspects.
const maxLookahead = 3

// sweep walks ages in the given order and flags the samples that do not fit
// their living neighbors ahead. order holds indices into ages; the returned
// flags are indexed the same way as ages, whatever the traversal order.
//
// A flagged sample is dropped from the living sequence of this sweep, so it
// is never consulted as a neighbor afterwards. Each call owns its own marker
// array: one direction's removals never leak into the other.
func sweep(ages []Age, order []int, p Params) []bool {
	n := len(order)
	// removed tracks the living sequence. Only slots ahead of k are read and
	// a slot is marked after it is judged, so within one sweep no read sees
	// a removal.
	removed := make([]bool, n)
	flags := make([]bool, len(ages))

	ahead := make([]Age, 0, maxLookahead)
	for k := 0; k < n; k++ {
		ahead = ahead[:0]
		for j := k + 1; j < n && len(ahead) < maxLookahead; j++ {
			if !removed[j] {
				ahead = append(ahead, ages[order[j]])
			}
		}

		if judge(ages[order[k]], ahead, p) {
			flags[order[k]] = true
			removed[k] = true
		}
	}
	return flags
}

// judge decides whether s is an outlier given its living neighbors ahead,
// nearest first.
func judge(s Age, ahead []Age, p Params) bool {
	if len(ahead) == 0 {
		return !p.ExcludeEnds
	}

	switch Classify(s, ahead[0]) {
	case Older:
		// Older than the next sample but younger than the one after it:
		// only a third neighbor can settle which of them is misplaced.
		if len(ahead) < 2 || p.StratLevel < 2 {
			return false
		}
		if Classify(s, ahead[1]) != Younger {
			return false
		}
		if len(ahead) < 3 || p.StratLevel < 3 {
			return false
		}
		return Classify(s, ahead[2]) == Younger
	case Younger:
		if len(ahead) < 2 || p.StratLevel < 2 {
			return false
		}
		return Classify(s, ahead[1]) == Younger
	default:
		return false
	}
}
