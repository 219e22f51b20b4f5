package outlier

import "sort"

// Ranking orders a set of samples top-down by stratigraphic position.
type Ranking struct {
	// Order holds sample indices, highest position first. Equal positions
	// keep their input order.
	Order []int
	// Positions holds the ranking position of each slot.
	Positions []float64
	// Duplicate is true for every rank slot whose position is shared with
	// another sample. It is diagnostic only.
	Duplicate []bool
}

// Rank orders samples by StratPosition, descending.
func Rank(samples []Sample) Ranking {
	n := len(samples)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return samples[order[a]].StratPosition() > samples[order[b]].StratPosition()
	})

	positions := make([]float64, n)
	for k, idx := range order {
		positions[k] = samples[idx].StratPosition()
	}

	dup := make([]bool, n)
	for k := 1; k < n; k++ {
		if positions[k] == positions[k-1] {
			dup[k] = true
			dup[k-1] = true
		}
	}

	return Ranking{Order: order, Positions: positions, Duplicate: dup}
}

// Reversed returns the bottom-up order.
func (r Ranking) Reversed() []int {
	n := len(r.Order)
	out := make([]int, n)
	for k, idx := range r.Order {
		out[n-1-k] = idx
	}
	return out
}

// DuplicateGroups returns the runs of rank slots sharing one position.
func (r Ranking) DuplicateGroups() [][]int {
	var groups [][]int
	for k := 0; k < len(r.Order); {
		end := k + 1
		for end < len(r.Order) && r.Positions[end] == r.Positions[k] {
			end++
		}
		if end-k > 1 {
			group := make([]int, 0, end-k)
			for j := k; j < end; j++ {
				group = append(group, j)
			}
			groups = append(groups, group)
		}
		k = end
	}
	return groups
}
