package outlier

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Age is an exposure age with its total (1σ) uncertainty.
type Age struct {
	Mean        float64 `json:"mean"`
	Uncertainty float64 `json:"uncertainty"`
}

// Min is the lower bound of the age interval.
func (a Age) Min() float64 { return a.Mean - a.Uncertainty }

// Max is the upper bound of the age interval.
func (a Age) Max() float64 { return a.Mean + a.Uncertainty }

// Sample is one dated sample of a transect.
type Sample struct {
	Name string
	Age  Age
	// Position is the stratigraphic position, higher is higher in the
	// sequence. Nil or NaN means unrecorded.
	Position  *float64
	Elevation float64
}

// StratPosition returns the position used for ranking: the recorded
// stratigraphic position, or the elevation when none was recorded.
func (s Sample) StratPosition() float64 {
	if s.Position == nil || math.IsNaN(*s.Position) {
		return s.Elevation
	}
	return *s.Position
}

// Transect is a stratigraphic series of samples dated with one decay system.
type Transect struct {
	Name    string
	Nuclide string
	// Measured is false when the decay system was not measured for this
	// dataset at all. Such a transect is not evaluated.
	Measured bool
	Samples  []Sample
}

// Mask selects samples by their index in Transect.Samples. A nil Mask
// selects every sample; an empty non-nil Mask selects none.
type Mask []int

// ParseMask parses a comma separated list of sample indices. An empty string
// yields a nil Mask.
func ParseMask(s string) (Mask, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	m := make(Mask, 0, len(parts))
	for _, part := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an index", ErrInvalidMask, part)
		}
		m = append(m, idx)
	}
	return m, nil
}

// indices resolves the mask against a transect of n samples, returning the
// selected indices in declared order without duplicates.
func (m Mask) indices(n int) ([]int, error) {
	if m == nil {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out, nil
	}

	seen := make(map[int]bool, len(m))
	out := make([]int, 0, len(m))
	for _, idx := range m {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidMask, idx, n)
		}
		if seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, idx)
	}
	sort.Ints(out)
	return out, nil
}
