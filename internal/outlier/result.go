package outlier

import (
	"fmt"
	"math"
	"strings"
)

// Status tells whether a transect was evaluated.
type Status string

const (
	StatusEvaluated     Status = "evaluated"
	StatusNotApplicable Status = "not_applicable"
)

// Missing is the exported value of a removed age.
var Missing = math.NaN()

// IsMissing reports whether v is the Missing sentinel.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

func exportedAge(mean float64, c Class) float64 {
	if c.IsOutlier() {
		return Missing
	}
	return mean
}

// Entry is one ranked sample with the verdicts of both sweeps.
type Entry struct {
	// Index is the sample's position in Transect.Samples.
	Index     int
	Name      string
	Age       Age
	Position  float64
	Duplicate bool
	Forward   bool
	Reverse   bool
	Class     Class
	// Exported is the age mean, or Missing for an outlier.
	Exported float64
}

// Pair names an outlier and its mean age.
type Pair struct {
	Name string  `json:"name"`
	Age  float64 `json:"age"`
}

// DuplicatePosition lists samples that share one stratigraphic position.
type DuplicatePosition struct {
	Position float64  `json:"position"`
	Samples  []string `json:"samples"`
}

// Result is the outcome of Detect.
type Result struct {
	Transect string
	Nuclide  string
	Status   Status
	Params   Params

	// Entries are in rank order, top of the transect first.
	Entries []Entry
	// Ages is the exported series in declared order of the included
	// samples, outliers replaced by Missing.
	Ages []float64

	Distinct   []Pair
	Likely     []Pair
	Duplicates []DuplicatePosition
}

// Applicable reports whether the transect was evaluated.
func (r *Result) Applicable() bool {
	return r.Status == StatusEvaluated
}

// OutlierCount returns the number of distinct and likely outliers.
func (r *Result) OutlierCount() int {
	return len(r.Distinct) + len(r.Likely)
}

// Lines returns the outlier listing, distinct outliers first.
func (r *Result) Lines() []string {
	lines := make([]string, 0, r.OutlierCount())
	for _, p := range r.Distinct {
		lines = append(lines, fmt.Sprintf("Distinct outlier: %s (%.2f)", p.Name, p.Age))
	}
	for _, p := range r.Likely {
		lines = append(lines, fmt.Sprintf("Likely outlier: %s (%.2f)", p.Name, p.Age))
	}
	return lines
}

// Report renders the human-readable outlier listing.
func (r *Result) Report() string {
	if !r.Applicable() {
		nuclide := r.Nuclide
		if nuclide == "" {
			nuclide = "decay system"
		}
		name := r.Transect
		if name == "" {
			name = "transect"
		}
		return fmt.Sprintf("Not applicable: %s not measured for %s\n", nuclide, name)
	}

	lines := r.Lines()
	if len(lines) == 0 {
		return "No outliers identified\n"
	}
	return strings.Join(lines, "\n") + "\n"
}
