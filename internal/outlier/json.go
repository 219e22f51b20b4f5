package outlier

import "encoding/json"

type entryJSON struct {
	Index       int      `json:"index"`
	Name        string   `json:"name"`
	Age         float64  `json:"age"`
	Uncertainty float64  `json:"uncertainty"`
	Position    float64  `json:"position"`
	Duplicate   bool     `json:"duplicate_position"`
	Forward     bool     `json:"flagged_top_down"`
	Reverse     bool     `json:"flagged_bottom_up"`
	Class       Class    `json:"class"`
	Exported    *float64 `json:"exported_age"`
}

type resultJSON struct {
	Transect   string              `json:"transect"`
	Nuclide    string              `json:"nuclide"`
	Status     Status              `json:"status"`
	Params     Params              `json:"params"`
	Entries    []entryJSON         `json:"entries"`
	Ages       []*float64          `json:"ages"`
	Distinct   []Pair              `json:"distinct_outliers"`
	Likely     []Pair              `json:"likely_outliers"`
	Duplicates []DuplicatePosition `json:"duplicate_positions"`
	Report     string              `json:"report"`
}

// nullable maps Missing to JSON null.
func nullable(v float64) *float64 {
	if IsMissing(v) {
		return nil
	}
	return &v
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// MarshalJSON encodes the result with removed ages as null and the
// human-readable report alongside.
func (r *Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{
		Transect:   r.Transect,
		Nuclide:    r.Nuclide,
		Status:     r.Status,
		Params:     r.Params,
		Entries:    make([]entryJSON, len(r.Entries)),
		Ages:       make([]*float64, len(r.Ages)),
		Distinct:   nonNil(r.Distinct),
		Likely:     nonNil(r.Likely),
		Duplicates: nonNil(r.Duplicates),
		Report:     r.Report(),
	}
	for i, e := range r.Entries {
		out.Entries[i] = entryJSON{
			Index:       e.Index,
			Name:        e.Name,
			Age:         e.Age.Mean,
			Uncertainty: e.Age.Uncertainty,
			Position:    e.Position,
			Duplicate:   e.Duplicate,
			Forward:     e.Forward,
			Reverse:     e.Reverse,
			Class:       e.Class,
			Exported:    nullable(e.Exported),
		}
	}
	for i, v := range r.Ages {
		out.Ages[i] = nullable(v)
	}
	return json.Marshal(out)
}
