package outlier

// Class is the final classification of a sample.
type Class int

const (
	None Class = iota
	Likely
	Distinct
)

var classNames = [...]string{
	None:     "none",
	Likely:   "likely",
	Distinct: "distinct",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "unknown"
	}
	return classNames[c]
}

// MarshalText encodes the class by name.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// IsOutlier reports whether the class removes the sample from the export.
func (c Class) IsOutlier() bool {
	return c == Likely || c == Distinct
}

// Combine merges per-sample flags from the two sweeps. Both slices must be
// indexed by the same sample order.
func Combine(forward, reverse []bool) []Class {
	out := make([]Class, len(forward))
	for i := range forward {
		switch {
		case forward[i] && reverse[i]:
			out[i] = Distinct
		case forward[i] || reverse[i]:
			out[i] = Likely
		}
	}
	return out
}
