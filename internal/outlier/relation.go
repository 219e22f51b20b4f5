package outlier

// Relation is the outcome of comparing two age intervals.
type Relation int

const (
	Consistent Relation = iota
	Older
	Younger
)

var relationNames = [...]string{
	Consistent: "consistent",
	Older:      "older",
	Younger:    "younger",
}

func (r Relation) String() string {
	if r < 0 || int(r) >= len(relationNames) {
		return "unknown"
	}
	return relationNames[r]
}

// Classify compares interval a with interval b. a is Older when its lower
// bound lies strictly above b's upper bound, Younger when its upper bound
// lies strictly below b's lower bound, and Consistent otherwise, touching
// bounds included.
func Classify(a, b Age) Relation {
	switch {
	case a.Min() > b.Max():
		return Older
	case a.Max() < b.Min():
		return Younger
	default:
		return Consistent
	}
}
