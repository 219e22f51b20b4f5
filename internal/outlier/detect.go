package outlier

// Detect classifies the samples of t selected by mask.
//
// Parameters are validated before anything else. A transect whose decay
// system was not measured yields a Result with StatusNotApplicable and no
// entries; that is not an error.
func Detect(t Transect, mask Mask, p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	included, err := mask.indices(len(t.Samples))
	if err != nil {
		return nil, err
	}

	res := &Result{
		Transect: t.Name,
		Nuclide:  t.Nuclide,
		Params:   p,
	}
	if !t.Measured {
		res.Status = StatusNotApplicable
		return res, nil
	}
	res.Status = StatusEvaluated

	// Masked-out samples are dropped here, before ranking, so they never
	// act as neighbors.
	samples := make([]Sample, len(included))
	ages := make([]Age, len(included))
	for j, idx := range included {
		samples[j] = t.Samples[idx]
		ages[j] = t.Samples[idx].Age
	}

	rk := Rank(samples)
	forward := sweep(ages, rk.Order, p)
	reverse := sweep(ages, rk.Reversed(), p)
	classes := Combine(forward, reverse)

	res.Ages = make([]float64, len(samples))
	for j, s := range samples {
		res.Ages[j] = exportedAge(s.Age.Mean, classes[j])
	}

	res.Entries = make([]Entry, len(rk.Order))
	for k, j := range rk.Order {
		s := samples[j]
		res.Entries[k] = Entry{
			Index:     included[j],
			Name:      s.Name,
			Age:       s.Age,
			Position:  rk.Positions[k],
			Duplicate: rk.Duplicate[k],
			Forward:   forward[j],
			Reverse:   reverse[j],
			Class:     classes[j],
			Exported:  res.Ages[j],
		}
		switch classes[j] {
		case Distinct:
			res.Distinct = append(res.Distinct, Pair{Name: s.Name, Age: s.Age.Mean})
		case Likely:
			res.Likely = append(res.Likely, Pair{Name: s.Name, Age: s.Age.Mean})
		}
	}

	for _, group := range rk.DuplicateGroups() {
		names := make([]string, len(group))
		for i, k := range group {
			names[i] = res.Entries[k].Name
		}
		res.Duplicates = append(res.Duplicates, DuplicatePosition{
			Position: rk.Positions[group[0]],
			Samples:  names,
		})
	}

	return res, nil
}
