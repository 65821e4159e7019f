package trip

// PartitionRuns splits an ascending, duplicate-free date list into maximal
// runs of consecutive days. Empty input yields no runs.
func PartitionRuns(dates []string) ([]Run, error) {
	if len(dates) == 0 {
		return nil, nil
	}

	var runs []Run
	current := Run{dates[0]}

	prev, err := parseCalendarDate(dates[0])
	if err != nil {
		return nil, err
	}

	for _, d := range dates[1:] {
		t, err := parseCalendarDate(d)
		if err != nil {
			return nil, err
		}

		// Parsed dates are UTC midnight, so AddDate never drifts across DST.
		if t.Equal(prev.AddDate(0, 0, 1)) {
			current = append(current, d)
		} else {
			runs = append(runs, current)
			current = Run{d}
		}
		prev = t
	}

	return append(runs, current), nil
}
