package trip

import "iter"

// EnumerateCandidates yields every (depart, return) pair inside run whose
// length satisfies bounds, ordered by depart index then nights. Return dates
// are picked by index into the run, so nights is always the exact day gap and
// a trip never spans a hole in availability.
func EnumerateCandidates(run Run, bounds Nights) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		n := len(run)
		minNights := max(bounds.Min, 1)

		for i := 0; i < n-1; i++ {
			maxHere := n - 1 - i
			if bounds.Max > 0 && bounds.Max < maxHere {
				maxHere = bounds.Max
			}

			for nights := minNights; nights <= maxHere; nights++ {
				c := Candidate{Depart: run[i], Return: run[i+nights], Nights: nights}
				if !yield(c) {
					return
				}
			}
		}
	}
}

// AllCandidates chains EnumerateCandidates over runs in order.
func AllCandidates(runs []Run, bounds Nights) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		for _, run := range runs {
			for c := range EnumerateCandidates(run, bounds) {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// CountCandidates returns how many candidates a run of n days produces.
func CountCandidates(n int, bounds Nights) int {
	minNights := max(bounds.Min, 1)
	total := 0
	for i := 0; i < n-1; i++ {
		maxHere := n - 1 - i
		if bounds.Max > 0 && bounds.Max < maxHere {
			maxHere = bounds.Max
		}
		if maxHere >= minNights {
			total += maxHere - minNights + 1
		}
	}
	return total
}
