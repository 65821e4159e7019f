package trip

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeRun(n int) Run {
	run := make(Run, n)
	for i := range run {
		run[i] = fmt.Sprintf("2025-12-%02d", i+1)
	}
	return run
}

func TestEnumerateCandidates_ThreeDays(t *testing.T) {
	got := slices.Collect(EnumerateCandidates(makeRun(3), Nights{Min: 1}))

	assert.Equal(t, []Candidate{
		{Depart: "2025-12-01", Return: "2025-12-02", Nights: 1},
		{Depart: "2025-12-01", Return: "2025-12-03", Nights: 2},
		{Depart: "2025-12-02", Return: "2025-12-03", Nights: 1},
	}, got)
}

func TestEnumerateCandidates_NothingFits(t *testing.T) {
	tests := []struct {
		name   string
		run    Run
		bounds Nights
	}{
		{name: "empty run", run: Run{}, bounds: Nights{Min: 1}},
		{name: "single day", run: makeRun(1), bounds: Nights{Min: 1}},
		{name: "min nights longer than run", run: makeRun(3), bounds: Nights{Min: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, slices.Collect(EnumerateCandidates(tt.run, tt.bounds)))
		})
	}
}

func TestEnumerateCandidates_MaxNights(t *testing.T) {
	got := slices.Collect(EnumerateCandidates(makeRun(5), Nights{Min: 2, Max: 3}))

	assert.Equal(t, []Candidate{
		{Depart: "2025-12-01", Return: "2025-12-03", Nights: 2},
		{Depart: "2025-12-01", Return: "2025-12-04", Nights: 3},
		{Depart: "2025-12-02", Return: "2025-12-04", Nights: 2},
		{Depart: "2025-12-02", Return: "2025-12-05", Nights: 3},
		{Depart: "2025-12-03", Return: "2025-12-05", Nights: 2},
	}, got)
}

func TestEnumerateCandidates_CountAndIndexInvariant(t *testing.T) {
	for n := 0; n <= 12; n++ {
		for minN := 1; minN <= 6; minN++ {
			for maxN := 0; maxN <= 8; maxN++ {
				if maxN != 0 && maxN < minN {
					continue
				}
				bounds := Nights{Min: minN, Max: maxN}
				run := makeRun(n)
				name := fmt.Sprintf("n=%d min=%d max=%d", n, minN, maxN)

				count := 0
				for c := range EnumerateCandidates(run, bounds) {
					count++
					di := slices.Index(run, c.Depart)
					ri := slices.Index(run, c.Return)
					assert.Equal(t, c.Nights, ri-di, name)
					assert.GreaterOrEqual(t, c.Nights, minN, name)
					if maxN > 0 {
						assert.LessOrEqual(t, c.Nights, maxN, name)
					}
				}

				assert.Equal(t, expectedCount(n, minN, maxN), count, name)
				assert.Equal(t, count, CountCandidates(n, bounds), name)
			}
		}
	}
}

// expectedCount is sum over i in [0,N-2] of max(0, min(max,N-1-i) - min + 1).
func expectedCount(n, minN, maxN int) int {
	total := 0
	for i := 0; i <= n-2; i++ {
		hi := n - 1 - i
		if maxN > 0 {
			hi = min(hi, maxN)
		}
		total += max(0, hi-minN+1)
	}
	return total
}

func TestEnumerateCandidates_StopsEarly(t *testing.T) {
	seen := 0
	for range EnumerateCandidates(makeRun(10), Nights{Min: 1}) {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestAllCandidates_NeverCrossesGap(t *testing.T) {
	runs := []Run{{"2025-12-01", "2025-12-02"}, {"2025-12-05", "2025-12-06", "2025-12-07"}}

	got := slices.Collect(AllCandidates(runs, Nights{Min: 1}))

	assert.Equal(t, []Candidate{
		{Depart: "2025-12-01", Return: "2025-12-02", Nights: 1},
		{Depart: "2025-12-05", Return: "2025-12-06", Nights: 1},
		{Depart: "2025-12-05", Return: "2025-12-07", Nights: 2},
		{Depart: "2025-12-06", Return: "2025-12-07", Nights: 1},
	}, got)
}
