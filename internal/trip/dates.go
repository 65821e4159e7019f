package trip

import (
	"slices"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"

	// MaxAvailabilityDays caps how many distinct days one search may cover.
	// Candidate count grows quadratically with run length.
	MaxAvailabilityDays = 366
)

// parseCalendarDate accepts a bare date or a timestamp whose first ten
// characters are the date ("2025-12-01T08:00:00Z", "2025-12-01 08:00").
func parseCalendarDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if len(s) < len(dateLayout) {
		return time.Time{}, &InvalidDateError{Value: raw}
	}
	if len(s) > len(dateLayout) && s[len(dateLayout)] != 'T' && s[len(dateLayout)] != ' ' {
		return time.Time{}, &InvalidDateError{Value: raw}
	}

	t, err := time.Parse(dateLayout, s[:len(dateLayout)])
	if err != nil {
		return time.Time{}, &InvalidDateError{Value: raw}
	}
	return t, nil
}

// NormalizeDates truncates every entry to its calendar date, drops duplicates
// and returns the dates in ascending order.
func NormalizeDates(raw []string) ([]string, error) {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))

	for _, r := range raw {
		t, err := parseCalendarDate(r)
		if err != nil {
			return nil, err
		}
		d := t.Format(dateLayout)
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}

	// YYYY-MM-DD sorts lexicographically in chronological order
	slices.Sort(out)
	return out, nil
}

// ExpandWindow lists every day from start to end inclusive. An end before
// start yields no dates.
func ExpandWindow(start, end string) ([]string, error) {
	from, err := parseCalendarDate(start)
	if err != nil {
		return nil, err
	}
	to, err := parseCalendarDate(end)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return []string{}, nil
	}

	days := int(to.Sub(from).Hours()/24) + 1
	if days > MaxAvailabilityDays {
		return nil, newValidationError("availability window spans %d days, at most %d allowed", days, MaxAvailabilityDays)
	}

	out := make([]string, 0, days)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		out = append(out, d.Format(dateLayout))
	}
	return out, nil
}
