package trip

import "strings"

// searchPlan is a validated request with availability resolved to explicit dates.
type searchPlan struct {
	destinations []string
	dates        []string
	bounds       Nights
}

// resolveRequest validates req and folds both availability shapes into one
// explicit, normalized date set. maxNights applies to either shape.
func resolveRequest(req SearchRequest) (*searchPlan, error) {
	if len(req.Destinations) == 0 {
		return nil, newValidationError("destinations (array) required")
	}
	for i, d := range req.Destinations {
		if strings.TrimSpace(d) == "" {
			return nil, newValidationError("destinations[%d] must be a non-empty string", i)
		}
	}

	bounds := Nights{Min: DefaultMinNights}
	if req.MinNights != nil {
		if *req.MinNights < 1 {
			return nil, newValidationError("minNights must be >= 1, got %d", *req.MinNights)
		}
		bounds.Min = *req.MinNights
	}
	if req.MaxNights != nil {
		if *req.MaxNights < bounds.Min {
			return nil, newValidationError("maxNights (%d) must be >= minNights (%d)", *req.MaxNights, bounds.Min)
		}
		bounds.Max = *req.MaxNights
	}

	var raw []string
	switch {
	case len(req.AvailabilityDates) > 0:
		raw = req.AvailabilityDates
	case req.AvailabilityStart != "" && req.AvailabilityEnd != "":
		window, err := ExpandWindow(req.AvailabilityStart, req.AvailabilityEnd)
		if err != nil {
			return nil, err
		}
		raw = window
	default:
		return nil, newValidationError("availabilityDates (array) or availabilityStart/availabilityEnd required")
	}

	dates, err := NormalizeDates(raw)
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return nil, newValidationError("availability resolves to no dates")
	}
	if len(dates) > MaxAvailabilityDays {
		return nil, newValidationError("availability covers %d days, at most %d allowed", len(dates), MaxAvailabilityDays)
	}

	return &searchPlan{
		destinations: req.Destinations,
		dates:        dates,
		bounds:       bounds,
	}, nil
}
