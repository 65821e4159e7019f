package trip

import "context"

const DefaultMinNights = 1

// PriceOracle prices a single round trip. Implementations may block on the
// network and may fail; the selector treats every failure as unpriceable.
type PriceOracle interface {
	GetPrice(ctx context.Context, origin, destination, departDate, returnDate string) (float64, error)
}

type SearchRequest struct {
	Destinations      []string `json:"destinations" yaml:"destinations"`
	AvailabilityDates []string `json:"availabilityDates,omitempty" yaml:"availabilityDates,omitempty"`
	AvailabilityStart string   `json:"availabilityStart,omitempty" yaml:"availabilityStart,omitempty"`
	AvailabilityEnd   string   `json:"availabilityEnd,omitempty" yaml:"availabilityEnd,omitempty"`
	MinNights         *int     `json:"minNights,omitempty" yaml:"minNights,omitempty"`
	MaxNights         *int     `json:"maxNights,omitempty" yaml:"maxNights,omitempty"`
}

// Nights bounds the length of a trip. Max == 0 means the run length is the only limit.
type Nights struct {
	Min int
	Max int
}

// Run is a maximal sequence of consecutive calendar days.
type Run []string

type Candidate struct {
	Depart string
	Return string
	Nights int
}

type PricedTrip struct {
	Depart string  `json:"depart"`
	Return string  `json:"return"`
	Price  float64 `json:"price"`
}

type DestinationResult struct {
	Destination string      `json:"destination"`
	Best        *PricedTrip `json:"best"`
}

type SearchResponse struct {
	Results  []DestinationResult `json:"results"`
	Metadata Metadata            `json:"metadata"`
}

type Metadata struct {
	SearchID            string `json:"searchId,omitempty"`
	Origin              string `json:"origin"`
	DestinationsQueried int    `json:"destinationsQueried"`
	AvailableDates      int    `json:"availableDates"`
	Runs                int    `json:"runs"`
	CandidatesTotal     int    `json:"candidatesTotal"`
	CandidatesPriced    int    `json:"candidatesPriced"`
	PricingFailures     int    `json:"pricingFailures"`
	SearchTimeMs        int64  `json:"searchTimeMs"`
}
