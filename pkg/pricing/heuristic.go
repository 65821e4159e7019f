package pricing

import (
	"context"
	"fmt"
	"math"
	"time"
	"unicode/utf8"
)

const (
	basePrice         = 80
	minDestFactor     = 50
	destFactorPerChar = 20
	seasonalPerMonth  = 10
	pricePerNight     = 15
	noiseAmplitude    = 200
)

// HeuristicOracle derives a repeatable pseudo-price from trip length,
// destination name length and departure month. It stands in for a real
// fare source.
type HeuristicOracle struct {
	latency time.Duration
}

// NewHeuristicOracle returns an oracle that waits latency before answering,
// to mimic a network call. Zero disables the delay.
func NewHeuristicOracle(latency time.Duration) *HeuristicOracle {
	return &HeuristicOracle{latency: latency}
}

func (o *HeuristicOracle) GetPrice(ctx context.Context, origin, destination, departDate, returnDate string) (float64, error) {
	dep, err := time.Parse(dateLayout, departDate)
	if err != nil {
		return 0, fmt.Errorf("invalid depart date %q: %w", departDate, err)
	}
	ret, err := time.Parse(dateLayout, returnDate)
	if err != nil {
		return 0, fmt.Errorf("invalid return date %q: %w", returnDate, err)
	}

	if o.latency > 0 {
		timer := time.NewTimer(o.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}

	return HeuristicPrice(destination, dep, ret), nil
}

// HeuristicPrice is the pure pricing formula behind HeuristicOracle.
func HeuristicPrice(destination string, dep, ret time.Time) float64 {
	nights := math.Max(1, math.Round(ret.Sub(dep).Hours()/24))
	nameLen := utf8.RuneCountInString(destination)

	destFactor := math.Max(minDestFactor, float64(nameLen*destFactorPerChar))
	seasonal := float64((int(dep.Month()) - 1) * seasonalPerMonth)
	lengthFactor := nights * pricePerNight
	noise := math.Floor(math.Abs(math.Sin(float64(dep.UnixMilli()+int64(nameLen))) * noiseAmplitude))

	return math.Round(basePrice + destFactor + seasonal + lengthFactor + noise)
}
