package trip

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
	"sync"
	"time"
	"travel/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const instrumentationName = "travel/internal/trip"

var errInvalidPrice = errors.New("oracle returned an invalid price")

// SelectStats counts oracle outcomes for one destination.
type SelectStats struct {
	Priced int
	Failed int
}

type Selector struct {
	oracle      PriceOracle
	origin      string
	timeout     time.Duration
	concurrency int
	logger      logger.Client
	tracer      trace.Tracer
	calls       metric.Int64Counter
}

func NewSelector(oracle PriceOracle, origin string, timeout time.Duration, concurrency int, log logger.Client) *Selector {
	if concurrency < 1 {
		concurrency = 1
	}

	calls, err := otel.Meter(instrumentationName).Int64Counter(
		"trip.oracle.calls",
		metric.WithDescription("Pricing oracle calls by outcome"),
	)
	if err != nil {
		calls = noop.Int64Counter{}
	}

	return &Selector{
		oracle:      oracle,
		origin:      origin,
		timeout:     timeout,
		concurrency: concurrency,
		logger:      log,
		tracer:      otel.Tracer(instrumentationName),
		calls:       calls,
	}
}

type pricedCandidate struct {
	index int
	trip  PricedTrip
}

// SelectBest prices every candidate and returns the cheapest, or nil when
// nothing could be priced. Up to concurrency oracle calls run at once, but
// ties always go to the candidate enumerated first.
func (s *Selector) SelectBest(ctx context.Context, destination string, candidates iter.Seq[Candidate]) (*PricedTrip, SelectStats) {
	return s.selectBest(ctx, destination, candidates, s.newCallLimit())
}

// newCallLimit bounds in-flight oracle calls. Destinations of one search
// share a single limit.
func (s *Selector) newCallLimit() *semaphore.Weighted {
	return semaphore.NewWeighted(int64(s.concurrency))
}

func (s *Selector) selectBest(ctx context.Context, destination string, candidates iter.Seq[Candidate], calls *semaphore.Weighted) (*PricedTrip, SelectStats) {
	ctx, span := s.tracer.Start(ctx, "trip.SelectBest",
		trace.WithAttributes(attribute.String("trip.destination", destination)),
	)
	defer span.End()

	var (
		mu     sync.Mutex
		priced []pricedCandidate
		stats  SelectStats
		g      errgroup.Group
	)
	g.SetLimit(s.concurrency)

	index := 0
	for c := range candidates {
		if ctx.Err() != nil {
			break
		}
		i := index
		index++

		g.Go(func() error {
			var price float64
			err := calls.Acquire(ctx, 1)
			if err == nil {
				price, err = s.price(ctx, destination, c)
				calls.Release(1)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				stats.Failed++
				s.logger.Warn("candidate skipped",
					logger.Field{Key: "destination", Value: destination},
					logger.Field{Key: "depart", Value: c.Depart},
					logger.Field{Key: "return", Value: c.Return},
					logger.Field{Key: "err", Value: err},
				)
				return nil
			}
			stats.Priced++
			priced = append(priced, pricedCandidate{
				index: i,
				trip:  PricedTrip{Depart: c.Depart, Return: c.Return, Price: price},
			})
			return nil
		})
	}
	_ = g.Wait()

	// Completion order is arbitrary; reduce in enumeration order with a strict
	// comparison so the earliest of equally cheap candidates wins.
	slices.SortFunc(priced, func(a, b pricedCandidate) int { return a.index - b.index })

	var best *PricedTrip
	for k := range priced {
		if best == nil || priced[k].trip.Price < best.Price {
			t := priced[k].trip
			best = &t
		}
	}

	span.SetAttributes(
		attribute.Int("trip.candidates_priced", stats.Priced),
		attribute.Int("trip.candidates_failed", stats.Failed),
		attribute.Bool("trip.found", best != nil),
	)
	return best, stats
}

type priceResult struct {
	price float64
	err   error
}

// price calls the oracle under the per-call timeout. A slow oracle that
// ignores its context is abandoned when the timeout fires.
func (s *Selector) price(ctx context.Context, destination string, c Candidate) (float64, error) {
	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	done := make(chan priceResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- priceResult{err: fmt.Errorf("oracle panic: %v", r)}
			}
		}()
		p, err := s.oracle.GetPrice(callCtx, s.origin, destination, c.Depart, c.Return)
		done <- priceResult{price: p, err: err}
	}()

	var res priceResult
	select {
	case res = <-done:
	case <-callCtx.Done():
		res = priceResult{err: callCtx.Err()}
	}

	if res.err == nil && (math.IsNaN(res.price) || math.IsInf(res.price, 0) || res.price < 0) {
		res.err = fmt.Errorf("%w: %v", errInvalidPrice, res.price)
	}

	outcome := "ok"
	if res.err != nil {
		outcome = "error"
		if errors.Is(res.err, context.DeadlineExceeded) {
			outcome = "timeout"
		}
	}
	s.calls.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))

	if res.err != nil {
		trace.SpanFromContext(ctx).SetStatus(codes.Error, "pricing failures")
		return 0, &OracleError{Destination: destination, Candidate: c, Err: res.err}
	}
	return res.price, nil
}
