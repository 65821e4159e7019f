package trip

import (
	"context"
	"fmt"
	"time"
	"travel/pkg/idgen"
	"travel/pkg/logger"

	"golang.org/x/sync/errgroup"
)

type Options struct {
	Origin        string
	OracleTimeout time.Duration
	Concurrency   int
}

type Service struct {
	selector    *Selector
	ids         idgen.Generator
	origin      string
	concurrency int
	logger      logger.Client
}

func NewService(oracle PriceOracle, ids idgen.Generator, opts Options, log logger.Client) *Service {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &Service{
		selector:    NewSelector(oracle, opts.Origin, opts.OracleTimeout, opts.Concurrency, log),
		ids:         ids,
		origin:      opts.Origin,
		concurrency: opts.Concurrency,
		logger:      log,
	}
}

// Search finds the cheapest trip for every requested destination. Results
// keep request order; a destination with nothing priceable gets a nil Best.
func (s *Service) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	startTime := time.Now()

	plan, err := resolveRequest(req)
	if err != nil {
		return nil, err
	}

	searchID := s.ids.NewSearchID()
	log := s.logger.With(logger.Field{Key: "search_id", Value: searchID})

	runs, err := PartitionRuns(plan.dates)
	if err != nil {
		return nil, fmt.Errorf("failed to partition availability: %w", err)
	}

	results := make([]DestinationResult, len(plan.destinations))
	stats := make([]SelectStats, len(plan.destinations))

	// Every goroutine owns one slot and never returns an error, so a failing
	// destination cannot cancel or overwrite its siblings. All destinations
	// draw oracle calls from one limit, so a search never has more than
	// concurrency calls in flight.
	calls := s.selector.newCallLimit()
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, dest := range plan.destinations {
		g.Go(func() error {
			best, st := s.selector.selectBest(ctx, dest, AllCandidates(runs, plan.bounds), calls)
			results[i] = DestinationResult{Destination: dest, Best: best}
			stats[i] = st
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		log.Error("search aborted", logger.Field{Key: "err", Value: err})
		return nil, fmt.Errorf("search aborted: %w", err)
	}

	meta := Metadata{
		SearchID:            searchID,
		Origin:              s.origin,
		DestinationsQueried: len(plan.destinations),
		AvailableDates:      len(plan.dates),
		Runs:                len(runs),
	}
	for _, run := range runs {
		meta.CandidatesTotal += CountCandidates(len(run), plan.bounds)
	}
	meta.CandidatesTotal *= len(plan.destinations)
	for _, st := range stats {
		meta.CandidatesPriced += st.Priced
		meta.PricingFailures += st.Failed
	}
	meta.SearchTimeMs = time.Since(startTime).Milliseconds()

	log.Info("search completed",
		logger.Field{Key: "destinations", Value: meta.DestinationsQueried},
		logger.Field{Key: "dates", Value: meta.AvailableDates},
		logger.Field{Key: "runs", Value: meta.Runs},
		logger.Field{Key: "candidates_total", Value: meta.CandidatesTotal},
		logger.Field{Key: "candidates_priced", Value: meta.CandidatesPriced},
		logger.Field{Key: "pricing_failures", Value: meta.PricingFailures},
		logger.Field{Key: "search_time_ms", Value: meta.SearchTimeMs},
	)

	return &SearchResponse{
		Results:  results,
		Metadata: meta,
	}, nil
}
