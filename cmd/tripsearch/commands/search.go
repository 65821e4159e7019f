package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
	"travel/internal/trip"
	"travel/pkg/idgen"
	"travel/pkg/logger"
	"travel/pkg/pricing"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type searchOptions struct {
	requestFile string
	dests       []string
	dates       []string
	start       string
	end         string
	minNights   int
	maxNights   int
	origin      string
	remote      string
	retries     int
	concurrency int
	timeout     time.Duration
	latency     time.Duration
}

func SearchCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the cheapest round trip per destination",
		Example: `  tripsearch search --dest Rome --dest Paris --dates 2025-12-01,2025-12-02,2025-12-03 --min-nights 1
  tripsearch search --dest Lisbon --start 2025-12-01 --end 2025-12-14 --max-nights 5
  tripsearch search --request trip.yaml --remote http://localhost:8081`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := opts.buildRequest(cmd)
			if err != nil {
				return err
			}

			env, _ := cmd.Flags().GetString("env")
			log := logger.NewWithWriter(env, cmd.ErrOrStderr())

			ids, err := idgen.NewSnowflakeGenerator(1)
			if err != nil {
				return err
			}
			oracle, oracleTimeout := opts.oracle(log)
			svc := trip.NewService(oracle, ids, trip.Options{
				Origin:        opts.origin,
				OracleTimeout: oracleTimeout,
				Concurrency:   opts.concurrency,
			}, log)

			resp, err := svc.Search(cmd.Context(), req)
			if err != nil {
				// Usage only helps when the request itself was wrong.
				cmd.SilenceUsage = !trip.IsValidation(err)
				return err
			}
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&opts.requestFile, "request", "", "YAML or JSON file holding the search request")
	cmd.Flags().StringArrayVar(&opts.dests, "dest", nil, "Destination (repeatable)")
	cmd.Flags().StringSliceVar(&opts.dates, "dates", nil, "Available dates YYYY-MM-DD, comma separated")
	cmd.Flags().StringVar(&opts.start, "start", "", "First available date of a window")
	cmd.Flags().StringVar(&opts.end, "end", "", "Last available date of a window")
	cmd.Flags().IntVar(&opts.minNights, "min-nights", trip.DefaultMinNights, "Shortest trip in nights")
	cmd.Flags().IntVar(&opts.maxNights, "max-nights", 0, "Longest trip in nights (0 = no limit)")
	cmd.Flags().StringVar(&opts.origin, "origin", "HOME", "Origin passed to the price source")
	cmd.Flags().StringVar(&opts.remote, "remote", "", "Base URL of a remote pricing service")
	cmd.Flags().IntVar(&opts.retries, "retries", 2, "Retries per remote pricing call")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 8, "Concurrent pricing calls per destination")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 2*time.Second, "Timeout per pricing call (per attempt with --remote)")
	cmd.Flags().DurationVar(&opts.latency, "latency", 0, "Simulated latency of the heuristic price source")

	return cmd
}

// buildRequest starts from --request when given; explicit flags override
// the matching fields of the file.
func (o *searchOptions) buildRequest(cmd *cobra.Command) (trip.SearchRequest, error) {
	var req trip.SearchRequest
	if o.requestFile != "" {
		loaded, err := loadRequest(o.requestFile)
		if err != nil {
			return req, err
		}
		req = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("dest") {
		req.Destinations = o.dests
	}
	if flags.Changed("dates") {
		req.AvailabilityDates = o.dates
	}
	if flags.Changed("start") {
		req.AvailabilityStart = o.start
	}
	if flags.Changed("end") {
		req.AvailabilityEnd = o.end
	}
	if flags.Changed("min-nights") || req.MinNights == nil {
		minNights := o.minNights
		req.MinNights = &minNights
	}
	if flags.Changed("max-nights") {
		req.MaxNights = nil
		if o.maxNights > 0 {
			maxNights := o.maxNights
			req.MaxNights = &maxNights
		}
	}
	return req, nil
}

// oracle returns the price source and the bound on one GetPrice. --timeout
// applies per remote attempt, so the bound grows with --retries.
func (o *searchOptions) oracle(log logger.Client) (trip.PriceOracle, time.Duration) {
	if o.remote != "" {
		httpClient := &http.Client{Timeout: o.timeout}
		timeout := o.timeout
		if timeout > 0 {
			timeout = pricing.CallBudget(o.timeout, o.retries)
		}
		return pricing.NewHTTPOracle(httpClient, o.remote, o.retries, log), timeout
	}
	return pricing.NewHeuristicOracle(o.latency), o.timeout
}

// loadRequest reads a search request from YAML. JSON files parse too since
// JSON is a subset of YAML.
func loadRequest(path string) (trip.SearchRequest, error) {
	var req trip.SearchRequest
	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("failed to read request file: %w", err)
	}
	if err := yaml.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("failed to parse request file %s: %w", path, err)
	}
	return req, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
