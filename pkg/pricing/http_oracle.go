package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
	"travel/pkg/logger"

	"github.com/cenkalti/backoff/v5"
)

const (
	retryInitialInterval = 50 * time.Millisecond
	retryMaxInterval     = time.Second
)

// CallBudget is the longest a single GetPrice can take when every attempt
// runs into attemptTimeout and every backoff wait is at its randomized
// maximum. Callers that put their own deadline around GetPrice need at
// least this much, or retries never get a chance to run.
func CallBudget(attemptTimeout time.Duration, maxRetries int) time.Duration {
	maxRetries = max(maxRetries, 0)
	maxWait := retryMaxInterval + time.Duration(float64(retryMaxInterval)*backoff.DefaultRandomizationFactor)
	return time.Duration(maxRetries+1)*attemptTimeout + time.Duration(maxRetries)*maxWait
}

// HTTPOracle asks a remote pricing service for quotes. Transport errors and
// 5xx responses are retried with exponential backoff; 4xx responses are not.
type HTTPOracle struct {
	httpClient *http.Client
	baseURL    string
	maxRetries int
	logger     logger.Client
}

func NewHTTPOracle(httpClient *http.Client, baseURL string, maxRetries int, logger logger.Client) *HTTPOracle {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &HTTPOracle{
		httpClient: httpClient,
		baseURL:    baseURL,
		maxRetries: maxRetries,
		logger:     logger,
	}
}

func (o *HTTPOracle) GetPrice(ctx context.Context, origin, destination, departDate, returnDate string) (float64, error) {
	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", destination)
	q.Set("depart", departDate)
	q.Set("return", returnDate)
	endpoint := fmt.Sprintf("%s/v1/prices?%s", o.baseURL, q.Encode())

	operation := func() (float64, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			o.logger.Error("failed to build pricing request", logger.Field{Key: "error", Value: err})
			return 0, backoff.Permanent(fmt.Errorf("failed to build request: %w", err))
		}

		resp, err := o.httpClient.Do(req)
		if err != nil {
			return 0, fmt.Errorf("external api call failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			return 0, fmt.Errorf("pricing api returned status: %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return 0, backoff.Permanent(fmt.Errorf("pricing api returned non-200 status: %d", resp.StatusCode))
		}

		var quote PriceQuote
		if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
			return 0, backoff.Permanent(fmt.Errorf("failed to decode pricing response: %w", err))
		}
		return quote.Price, nil
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = retryInitialInterval
	eb.MaxInterval = retryMaxInterval

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(eb),
		backoff.WithMaxTries(uint(o.maxRetries+1)),
		backoff.WithNotify(func(err error, wait time.Duration) {
			o.logger.Warn("retrying pricing call",
				logger.Field{Key: "destination", Value: destination},
				logger.Field{Key: "err", Value: err},
				logger.Field{Key: "wait", Value: wait},
			)
		}),
	)
}
