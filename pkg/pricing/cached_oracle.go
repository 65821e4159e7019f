package pricing

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"strconv"
	"time"
	"travel/pkg/cache"
	"travel/pkg/logger"
)

// CachedOracle memoizes quotes from next. Cache failures are logged and
// fall through to next; they never fail a lookup.
type CachedOracle struct {
	next   Oracle
	cache  cache.Cache
	ttl    time.Duration
	logger logger.Client
}

func NewCachedOracle(next Oracle, c cache.Cache, ttl time.Duration, logger logger.Client) *CachedOracle {
	return &CachedOracle{
		next:   next,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// generateCacheKey creates a deterministic key from the quote parameters
func generateCacheKey(origin, destination, departDate, returnDate string) string {
	key := fmt.Sprintf("%s:%s:%s:%s", origin, destination, departDate, returnDate)
	hash := sha256.Sum256([]byte(key))
	return fmt.Sprintf("price:quote:%x", hash[:16])
}

func (o *CachedOracle) GetPrice(ctx context.Context, origin, destination, departDate, returnDate string) (float64, error) {
	cacheKey := generateCacheKey(origin, destination, departDate, returnDate)

	cached, err := o.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		if price, perr := strconv.ParseFloat(cached, 64); perr == nil {
			return price, nil
		}
		o.logger.Error("failed to parse cached price", logger.Field{Key: "cache_key", Value: cacheKey})
	} else if err != nil && !errors.Is(err, cache.ErrMiss) {
		o.logger.Warn("price cache unavailable", logger.Field{Key: "err", Value: err})
	}

	price, err := o.next.GetPrice(ctx, origin, destination, departDate, returnDate)
	if err != nil {
		return 0, err
	}

	value := strconv.FormatFloat(price, 'f', -1, 64)
	if err := o.cache.Set(ctx, cacheKey, value, o.ttl); err != nil {
		o.logger.Error("failed to cache price",
			logger.Field{Key: "err", Value: err},
			logger.Field{Key: "cache_key", Value: cacheKey},
		)
	}
	return price, nil
}
