package pricing

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
	"travel/pkg/cache"
	"travel/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOracle struct {
	mock.Mock
}

func (m *MockOracle) GetPrice(ctx context.Context, origin, destination, departDate, returnDate string) (float64, error) {
	args := m.Called(ctx, origin, destination, departDate, returnDate)
	return args.Get(0).(float64), args.Error(1)
}

type memoryCache struct {
	mu      sync.Mutex
	data    map[string]string
	failGet error
	failSet error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string]string{}}
}

func (c *memoryCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failSet != nil {
		return c.failSet
	}
	c.data[key] = value
	return nil
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet != nil {
		return "", c.failGet
	}
	v, ok := c.data[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return v, nil
}

func (c *memoryCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func TestCachedOracle_SecondLookupServedFromCache(t *testing.T) {
	ctx := context.Background()
	next := new(MockOracle)
	next.On("GetPrice", ctx, "HOME", "Lima", "2025-12-01", "2025-12-04").Return(412.0, nil).Once()

	o := NewCachedOracle(next, newMemoryCache(), time.Minute, logger.NewNop())

	first, err := o.GetPrice(ctx, "HOME", "Lima", "2025-12-01", "2025-12-04")
	require.NoError(t, err)
	second, err := o.GetPrice(ctx, "HOME", "Lima", "2025-12-01", "2025-12-04")
	require.NoError(t, err)

	assert.Equal(t, 412.0, first)
	assert.Equal(t, first, second)
	next.AssertExpectations(t)
}

func TestCachedOracle_ErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	next := new(MockOracle)
	next.On("GetPrice", ctx, "HOME", "Lima", "2025-12-01", "2025-12-04").Return(0.0, errors.New("down")).Once()
	next.On("GetPrice", ctx, "HOME", "Lima", "2025-12-01", "2025-12-04").Return(300.0, nil).Once()

	o := NewCachedOracle(next, newMemoryCache(), time.Minute, logger.NewNop())

	_, err := o.GetPrice(ctx, "HOME", "Lima", "2025-12-01", "2025-12-04")
	assert.Error(t, err)

	price, err := o.GetPrice(ctx, "HOME", "Lima", "2025-12-01", "2025-12-04")
	require.NoError(t, err)
	assert.Equal(t, 300.0, price)
	next.AssertExpectations(t)
}

func TestCachedOracle_CacheOutageFallsThrough(t *testing.T) {
	ctx := context.Background()
	next := new(MockOracle)
	next.On("GetPrice", ctx, "HOME", "Lima", "2025-12-01", "2025-12-04").Return(250.0, nil)

	c := newMemoryCache()
	c.failGet = errors.New("connection refused")
	c.failSet = errors.New("connection refused")
	o := NewCachedOracle(next, c, time.Minute, logger.NewNop())

	price, err := o.GetPrice(ctx, "HOME", "Lima", "2025-12-01", "2025-12-04")
	require.NoError(t, err)
	assert.Equal(t, 250.0, price)
}

func TestGenerateCacheKey_DistinguishesDates(t *testing.T) {
	a := generateCacheKey("HOME", "Lima", "2025-12-01", "2025-12-04")
	b := generateCacheKey("HOME", "Lima", "2025-12-01", "2025-12-05")

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, generateCacheKey("HOME", "Lima", "2025-12-01", "2025-12-04"))
}
