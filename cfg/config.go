package cfg

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type PricingConfig struct {
	Origin     string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	Latency    time.Duration
}

type ObservabilityConfig struct {
	OTLPEndpoint string
	ServiceName  string
	Environment  string
}

type Config struct {
	AppEnv            string
	AppPort           string
	RedisConfig       RedisConfig
	PricingConfig     PricingConfig
	Observability     ObservabilityConfig
	CacheTTLMinutes   int
	SearchConcurrency int
	SnowflakeNodeID   int64
}

// CacheEnabled reports whether oracle quotes should be memoized in Redis.
func (c *Config) CacheEnabled() bool {
	return c.RedisConfig.Host != "" && c.CacheTTLMinutes > 0
}

func (c *Config) RedisAddr() string {
	return c.RedisConfig.Host + ":" + c.RedisConfig.Port
}

func Load() (*Config, error) {
	var errs []error

	// A missing .env is fine, the environment may already be populated.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.New("failed load cfg: " + err.Error())
	}

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := mustEnv("APP_PORT", &errs)

	pricingTimeoutMs := intEnv("PRICING_TIMEOUT_MS", 2000, &errs)
	pricingLatencyMs := intEnv("PRICING_LATENCY_MS", 0, &errs)
	pricingMaxRetries := intEnv("PRICING_MAX_RETRIES", 2, &errs)
	cacheTTLMinutes := intEnv("CACHE_TTL_MINUTES", 0, &errs)
	searchConcurrency := intEnv("SEARCH_CONCURRENCY", 8, &errs)
	snowflakeNodeID := intEnv("SNOWFLAKE_NODE_ID", 1, &errs)

	if searchConcurrency < 1 {
		errs = append(errs, errors.New("invalid env: SEARCH_CONCURRENCY must be >= 1"))
	}
	if pricingTimeoutMs < 0 || pricingLatencyMs < 0 || pricingMaxRetries < 0 || cacheTTLMinutes < 0 {
		errs = append(errs, errors.New("invalid env: pricing and cache settings must not be negative"))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		RedisConfig: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		PricingConfig: PricingConfig{
			Origin:     getEnv("PRICING_ORIGIN", "HOME"),
			BaseURL:    getEnv("PRICING_BASE_URL", ""),
			Timeout:    time.Duration(pricingTimeoutMs) * time.Millisecond,
			MaxRetries: pricingMaxRetries,
			Latency:    time.Duration(pricingLatencyMs) * time.Millisecond,
		},
		Observability: ObservabilityConfig{
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName:  getEnv("OTEL_SERVICE_NAME", "trip-search"),
			Environment:  appEnv,
		},
		CacheTTLMinutes:   cacheTTLMinutes,
		SearchConcurrency: searchConcurrency,
		SnowflakeNodeID:   int64(snowflakeNodeID),
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

// getEnv returns the value of key, or fallback if it is unset or empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int, errs *[]error) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return v
}
