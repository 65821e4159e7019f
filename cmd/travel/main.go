package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"travel/cfg"
	"travel/internal/trip"
	"travel/pkg/cache"
	"travel/pkg/idgen"
	"travel/pkg/logger"
	"travel/pkg/pricing"
	"travel/pkg/telemetry"

	_ "travel/cmd/travel/docs" // swagger docs

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// @title           Trip Search API
// @version         1.0
// @description     Finds the cheapest round trip per destination inside a set of available dates.
// @BasePath        /
// @schemes         http
func main() {
	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	// ============
	// Otel
	// ============
	shutdownOtel, err := telemetry.Init(context.Background(), telemetry.Config{
		OTLPEndpoint: config.Observability.OTLPEndpoint,
		ServiceName:  config.Observability.ServiceName,
		Environment:  config.Observability.Environment,
	}, zlogger)
	if err != nil {
		zlogger.Warn("failed to initialize OpenTelemetry, continuing without it", logger.Field{Key: "err", Value: err})
		shutdownOtel = func(context.Context) error { return nil }
	}

	// ============
	// Pricing oracle
	// ============
	oracle, oracleTimeout, err := buildOracle(config, zlogger)
	if err != nil {
		log.Fatal(err)
	}

	// ============
	// Internal Service
	// ============
	ids, err := idgen.NewSnowflakeGenerator(config.SnowflakeNodeID)
	if err != nil {
		log.Fatal(err)
	}
	tripSvc := trip.NewService(oracle, ids, trip.Options{
		Origin:        config.PricingConfig.Origin,
		OracleTimeout: oracleTimeout,
		Concurrency:   config.SearchConcurrency,
	}, zlogger)
	tripHandler := trip.NewTripHandler(tripSvc)

	// ============
	// HTTP
	// ============
	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(config.Observability.ServiceName))
	r.Use(telemetry.TraceLoggerMiddleware(zlogger))

	tripHandler.RegisterRoutes(r)
	initSwagger(r)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", config.AppPort),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		zlogger.Info("server starting", logger.Field{Key: "addr", Value: srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-stop
	zlogger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlogger.Error("server shutdown failed", logger.Field{Key: "err", Value: err})
	}
	if err := shutdownOtel(ctx); err != nil {
		zlogger.Error("failed to shutdown OpenTelemetry", logger.Field{Key: "err", Value: err})
	}
	zlogger.Info("server stopped")
}

// buildOracle picks the remote pricing service when one is configured and
// falls back to the local heuristic. Quotes are cached in Redis when enabled.
// The returned timeout bounds one GetPrice; for the remote service
// PRICING_TIMEOUT_MS applies per attempt and the bound covers every retry.
func buildOracle(config *cfg.Config, zlogger logger.Client) (trip.PriceOracle, time.Duration, error) {
	var oracle pricing.Oracle
	timeout := config.PricingConfig.Timeout
	if config.PricingConfig.BaseURL != "" {
		httpClient := &http.Client{
			Timeout: config.PricingConfig.Timeout,
		}
		oracle = pricing.NewHTTPOracle(httpClient, config.PricingConfig.BaseURL, config.PricingConfig.MaxRetries, zlogger)
		if timeout > 0 {
			timeout = pricing.CallBudget(timeout, config.PricingConfig.MaxRetries)
		}
	} else {
		oracle = pricing.NewHeuristicOracle(config.PricingConfig.Latency)
	}

	if !config.CacheEnabled() {
		return oracle, timeout, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	redis, err := cache.NewRedisCache(ctx, cache.RedisConfig{
		Addr:     config.RedisAddr(),
		Password: config.RedisConfig.Password,
	})
	if err != nil {
		return nil, 0, err
	}
	ttl := time.Duration(config.CacheTTLMinutes) * time.Minute
	return pricing.NewCachedOracle(oracle, redis, ttl, zlogger), timeout, nil
}

func initSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		html := `<!DOCTYPE html>
<html>
<head>
    <title>API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <script id="api-reference" data-url="/swagger/doc.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
		c.String(200, html)
	})
}
