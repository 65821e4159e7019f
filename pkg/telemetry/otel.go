package telemetry

import (
	"context"
	"errors"
	"fmt"
	"travel/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type Config struct {
	OTLPEndpoint string
	ServiceName  string
	Environment  string
}

// ShutdownFunc flushes and stops the providers installed by Init.
type ShutdownFunc func(context.Context) error

// Init installs global tracer and meter providers exporting over OTLP/gRPC.
// With no endpoint configured it leaves the no-op globals in place.
func Init(ctx context.Context, config Config, log logger.Client) (ShutdownFunc, error) {
	if config.OTLPEndpoint == "" {
		log.Info("OpenTelemetry disabled, no OTLP endpoint configured")
		return func(context.Context) error { return nil }, nil
	}

	conn, err := grpc.NewClient(
		config.OTLPEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection to collector: %w", err)
	}

	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	metricExporter, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(config.ServiceName),
			semconv.DeploymentEnvironment(config.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	mp := metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(metricExporter)),
		metric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	log.Info("OpenTelemetry initialized", logger.Field{Key: "otlp_endpoint", Value: config.OTLPEndpoint})

	shutdown := func(ctx context.Context) error {
		var errs []error

		if err := tp.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown failed: %w", err))
		}
		if err := mp.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown failed: %w", err))
		}
		if err := conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("collector connection close failed: %w", err))
		}

		return errors.Join(errs...)
	}

	return shutdown, nil
}

// TraceLoggerMiddleware logs each request with its trace and span ids so
// log lines can be joined with traces.
func TraceLoggerMiddleware(log logger.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		fields := []logger.Field{
			{Key: "method", Value: c.Request.Method},
			{Key: "path", Value: c.FullPath()},
			{Key: "status", Value: c.Writer.Status()},
		}
		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().IsValid() {
			fields = append(fields,
				logger.Field{Key: "trace_id", Value: span.SpanContext().TraceID().String()},
				logger.Field{Key: "span_id", Value: span.SpanContext().SpanID().String()},
			)
		}
		log.Info("request completed", fields...)
	}
}
