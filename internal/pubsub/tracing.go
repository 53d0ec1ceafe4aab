package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "sculpt/pubsub"

// TracingConfig selects whether bus spans are exported to zipkin.
type TracingConfig struct {
	Enabled     bool
	ServiceName string
	ZipkinURL   string
	// SampleRatio is the fraction of root traces kept, clamped to [0, 1].
	SampleRatio float64
}

// NewTracer returns the tracer for the bus and a shutdown func that flushes
// pending spans. A disabled config yields a no-op tracer.
func NewTracer(ctx context.Context, cfg TracingConfig) (trace.Tracer, func(), error) {
	if !cfg.Enabled {
		return noop.NewTracerProvider().Tracer(tracerName), func() {}, nil
	}

	exporter, err := zipkin.New(cfg.ZipkinURL)
	if err != nil {
		return nil, nil, fmt.Errorf("zipkin exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("tracing resource: %w", err)
	}

	ratio := min(max(cfg.SampleRatio, 0), 1)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	slog.Info("Bus tracing enabled", "service", cfg.ServiceName, "zipkin", cfg.ZipkinURL, "sample_ratio", ratio)

	shutdown := func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			slog.Error("Failed to shut down tracer provider", "error", err)
		}
	}
	return tp.Tracer(tracerName), shutdown, nil
}
