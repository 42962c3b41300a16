// Package otel wires OpenTelemetry tracing for cointoss commands.
package otel

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/louisbranch/cointoss/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Environment variables controlling trace export.
const (
	EnvEndpoint = config.Prefix + "OTEL_ENDPOINT"
	EnvEnabled  = config.Prefix + "OTEL_ENABLED"
)

// Setup initialises OpenTelemetry tracing for the given command.
//
// Tracing is opt-in: when COINTOSS_OTEL_ENDPOINT is empty or
// COINTOSS_OTEL_ENABLED is "false", Setup returns a no-op shutdown function
// and no global provider is registered. Spans started by the simulator and
// the probability engine then go to the default no-op tracer.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	if strings.EqualFold(os.Getenv(EnvEnabled), "false") {
		return noop, nil
	}

	endpoint := strings.TrimSpace(os.Getenv(EnvEndpoint))
	if endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(endpoint),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceNamespace("cointoss"),
			semconv.ServiceInstanceID(uuid.NewString()),
		),
	)
	if err != nil {
		return noop, err
	}

	// Simulations are long and rare; keep every trace.
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
