// Package telemetry wires OpenTelemetry tracing for the API.
package telemetry

import (
	"context" // Exporter setup

	"github.com/sirupsen/logrus"                                      // Logrus for structured logging
	"go.opentelemetry.io/otel"                                        // Global tracer provider
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp" // OTLP over HTTP
	"go.opentelemetry.io/otel/sdk/resource"                           // Service resource
	sdktrace "go.opentelemetry.io/otel/sdk/trace"                     // Tracer provider
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"                // Resource attribute keys
)

// Init installs an OTLP HTTP tracer provider when endpoint is set. With no
// endpoint the global provider stays a no-op. The returned func flushes and
// stops the exporter.
func Init(ctx context.Context, endpoint, serviceName, environment string) (func(context.Context) error, error) {
	if endpoint == "" {
		logrus.Info("Tracing disabled: OTEL_EXPORTER_OTLP_ENDPOINT not set")
		return func(context.Context) error { return nil }, nil // Nothing to flush
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.DeploymentEnvironment(environment),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter), // Batch spans before export
		sdktrace.WithResource(res),     // Service name and environment
	)
	otel.SetTracerProvider(tp) // otelgin picks up the global provider
	logrus.WithField("endpoint", endpoint).Info("Tracing initialized")
	return tp.Shutdown, nil
}
