// Package trace wires OpenTelemetry tracing for finpulse. Export is enabled
// only when OTEL_EXPORTER_OTLP_ENDPOINT is set; otherwise spans go to a
// no-op provider.
package trace

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// EndpointEnv enables OTLP export. Accepts host:port or a full URL.
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv overrides the service name reported on spans.
	ServiceNameEnv = "OTEL_SERVICE_NAME"
	// DefaultServiceName is used when OTEL_SERVICE_NAME is unset.
	DefaultServiceName = "finpulse"
)

// Provider hands out tracers and flushes exported spans on shutdown.
type Provider struct {
	provider oteltrace.TracerProvider
	sdk      *sdktrace.TracerProvider // nil when export is disabled
}

// Setup builds a Provider from the environment and installs it as the
// global tracer provider. component names the finpulse subsystem
// (e.g. "dashboard", "server") and is appended to the service name.
func Setup(ctx context.Context, component string) (*Provider, error) {
	endpoint := strings.TrimSpace(os.Getenv(EndpointEnv))
	if endpoint == "" {
		p := &Provider{provider: noop.NewTracerProvider()}
		otel.SetTracerProvider(p.provider)
		return p, nil
	}

	opts := []otlptracehttp.Option{}
	if strings.Contains(endpoint, "://") {
		opts = append(opts, otlptracehttp.WithEndpointURL(endpoint))
	} else {
		// Bare host:port is treated as a local collector.
		opts = append(opts, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating otlp exporter for %s: %w", endpoint, err)
	}

	serviceName := os.Getenv(ServiceNameEnv)
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	if component != "" {
		serviceName += "-" + component
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	sdk := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(sdk)
	return &Provider{provider: sdk, sdk: sdk}, nil
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.sdk != nil
}

// Tracer returns a named tracer; a nil Provider yields a no-op tracer.
func (p *Provider) Tracer(name string) oteltrace.Tracer {
	if p == nil {
		return noop.NewTracerProvider().Tracer(name)
	}
	return p.provider.Tracer(name)
}

// Shutdown flushes and closes the exporter
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}
