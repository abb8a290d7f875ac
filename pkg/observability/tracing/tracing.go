/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tracing

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var logger = log.New("tracing")

// SpanExporterType is the span exporter selected with the tracing-provider flag.
type SpanExporterType = string

const (
	None   SpanExporterType = ""
	Jaeger SpanExporterType = "JAEGER"
	Stdout SpanExporterType = "STDOUT"
)

const (
	JaegerAgentEndpointEnvKey     = "OTEL_EXPORTER_JAEGER_AGENT_HOST"
	JaegerCollectorEndpointEnvKey = "OTEL_EXPORTER_JAEGER_ENDPOINT"

	// ServiceName is reported as service.name and names the issuer's tracer.
	ServiceName = "credential-issuer"
)

// Config configures the credential issuer's tracer provider.
type Config struct {
	Exporter       SpanExporterType
	ServiceVersion string
}

// ParseExporter returns the exporter for a tracing-provider value. Matching is case-insensitive.
func ParseExporter(value string) (SpanExporterType, error) {
	switch exporter := strings.ToUpper(strings.TrimSpace(value)); exporter {
	case None, Jaeger, Stdout:
		return exporter, nil
	default:
		return None, fmt.Errorf("unsupported tracing provider: %s", value)
	}
}

// Initialize registers a global tracer provider for the credential issuer and returns its tracer
// together with a shutdown func that flushes pending spans. With no exporter, tracing is a no-op.
func Initialize(cfg *Config) (func(), trace.Tracer, error) {
	if cfg.Exporter == None {
		return func() {}, noop.NewTracerProvider().Tracer(ServiceName), nil
	}

	spanExporter, err := newSpanExporter(cfg.Exporter)
	if err != nil {
		return nil, nil, err
	}

	attrs := []attribute.KeyValue{
		semconv.ServiceName(ServiceName),
		semconv.ProcessPID(os.Getpid()),
	}

	if cfg.ServiceVersion != "" {
		attrs = append(attrs, semconv.ServiceVersion(cfg.ServiceVersion))
	}

	tracerProvider := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(spanExporter),
		tracesdk.WithResource(resource.NewWithAttributes(semconv.SchemaURL, attrs...)),
	)

	otel.SetTracerProvider(tracerProvider)

	// W3C traceparent/tracestate headers.
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Warn("Error shutting down tracer provider", log.WithError(err))
		}
	}, tracerProvider.Tracer(ServiceName), nil
}

func newSpanExporter(exporter SpanExporterType) (tracesdk.SpanExporter, error) {
	switch exporter {
	case Jaeger:
		var endpoint jaeger.EndpointOption

		switch {
		case os.Getenv(JaegerAgentEndpointEnvKey) != "":
			endpoint = jaeger.WithAgentEndpoint()
		case os.Getenv(JaegerCollectorEndpointEnvKey) != "":
			endpoint = jaeger.WithCollectorEndpoint()
		default:
			return nil, fmt.Errorf("neither %s nor %s is set", JaegerAgentEndpointEnvKey,
				JaegerCollectorEndpointEnvKey)
		}

		e, err := jaeger.New(endpoint)
		if err != nil {
			return nil, fmt.Errorf("create jaeger exporter: %w", err)
		}

		return e, nil
	case Stdout:
		e, err := stdouttrace.New()
		if err != nil {
			return nil, fmt.Errorf("create stdout exporter: %w", err)
		}

		return e, nil
	default:
		return nil, fmt.Errorf("unsupported tracing provider: %s", exporter)
	}
}
