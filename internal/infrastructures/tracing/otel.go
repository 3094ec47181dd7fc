package tracing

import (
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

const collectorSuffix = "/api/traces"

// Init wires the global tracer provider for the concierge. Every provider
// call spans through it, so traces carry the deployment environment next to
// the service name. Local runs sample everything; elsewhere sampling follows
// the caller's decision so an upstream gateway stays in control.
func Init(serviceName, env, collector string) (*tracesdk.TracerProvider, error) {
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(
		jaeger.WithEndpoint(collectorEndpoint(collector)),
	))
	if err != nil {
		return nil, err
	}

	sampler := tracesdk.ParentBased(tracesdk.TraceIDRatioBased(1))
	if env == "local" {
		sampler = tracesdk.AlwaysSample()
	}

	tp := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exp),
		tracesdk.WithSampler(sampler),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.DeploymentEnvironment(env),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// collectorEndpoint accepts the config value in any of the shapes operators
// write: blank, bare host, host:port, or a full collector URL.
func collectorEndpoint(value string) string {
	endpoint := strings.TrimSpace(value)
	if endpoint == "" {
		endpoint = "localhost:14268"
	}
	if !strings.Contains(endpoint, "://") {
		endpoint = "http://" + endpoint
	}
	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasSuffix(endpoint, collectorSuffix) {
		endpoint += collectorSuffix
	}
	return endpoint
}
