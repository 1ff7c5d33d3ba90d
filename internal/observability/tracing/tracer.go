// Package tracing wires OpenTelemetry spans into the HTTP request path.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("pressroom")

// The default global propagator is a no-op; without this, trace context
// from upstream callers would be silently dropped.
func init() {
	otel.SetTextMapPropagator(propagation.TraceContext{})
}

// GetTracer returns the application tracer for creating spans outside the
// HTTP middleware, e.g. around the publisher's batch run.
func GetTracer() trace.Tracer {
	return tracer
}
