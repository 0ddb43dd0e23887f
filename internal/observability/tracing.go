package observability

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "legalcopilot"

// Tracer returns the tracer for model calls and request work. It resolves the
// global provider on each call so InitOTel may run after package init.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}
