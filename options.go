package attackkg

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Option configures a KG opened through Open.
type Option func(*options)

// options holds the ambient dependencies resolved by Open.
type options struct {
	logger *slog.Logger
	tracer trace.Tracer
}

func newOptions(opts ...Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets a custom logger for the graph client and the catalog.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer; each catalog entry then runs
// under its own span. Without it the catalog traces through a noop
// tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) {
		o.tracer = tracer
	}
}
