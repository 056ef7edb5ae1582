package catalog

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/attackkg/attackkg/graph"
)

// tracerName identifies spans emitted by the catalog.
const tracerName = "github.com/attackkg/attackkg/catalog"

// Catalog exposes the analytical queries. It holds a Runner for
// execution, the immutable default filters, and the ambient logger and
// tracer. A Catalog carries no query state; entries may be called in any
// order.
type Catalog struct {
	runner   graph.Runner
	defaults Defaults
	logger   *slog.Logger
	tracer   trace.Tracer
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets a custom logger. If not provided, slog.Default() is
// used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer; each catalog entry then runs
// under its own span. A noop tracer is used when none is provided.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Catalog) {
		c.tracer = tracer
	}
}

// New creates a Catalog over the given runner with the given default
// filters.
func New(runner graph.Runner, defaults Defaults, opts ...Option) *Catalog {
	c := &Catalog{
		runner:   runner,
		defaults: defaults,
		logger:   slog.Default(),
		tracer:   noop.NewTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Filters returns the default filters the catalog was constructed with.
func (c *Catalog) Filters() Defaults {
	return c.defaults
}

// run executes one catalog query under a span and returns the
// materialized table. Errors pass through unwrapped beyond what the
// graph layer already attached.
func (c *Catalog) run(ctx context.Context, name, cypher string, params map[string]any) (graph.Table, error) {
	ctx, span := c.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("db.system", "neo4j"),
	))
	defer span.End()

	table, err := c.runner.Read(ctx, cypher, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return graph.Table{}, err
	}

	span.SetAttributes(attribute.Int("db.response.returned_rows", table.Len()))
	c.logger.Debug("catalog query executed", "query", name, "rows", table.Len())
	return table, nil
}

// orDefault substitutes the default filter for an empty caller value.
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
