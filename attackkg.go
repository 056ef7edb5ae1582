package attackkg

import (
	"context"

	"github.com/attackkg/attackkg/catalog"
	"github.com/attackkg/attackkg/graph"
)

// KG is the assembled knowledge-graph access layer: a live graph client
// and the query catalog wired over it. A KG holds no query state; it is
// safe to share to the extent the underlying driver supports concurrent
// session creation.
type KG struct {
	client  *graph.Client
	catalog *catalog.Catalog
}

// Open validates the configuration, connects to the graph database, and
// wires the query catalog over the connection. The returned KG owns the
// connection; callers must Close it when done.
//
// Configuration problems surface as KindConfiguration errors before any
// connection attempt; an unreachable endpoint or rejected credentials
// surface as KindConnection errors and are not retried.
func Open(ctx context.Context, cfg Config, opts ...Option) (*KG, error) {
	o := newOptions(opts...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := graph.NewClient(ctx, graph.Config{
		URI:      cfg.URI,
		Username: cfg.Username,
		Password: cfg.Password,
		Database: cfg.Database,
	}, graph.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}

	catalogOpts := []catalog.Option{catalog.WithLogger(o.logger)}
	if o.tracer != nil {
		catalogOpts = append(catalogOpts, catalog.WithTracer(o.tracer))
	}

	return &KG{
		client:  client,
		catalog: catalog.New(client, cfg.Defaults, catalogOpts...),
	}, nil
}

// Catalog returns the query catalog bound to this connection.
func (kg *KG) Catalog() *catalog.Catalog {
	return kg.catalog
}

// Close releases the underlying graph connection and its pool.
func (kg *KG) Close(ctx context.Context) error {
	return kg.client.Close(ctx)
}
