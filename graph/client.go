package graph

import (
	"context"
	"log/slog"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"

	"github.com/attackkg/attackkg/kgerr"
)

// Config holds the connection parameters for a Client.
type Config struct {
	// URI is the Neo4j endpoint address (e.g., "neo4j://localhost:7687").
	URI string

	// Username and Password are passed to the driver's basic auth.
	Username string
	Password string

	// Database is the database name within the server; "neo4j" when empty.
	Database string
}

// Runner executes one read-only Cypher query and returns the
// materialized result. Client is the live implementation; tests provide
// fakes.
type Runner interface {
	// Read executes a Cypher query with named parameters and returns the
	// materialized table. An empty table is a valid, non-error outcome.
	Read(ctx context.Context, cypher string, params map[string]any) (Table, error)
}

// Client is a handle to the graph database. It is safe to share across
// catalog entries; each query runs in its own short-lived session. The
// Client itself does not serialize calls — concurrent use is only safe
// to the extent the underlying driver supports concurrent session
// creation.
type Client struct {
	driver   neo4j.DriverWithContext
	database string
	logger   *slog.Logger
}

var _ Runner = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithLogger sets a structured logger for the client. If not provided,
// slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a driver for the configured endpoint and verifies
// connectivity. An unreachable endpoint or rejected credentials yield a
// KindConnection error; the failure is not retried.
func NewClient(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	const op = "graph.NewClient"

	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, kgerr.NewConnectionError(op, err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, kgerr.NewConnectionError(op, err)
	}

	database := cfg.Database
	if database == "" {
		database = "neo4j"
	}

	c := &Client{
		driver:   driver,
		database: database,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Close releases the underlying driver and its connection pool.
func (c *Client) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

// Read executes a single read-only query in a scoped session. Parameters
// are bound through the driver, never interpolated into the query text.
// The session is released on every exit path. Database rejections are
// returned as KindQuery errors wrapping the verbatim driver error.
func (c *Client) Read(ctx context.Context, cypher string, params map[string]any) (Table, error) {
	const op = "graph.Client.Read"

	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.database,
		AccessMode:   neo4j.AccessModeRead,
	})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	if err != nil {
		return Table{}, kgerr.NewQueryError(op, err)
	}

	records, ok := result.([]*db.Record)
	if !ok {
		return Table{}, kgerr.NewInternalError(op, errUnexpectedResult)
	}

	table := NewTable(records)
	c.logger.Debug("query executed", "rows", table.Len())
	return table, nil
}
