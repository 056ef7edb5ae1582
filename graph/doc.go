// Package graph owns the connection to the Neo4j database and the thin
// execution layer the query catalog runs on.
//
// Client wraps a neo4j.DriverWithContext. Each Read call opens one
// read-scoped session, binds parameters through the driver's native
// $param mechanism, executes inside a managed read transaction, and
// materializes the raw records into a Table. Sessions are released on
// every exit path; no state is carried between calls.
//
// Table and Record preserve the shape of the database result: scalar
// cells, list cells produced by collect(), and Path values produced by
// shortestPath(), without flattening. An empty result materializes to an
// explicitly empty Table so callers can distinguish "ran, zero matches"
// from "never ran".
package graph
