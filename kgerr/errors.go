package kgerr

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrConnectionFailed indicates the graph database endpoint is
	// unreachable or the supplied credentials were rejected. Connection
	// failures are fatal and never retried by this layer.
	ErrConnectionFailed = errors.New("graph connection failed")

	// ErrQueryRejected indicates the database rejected a query (syntax
	// error, missing index, type mismatch at the database layer). The
	// driver error is wrapped, never swallowed.
	ErrQueryRejected = errors.New("query rejected")

	// ErrInvalidConfig indicates the provided configuration is invalid
	// or incomplete.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Error kinds categorize errors by their type.
const (
	// KindConnection represents failures establishing or verifying the
	// database connection.
	KindConnection = "connection"

	// KindQuery represents errors returned by the database for a query.
	KindQuery = "query"

	// KindConfiguration represents errors related to configuration.
	KindConfiguration = "configuration"

	// KindInternal represents internal errors in this layer.
	KindInternal = "internal"
)

// Error is a structured error type that wraps underlying errors with
// the operation that failed and the category of error.
//
// Error implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As(). The underlying
// driver error is always reachable through Unwrap so callers see the
// cause verbatim.
type Error struct {
	// Op is the operation that failed (e.g., "graph.NewClient").
	Op string

	// Kind categorizes the error (e.g., KindConnection, KindQuery).
	Kind string

	// Err is the underlying error that caused this error.
	Err error
}

// Error implements the error interface, returning a formatted message
// that includes the operation, kind, and underlying error.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("attackkg: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("attackkg: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and
// errors.As() to work correctly with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching for Error, allowing comparison based on
// the underlying error or on another Error's Kind.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}
	return errors.Is(e.Err, target)
}

// NewConnectionError creates a new Error with KindConnection wrapping
// ErrConnectionFailed and the driver cause.
func NewConnectionError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindConnection, Err: fmt.Errorf("%w: %w", ErrConnectionFailed, err)}
}

// NewQueryError creates a new Error with KindQuery wrapping
// ErrQueryRejected and the driver cause.
func NewQueryError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindQuery, Err: fmt.Errorf("%w: %w", ErrQueryRejected, err)}
}

// NewConfigurationError creates a new Error with KindConfiguration.
func NewConfigurationError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindConfiguration, Err: err}
}

// NewInternalError creates a new Error with KindInternal.
func NewInternalError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindInternal, Err: err}
}
