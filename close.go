package attackkg

import (
	"context"
	"log/slog"
)

// ContextCloser is implemented by resources whose Close takes a context,
// such as KG and the underlying Neo4j driver.
type ContextCloser interface {
	Close(ctx context.Context) error
}

// CloseWithLog attempts to close the provided resource and logs any error
// at warning level. This is intended for use in defer statements so
// cleanup errors are not silently ignored.
//
// The name parameter should describe the resource being closed (e.g.,
// "knowledge graph"). If logger is nil, slog.Default() is used.
//
// Example usage:
//
//	defer attackkg.CloseWithLog(ctx, kg, logger, "knowledge graph")
func CloseWithLog(ctx context.Context, closer ContextCloser, logger *slog.Logger, name string) {
	if closer == nil {
		return
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := closer.Close(ctx); err != nil {
		logger.Warn("failed to close resource",
			"resource", name,
			"error", err)
	}
}
