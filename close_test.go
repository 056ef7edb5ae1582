package attackkg

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

type fakeCloser struct {
	err    error
	closed bool
}

func (f *fakeCloser) Close(ctx context.Context) error {
	f.closed = true
	return f.err
}

func TestCloseWithLog(t *testing.T) {
	t.Run("nil closer is a no-op", func(t *testing.T) {
		CloseWithLog(context.Background(), nil, nil, "nothing")
	})

	t.Run("closes the resource", func(t *testing.T) {
		c := &fakeCloser{}
		CloseWithLog(context.Background(), c, slog.Default(), "resource")
		if !c.closed {
			t.Error("expected Close to be called")
		}
	})

	t.Run("logs close failure", func(t *testing.T) {
		var buf strings.Builder
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		c := &fakeCloser{err: errors.New("already closed")}

		CloseWithLog(context.Background(), c, logger, "knowledge graph")

		out := buf.String()
		if !strings.Contains(out, "knowledge graph") || !strings.Contains(out, "already closed") {
			t.Errorf("log output missing resource or error: %q", out)
		}
	})
}
