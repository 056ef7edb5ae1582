package attackkg

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attackkg/attackkg/kgerr"
)

func TestOpenRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.URI = ""

	_, err := Open(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, kgerr.ErrInvalidConfig),
		"configuration problems surface before any connection attempt")
}

func TestOpenConnectionFailure(t *testing.T) {
	cfg := DefaultConfig()
	cfg.URI = "ftp://not-a-graph"

	_, err := Open(context.Background(), cfg)
	require.Error(t, err)

	assert.True(t, errors.Is(err, kgerr.ErrConnectionFailed))

	var structured *kgerr.Error
	require.ErrorAs(t, err, &structured)
	assert.Equal(t, kgerr.KindConnection, structured.Kind)
}
