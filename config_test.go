package attackkg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attackkg/attackkg/kgerr"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "neo4j://localhost:7687", cfg.URI)
	assert.Equal(t, "neo4j", cfg.Username)
	assert.Equal(t, "neo4j", cfg.Database)
	assert.Equal(t, "APT29", cfg.Defaults.Group)
	assert.Equal(t, "Credential Dumping", cfg.Defaults.Technique)
	assert.Equal(t, "defense-evasion", cfg.Defaults.Tactic)
	assert.Equal(t, "FIN7", cfg.Defaults.GroupB)
	assert.Equal(t, "Mimikatz", cfg.Defaults.Software)
	assert.Equal(t, 180, cfg.Defaults.RecentDays)
	assert.Equal(t, 25, cfg.Defaults.CoverageLimit)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
uri: neo4j://graph.internal:7687
password: secret
defaults:
  group: FIN7
  recent_days: 30
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "neo4j://graph.internal:7687", cfg.URI)
		assert.Equal(t, "secret", cfg.Password)
		assert.Equal(t, "neo4j", cfg.Username, "absent field keeps default")
		assert.Equal(t, "FIN7", cfg.Defaults.Group)
		assert.Equal(t, 30, cfg.Defaults.RecentDays)
		assert.Equal(t, "Mimikatz", cfg.Defaults.Software, "absent nested field keeps default")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)

		var structured *kgerr.Error
		require.ErrorAs(t, err, &structured)
		assert.Equal(t, kgerr.KindConfiguration, structured.Kind)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("uri: [unclosed"), 0o600))

		_, err := LoadConfig(path)
		require.Error(t, err)
	})
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("NEO4J_URI", "neo4j://env.internal:7687")
	t.Setenv("NEO4J_PASSWORD", "envsecret")
	t.Setenv("NEO4J_USERNAME", "")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	assert.Equal(t, "neo4j://env.internal:7687", cfg.URI)
	assert.Equal(t, "envsecret", cfg.Password)
	assert.Equal(t, "neo4j", cfg.Username, "unset variable leaves value untouched")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults are valid", func(*Config) {}, true},
		{"empty uri", func(c *Config) { c.URI = "" }, false},
		{"empty username", func(c *Config) { c.Username = "" }, false},
		{"zero recent days", func(c *Config) { c.Defaults.RecentDays = 0 }, false},
		{"negative coverage limit", func(c *Config) { c.Defaults.CoverageLimit = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, kgerr.ErrInvalidConfig))
		})
	}
}
