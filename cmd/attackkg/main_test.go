package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
uri: neo4j://file.internal:7687
username: fileuser
defaults:
  group: FIN7
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("NEO4J_URI", "neo4j://env.internal:7687")
	t.Setenv("NEO4J_USERNAME", "")
	t.Setenv("NEO4J_PASSWORD", "")
	t.Setenv("NEO4J_DATABASE", "")

	cfg, err := loadConfig(options{
		configPath: path,
		group:      "Lazarus",
		recentDays: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, "neo4j://env.internal:7687", cfg.URI, "environment overrides the file")
	assert.Equal(t, "fileuser", cfg.Username, "file value survives when no override exists")
	assert.Equal(t, "Lazarus", cfg.Defaults.Group, "flag overrides the file")
	assert.Equal(t, 30, cfg.Defaults.RecentDays)
	assert.Equal(t, "FIN7", cfg.Defaults.GroupB, "untouched defaults remain")
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("NEO4J_URI", "")
	t.Setenv("NEO4J_USERNAME", "")
	t.Setenv("NEO4J_PASSWORD", "")
	t.Setenv("NEO4J_DATABASE", "")

	cfg, err := loadConfig(options{})
	require.NoError(t, err)
	assert.Equal(t, "neo4j://localhost:7687", cfg.URI)
	assert.Equal(t, "neo4j", cfg.Username)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(options{configPath: filepath.Join(t.TempDir(), "absent.yaml")})
	require.Error(t, err)
}

func TestRowsOf(t *testing.T) {
	rows := rowsOf([]int{1, 2}, func(n int) []string {
		return []string{string(rune('0' + n))}
	})
	assert.Equal(t, [][]string{{"1"}, {"2"}}, rows)

	empty := rowsOf(nil, func(n int) []string { return nil })
	assert.NotNil(t, empty, "zero rows still distinguish empty from absent")
	assert.Empty(t, empty)
}
