package attackkg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/attackkg/attackkg/catalog"
	"github.com/attackkg/attackkg/kgerr"
)

// Config holds the connection parameters for the graph database and the
// default filters for the query catalog.
type Config struct {
	// URI is the Neo4j endpoint address (e.g., "neo4j://localhost:7687").
	URI string `yaml:"uri"`

	// Username and Password authenticate against the database. They are
	// passed through to the driver; this layer performs no further
	// authentication.
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// Database is the database name within the server. Defaults to
	// "neo4j" when empty.
	Database string `yaml:"database"`

	// Defaults are the default catalog filter parameters.
	Defaults catalog.Defaults `yaml:"defaults"`
}

// DefaultConfig returns a Config pointed at a local Neo4j instance with
// the stock default filters.
func DefaultConfig() Config {
	return Config{
		URI:      "neo4j://localhost:7687",
		Username: "neo4j",
		Database: "neo4j",
		Defaults: catalog.DefaultFilters(),
	}
}

// LoadConfig reads a YAML configuration file, layered on top of
// DefaultConfig: fields absent from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, kgerr.NewConfigurationError("attackkg.LoadConfig", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, kgerr.NewConfigurationError("attackkg.LoadConfig",
			fmt.Errorf("parsing %s: %w", path, err))
	}
	return cfg, nil
}

// ApplyEnv overrides connection parameters from the environment.
// Recognized variables: NEO4J_URI, NEO4J_USERNAME, NEO4J_PASSWORD,
// NEO4J_DATABASE. Unset variables leave the existing values untouched.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("NEO4J_URI"); v != "" {
		c.URI = v
	}
	if v := os.Getenv("NEO4J_USERNAME"); v != "" {
		c.Username = v
	}
	if v := os.Getenv("NEO4J_PASSWORD"); v != "" {
		c.Password = v
	}
	if v := os.Getenv("NEO4J_DATABASE"); v != "" {
		c.Database = v
	}
}

// Validate ensures the Config is usable. It returns an error wrapping
// kgerr.ErrInvalidConfig when a required field is missing or a numeric
// default is out of range.
func (c Config) Validate() error {
	if c.URI == "" {
		return kgerr.NewConfigurationError("Config.Validate",
			fmt.Errorf("%w: uri must not be empty", kgerr.ErrInvalidConfig))
	}
	if c.Username == "" {
		return kgerr.NewConfigurationError("Config.Validate",
			fmt.Errorf("%w: username must not be empty", kgerr.ErrInvalidConfig))
	}
	if c.Defaults.RecentDays <= 0 {
		return kgerr.NewConfigurationError("Config.Validate",
			fmt.Errorf("%w: recent_days must be positive, got %d", kgerr.ErrInvalidConfig, c.Defaults.RecentDays))
	}
	if c.Defaults.CoverageLimit <= 0 {
		return kgerr.NewConfigurationError("Config.Validate",
			fmt.Errorf("%w: coverage_limit must be positive, got %d", kgerr.ErrInvalidConfig, c.Defaults.CoverageLimit))
	}
	return nil
}
