package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level YAML configuration used by the
// introspect command. The decompose and analyze commands read plain
// JSON files and need no config.
type Config struct {
	Connection Connection `yaml:"connection"`
	Schema     string     `yaml:"schema"`
}

// Connection holds database connection parameters.
type Connection struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN builds a PostgreSQL connection string.
func (c *Connection) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		c.Host, c.Port, c.Database, c.User, c.Password, c.SSLMode,
	)
}

// Load reads and parses a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.fillFromEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// fillFromEnv fills empty Connection fields from the usual PostgreSQL
// environment variables. YAML values take precedence.
func (c *Config) fillFromEnv() {
	conn := &c.Connection
	fallbacks := []struct {
		dst  *string
		vars []string
	}{
		{&conn.Host, []string{"PGHOST", "POSTGRES_HOST"}},
		{&conn.Database, []string{"PGDATABASE", "POSTGRES_DB"}},
		{&conn.User, []string{"PGUSER", "POSTGRES_USER"}},
		{&conn.Password, []string{"PGPASSWORD", "POSTGRES_PASSWORD"}},
		{&conn.SSLMode, []string{"PGSSLMODE"}},
	}
	for _, f := range fallbacks {
		if *f.dst == "" {
			*f.dst = envOr(f.vars...)
		}
	}
	if conn.Port == 0 {
		if p, err := strconv.Atoi(envOr("PGPORT", "POSTGRES_PORT")); err == nil {
			conn.Port = p
		}
	}
}

// envOr returns the first non-empty value from the given env var names.
func envOr(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}

func (c *Config) validate() error {
	if c.Connection.Host == "" {
		return fmt.Errorf("connection.host is required")
	}
	if c.Connection.Port == 0 {
		c.Connection.Port = 5432
	}
	if c.Connection.Database == "" {
		return fmt.Errorf("connection.database is required")
	}
	if c.Connection.User == "" {
		return fmt.Errorf("connection.user is required")
	}
	if c.Connection.SSLMode == "" {
		c.Connection.SSLMode = "disable"
	}
	if c.Schema == "" {
		c.Schema = "public"
	}
	return nil
}
