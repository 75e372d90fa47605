package docstore

import (
	"fmt"
	"os"
	"time"
)

// Config contains document store connection configuration.
type Config struct {
	URI         string `toml:"uri"`
	Database    string `toml:"database"`
	ConnTimeout string `toml:"conn_timeout"`
}

// Env maps environment variable names for document store configuration.
type Env struct {
	URI         string
	Database    string
	ConnTimeout string
}

// ConnTimeoutDuration parses and returns the connection timeout as a time.Duration.
func (c *Config) ConnTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnTimeout)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies non-zero values from overlay onto the receiver.
func (c *Config) Merge(overlay *Config) {
	if overlay.URI != "" {
		c.URI = overlay.URI
	}
	if overlay.Database != "" {
		c.Database = overlay.Database
	}
	if overlay.ConnTimeout != "" {
		c.ConnTimeout = overlay.ConnTimeout
	}
}

func (c *Config) loadDefaults() {
	if c.URI == "" {
		c.URI = "mongodb://localhost:27017"
	}
	if c.ConnTimeout == "" {
		c.ConnTimeout = "5s"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.URI != "" {
		if v := os.Getenv(env.URI); v != "" {
			c.URI = v
		}
	}
	if env.Database != "" {
		if v := os.Getenv(env.Database); v != "" {
			c.Database = v
		}
	}
	if env.ConnTimeout != "" {
		if v := os.Getenv(env.ConnTimeout); v != "" {
			c.ConnTimeout = v
		}
	}
}

func (c *Config) validate() error {
	if c.Database == "" {
		return fmt.Errorf("database required")
	}
	if _, err := time.ParseDuration(c.ConnTimeout); err != nil {
		return fmt.Errorf("invalid conn_timeout: %w", err)
	}
	return nil
}
