package logging

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Env maps environment variable names for logging configuration.
type Env struct {
	Level  string
	Format string
	Source string
}

// Config holds the [logging] section.
type Config struct {
	Level  Level  `toml:"level"`
	Format Format `toml:"format"`
	Source bool   `toml:"add_source"`
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		if err := c.loadEnv(env); err != nil {
			return err
		}
	}
	return c.validate()
}

// Merge applies non-zero values from the overlay configuration.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
	if overlay.Source {
		c.Source = true
	}
}

func (c *Config) loadDefaults() {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}
}

func (c *Config) loadEnv(env *Env) error {
	if v := os.Getenv(env.Level); env.Level != "" && v != "" {
		c.Level = Level(strings.ToLower(v))
	}
	if v := os.Getenv(env.Format); env.Format != "" && v != "" {
		c.Format = Format(strings.ToLower(v))
	}
	if v := os.Getenv(env.Source); env.Source != "" && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", env.Source, err)
		}
		c.Source = b
	}
	return nil
}

func (c *Config) validate() error {
	if err := c.Level.Validate(); err != nil {
		return err
	}
	return c.Format.Validate()
}
