// Package config loads the scholar service configuration from TOML files with
// environment variable overrides and SERVICE_ENV overlays.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/JaimeStill/scholar/pkg/database"
	"github.com/JaimeStill/scholar/pkg/docstore"
	"github.com/JaimeStill/scholar/pkg/logging"
	"github.com/JaimeStill/scholar/pkg/pagination"
	"github.com/pelletier/go-toml/v2"
)

const (
	// BaseConfigFile is the primary configuration file name.
	BaseConfigFile = "config.toml"

	// OverlayConfigPattern is the file name pattern for environment-specific overlays.
	OverlayConfigPattern = "config.%s.toml"

	// EnvServiceEnv specifies the environment name for configuration overlays.
	EnvServiceEnv = "SERVICE_ENV"

	// EnvServiceShutdownTimeout overrides the service shutdown timeout.
	EnvServiceShutdownTimeout = "SERVICE_SHUTDOWN_TIMEOUT"
)

// Config represents the root service configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	// Database holds the application store (authors, universities, publications).
	Database database.Config `toml:"database"`
	// AdminDatabase holds the administrative store (users).
	AdminDatabase   database.Config   `toml:"admin_database"`
	DocStore        docstore.Config   `toml:"docstore"`
	Logging         logging.Config    `toml:"logging"`
	Pagination      pagination.Config `toml:"pagination"`
	Storage         StorageConfig     `toml:"storage"`
	ShutdownTimeout string            `toml:"shutdown_timeout"`
}

// ShutdownTimeoutDuration parses and returns the shutdown timeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the configuration file at path (BaseConfigFile when empty), applies the
// SERVICE_ENV overlay found next to it, and finalizes the result.
func Load(path string) (*Config, error) {
	if path == "" {
		path = BaseConfigFile
	}

	cfg, err := load(path)
	if err != nil {
		return nil, err
	}

	if path := overlayPath(path); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}
	return cfg, nil
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.AdminDatabase.Finalize(adminDatabaseEnv); err != nil {
		return fmt.Errorf("admin_database: %w", err)
	}
	if err := c.DocStore.Finalize(docstoreEnv); err != nil {
		return fmt.Errorf("docstore: %w", err)
	}
	if err := c.Logging.Finalize(loggingEnv); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.Storage.Finalize(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.AdminDatabase.Merge(&overlay.AdminDatabase)
	c.DocStore.Merge(&overlay.DocStore)
	c.Logging.Merge(&overlay.Logging)
	c.Pagination.Merge(&overlay.Pagination)
	c.Storage.Merge(&overlay.Storage)
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvServiceShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath(base string) string {
	if env := os.Getenv(EnvServiceEnv); env != "" {
		overlay := filepath.Join(filepath.Dir(base), fmt.Sprintf(OverlayConfigPattern, env))
		if _, err := os.Stat(overlay); err == nil {
			return overlay
		}
	}
	return ""
}
