package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvServerHost         = "SERVER_HOST"
	EnvServerPort         = "SERVER_PORT"
	EnvServerReadTimeout  = "SERVER_READ_TIMEOUT"
	EnvServerWriteTimeout = "SERVER_WRITE_TIMEOUT"
	EnvServerBasePath     = "SERVER_BASE_PATH"
)

// ServerConfig contains the HTTP listener configuration.
type ServerConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	ReadTimeout  string `toml:"read_timeout"`
	WriteTimeout string `toml:"write_timeout"`
	// BasePath prefixes every domain route group.
	BasePath string `toml:"base_path"`
}

// Addr returns the listen address in host:port form.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *ServerConfig) ReadTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ReadTimeout)
	return d
}

func (c *ServerConfig) WriteTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.WriteTimeout)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the server configuration.
func (c *ServerConfig) Finalize() error {
	c.loadDefaults()
	if err := c.loadEnv(); err != nil {
		return err
	}
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *ServerConfig) Merge(overlay *ServerConfig) {
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	if overlay.ReadTimeout != "" {
		c.ReadTimeout = overlay.ReadTimeout
	}
	if overlay.WriteTimeout != "" {
		c.WriteTimeout = overlay.WriteTimeout
	}
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
}

func (c *ServerConfig) loadDefaults() {
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.ReadTimeout == "" {
		c.ReadTimeout = "1m"
	}
	if c.WriteTimeout == "" {
		c.WriteTimeout = "15m"
	}
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
}

func (c *ServerConfig) loadEnv() error {
	if v := os.Getenv(EnvServerHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvServerPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvServerPort, err)
		}
		c.Port = port
	}
	if v := os.Getenv(EnvServerReadTimeout); v != "" {
		c.ReadTimeout = v
	}
	if v := os.Getenv(EnvServerWriteTimeout); v != "" {
		c.WriteTimeout = v
	}
	if v := os.Getenv(EnvServerBasePath); v != "" {
		c.BasePath = v
	}
	return nil
}

func (c *ServerConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if _, err := time.ParseDuration(c.ReadTimeout); err != nil {
		return fmt.Errorf("invalid read_timeout: %w", err)
	}
	if _, err := time.ParseDuration(c.WriteTimeout); err != nil {
		return fmt.Errorf("invalid write_timeout: %w", err)
	}
	if c.BasePath[0] != '/' {
		return fmt.Errorf("base_path must start with /, got %q", c.BasePath)
	}
	return nil
}
