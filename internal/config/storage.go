package config

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
)

const (
	EnvStorageMaxUploadSize = "STORAGE_MAX_UPLOAD_SIZE"
	EnvStorageMemoryBuffer  = "STORAGE_MEMORY_BUFFER"
)

// StorageConfig bounds multipart uploads accepted by the attachment handlers.
type StorageConfig struct {
	// MaxUploadSize caps the request body of an upload. Human sizes such as "25MB".
	MaxUploadSize string `toml:"max_upload_size"`
	// MemoryBuffer is the in-memory threshold of multipart parsing; larger parts spill to disk.
	MemoryBuffer string `toml:"memory_buffer"`

	maxUploadSize int64
	memoryBuffer  int64
}

func (c *StorageConfig) MaxUploadSizeBytes() int64 {
	return c.maxUploadSize
}

func (c *StorageConfig) MemoryBufferBytes() int64 {
	return c.memoryBuffer
}

// Finalize applies defaults, loads environment overrides, and validates the storage configuration.
func (c *StorageConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *StorageConfig) Merge(overlay *StorageConfig) {
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}
	if overlay.MemoryBuffer != "" {
		c.MemoryBuffer = overlay.MemoryBuffer
	}
}

func (c *StorageConfig) loadDefaults() {
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "25MB"
	}
	if c.MemoryBuffer == "" {
		c.MemoryBuffer = "8MB"
	}
}

func (c *StorageConfig) loadEnv() {
	if v := os.Getenv(EnvStorageMaxUploadSize); v != "" {
		c.MaxUploadSize = v
	}
	if v := os.Getenv(EnvStorageMemoryBuffer); v != "" {
		c.MemoryBuffer = v
	}
}

func (c *StorageConfig) validate() error {
	size, err := units.FromHumanSize(c.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_upload_size must be positive")
	}

	buffer, err := units.FromHumanSize(c.MemoryBuffer)
	if err != nil {
		return fmt.Errorf("invalid memory_buffer: %w", err)
	}
	if buffer <= 0 || buffer > size {
		return fmt.Errorf("memory_buffer must be positive and no larger than max_upload_size")
	}

	c.maxUploadSize = size
	c.memoryBuffer = buffer
	return nil
}
