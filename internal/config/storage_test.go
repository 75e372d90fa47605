package config_test

import (
	"testing"

	"github.com/JaimeStill/scholar/internal/config"
)

func TestStorageConfig_Finalize(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.StorageConfig
		env        string
		wantMax    int64
		wantBuffer int64
		wantErr    bool
	}{
		{"defaults", config.StorageConfig{}, "", 25_000_000, 8_000_000, false},
		{"explicit", config.StorageConfig{MaxUploadSize: "1GB", MemoryBuffer: "10MB"}, "", 1_000_000_000, 10_000_000, false},
		{"env override", config.StorageConfig{MaxUploadSize: "1GB"}, "50MB", 50_000_000, 8_000_000, false},
		{"unparseable", config.StorageConfig{MaxUploadSize: "lots"}, "", 0, 0, true},
		{"buffer larger than max", config.StorageConfig{MaxUploadSize: "1MB", MemoryBuffer: "2MB"}, "", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv(config.EnvStorageMaxUploadSize, tt.env)
			}

			cfg := tt.cfg
			err := cfg.Finalize()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Finalize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg.MaxUploadSizeBytes() != tt.wantMax {
				t.Errorf("MaxUploadSizeBytes() = %d, want %d", cfg.MaxUploadSizeBytes(), tt.wantMax)
			}
			if cfg.MemoryBufferBytes() != tt.wantBuffer {
				t.Errorf("MemoryBufferBytes() = %d, want %d", cfg.MemoryBufferBytes(), tt.wantBuffer)
			}
		})
	}
}

func TestStorageConfig_Merge(t *testing.T) {
	base := &config.StorageConfig{MaxUploadSize: "25MB", MemoryBuffer: "8MB"}
	base.Merge(&config.StorageConfig{MaxUploadSize: "100MB"})

	if base.MaxUploadSize != "100MB" {
		t.Errorf("MaxUploadSize = %q, want 100MB", base.MaxUploadSize)
	}
	if base.MemoryBuffer != "8MB" {
		t.Errorf("MemoryBuffer = %q, want 8MB", base.MemoryBuffer)
	}
}
