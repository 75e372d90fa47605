package pagination_test

import (
	"testing"

	"github.com/JaimeStill/scholar/pkg/pagination"
)

var testEnv = &pagination.Env{
	DefaultPageSize: "TEST_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "TEST_PAGINATION_MAX_PAGE_SIZE",
}

func TestConfig_Finalize_Defaults(t *testing.T) {
	var cfg pagination.Config

	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.DefaultPageSize != 20 {
		t.Errorf("DefaultPageSize = %d, want 20", cfg.DefaultPageSize)
	}
	if cfg.MaxPageSize != 100 {
		t.Errorf("MaxPageSize = %d, want 100", cfg.MaxPageSize)
	}
}

func TestConfig_Finalize_Env(t *testing.T) {
	t.Setenv(testEnv.DefaultPageSize, "5")
	t.Setenv(testEnv.MaxPageSize, "10")

	var cfg pagination.Config
	if err := cfg.Finalize(testEnv); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.DefaultPageSize != 5 || cfg.MaxPageSize != 10 {
		t.Errorf("Config = %+v, want {5 10}", cfg)
	}
}

func TestConfig_Finalize_DefaultExceedsMax(t *testing.T) {
	cfg := pagination.Config{DefaultPageSize: 50, MaxPageSize: 10}

	if err := cfg.Finalize(nil); err == nil {
		t.Error("Finalize() error = nil, want error")
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
	cfg.Merge(&pagination.Config{MaxPageSize: 50})

	if cfg.DefaultPageSize != 20 {
		t.Errorf("DefaultPageSize = %d, want 20", cfg.DefaultPageSize)
	}
	if cfg.MaxPageSize != 50 {
		t.Errorf("MaxPageSize = %d, want 50", cfg.MaxPageSize)
	}
}
