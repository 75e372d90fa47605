package docstore_test

import (
	"testing"
	"time"

	"github.com/JaimeStill/scholar/pkg/docstore"
)

func TestConfig_Finalize(t *testing.T) {
	env := &docstore.Env{
		URI:      "TEST_DOCSTORE_URI",
		Database: "TEST_DOCSTORE_DATABASE",
	}

	tests := []struct {
		name     string
		cfg      docstore.Config
		vars     map[string]string
		wantURI  string
		wantDB   string
		wantFail bool
	}{
		{
			name:    "defaults",
			cfg:     docstore.Config{Database: "files"},
			wantURI: "mongodb://localhost:27017",
			wantDB:  "files",
		},
		{
			name:    "env overrides",
			cfg:     docstore.Config{Database: "files"},
			vars:    map[string]string{env.URI: "mongodb://mongo:27017", env.Database: "blobs"},
			wantURI: "mongodb://mongo:27017",
			wantDB:  "blobs",
		},
		{
			name:     "missing database",
			cfg:      docstore.Config{},
			wantFail: true,
		},
		{
			name:     "bad timeout",
			cfg:      docstore.Config{Database: "files", ConnTimeout: "later"},
			wantFail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.vars {
				t.Setenv(k, v)
			}

			err := tt.cfg.Finalize(env)
			if tt.wantFail {
				if err == nil {
					t.Fatal("Finalize() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Finalize() error = %v", err)
			}

			if tt.cfg.URI != tt.wantURI || tt.cfg.Database != tt.wantDB {
				t.Errorf("Config = %+v, want uri %q database %q", tt.cfg, tt.wantURI, tt.wantDB)
			}
			if tt.cfg.ConnTimeoutDuration() != 5*time.Second {
				t.Errorf("ConnTimeoutDuration() = %v, want 5s", tt.cfg.ConnTimeoutDuration())
			}
		})
	}
}
