package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/scholar/internal/api"
	"github.com/JaimeStill/scholar/internal/blobs"
	"github.com/JaimeStill/scholar/internal/files"
	"github.com/JaimeStill/scholar/internal/infrastructure"
	"github.com/JaimeStill/scholar/pkg/logging"
	"github.com/JaimeStill/scholar/pkg/pagination"
	"github.com/JaimeStill/scholar/pkg/unitofwork"
)

type readiness bool

func (r readiness) Ready() bool { return bool(r) }

func newRuntime(ready bool, probes ...infrastructure.Probe) *api.Runtime {
	return &api.Runtime{
		Logger:     logging.Discard(),
		Lifecycle:  readiness(ready),
		Store:      unitofwork.NewMemory(),
		AdminStore: unitofwork.NewMemory(),
		Blobs: api.Blobs{
			UserPhotos:       blobs.NewMemoryStore[blobs.UserPhoto](),
			AuthorPhotos:     blobs.NewMemoryStore[blobs.AuthorPhoto](),
			UniversityPhotos: blobs.NewMemoryStore[blobs.UniversityPhoto](),
			PublicationFiles: blobs.NewMemoryStore[blobs.PublicationFile](),
		},
		Probes:     probes,
		Pagination: pagination.Config{DefaultPageSize: 20, MaxPageSize: 100},
		Limits:     files.Limits{MaxUploadSize: 1 << 20, MemoryBuffer: 1 << 16},
	}
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestNewHandler_Routes(t *testing.T) {
	h := api.NewHandler(newRuntime(true), "/api")

	tests := []struct {
		path string
		want int
	}{
		{"/healthz", http.StatusOK},
		{"/api/authors", http.StatusOK},
		{"/api/authors/", http.StatusMovedPermanently},
		{"/api/universities", http.StatusOK},
		{"/api/publications?sort=-year", http.StatusOK},
		{"/api/users", http.StatusOK},
		{"/api/authors/1", http.StatusNotFound},
		{"/api/publications/1/file", http.StatusNotFound},
		{"/authors", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if rec := get(t, h, tt.path); rec.Code != tt.want {
				t.Errorf("GET %s = %d, want %d", tt.path, rec.Code, tt.want)
			}
		})
	}
}

func TestReadiness(t *testing.T) {
	ok := infrastructure.Probe{Name: "database", Check: func(context.Context) error { return nil }}
	down := infrastructure.Probe{Name: "docstore", Check: func(context.Context) error { return errors.New("no reachable servers") }}

	t.Run("starting", func(t *testing.T) {
		rec := get(t, api.NewHandler(newRuntime(false, ok), "/api"), "/readyz")
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", rec.Code)
		}
	})

	t.Run("ready", func(t *testing.T) {
		rec := get(t, api.NewHandler(newRuntime(true, ok), "/api"), "/readyz")
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("store unreachable", func(t *testing.T) {
		rec := get(t, api.NewHandler(newRuntime(true, ok, down), "/api"), "/readyz")
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503", rec.Code)
		}

		var checks map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&checks); err != nil {
			t.Fatal(err)
		}
		if checks["database"] != "ok" || checks["docstore"] != "no reachable servers" {
			t.Errorf("checks = %v", checks)
		}
	})
}
