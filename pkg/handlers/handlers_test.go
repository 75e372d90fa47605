package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/scholar/pkg/handlers"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	handlers.RespondJSON(rec, http.StatusCreated, map[string]int{"id": 3})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body map[string]int
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil || body["id"] != 3 {
		t.Errorf("body = %v, %v", body, err)
	}
}

func TestRespondBytes(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		data        []byte
		want        string
	}{
		{"explicit", "application/pdf", []byte("%PDF-1.7"), "application/pdf"},
		{"sniffed jpeg", "", []byte{0xFF, 0xD8, 0xFF, 0xE0}, "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handlers.RespondBytes(rec, tt.contentType, tt.data)

			if ct := rec.Header().Get("Content-Type"); ct != tt.want {
				t.Errorf("Content-Type = %q, want %q", ct, tt.want)
			}
			if !bytes.Equal(rec.Body.Bytes(), tt.data) {
				t.Errorf("body = %v, want %v", rec.Body.Bytes(), tt.data)
			}
		})
	}
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		status    int
		wantLevel string
	}{
		{http.StatusNotFound, "level=WARN"},
		{http.StatusInternalServerError, "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			rec := httptest.NewRecorder()
			handlers.RespondError(rec, logger, tt.status, errors.New("boom"))

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if !strings.Contains(rec.Body.String(), `"error":"boom"`) {
				t.Errorf("body = %s", rec.Body.String())
			}
			if !strings.Contains(buf.String(), tt.wantLevel) {
				t.Errorf("log = %q, want %s", buf.String(), tt.wantLevel)
			}
		})
	}
}
