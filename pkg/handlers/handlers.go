// Package handlers provides HTTP response utilities for JSON APIs.
// These stateless functions standardize response formatting across handlers.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
)

// RespondJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondBytes writes a binary body. An empty contentType is sniffed from data.
func RespondBytes(w http.ResponseWriter, contentType string, data []byte) {
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// RespondError logs the error and writes a JSON error response.
// Client errors are logged at warn level, server errors at error level.
// The response body contains {"error": "<error message>"}.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	level := slog.LevelError
	if status < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	logger.Log(context.Background(), level, "handler error", "error", err, "status", status)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
