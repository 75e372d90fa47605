package universities

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/scholar/internal/files"
)

// Domain errors for university operations.
var (
	ErrNotFound     = errors.New("university not found")
	ErrDuplicate    = errors.New("university name already exists")
	ErrNameRequired = errors.New("name is required")
)

// MapHTTPStatus converts domain and file errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrNameRequired):
		return http.StatusBadRequest
	default:
		return files.MapHTTPStatus(err)
	}
}
