package publications

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/scholar/internal/files"
)

var (
	ErrNotFound           = errors.New("publication not found")
	ErrDuplicate          = errors.New("publication doi already exists")
	ErrInvalidPublication = errors.New("invalid publication")
)

// MapHTTPStatus converts domain and file errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidPublication) {
		return http.StatusBadRequest
	}
	return files.MapHTTPStatus(err)
}
