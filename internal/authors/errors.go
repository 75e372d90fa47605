package authors

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/scholar/internal/files"
)

// Domain errors for author operations.
var (
	ErrNotFound      = errors.New("author not found")
	ErrDuplicate     = errors.New("author already exists")
	ErrInvalidAuthor = errors.New("first_name and last_name are required")
)

// MapHTTPStatus converts domain and file errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidAuthor) {
		return http.StatusBadRequest
	}
	return files.MapHTTPStatus(err)
}
