package users

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/scholar/internal/files"
)

var (
	ErrNotFound         = errors.New("user not found")
	ErrDuplicate        = errors.New("username already exists")
	ErrUsernameRequired = errors.New("username is required")
	ErrInvalidID        = errors.New("invalid user id")
)

// MapHTTPStatus converts domain and file errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrUsernameRequired), errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest
	default:
		return files.MapHTTPStatus(err)
	}
}
