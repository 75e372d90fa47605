package files

import (
	"errors"
	"net/http"
)

// Failure classifications returned by Service.
var (
	ErrArgument   = errors.New("invalid argument")
	ErrParse      = errors.New("malformed identifier")
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("file not found")
	ErrTooLarge   = errors.New("upload exceeds maximum size")
)

// MapHTTPStatus converts file errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrArgument), errors.Is(err, ErrParse), errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
