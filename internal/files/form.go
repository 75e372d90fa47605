package files

import (
	"errors"
	"fmt"
	"net/http"
)

// Limits bounds multipart parsing of an upload request.
type Limits struct {
	MaxUploadSize int64
	MemoryBuffer  int64
}

// ParseForm caps the body of r at MaxUploadSize and parses it as multipart form
// data. Oversized bodies fail with ErrTooLarge, anything else unparseable with ErrArgument.
func ParseForm(w http.ResponseWriter, r *http.Request, limits Limits) error {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxUploadSize)

	if err := r.ParseMultipartForm(limits.MemoryBuffer); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, tooLarge.Limit)
		}
		return fmt.Errorf("%w: %v", ErrArgument, err)
	}
	return nil
}

// FormFile returns the first file posted under field, or nil when there is none.
// r must already be parsed with ParseForm.
func FormFile(r *http.Request, field string) Upload {
	if r.MultipartForm == nil {
		return nil
	}
	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return nil
	}
	return FromMultipart(headers[0])
}
