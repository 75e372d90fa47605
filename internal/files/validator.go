package files

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// MediaType declares what kind of file an owner accepts.
type MediaType string

const (
	Image    MediaType = "image"
	Document MediaType = "document"
)

// Validator checks an upload's extension against an allow-list.
type Validator struct {
	extensions []string
}

var validators = map[MediaType]*Validator{
	Image:    {extensions: []string{".jpg", ".jpeg"}},
	Document: {extensions: []string{".pdf"}},
}

// ValidatorFor returns the validator for mediaType. Unknown and empty media types
// have no validator, and uploads declared with them are accepted unchecked.
func ValidatorFor(mediaType MediaType) *Validator {
	return validators[mediaType]
}

// Extensions returns the allowed extensions.
func (v *Validator) Extensions() []string {
	return slices.Clone(v.extensions)
}

// Validate fails with ErrValidation when the lower-cased extension is not allowed.
func (v *Validator) Validate(file Upload) error {
	ext := strings.ToLower(filepath.Ext(file.Filename()))
	if !slices.Contains(v.extensions, ext) {
		return fmt.Errorf("%w: only %s allowed", ErrValidation, strings.Join(v.extensions, ", "))
	}
	return nil
}

func validate(file Upload, mediaType MediaType) error {
	if v := ValidatorFor(mediaType); v != nil {
		return v.Validate(file)
	}
	return nil
}
