package files

import (
	"fmt"

	"github.com/JaimeStill/scholar/internal/blobs"
)

// CreateEntity validates file and builds a blob with a newly minted id.
func CreateEntity[K blobs.Kind](file Upload, mediaType MediaType) (*blobs.Blob[K], error) {
	if file == nil {
		return nil, fmt.Errorf("%w: file required", ErrArgument)
	}
	if err := validate(file, mediaType); err != nil {
		return nil, err
	}

	data, err := ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &blobs.Blob[K]{ID: blobs.NewID(), File: data}, nil
}

// UpdateEntity validates file and replaces the bytes of existing. The id is kept.
func UpdateEntity[K blobs.Kind](file Upload, mediaType MediaType, existing *blobs.Blob[K]) (*blobs.Blob[K], error) {
	if file == nil {
		return nil, fmt.Errorf("%w: file required", ErrArgument)
	}
	if err := validate(file, mediaType); err != nil {
		return nil, err
	}

	data, err := ReadAll(file)
	if err != nil {
		return nil, err
	}

	existing.File = data
	return existing, nil
}
