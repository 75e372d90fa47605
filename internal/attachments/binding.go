package attachments

import (
	"context"
	"log/slog"

	"github.com/JaimeStill/scholar/internal/blobs"
	"github.com/JaimeStill/scholar/internal/files"
	"github.com/JaimeStill/scholar/pkg/outcome"
)

// binding ties one blob reference field of T to a file service.
type binding[T any, K blobs.Kind] struct {
	field     string
	get       func(*T) string
	set       func(*T, string)
	mediaType files.MediaType
	files     *files.Service[K]
}

// save stores file and points model at it. A nil file is a no-op success.
func (b binding[T, K]) save(ctx context.Context, model *T, file files.Upload) files.Result[K] {
	if file == nil {
		return outcome.NoContent[*blobs.Blob[K]]()
	}

	result := b.files.Save(ctx, file, b.mediaType)
	if !result.IsSuccess() {
		return result
	}

	b.set(model, result.Value().ID.Hex())
	return result
}

// replace overwrites the blob existing points at, or saves a new one, and points
// both existing and model at the result. A nil file is a no-op success.
func (b binding[T, K]) replace(ctx context.Context, model, existing *T, file files.Upload) files.Result[K] {
	if file == nil {
		return outcome.NoContent[*blobs.Blob[K]]()
	}

	result := b.files.Update(ctx, file, b.get(existing), b.mediaType)
	if !result.IsSuccess() {
		return result
	}

	id := result.Value().ID.Hex()
	b.set(existing, id)
	b.set(model, id)
	return result
}

// remove deletes the blob model points at. An empty reference is skipped and a
// failure is logged; the caller proceeds with the owner either way.
func (b binding[T, K]) remove(ctx context.Context, model *T, logger *slog.Logger) {
	id := b.get(model)
	if id == "" {
		return
	}

	if result := b.files.Delete(ctx, id); !result.IsSuccess() {
		logger.Warn("blob delete failed, removing owner anyway",
			"field", b.field, "blob_id", id, "error", result.Err())
	}
}

// read returns the blob model points at. An empty reference is not found.
func (b binding[T, K]) read(ctx context.Context, model *T) files.Result[K] {
	id := b.get(model)
	if id == "" {
		return outcome.Failure[*blobs.Blob[K]](files.ErrNotFound)
	}
	return b.files.Get(ctx, id)
}

// orphaned logs a blob saved for an owner that was not persisted.
func (b binding[T, K]) orphaned(result files.Result[K], logger *slog.Logger, err error) {
	if result.HasValue() {
		logger.Error("owner not persisted, blob orphaned",
			"field", b.field, "blob_id", result.Value().ID.Hex(), "error", err)
	}
}

// stranded logs a blob that replace saved under a new id when the owner row
// still points at prev. Overwrites in place keep prev and are not logged.
func (b binding[T, K]) stranded(prev string, result files.Result[K], logger *slog.Logger, err error) {
	if result.HasValue() && result.Value().ID.Hex() != prev {
		b.orphaned(result, logger, err)
	}
}
