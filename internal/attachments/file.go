package attachments

import (
	"context"

	"github.com/JaimeStill/scholar/internal/blobs"
	"github.com/JaimeStill/scholar/internal/files"
	"github.com/JaimeStill/scholar/pkg/outcome"
)

// File persists owners that carry one document.
type File[T any, P FileOwner[T], ID comparable, K blobs.Kind] struct {
	*Generic[T, P, ID]
	file binding[T, K]
}

func NewFile[T any, P FileOwner[T], ID comparable, K blobs.Kind](g *Generic[T, P, ID], svc *files.Service[K]) *File[T, P, ID, K] {
	return &File[T, P, ID, K]{
		Generic: g,
		file: binding[T, K]{
			field:     "file",
			get:       func(t *T) string { return P(t).FileID() },
			set:       func(t *T, id string) { P(t).SetFileID(id) },
			mediaType: files.Document,
			files:     svc,
		},
	}
}

func (r *File[T, P, ID, K]) Create(ctx context.Context, model *T, file files.Upload) files.Result[K] {
	saved := r.file.save(ctx, model, file)
	if !saved.IsSuccess() {
		return saved
	}

	if err := r.create(ctx, model); err != nil {
		r.file.orphaned(saved, r.logger, err)
		return outcome.Failure[*blobs.Blob[K]](err)
	}
	return outcome.NoContent[*blobs.Blob[K]]()
}

func (r *File[T, P, ID, K]) Update(ctx context.Context, model, existing *T, file files.Upload) files.Result[K] {
	prev := r.file.get(existing)

	var replaced files.Result[K]
	err := r.update(ctx, model, existing, func() error {
		replaced = r.file.replace(ctx, model, existing, file)
		return replaced.Err()
	})

	if err != nil {
		r.file.stranded(prev, replaced, r.logger, err)
		return outcome.Failure[*blobs.Blob[K]](err)
	}
	return outcome.NoContent[*blobs.Blob[K]]()
}

func (r *File[T, P, ID, K]) Delete(ctx context.Context, model *T) error {
	r.file.remove(ctx, model, r.logger)
	return r.Generic.Delete(ctx, model)
}

func (r *File[T, P, ID, K]) File(ctx context.Context, id ID) files.Result[K] {
	owner, err := r.Find(ctx, id)
	if err != nil {
		return outcome.Failure[*blobs.Blob[K]](err)
	}
	return r.file.read(ctx, owner)
}
