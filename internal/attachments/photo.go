package attachments

import (
	"context"

	"github.com/JaimeStill/scholar/internal/blobs"
	"github.com/JaimeStill/scholar/internal/files"
	"github.com/JaimeStill/scholar/pkg/outcome"
)

// Photo persists owners that carry one image.
type Photo[T any, P PhotoOwner[T], ID comparable, K blobs.Kind] struct {
	*Generic[T, P, ID]
	photo binding[T, K]
}

// NewPhoto binds the owner repository g to the image service svc.
func NewPhoto[T any, P PhotoOwner[T], ID comparable, K blobs.Kind](g *Generic[T, P, ID], svc *files.Service[K]) *Photo[T, P, ID, K] {
	return &Photo[T, P, ID, K]{
		Generic: g,
		photo: binding[T, K]{
			field:     "photo",
			get:       func(t *T) string { return P(t).PhotoID() },
			set:       func(t *T, id string) { P(t).SetPhotoID(id) },
			mediaType: files.Image,
			files:     svc,
		},
	}
}

// Create saves photo, if present, then inserts model referencing it. A photo
// failure is returned before anything is inserted.
func (r *Photo[T, P, ID, K]) Create(ctx context.Context, model *T, photo files.Upload) files.Result[K] {
	saved := r.photo.save(ctx, model, photo)
	if !saved.IsSuccess() {
		return saved
	}

	if err := r.create(ctx, model); err != nil {
		r.photo.orphaned(saved, r.logger, err)
		return outcome.Failure[*blobs.Blob[K]](err)
	}
	return outcome.NoContent[*blobs.Blob[K]]()
}

// Update merges model onto existing, replaces the photo if one is given, and
// persists. A photo failure leaves existing's stored row and blob untouched. A
// photo saved under a new id for an owner that then fails to commit is logged.
func (r *Photo[T, P, ID, K]) Update(ctx context.Context, model, existing *T, photo files.Upload) files.Result[K] {
	prev := r.photo.get(existing)

	var replaced files.Result[K]
	err := r.update(ctx, model, existing, func() error {
		replaced = r.photo.replace(ctx, model, existing, photo)
		return replaced.Err()
	})

	if err != nil {
		r.photo.stranded(prev, replaced, r.logger, err)
		return outcome.Failure[*blobs.Blob[K]](err)
	}
	return outcome.NoContent[*blobs.Blob[K]]()
}

// Delete removes the photo, then the owner.
func (r *Photo[T, P, ID, K]) Delete(ctx context.Context, model *T) error {
	r.photo.remove(ctx, model, r.logger)
	return r.Generic.Delete(ctx, model)
}

// Photo returns the image of the owner with the given id.
func (r *Photo[T, P, ID, K]) Photo(ctx context.Context, id ID) files.Result[K] {
	owner, err := r.Find(ctx, id)
	if err != nil {
		return outcome.Failure[*blobs.Blob[K]](err)
	}
	return r.photo.read(ctx, owner)
}
