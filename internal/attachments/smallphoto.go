package attachments

import (
	"context"

	"github.com/JaimeStill/scholar/internal/blobs"
	"github.com/JaimeStill/scholar/internal/files"
	"github.com/JaimeStill/scholar/pkg/outcome"
)

// SmallPhoto persists owners that carry an image and a thumbnail. The two blobs
// are handled independently; a failure on one does not undo the other.
type SmallPhoto[T any, P SmallPhotoOwner[T], ID comparable, K blobs.Kind] struct {
	*Generic[T, P, ID]
	photo binding[T, K]
	small binding[T, K]
}

func NewSmallPhoto[T any, P SmallPhotoOwner[T], ID comparable, K blobs.Kind](g *Generic[T, P, ID], svc *files.Service[K]) *SmallPhoto[T, P, ID, K] {
	return &SmallPhoto[T, P, ID, K]{
		Generic: g,
		photo: binding[T, K]{
			field:     "photo",
			get:       func(t *T) string { return P(t).PhotoID() },
			set:       func(t *T, id string) { P(t).SetPhotoID(id) },
			mediaType: files.Image,
			files:     svc,
		},
		small: binding[T, K]{
			field:     "small_photo",
			get:       func(t *T) string { return P(t).SmallPhotoID() },
			set:       func(t *T, id string) { P(t).SetSmallPhotoID(id) },
			mediaType: files.Image,
			files:     svc,
		},
	}
}

func (r *SmallPhoto[T, P, ID, K]) Create(ctx context.Context, model *T, photo, small files.Upload) files.Result[K] {
	savedPhoto := r.photo.save(ctx, model, photo)
	if !savedPhoto.IsSuccess() {
		return savedPhoto
	}

	savedSmall := r.small.save(ctx, model, small)
	if !savedSmall.IsSuccess() {
		r.photo.orphaned(savedPhoto, r.logger, savedSmall.Err())
		return savedSmall
	}

	if err := r.create(ctx, model); err != nil {
		r.photo.orphaned(savedPhoto, r.logger, err)
		r.small.orphaned(savedSmall, r.logger, err)
		return outcome.Failure[*blobs.Blob[K]](err)
	}
	return outcome.NoContent[*blobs.Blob[K]]()
}

func (r *SmallPhoto[T, P, ID, K]) Update(ctx context.Context, model, existing *T, photo, small files.Upload) files.Result[K] {
	prevPhoto, prevSmall := r.photo.get(existing), r.small.get(existing)

	var replacedPhoto, replacedSmall files.Result[K]
	err := r.update(ctx, model, existing, func() error {
		if replacedPhoto = r.photo.replace(ctx, model, existing, photo); !replacedPhoto.IsSuccess() {
			return replacedPhoto.Err()
		}
		replacedSmall = r.small.replace(ctx, model, existing, small)
		return replacedSmall.Err()
	})

	if err != nil {
		r.photo.stranded(prevPhoto, replacedPhoto, r.logger, err)
		r.small.stranded(prevSmall, replacedSmall, r.logger, err)
		return outcome.Failure[*blobs.Blob[K]](err)
	}
	return outcome.NoContent[*blobs.Blob[K]]()
}

func (r *SmallPhoto[T, P, ID, K]) Delete(ctx context.Context, model *T) error {
	r.photo.remove(ctx, model, r.logger)
	r.small.remove(ctx, model, r.logger)
	return r.Generic.Delete(ctx, model)
}

func (r *SmallPhoto[T, P, ID, K]) Photo(ctx context.Context, id ID) files.Result[K] {
	owner, err := r.Find(ctx, id)
	if err != nil {
		return outcome.Failure[*blobs.Blob[K]](err)
	}
	return r.photo.read(ctx, owner)
}

func (r *SmallPhoto[T, P, ID, K]) SmallPhoto(ctx context.Context, id ID) files.Result[K] {
	owner, err := r.Find(ctx, id)
	if err != nil {
		return outcome.Failure[*blobs.Blob[K]](err)
	}
	return r.small.read(ctx, owner)
}
