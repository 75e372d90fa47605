package authors

import (
	"context"
	"log/slog"
	"time"

	"github.com/JaimeStill/scholar/internal/attachments"
	"github.com/JaimeStill/scholar/internal/blobs"
	"github.com/JaimeStill/scholar/internal/files"
	"github.com/JaimeStill/scholar/pkg/pagination"
	"github.com/JaimeStill/scholar/pkg/unitofwork"
)

// Photo is the portrait blob of an author.
type Photo = blobs.Blob[blobs.AuthorPhoto]

// System defines the author management operations.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Author], error)
	Find(ctx context.Context, id int64) (*Author, error)
	Create(ctx context.Context, cmd Command, photo files.Upload) (*Author, error)
	Update(ctx context.Context, id int64, cmd Command, photo files.Upload) (*Author, error)
	Delete(ctx context.Context, id int64) error
	Photo(ctx context.Context, id int64) (*Photo, error)
}

type repo struct {
	authors    *attachments.Photo[Author, *Author, int64, blobs.AuthorPhoto]
	pagination pagination.Config
}

// New creates the author system over the application store and the author photo blobs.
func New(store unitofwork.Store, photos blobs.Store[blobs.AuthorPhoto], logger *slog.Logger, cfg pagination.Config) System {
	logger = logger.With("system", "authors")

	g := attachments.NewGeneric[Author, *Author](
		store,
		Table,
		cfg,
		attachments.Errors{NotFound: ErrNotFound, Duplicate: ErrDuplicate},
		logger,
	)

	return &repo{
		authors:    attachments.NewPhoto(g, files.NewService(photos, logger)),
		pagination: cfg,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Author], error) {
	page.Normalize(r.pagination)
	filters.Search = page.Search

	p, err := r.authors.List(ctx, filters, page.Offset(), page.PageSize, page.Sort)
	if err != nil {
		return nil, err
	}

	result := pagination.Result(p, page)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*Author, error) {
	return r.authors.Find(ctx, id)
}

func (r *repo) Create(ctx context.Context, cmd Command, photo files.Upload) (*Author, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	author := cmd.author()
	author.CreatedAt = time.Now().UTC()

	if result := r.authors.Create(ctx, author, photo); !result.IsSuccess() {
		return nil, result.Err()
	}
	return author, nil
}

func (r *repo) Update(ctx context.Context, id int64, cmd Command, photo files.Upload) (*Author, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	existing, err := r.authors.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if result := r.authors.Update(ctx, cmd.author(), existing, photo); !result.IsSuccess() {
		return nil, result.Err()
	}
	return existing, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	existing, err := r.authors.Find(ctx, id)
	if err != nil {
		return err
	}
	return r.authors.Delete(ctx, existing)
}

func (r *repo) Photo(ctx context.Context, id int64) (*Photo, error) {
	result := r.authors.Photo(ctx, id)
	if !result.IsSuccess() {
		return nil, result.Err()
	}
	return result.Value(), nil
}
