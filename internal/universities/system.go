package universities

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

// Photo is an image blob of a university. Both the photo and the small photo use it.
type Photo = blobs.Blob[blobs.UniversityPhoto]

// Uploads are the optional images submitted with a create or update.
type Uploads struct {
	Photo      files.Upload
	SmallPhoto files.Upload
}

// System defines the university management operations.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[University], error)
	Find(ctx context.Context, id int64) (*University, error)
	Create(ctx context.Context, cmd Command, uploads Uploads) (*University, error)
	Update(ctx context.Context, id int64, cmd Command, uploads Uploads) (*University, error)
	Delete(ctx context.Context, id int64) error
	Photo(ctx context.Context, id int64) (*Photo, error)
	SmallPhoto(ctx context.Context, id int64) (*Photo, error)
}

type repo struct {
	universities *attachments.SmallPhoto[University, *University, int64, blobs.UniversityPhoto]
	pagination   pagination.Config
}

// New creates the university system over the application store and the university photo blobs.
func New(store unitofwork.Store, photos blobs.Store[blobs.UniversityPhoto], logger *slog.Logger, cfg pagination.Config) System {
	logger = logger.With("system", "universities")

	g := attachments.NewGeneric[University, *University](
		store,
		Table,
		cfg,
		attachments.Errors{NotFound: ErrNotFound, Duplicate: ErrDuplicate},
		logger,
	)

	return &repo{
		universities: attachments.NewSmallPhoto(g, files.NewService(photos, logger)),
		pagination:   cfg,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[University], error) {
	page.Normalize(r.pagination)
	filters.Search = page.Search

	p, err := r.universities.List(ctx, filters, page.Offset(), page.PageSize, page.Sort)
	if err != nil {
		return nil, err
	}

	result := pagination.Result(p, page)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*University, error) {
	return r.universities.Find(ctx, id)
}

func (r *repo) Create(ctx context.Context, cmd Command, uploads Uploads) (*University, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	u := cmd.university()
	u.CreatedAt = time.Now().UTC()

	if result := r.universities.Create(ctx, u, uploads.Photo, uploads.SmallPhoto); !result.IsSuccess() {
		return nil, result.Err()
	}
	return u, nil
}

func (r *repo) Update(ctx context.Context, id int64, cmd Command, uploads Uploads) (*University, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	existing, err := r.universities.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if result := r.universities.Update(ctx, cmd.university(), existing, uploads.Photo, uploads.SmallPhoto); !result.IsSuccess() {
		return nil, result.Err()
	}
	return existing, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	existing, err := r.universities.Find(ctx, id)
	if err != nil {
		return err
	}
	return r.universities.Delete(ctx, existing)
}

func (r *repo) Photo(ctx context.Context, id int64) (*Photo, error) {
	return value(r.universities.Photo(ctx, id))
}

func (r *repo) SmallPhoto(ctx context.Context, id int64) (*Photo, error) {
	return value(r.universities.SmallPhoto(ctx, id))
}

func value(result files.Result[blobs.UniversityPhoto]) (*Photo, error) {
	if !result.IsSuccess() {
		return nil, result.Err()
	}
	return result.Value(), nil
}
