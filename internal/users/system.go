package users

import (
	"context"
	"log/slog"
	"time"

	"github.com/JaimeStill/scholar/internal/attachments"
	"github.com/JaimeStill/scholar/internal/blobs"
	"github.com/JaimeStill/scholar/internal/files"
	"github.com/JaimeStill/scholar/pkg/pagination"
	"github.com/JaimeStill/scholar/pkg/unitofwork"
	"github.com/google/uuid"
)

// Photo is the profile photo blob of a user.
type Photo = blobs.Blob[blobs.UserPhoto]

// System defines the user management operations.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[User], error)
	Find(ctx context.Context, id uuid.UUID) (*User, error)
	Create(ctx context.Context, cmd Command, photo files.Upload) (*User, error)
	Update(ctx context.Context, id uuid.UUID, cmd Command, photo files.Upload) (*User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Photo(ctx context.Context, id uuid.UUID) (*Photo, error)
}

type repo struct {
	users      *attachments.Photo[User, *User, uuid.UUID, blobs.UserPhoto]
	pagination pagination.Config
}

// New creates the user system over the admin store and the user photo blobs.
func New(store unitofwork.Store, photos blobs.Store[blobs.UserPhoto], logger *slog.Logger, cfg pagination.Config) System {
	logger = logger.With("system", "users")

	g := attachments.NewGeneric[User, *User](
		store,
		Table,
		cfg,
		attachments.Errors{NotFound: ErrNotFound, Duplicate: ErrDuplicate},
		logger,
	)

	return &repo{
		users:      attachments.NewPhoto(g, files.NewService(photos, logger)),
		pagination: cfg,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[User], error) {
	page.Normalize(r.pagination)
	filters.Search = page.Search

	p, err := r.users.List(ctx, filters, page.Offset(), page.PageSize, page.Sort)
	if err != nil {
		return nil, err
	}

	result := pagination.Result(p, page)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*User, error) {
	return r.users.Find(ctx, id)
}

func (r *repo) Create(ctx context.Context, cmd Command, photo files.Upload) (*User, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	u := cmd.user()
	u.ID = uuid.New()
	u.CreatedAt = time.Now().UTC()

	if result := r.users.Create(ctx, u, photo); !result.IsSuccess() {
		return nil, result.Err()
	}
	return u, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd Command, photo files.Upload) (*User, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	existing, err := r.users.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if result := r.users.Update(ctx, cmd.user(), existing, photo); !result.IsSuccess() {
		return nil, result.Err()
	}
	return existing, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := r.users.Find(ctx, id)
	if err != nil {
		return err
	}
	return r.users.Delete(ctx, existing)
}

func (r *repo) Photo(ctx context.Context, id uuid.UUID) (*Photo, error) {
	result := r.users.Photo(ctx, id)
	if !result.IsSuccess() {
		return nil, result.Err()
	}
	return result.Value(), nil
}
