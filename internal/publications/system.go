package publications

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

// Manuscript is the PDF blob of a publication.
type Manuscript = blobs.Blob[blobs.PublicationFile]

// System defines the publication management operations.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Publication], error)
	Find(ctx context.Context, id int64) (*Publication, error)
	Create(ctx context.Context, cmd Command, file files.Upload) (*Publication, error)
	Update(ctx context.Context, id int64, cmd Command, file files.Upload) (*Publication, error)
	Delete(ctx context.Context, id int64) error
	File(ctx context.Context, id int64) (*Manuscript, error)
}

type repo struct {
	publications *attachments.File[Publication, *Publication, int64, blobs.PublicationFile]
	logger       *slog.Logger
	pagination   pagination.Config
}

// New creates the publication system over the application store and the manuscript blobs.
func New(store unitofwork.Store, manuscripts blobs.Store[blobs.PublicationFile], logger *slog.Logger, cfg pagination.Config) System {
	logger = logger.With("system", "publications")

	g := attachments.NewGeneric[Publication, *Publication](
		store,
		Table,
		cfg,
		attachments.Errors{NotFound: ErrNotFound, Duplicate: ErrDuplicate},
		logger,
	)

	return &repo{
		publications: attachments.NewFile(g, files.NewService(manuscripts, logger)),
		logger:       logger,
		pagination:   cfg,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Publication], error) {
	page.Normalize(r.pagination)
	filters.Search = page.Search

	p, err := r.publications.List(ctx, filters, page.Offset(), page.PageSize, page.Sort)
	if err != nil {
		return nil, err
	}

	result := pagination.Result(p, page)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*Publication, error) {
	return r.publications.Find(ctx, id)
}

func (r *repo) Create(ctx context.Context, cmd Command, file files.Upload) (*Publication, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	p := cmd.publication()
	p.CreatedAt = time.Now().UTC()
	p.PageCount = r.pageCount(file)

	if result := r.publications.Create(ctx, p, file); !result.IsSuccess() {
		return nil, result.Err()
	}
	return p, nil
}

func (r *repo) Update(ctx context.Context, id int64, cmd Command, file files.Upload) (*Publication, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	existing, err := r.publications.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	model := cmd.publication()
	model.PageCount = existing.PageCount
	if file != nil {
		model.PageCount = r.pageCount(file)
	}

	if result := r.publications.Update(ctx, model, existing, file); !result.IsSuccess() {
		return nil, result.Err()
	}
	return existing, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	existing, err := r.publications.Find(ctx, id)
	if err != nil {
		return err
	}
	return r.publications.Delete(ctx, existing)
}

func (r *repo) File(ctx context.Context, id int64) (*Manuscript, error) {
	result := r.publications.File(ctx, id)
	if !result.IsSuccess() {
		return nil, result.Err()
	}
	return result.Value(), nil
}

// pageCount reads the page count of file. Unreadable manuscripts are still
// stored; the extension check is left to the file service.
func (r *repo) pageCount(file files.Upload) *int {
	if file == nil || files.ValidatorFor(files.Document).Validate(file) != nil {
		return nil
	}

	count, err := extractPageCount(file)
	if err != nil {
		r.logger.Warn("failed to extract pdf page count", "filename", file.Filename(), "error", err)
		return nil
	}
	return count
}
