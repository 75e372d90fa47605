package api

import (
	"log/slog"

	"github.com/JaimeStill/scholar/internal/blobs"
	"github.com/JaimeStill/scholar/internal/config"
	"github.com/JaimeStill/scholar/internal/files"
	"github.com/JaimeStill/scholar/internal/infrastructure"
	"github.com/JaimeStill/scholar/pkg/lifecycle"
	"github.com/JaimeStill/scholar/pkg/pagination"
	"github.com/JaimeStill/scholar/pkg/unitofwork"
)

// Blobs holds one blob store per attachment kind.
type Blobs struct {
	UserPhotos       blobs.Store[blobs.UserPhoto]
	AuthorPhotos     blobs.Store[blobs.AuthorPhoto]
	UniversityPhotos blobs.Store[blobs.UniversityPhoto]
	PublicationFiles blobs.Store[blobs.PublicationFile]
}

// Runtime carries the stores and settings the API domain systems are built from.
type Runtime struct {
	Logger     *slog.Logger
	Lifecycle  lifecycle.ReadinessChecker
	Store      unitofwork.Store
	AdminStore unitofwork.Store
	Blobs      Blobs
	Probes     []infrastructure.Probe
	Pagination pagination.Config
	Limits     files.Limits
}

// NewRuntime binds the API to the relational stores and the document store of infra.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	docs := infra.DocStore.Database()

	return &Runtime{
		Logger:     infra.Logger.With("module", "api"),
		Lifecycle:  infra.Lifecycle,
		Store:      unitofwork.NewSQL(infra.Database.Connection()),
		AdminStore: unitofwork.NewSQL(infra.AdminDatabase.Connection()),
		Blobs: Blobs{
			UserPhotos:       blobs.NewMongoStore[blobs.UserPhoto](docs),
			AuthorPhotos:     blobs.NewMongoStore[blobs.AuthorPhoto](docs),
			UniversityPhotos: blobs.NewMongoStore[blobs.UniversityPhoto](docs),
			PublicationFiles: blobs.NewMongoStore[blobs.PublicationFile](docs),
		},
		Probes:     infra.Probes(),
		Pagination: cfg.Pagination,
		Limits: files.Limits{
			MaxUploadSize: cfg.Storage.MaxUploadSizeBytes(),
			MemoryBuffer:  cfg.Storage.MemoryBufferBytes(),
		},
	}
}
