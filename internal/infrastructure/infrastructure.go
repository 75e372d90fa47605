// Package infrastructure provides core service initialization for application startup.
// It assembles the logger, the relational stores and the document store that domain
// systems require.
package infrastructure

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/scholar/internal/config"
	"github.com/JaimeStill/scholar/pkg/database"
	"github.com/JaimeStill/scholar/pkg/docstore"
	"github.com/JaimeStill/scholar/pkg/lifecycle"
	"github.com/JaimeStill/scholar/pkg/logging"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle     *lifecycle.Coordinator
	Logger        *slog.Logger
	Database      database.System
	AdminDatabase database.System
	DocStore      docstore.System
}

// Probe is a named connectivity check run by readiness endpoints.
type Probe struct {
	Name  string
	Check func(ctx context.Context) error
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging, nil)

	db, err := database.New("database", &cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	admin, err := database.New("admin_database", &cfg.AdminDatabase, logger)
	if err != nil {
		return nil, fmt.Errorf("admin database init failed: %w", err)
	}

	docs, err := docstore.New(&cfg.DocStore, logger)
	if err != nil {
		return nil, fmt.Errorf("docstore init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle:     lc,
		Logger:        logger,
		Database:      db,
		AdminDatabase: admin,
		DocStore:      docs,
	}, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.AdminDatabase.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("admin database start failed: %w", err)
	}
	if err := i.DocStore.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("docstore start failed: %w", err)
	}
	return nil
}

// Probes returns the connectivity checks of every store.
func (i *Infrastructure) Probes() []Probe {
	return []Probe{
		{Name: "database", Check: i.Database.CanConnect},
		{Name: "admin_database", Check: i.AdminDatabase.CanConnect},
		{Name: "docstore", Check: i.DocStore.CanConnect},
	}
}
