// Package docstore provides MongoDB access for single-document records.
// Writes are applied immediately; there is no unit of work on this side.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/JaimeStill/scholar/pkg/lifecycle"
)

// ErrNotReady is returned by readiness probes when the server cannot be reached.
var ErrNotReady = errors.New("document store not ready")

// System exposes the configured database and its lifecycle.
type System interface {
	Database() *mongo.Database
	CanConnect(ctx context.Context) error
	Start(lc *lifecycle.Coordinator) error
}

type docstore struct {
	client *mongo.Client
	cfg    *Config
	logger *slog.Logger
}

// New configures a client for cfg. The driver connects lazily; Start verifies the server.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnTimeoutDuration()).
		SetServerSelectionTimeout(cfg.ConnTimeoutDuration())

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, fmt.Errorf("connect docstore: %w", err)
	}

	return &docstore{
		client: client,
		cfg:    cfg,
		logger: logger.With("system", "docstore"),
	}, nil
}

func (d *docstore) Database() *mongo.Database {
	return d.client.Database(d.cfg.Database)
}

func (d *docstore) CanConnect(ctx context.Context) error {
	if err := d.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %w", ErrNotReady, err)
	}
	return nil
}

// Start pings the server during startup and disconnects on shutdown.
func (d *docstore) Start(lc *lifecycle.Coordinator) error {
	d.logger.Info("starting docstore connection", "database", d.cfg.Database)

	lc.OnStartup(func() {
		ctx, cancel := context.WithTimeout(lc.Context(), d.cfg.ConnTimeoutDuration())
		defer cancel()

		if err := d.CanConnect(ctx); err != nil {
			d.logger.Error("docstore ping failed", "error", err)
			return
		}
		d.logger.Info("docstore connection established")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		d.logger.Info("closing docstore connection")

		ctx, cancel := context.WithTimeout(context.Background(), d.cfg.ConnTimeoutDuration())
		defer cancel()

		if err := d.client.Disconnect(ctx); err != nil {
			d.logger.Error("docstore disconnect failed", "error", err)
			return
		}
		d.logger.Info("docstore connection closed")
	})

	return nil
}
