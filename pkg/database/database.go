// Package database opens and manages a PostgreSQL connection pool through database/sql.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/scholar/pkg/lifecycle"
)

// ErrNotReady is returned by readiness probes before the connection has been verified.
var ErrNotReady = errors.New("database not ready")

// System exposes a pooled connection and its lifecycle.
type System interface {
	Connection() *sql.DB
	CanConnect(ctx context.Context) error
	Start(lc *lifecycle.Coordinator) error
}

type database struct {
	conn   *sql.DB
	cfg    *Config
	logger *slog.Logger
}

// New opens a pool for cfg. The connection is not verified until Start.
// name distinguishes multiple databases in logs.
func New(name string, cfg *Config, logger *slog.Logger) (System, error) {
	conn, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		conn:   conn,
		cfg:    cfg,
		logger: logger.With("system", name),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

func (d *database) CanConnect(ctx context.Context) error {
	if err := d.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrNotReady, err)
	}
	return nil
}

// Start pings the database during startup and closes the pool on shutdown.
func (d *database) Start(lc *lifecycle.Coordinator) error {
	d.logger.Info("starting database connection", "host", d.cfg.Host, "name", d.cfg.Name)

	lc.OnStartup(func() {
		ctx, cancel := context.WithTimeout(lc.Context(), d.cfg.ConnTimeoutDuration())
		defer cancel()

		if err := d.conn.PingContext(ctx); err != nil {
			d.logger.Error("database ping failed", "error", err)
			return
		}
		d.logger.Info("database connection established")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		d.logger.Info("closing database connection")

		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close failed", "error", err)
			return
		}
		d.logger.Info("database connection closed")
	})

	return nil
}
