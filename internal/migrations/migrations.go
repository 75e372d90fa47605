// Package migrations carries the embedded schema of the application and admin stores
// and applies it with golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Target selects which store a schema belongs to.
type Target string

const (
	App   Target = "app"
	Admin Target = "admin"
)

//go:embed app/*.sql admin/*.sql
var schemas embed.FS

// Source returns the migration files of target.
func Source(target Target) (fs.FS, error) {
	switch target {
	case App, Admin:
		return fs.Sub(schemas, string(target))
	default:
		return nil, fmt.Errorf("unknown migration target %q", target)
	}
}

// Runner applies the schema of one target to one database.
type Runner struct {
	m      *migrate.Migrate
	target Target
	logger *slog.Logger
}

// New prepares a runner over db. Close releases the connection it holds; db itself stays open.
func New(db *sql.DB, target Target, logger *slog.Logger) (*Runner, error) {
	fsys, err := Source(target)
	if err != nil {
		return nil, err
	}

	src, err := iofs.New(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("open %s migrations: %w", target, err)
	}

	driver, err := pgx.WithInstance(db, &pgx.Config{MigrationsTable: "schema_migrations"})
	if err != nil {
		return nil, fmt.Errorf("%s migration driver: %w", target, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		return nil, fmt.Errorf("%s migrate init: %w", target, err)
	}

	return &Runner{
		m:      m,
		target: target,
		logger: logger.With("migrations", string(target)),
	}, nil
}

// Up applies every pending migration.
func (r *Runner) Up() error {
	return r.run("up", r.m.Up)
}

// Down rolls back every applied migration.
func (r *Runner) Down() error {
	return r.run("down", r.m.Down)
}

// Steps applies n migrations forward, or rolls back -n when n is negative.
func (r *Runner) Steps(n int) error {
	return r.run(fmt.Sprintf("steps %d", n), func() error { return r.m.Steps(n) })
}

// Version reports the applied version. A store with no migrations reports 0.
func (r *Runner) Version() (version uint, dirty bool, err error) {
	version, dirty, err = r.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func (r *Runner) Close() error {
	srcErr, dbErr := r.m.Close()
	return errors.Join(srcErr, dbErr)
}

func (r *Runner) run(op string, fn func() error) error {
	err := fn()
	if errors.Is(err, migrate.ErrNoChange) {
		r.logger.Info("schema up to date", "op", op)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s migrate %s: %w", r.target, op, err)
	}

	version, _, _ := r.Version()
	r.logger.Info("schema migrated", "op", op, "version", version)
	return nil
}
