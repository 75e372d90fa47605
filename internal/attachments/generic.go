package attachments

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/scholar/pkg/pagination"
	"github.com/JaimeStill/scholar/pkg/repository"
	"github.com/JaimeStill/scholar/pkg/unitofwork"
)

// Errors are the domain sentinels a repository reports for missing and colliding records.
type Errors struct {
	NotFound  error
	Duplicate error
}

// Generic is the owner-record repository without attachments. The attachment
// repositories embed it.
type Generic[T any, P Owner[T], ID comparable] struct {
	store      unitofwork.Store
	table      *unitofwork.Table[T, ID]
	pagination pagination.Config
	errors     Errors
	logger     *slog.Logger
}

// NewGeneric creates a repository for table within store.
func NewGeneric[T any, P Owner[T], ID comparable](
	store unitofwork.Store,
	table *unitofwork.Table[T, ID],
	cfg pagination.Config,
	errs Errors,
	logger *slog.Logger,
) *Generic[T, P, ID] {
	return &Generic[T, P, ID]{
		store:      store,
		table:      table,
		pagination: cfg,
		errors:     errs,
		logger:     logger.With("table", table.Name()),
	}
}

func (g *Generic[T, P, ID]) mapError(err error) error {
	return repository.MapError(err, g.errors.NotFound, g.errors.Duplicate)
}

// Find returns the record with the given id or the NotFound sentinel.
func (g *Generic[T, P, ID]) Find(ctx context.Context, id ID) (*T, error) {
	item, err := unitofwork.For(g.store.Begin(), g.table).Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, g.errors.NotFound
	}
	return item, nil
}

func (g *Generic[T, P, ID]) Exists(ctx context.Context, id ID) (bool, error) {
	return unitofwork.For(g.store.Begin(), g.table).Any(ctx, id)
}

// List returns one page of records matching predicate. A nil predicate matches everything.
func (g *Generic[T, P, ID]) List(ctx context.Context, predicate unitofwork.Predicate[T], skip, take int, sort string) (pagination.Page[T], error) {
	source := unitofwork.For(g.store.Begin(), g.table).Query(predicate)

	page, err := pagination.Apply(ctx, g.pagination, source, skip, take, sort)
	if err != nil {
		return page, fmt.Errorf("list %s: %w", g.table.Name(), err)
	}
	return page, nil
}

// Create inserts model. Generated keys are written back to model.
func (g *Generic[T, P, ID]) Create(ctx context.Context, model *T) error {
	return g.create(ctx, model)
}

// Update merges model onto existing and writes the columns that changed.
func (g *Generic[T, P, ID]) Update(ctx context.Context, model, existing *T) error {
	return g.update(ctx, model, existing, nil)
}

// Delete removes model.
func (g *Generic[T, P, ID]) Delete(ctx context.Context, model *T) error {
	uow := g.store.Begin()
	unitofwork.For(uow, g.table).Remove(model)

	if err := uow.Commit(ctx); err != nil {
		return g.mapError(err)
	}

	g.logger.Info("record deleted", "id", g.table.KeyOf(model))
	return nil
}

func (g *Generic[T, P, ID]) create(ctx context.Context, model *T) error {
	touch(P(model))

	uow := g.store.Begin()
	unitofwork.For(uow, g.table).Add(model)

	if err := uow.Commit(ctx); err != nil {
		return g.mapError(err)
	}

	g.logger.Info("record created", "id", g.table.KeyOf(model))
	return nil
}

// update attaches existing, merges model onto it and runs link before committing.
// A link error abandons the unit of work.
func (g *Generic[T, P, ID]) update(ctx context.Context, model, existing *T, link func() error) error {
	uow := g.store.Begin()
	unitofwork.For(uow, g.table).Attach(existing)

	P(existing).Merge(model)

	if link != nil {
		if err := link(); err != nil {
			return err
		}
	}

	touch(P(existing))

	if err := uow.Commit(ctx); err != nil {
		return g.mapError(err)
	}

	g.logger.Info("record updated", "id", g.table.KeyOf(existing))
	return nil
}
