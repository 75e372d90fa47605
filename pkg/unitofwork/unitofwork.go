// Package unitofwork stages inserts, updates and deletes against a relational store
// and applies them together on Commit.
//
// A Store is long-lived and shared. A UnitOfWork is created per request with
// Store.Begin and must not be shared between requests. Sets are typed views over
// a unit of work, obtained with For.
package unitofwork

import (
	"context"
	"fmt"

	"github.com/JaimeStill/scholar/pkg/pagination"
	"github.com/JaimeStill/scholar/pkg/query"
)

// Store creates units of work over one relational database.
type Store interface {
	Begin() UnitOfWork
	CanConnect(ctx context.Context) error
}

// UnitOfWork collects staged operations from its sets. Commit applies them in
// staging order inside a single transaction and clears the queue; on error
// nothing is applied.
type UnitOfWork interface {
	Commit(ctx context.Context) error
}

// Predicate filters a query. Apply contributes SQL conditions and Match evaluates
// the same filter in memory; both must agree.
type Predicate[T any] interface {
	Apply(b *query.Builder) *query.Builder
	Match(item T) bool
}

// Set is a typed view of one table within a unit of work.
//
// Reads (Find, Any, Query) see committed data only. Add, Update, Attach and Remove
// stage work that runs on Commit. Find returns nil, nil when the key is absent.
// Update and Remove of an absent key fail the commit with sql.ErrNoRows; Add of an
// existing key fails it with a duplicate-key error.
type Set[T any, ID comparable] interface {
	Find(ctx context.Context, id ID) (*T, error)
	Any(ctx context.Context, id ID) (bool, error)
	Add(entity *T)
	Update(entity *T)
	Attach(entity *T)
	Remove(entity *T)
	Query(predicate Predicate[T]) pagination.Queryable[T]
}

// For returns the Set for table within uow. It panics if uow was not created by
// NewSQL or NewMemory.
func For[T any, ID comparable](uow UnitOfWork, table *Table[T, ID]) Set[T, ID] {
	switch u := uow.(type) {
	case *sqlUnit:
		return &sqlSet[T, ID]{unit: u, table: table}
	case *memoryUnit:
		return &memorySet[T, ID]{unit: u, table: table}
	default:
		panic(fmt.Sprintf("unitofwork: unsupported unit of work %T", uow))
	}
}
