package unitofwork

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/JaimeStill/scholar/pkg/pagination"
	"github.com/JaimeStill/scholar/pkg/query"
	"github.com/JaimeStill/scholar/pkg/repository"
)

// rows is the type-erased view of one in-memory table used for commit rollback.
type rows interface {
	clone() rows
}

type memoryRows[T any, ID comparable] struct {
	order []ID
	items map[ID]T
	next  int64
}

func (r *memoryRows[T, ID]) clone() rows {
	return &memoryRows[T, ID]{
		order: slices.Clone(r.order),
		items: maps.Clone(r.items),
		next:  r.next,
	}
}

// MemoryStore is an in-memory Store with the same staging and commit semantics
// as the SQL store. Rows are stored by value and kept in insertion order.
type MemoryStore struct {
	mu     sync.RWMutex
	tables map[string]rows
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{tables: make(map[string]rows)}
}

func (s *MemoryStore) Begin() UnitOfWork {
	return &memoryUnit{store: s}
}

func (s *MemoryStore) CanConnect(ctx context.Context) error {
	return ctx.Err()
}

// table returns the rows for t, creating them on first use. Callers hold s.mu.
func table[T any, ID comparable](s *MemoryStore, t *Table[T, ID]) *memoryRows[T, ID] {
	if r, ok := s.tables[t.Name()]; ok {
		return r.(*memoryRows[T, ID])
	}
	r := &memoryRows[T, ID]{items: make(map[ID]T)}
	s.tables[t.Name()] = r
	return r
}

type memoryOp func(s *MemoryStore) error

type memoryUnit struct {
	store *MemoryStore
	mu    sync.Mutex
	ops   []memoryOp
}

func (u *memoryUnit) stage(op memoryOp) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.ops = append(u.ops, op)
}

func (u *memoryUnit) Commit(ctx context.Context) error {
	u.mu.Lock()
	ops := u.ops
	u.ops = nil
	u.mu.Unlock()

	if len(ops) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s := u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	backup := make(map[string]rows, len(s.tables))
	for name, r := range s.tables {
		backup[name] = r.clone()
	}

	for _, op := range ops {
		if err := op(s); err != nil {
			s.tables = backup
			return err
		}
	}
	return nil
}

type memorySet[T any, ID comparable] struct {
	unit  *memoryUnit
	table *Table[T, ID]
}

func (m *memorySet[T, ID]) Find(ctx context.Context, id ID) (*T, error) {
	s := m.unit.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.tables[m.table.Name()]
	if !ok {
		return nil, nil
	}

	item, ok := r.(*memoryRows[T, ID]).items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (m *memorySet[T, ID]) Any(ctx context.Context, id ID) (bool, error) {
	item, err := m.Find(ctx, id)
	return item != nil, err
}

func (m *memorySet[T, ID]) Add(entity *T) {
	m.unit.stage(func(s *MemoryStore) error {
		r := table(s, m.table)

		if m.table.Generated {
			r.next++
			id, ok := any(r.next).(ID)
			if !ok {
				return fmt.Errorf("insert %s: generated keys must be int64", m.table.Name())
			}
			m.table.SetKey(entity, id)
		}

		id := m.table.KeyOf(entity)
		if _, exists := r.items[id]; exists {
			return fmt.Errorf("insert %s: %w", m.table.Name(), repository.ErrDuplicateKey)
		}

		r.items[id] = *entity
		r.order = append(r.order, id)
		return nil
	})
}

func (m *memorySet[T, ID]) Update(entity *T) {
	m.unit.stage(func(s *MemoryStore) error {
		return m.replace(s, entity)
	})
}

// Attach writes the entity on commit only if a column changed since the call.
// Unlike the SQL store the whole row is replaced.
func (m *memorySet[T, ID]) Attach(entity *T) {
	snapshot := m.table.Values(entity)

	m.unit.stage(func(s *MemoryStore) error {
		if len(changed(snapshot, m.table.Values(entity))) == 0 {
			return nil
		}
		return m.replace(s, entity)
	})
}

func (m *memorySet[T, ID]) Remove(entity *T) {
	id := m.table.KeyOf(entity)

	m.unit.stage(func(s *MemoryStore) error {
		r := table(s, m.table)
		if _, ok := r.items[id]; !ok {
			return fmt.Errorf("delete %s: %w", m.table.Name(), sql.ErrNoRows)
		}

		delete(r.items, id)
		r.order = slices.DeleteFunc(r.order, func(k ID) bool { return k == id })
		return nil
	})
}

// Query reads the committed rows once, on the first Count or Fetch, so a page
// and its total come from the same state.
func (m *memorySet[T, ID]) Query(predicate Predicate[T]) pagination.Queryable[T] {
	return &memoryQuery[T]{
		source: sync.OnceValue(func() *pagination.Slice[T] {
			return pagination.NewSlice(m.snapshot(predicate), m.table.Accessors)
		}),
	}
}

func (m *memorySet[T, ID]) replace(s *MemoryStore, entity *T) error {
	r := table(s, m.table)
	id := m.table.KeyOf(entity)

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("update %s: %w", m.table.Name(), sql.ErrNoRows)
	}
	r.items[id] = *entity
	return nil
}

// snapshot materializes the matching committed rows in insertion order.
func (m *memorySet[T, ID]) snapshot(predicate Predicate[T]) []T {
	s := m.unit.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rr, ok := s.tables[m.table.Name()]
	if !ok {
		return nil
	}
	r := rr.(*memoryRows[T, ID])

	items := make([]T, 0, len(r.order))
	for _, id := range r.order {
		item := r.items[id]
		if predicate == nil || predicate.Match(item) {
			items = append(items, item)
		}
	}
	return items
}

type memoryQuery[T any] struct {
	source func() *pagination.Slice[T]
}

func (q *memoryQuery[T]) Count(ctx context.Context) (int, error) {
	return q.source().Count(ctx)
}

func (q *memoryQuery[T]) Fetch(ctx context.Context, sort []query.SortField, skip, take int) ([]T, error) {
	return q.source().Fetch(ctx, sort, skip, take)
}
