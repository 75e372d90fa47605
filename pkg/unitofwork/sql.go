package unitofwork

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/JaimeStill/scholar/pkg/pagination"
	"github.com/JaimeStill/scholar/pkg/query"
	"github.com/JaimeStill/scholar/pkg/repository"
)

type operation func(ctx context.Context, tx *sql.Tx) error

type sqlStore struct {
	db *sql.DB
}

// NewSQL creates a Store over db. db is expected to use the pgx driver.
func NewSQL(db *sql.DB) Store {
	return &sqlStore{db: db}
}

func (s *sqlStore) Begin() UnitOfWork {
	return &sqlUnit{db: s.db}
}

func (s *sqlStore) CanConnect(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

type sqlUnit struct {
	db  *sql.DB
	mu  sync.Mutex
	ops []operation
}

func (u *sqlUnit) stage(op operation) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.ops = append(u.ops, op)
}

func (u *sqlUnit) Commit(ctx context.Context) error {
	u.mu.Lock()
	ops := u.ops
	u.ops = nil
	u.mu.Unlock()

	if len(ops) == 0 {
		return nil
	}

	_, err := repository.WithTx(ctx, u.db, func(tx *sql.Tx) (struct{}, error) {
		for _, op := range ops {
			if err := op(ctx, tx); err != nil {
				return struct{}{}, err
			}
		}
		return struct{}{}, nil
	})
	return err
}

type sqlSet[T any, ID comparable] struct {
	unit  *sqlUnit
	table *Table[T, ID]
}

func (s *sqlSet[T, ID]) Find(ctx context.Context, id ID) (*T, error) {
	q, args := s.table.builder().BuildSingle(s.table.Key, id)

	item, err := repository.QueryOne(ctx, s.unit.db, q, args, s.table.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", s.table.Name(), err)
	}
	return &item, nil
}

func (s *sqlSet[T, ID]) Any(ctx context.Context, id ID) (bool, error) {
	q, args := s.table.builder().BuildExists(s.table.Key, id)

	var exists bool
	if err := s.unit.db.QueryRowContext(ctx, q, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists %s: %w", s.table.Name(), err)
	}
	return exists, nil
}

func (s *sqlSet[T, ID]) Add(entity *T) {
	s.unit.stage(func(ctx context.Context, tx *sql.Tx) error {
		cols := s.table.Projection.ColumnNames()
		vals := s.table.Values(entity)

		if !s.table.Generated {
			q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
				s.table.Name(), strings.Join(cols, ", "), placeholders(1, len(cols)))
			if _, err := tx.ExecContext(ctx, q, vals...); err != nil {
				return fmt.Errorf("insert %s: %w", s.table.Name(), err)
			}
			return nil
		}

		k := s.table.keyIndex()
		cols = append(cols[:k:k], cols[k+1:]...)
		vals = append(vals[:k:k], vals[k+1:]...)

		q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			s.table.Name(), strings.Join(cols, ", "), placeholders(1, len(cols)), s.table.keyColumn())

		var id ID
		if err := tx.QueryRowContext(ctx, q, vals...).Scan(&id); err != nil {
			return fmt.Errorf("insert %s: %w", s.table.Name(), err)
		}
		s.table.SetKey(entity, id)
		return nil
	})
}

func (s *sqlSet[T, ID]) Update(entity *T) {
	s.unit.stage(func(ctx context.Context, tx *sql.Tx) error {
		vals := s.table.Values(entity)
		k := s.table.keyIndex()

		idx := make([]int, 0, len(vals)-1)
		for i := range vals {
			if i != k {
				idx = append(idx, i)
			}
		}
		return s.update(ctx, tx, entity, vals, idx)
	})
}

func (s *sqlSet[T, ID]) Attach(entity *T) {
	snapshot := s.table.Values(entity)

	s.unit.stage(func(ctx context.Context, tx *sql.Tx) error {
		vals := s.table.Values(entity)
		idx := changed(snapshot, vals)
		if len(idx) == 0 {
			return nil
		}
		return s.update(ctx, tx, entity, vals, idx)
	})
}

func (s *sqlSet[T, ID]) Remove(entity *T) {
	id := s.table.KeyOf(entity)

	s.unit.stage(func(ctx context.Context, tx *sql.Tx) error {
		q := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", s.table.Name(), s.table.keyColumn())
		if err := repository.ExecExpectOne(ctx, tx, q, id); err != nil {
			return fmt.Errorf("delete %s: %w", s.table.Name(), err)
		}
		return nil
	})
}

func (s *sqlSet[T, ID]) Query(predicate Predicate[T]) pagination.Queryable[T] {
	return &sqlQuery[T, ID]{set: s, predicate: predicate}
}

func (s *sqlSet[T, ID]) update(ctx context.Context, tx *sql.Tx, entity *T, vals []any, idx []int) error {
	cols := s.table.Projection.ColumnNames()
	key := s.table.keyColumn()

	assignments := make([]string, 0, len(idx))
	args := make([]any, 0, len(idx)+1)
	for _, i := range idx {
		if cols[i] == key {
			continue
		}
		args = append(args, vals[i])
		assignments = append(assignments, fmt.Sprintf("%s = $%d", cols[i], len(args)))
	}

	if len(assignments) == 0 {
		return nil
	}

	args = append(args, s.table.KeyOf(entity))
	q := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		s.table.Name(), strings.Join(assignments, ", "), key, len(args))

	if err := repository.ExecExpectOne(ctx, tx, q, args...); err != nil {
		return fmt.Errorf("update %s: %w", s.table.Name(), err)
	}
	return nil
}

type sqlQuery[T any, ID comparable] struct {
	set       *sqlSet[T, ID]
	predicate Predicate[T]
}

func (q *sqlQuery[T, ID]) builder() *query.Builder {
	b := q.set.table.builder()
	if q.predicate != nil {
		b = q.predicate.Apply(b)
	}
	return b
}

func (q *sqlQuery[T, ID]) Count(ctx context.Context) (int, error) {
	stmt, args := q.builder().BuildCount()

	var total int
	if err := q.set.unit.db.QueryRowContext(ctx, stmt, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count %s: %w", q.set.table.Name(), err)
	}
	return total, nil
}

func (q *sqlQuery[T, ID]) Fetch(ctx context.Context, sort []query.SortField, skip, take int) ([]T, error) {
	stmt, args := q.builder().OrderByFields(sort).BuildRange(skip, take)

	items, err := repository.QueryMany(ctx, q.set.unit.db, stmt, args, q.set.table.Scan)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", q.set.table.Name(), err)
	}
	return items, nil
}

func placeholders(start, n int) string {
	p := make([]string, n)
	for i := range p {
		p[i] = fmt.Sprintf("$%d", start+i)
	}
	return strings.Join(p, ", ")
}
