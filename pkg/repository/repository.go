// Package repository provides helpers shared by database/sql backed stores:
// scanning, transactions and error translation.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateKey is returned by stores that detect a key collision themselves.
var ErrDuplicateKey = errors.New("duplicate key")

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// ScanFunc reads one T from a row.
type ScanFunc[T any] func(Scanner) (T, error)

// Querier is satisfied by *sql.DB and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Executor is satisfied by *sql.DB and *sql.Tx.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// QueryOne runs q and scans the single resulting row.
func QueryOne[T any](ctx context.Context, db Querier, q string, args []any, scan ScanFunc[T]) (T, error) {
	return scan(db.QueryRowContext(ctx, q, args...))
}

// QueryMany runs q and scans every resulting row. The result is never nil.
func QueryMany[T any](ctx context.Context, db Querier, q string, args []any, scan ScanFunc[T]) ([]T, error) {
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// WithTx runs fn inside a transaction, committing on success and rolling back otherwise.
func WithTx[T any](ctx context.Context, db *sql.DB, fn func(*sql.Tx) (T, error)) (T, error) {
	var zero T

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := fn(tx)
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(); err != nil {
		return zero, fmt.Errorf("commit transaction: %w", err)
	}

	return result, nil
}

// ExecExpectOne runs q and returns sql.ErrNoRows unless exactly one row was affected.
func ExecExpectOne(ctx context.Context, db Executor, q string, args ...any) error {
	result, err := db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n != 1 {
		return sql.ErrNoRows
	}
	return nil
}

// MapError translates store errors into domain errors. sql.ErrNoRows maps to notFound;
// unique violations (PostgreSQL 23505 or ErrDuplicateKey) map to duplicate.
// Anything else is returned unchanged.
func MapError(err, notFound, duplicate error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}

	if errors.Is(err, ErrDuplicateKey) {
		return duplicate
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return duplicate
	}

	return err
}
