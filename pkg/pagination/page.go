package pagination

import (
	"context"
	"fmt"

	"github.com/JaimeStill/scholar/pkg/query"
)

// Page is a bounded slice of a query's results plus the query's total match count.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"total_count"`
}

// Queryable is a source of T that can be counted and fetched in ordered ranges.
// Store-backed sources run Count and Fetch as independent queries; in-memory
// sources run both against the same materialized slice.
type Queryable[T any] interface {
	Count(ctx context.Context) (int, error)
	Fetch(ctx context.Context, sort []query.SortField, skip, take int) ([]T, error)
}

// Apply returns one page of source. A nil source or a non-positive take yields an
// empty page. take is clamped to cfg.MaxPageSize and sort is parsed with
// query.ParseSortFields; fields the source does not recognize are ignored.
func Apply[T any](ctx context.Context, cfg Config, source Queryable[T], skip, take int, sort string) (Page[T], error) {
	empty := Page[T]{Items: []T{}}

	if source == nil || take <= 0 {
		return empty, nil
	}

	if cfg.MaxPageSize > 0 && take > cfg.MaxPageSize {
		take = cfg.MaxPageSize
	}
	if skip < 0 {
		skip = 0
	}

	total, err := source.Count(ctx)
	if err != nil {
		return empty, fmt.Errorf("count: %w", err)
	}

	items, err := source.Fetch(ctx, query.ParseSortFields(sort), skip, take)
	if err != nil {
		return empty, fmt.Errorf("fetch: %w", err)
	}

	if items == nil {
		items = []T{}
	}

	return Page[T]{Items: items, TotalCount: total}, nil
}

// Slice is an in-memory Queryable over an already materialized sequence.
type Slice[T any] struct {
	items     []T
	accessors *query.Accessors[T]
}

// NewSlice wraps items. accessors whitelists the sortable fields; nil disables sorting.
func NewSlice[T any](items []T, accessors *query.Accessors[T]) *Slice[T] {
	return &Slice[T]{items: items, accessors: accessors}
}

func (s *Slice[T]) Count(ctx context.Context) (int, error) {
	return len(s.items), nil
}

func (s *Slice[T]) Fetch(ctx context.Context, sort []query.SortField, skip, take int) ([]T, error) {
	ordered := append([]T(nil), s.items...)
	if s.accessors != nil {
		s.accessors.Sort(ordered, sort)
	}

	if skip >= len(ordered) {
		return []T{}, nil
	}

	end := min(skip+take, len(ordered))
	return ordered[skip:end], nil
}
