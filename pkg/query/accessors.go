package query

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// Compare orders two values of T, returning a negative number, zero, or a positive number.
type Compare[T any] func(a, b T) int

// Accessors is the in-memory counterpart of a ProjectionMap: a whitelist of sortable
// fields for T, registered once per type.
type Accessors[T any] struct {
	fields map[string]Compare[T]
}

// NewAccessors creates an empty accessor whitelist.
func NewAccessors[T any]() *Accessors[T] {
	return &Accessors[T]{fields: make(map[string]Compare[T])}
}

// Add registers a comparison under a field name. Names match case-insensitively.
func (a *Accessors[T]) Add(name string, compare Compare[T]) *Accessors[T] {
	a.fields[strings.ToLower(name)] = compare
	return a
}

// Lookup returns the comparison registered for name.
func (a *Accessors[T]) Lookup(name string) (Compare[T], bool) {
	if a == nil {
		return nil, false
	}
	c, ok := a.fields[strings.ToLower(name)]
	return c, ok
}

// Sort orders items in place by fields, in the order given. Unknown fields are skipped.
// The sort is stable, so items equal on every known key keep their relative order.
func (a *Accessors[T]) Sort(items []T, fields []SortField) {
	keys := make([]Compare[T], 0, len(fields))
	for _, f := range fields {
		c, ok := a.Lookup(f.Field)
		if !ok {
			continue
		}
		if f.Descending {
			asc := c
			c = func(x, y T) int { return asc(y, x) }
		}
		keys = append(keys, c)
	}

	if len(keys) == 0 {
		return
	}

	slices.SortStableFunc(items, func(x, y T) int {
		for _, k := range keys {
			if r := k(x, y); r != 0 {
				return r
			}
		}
		return 0
	})
}

// By builds a comparison over an ordered field.
func By[T any, V cmp.Ordered](get func(T) V) Compare[T] {
	return func(a, b T) int {
		return cmp.Compare(get(a), get(b))
	}
}

// ByFold builds a case-insensitive comparison over a string field.
func ByFold[T any](get func(T) string) Compare[T] {
	return func(a, b T) int {
		return cmp.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
	}
}

// ByTime builds a comparison over a time field.
func ByTime[T any](get func(T) time.Time) Compare[T] {
	return func(a, b T) int {
		return get(a).Compare(get(b))
	}
}

// ByOptional builds a comparison over a nullable ordered field. Nil sorts first.
func ByOptional[T any, V cmp.Ordered](get func(T) *V) Compare[T] {
	return func(a, b T) int {
		x, y := get(a), get(b)
		switch {
		case x == nil && y == nil:
			return 0
		case x == nil:
			return -1
		case y == nil:
			return 1
		default:
			return cmp.Compare(*x, *y)
		}
	}
}
