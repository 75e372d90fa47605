package unitofwork

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/JaimeStill/scholar/pkg/query"
	"github.com/JaimeStill/scholar/pkg/repository"
)

// Table registers how T is stored: its column whitelist, its key, and how rows
// are scanned and written. Values must return one value per projected column, in
// projection order, and Scan must read them in the same order.
type Table[T any, ID comparable] struct {
	Projection *query.ProjectionMap
	Key        string
	KeyOf      func(*T) ID
	SetKey     func(*T, ID)
	Generated  bool

	Scan   repository.ScanFunc[T]
	Values func(*T) []any

	Accessors   *query.Accessors[T]
	DefaultSort query.SortField
}

// Name returns the qualified table name.
func (t *Table[T, ID]) Name() string {
	return t.Projection.Name()
}

func (t *Table[T, ID]) keyColumn() string {
	col, ok := t.Projection.ColumnName(t.Key)
	if !ok {
		panic(fmt.Sprintf("unitofwork: key %q not projected by %s", t.Key, t.Name()))
	}
	return col
}

func (t *Table[T, ID]) keyIndex() int {
	return slices.Index(t.Projection.ColumnNames(), t.keyColumn())
}

func (t *Table[T, ID]) builder() *query.Builder {
	if t.DefaultSort.Field == "" {
		return query.NewBuilder(t.Projection)
	}
	return query.NewBuilder(t.Projection, t.DefaultSort)
}

// changed returns the indexes of the columns whose values differ between before and after.
func changed(before, after []any) []int {
	var idx []int
	for i := range after {
		if i >= len(before) || !reflect.DeepEqual(before[i], after[i]) {
			idx = append(idx, i)
		}
	}
	return idx
}
