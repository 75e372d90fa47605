package api_test

import (
	"testing"

	"github.com/JaimeStill/scholar/internal/authors"
	"github.com/JaimeStill/scholar/internal/publications"
	"github.com/JaimeStill/scholar/internal/universities"
	"github.com/JaimeStill/scholar/internal/users"
	"github.com/JaimeStill/scholar/pkg/query"
)

// Every projected view must be sortable in memory as well as in SQL.
func TestTables_AccessorsMatchProjection(t *testing.T) {
	tests := []struct {
		name       string
		projection *query.ProjectionMap
		lookup     func(string) bool
	}{
		{
			name:       "authors",
			projection: authors.Table.Projection,
			lookup: func(view string) bool {
				_, ok := authors.Table.Accessors.Lookup(view)
				return ok
			},
		},
		{
			name:       "universities",
			projection: universities.Table.Projection,
			lookup: func(view string) bool {
				_, ok := universities.Table.Accessors.Lookup(view)
				return ok
			},
		},
		{
			name:       "publications",
			projection: publications.Table.Projection,
			lookup: func(view string) bool {
				_, ok := publications.Table.Accessors.Lookup(view)
				return ok
			},
		},
		{
			name:       "users",
			projection: users.Table.Projection,
			lookup: func(view string) bool {
				_, ok := users.Table.Accessors.Lookup(view)
				return ok
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, view := range tt.projection.Views() {
				if !tt.lookup(view) {
					t.Errorf("view %q has no accessor", view)
				}
			}
		})
	}
}
