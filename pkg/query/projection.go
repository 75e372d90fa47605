// Package query provides SQL query construction over registered column projections
// along with the runtime sort parsing shared by SQL and in-memory sources.
package query

import "strings"

type column struct {
	name string
	view string
}

// ProjectionMap maps view field names onto the columns of a single table.
// The registered view names form the whitelist used for dynamic ordering.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []column
	index   map[string]int
}

// NewProjectionMap creates a ProjectionMap for schema.table under the given alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		index:  make(map[string]int),
	}
}

// Project registers a column under a view name. View names match case-insensitively.
func (p *ProjectionMap) Project(columnName, viewName string) *ProjectionMap {
	p.index[strings.ToLower(viewName)] = len(p.columns)
	p.columns = append(p.columns, column{name: columnName, view: viewName})
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Name returns the schema-qualified table name without its alias.
func (p *ProjectionMap) Name() string {
	return p.schema + "." + p.table
}

// Table returns the qualified table name with its alias.
func (p *ProjectionMap) Table() string {
	return p.Name() + " " + p.alias
}

// Column returns the alias-qualified column for a view name.
// Unknown view names are returned unchanged.
func (p *ProjectionMap) Column(viewName string) string {
	if col, ok := p.Lookup(viewName); ok {
		return col
	}
	return viewName
}

// Lookup returns the alias-qualified column for a view name and whether it is registered.
func (p *ProjectionMap) Lookup(viewName string) (string, bool) {
	i, ok := p.index[strings.ToLower(viewName)]
	if !ok {
		return "", false
	}
	return p.alias + "." + p.columns[i].name, true
}

// ColumnName returns the unqualified column for a view name.
func (p *ProjectionMap) ColumnName(viewName string) (string, bool) {
	i, ok := p.index[strings.ToLower(viewName)]
	if !ok {
		return "", false
	}
	return p.columns[i].name, true
}

// Columns returns the comma-separated, alias-qualified select list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.ColumnList(), ", ")
}

// ColumnList returns the alias-qualified columns in registration order.
func (p *ProjectionMap) ColumnList() []string {
	cols := make([]string, len(p.columns))
	for i, c := range p.columns {
		cols[i] = p.alias + "." + c.name
	}
	return cols
}

// ColumnNames returns the unqualified columns in registration order.
func (p *ProjectionMap) ColumnNames() []string {
	cols := make([]string, len(p.columns))
	for i, c := range p.columns {
		cols[i] = c.name
	}
	return cols
}

// Views returns the view names in registration order.
func (p *ProjectionMap) Views() []string {
	views := make([]string, len(p.columns))
	for i, c := range p.columns {
		views[i] = c.view
	}
	return views
}
