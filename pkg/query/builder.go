package query

import (
	"fmt"
	"strings"
)

type condition struct {
	clause string
	args   []any
}

// Builder constructs SQL queries using a fluent API with automatic parameter numbering.
type Builder struct {
	projection  *ProjectionMap
	conditions  []condition
	orderBy     []SortField
	defaultSort *SortField
}

// NewBuilder creates a Builder for the given projection with an optional default sort.
func NewBuilder(projection *ProjectionMap, defaultSort ...SortField) *Builder {
	b := &Builder{
		projection: projection,
		conditions: make([]condition, 0),
	}
	if len(defaultSort) > 0 {
		d := defaultSort[0]
		b.defaultSort = &d
	}
	return b
}

// BuildCount returns a COUNT(*) query with the current conditions.
func (b *Builder) BuildCount() (string, []any) {
	where, args, _ := b.buildWhere(1)
	sql := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", b.projection.Table(), where)
	return sql, args
}

// BuildPage returns a paginated SELECT query for a 1-based page number.
func (b *Builder) BuildPage(page, pageSize int) (string, []any) {
	return b.BuildRange((page-1)*pageSize, pageSize)
}

// BuildRange returns a SELECT query with ordering, limit, and offset.
func (b *Builder) BuildRange(skip, take int) (string, []any) {
	where, args, _ := b.buildWhere(1)
	orderBy := b.buildOrderBy()

	sql := fmt.Sprintf(
		"SELECT %s FROM %s%s%s LIMIT %d OFFSET %d",
		b.projection.Columns(),
		b.projection.Table(),
		where,
		orderBy,
		take,
		skip,
	)

	return sql, args
}

// BuildSingle returns a SELECT query for a single record by ID.
func (b *Builder) BuildSingle(idField string, id any) (string, []any) {
	col := b.projection.Column(idField)
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		b.projection.Columns(),
		b.projection.Table(),
		col,
	)
	return sql, []any{id}
}

// BuildExists returns an EXISTS query for a single record by ID.
func (b *Builder) BuildExists(idField string, id any) (string, []any) {
	col := b.projection.Column(idField)
	sql := fmt.Sprintf(
		"SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)",
		b.projection.Table(),
		col,
	)
	return sql, []any{id}
}

// OrderBy replaces the ordering with a single field. Empty field uses the default sort.
func (b *Builder) OrderBy(field string, descending bool) *Builder {
	if field == "" {
		b.orderBy = nil
		if b.defaultSort != nil {
			b.defaultSort.Descending = descending
		}
		return b
	}
	b.orderBy = []SortField{{Field: field, Descending: descending}}
	return b
}

// OrderByFields replaces the ordering with a multi-key ordering.
// Fields missing from the projection are skipped.
func (b *Builder) OrderByFields(fields []SortField) *Builder {
	b.orderBy = append([]SortField(nil), fields...)
	return b
}

// WhereContains adds a case-insensitive ILIKE condition. Nil or empty values are ignored.
func (b *Builder) WhereContains(field string, value *string) *Builder {
	if value == nil || *value == "" {
		return b
	}
	col := b.projection.Column(field)
	b.conditions = append(b.conditions, condition{
		clause: fmt.Sprintf("%s ILIKE $%%d", col),
		args:   []any{"%" + *value + "%"},
	})
	return b
}

// WhereEquals adds an equality condition. Nil values are ignored.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	if value == nil {
		return b
	}
	col := b.projection.Column(field)
	b.conditions = append(b.conditions, condition{
		clause: fmt.Sprintf("%s = $%%d", col),
		args:   []any{value},
	})
	return b
}

// WhereIn adds an IN condition for multiple values. Empty slices are ignored.
func (b *Builder) WhereIn(field string, values []any) *Builder {
	if len(values) == 0 {
		return b
	}
	col := b.projection.Column(field)
	placeholders := make([]string, len(values))
	for i := range values {
		placeholders[i] = "$%d"
	}
	b.conditions = append(b.conditions, condition{
		clause: fmt.Sprintf("%s IN (%s)", col, strings.Join(placeholders, ", ")),
		args:   values,
	})
	return b
}

// WhereNull adds an IS NULL condition, or IS NOT NULL when isNull is false.
func (b *Builder) WhereNull(field string, isNull bool) *Builder {
	op := "IS NOT NULL"
	if isNull {
		op = "IS NULL"
	}
	b.conditions = append(b.conditions, condition{
		clause: fmt.Sprintf("%s %s", b.projection.Column(field), op),
	})
	return b
}

// WhereSearch adds an OR condition across multiple fields with ILIKE. Nil or empty search is ignored.
func (b *Builder) WhereSearch(search *string, fields ...string) *Builder {
	if search == nil || *search == "" || len(fields) == 0 {
		return b
	}

	clauses := make([]string, len(fields))
	args := make([]any, len(fields))
	searchPattern := "%" + *search + "%"

	for i, field := range fields {
		col := b.projection.Column(field)
		clauses[i] = fmt.Sprintf("%s ILIKE $%%d", col)
		args[i] = searchPattern
	}

	b.conditions = append(b.conditions, condition{
		clause: "(" + strings.Join(clauses, " OR ") + ")",
		args:   args,
	})
	return b
}

func (b *Builder) buildOrderBy() string {
	terms := make([]string, 0, len(b.orderBy)+1)
	seen := make(map[string]bool)

	add := func(f SortField) {
		col, ok := b.projection.Lookup(f.Field)
		if !ok || seen[col] {
			return
		}
		seen[col] = true

		dir := "ASC"
		if f.Descending {
			dir = "DESC"
		}
		terms = append(terms, col+" "+dir)
	}

	for _, f := range b.orderBy {
		add(f)
	}

	if b.defaultSort != nil {
		add(*b.defaultSort)
	}

	if len(terms) == 0 {
		return ""
	}

	return " ORDER BY " + strings.Join(terms, ", ")
}

func (b *Builder) buildWhere(startParam int) (string, []any, int) {
	if len(b.conditions) == 0 {
		return "", nil, startParam
	}

	clauses := make([]string, 0, len(b.conditions))
	args := make([]any, 0)
	paramIdx := startParam

	for _, cond := range b.conditions {
		clause := cond.clause
		for _, arg := range cond.args {
			clause = strings.Replace(clause, "$%d", fmt.Sprintf("$%d", paramIdx), 1)
			args = append(args, arg)
			paramIdx++
		}
		clauses = append(clauses, clause)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args, paramIdx
}
