package publications

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/JaimeStill/scholar/pkg/query"
)

// Filters contains optional criteria for filtering publication queries.
type Filters struct {
	Search   *string
	Year     *int
	AuthorID *int64
	HasFile  *bool
}

// FiltersFromQuery extracts publication filters from URL query parameters.
// Unparseable values are ignored.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if y, err := strconv.Atoi(values.Get("year")); err == nil {
		f.Year = &y
	}
	if a, err := strconv.ParseInt(values.Get("author_id"), 10, 64); err == nil {
		f.AuthorID = &a
	}
	if h, err := strconv.ParseBool(values.Get("has_file")); err == nil {
		f.HasFile = &h
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b = b.WhereSearch(f.Search, "Title", "Abstract", "Doi")

	if f.Year != nil {
		b = b.WhereEquals("Year", *f.Year)
	}
	if f.AuthorID != nil {
		b = b.WhereEquals("AuthorId", *f.AuthorID)
	}
	if f.HasFile != nil {
		b = b.WhereNull("FileId", !*f.HasFile)
	}
	return b
}

// Match reports whether p satisfies the same conditions as Apply.
func (f Filters) Match(p Publication) bool {
	if f.Search != nil && *f.Search != "" {
		s := strings.ToLower(*f.Search)
		if !strings.Contains(strings.ToLower(p.Title), s) &&
			!strings.Contains(strings.ToLower(p.Abstract), s) &&
			!strings.Contains(strings.ToLower(p.DOI), s) {
			return false
		}
	}
	if f.Year != nil && p.Year != *f.Year {
		return false
	}
	if f.AuthorID != nil && (p.AuthorID == nil || *p.AuthorID != *f.AuthorID) {
		return false
	}
	if f.HasFile != nil && *f.HasFile != (p.File != "") {
		return false
	}
	return true
}
