package authors

import (
	"net/url"
	"strings"

	"github.com/JaimeStill/scholar/pkg/query"
)

// Filters contains optional criteria for filtering author queries.
type Filters struct {
	Search      *string
	Email       *string
	Affiliation *string
	HasPhoto    *bool
}

// FiltersFromQuery extracts author filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if e := values.Get("email"); e != "" {
		f.Email = &e
	}
	if a := values.Get("affiliation"); a != "" {
		f.Affiliation = &a
	}
	switch values.Get("has_photo") {
	case "true":
		v := true
		f.HasPhoto = &v
	case "false":
		v := false
		f.HasPhoto = &v
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b = b.
		WhereSearch(f.Search, "FirstName", "LastName", "Email").
		WhereContains("Email", f.Email).
		WhereContains("Affiliation", f.Affiliation)

	if f.HasPhoto != nil {
		b = b.WhereNull("PhotoId", !*f.HasPhoto)
	}
	return b
}

// Match reports whether a satisfies the same conditions as Apply.
func (f Filters) Match(a Author) bool {
	if f.Search != nil && *f.Search != "" &&
		!contains(a.FirstName, *f.Search) && !contains(a.LastName, *f.Search) && !contains(a.Email, *f.Search) {
		return false
	}
	if f.Email != nil && *f.Email != "" && !contains(a.Email, *f.Email) {
		return false
	}
	if f.Affiliation != nil && *f.Affiliation != "" && !contains(a.Affiliation, *f.Affiliation) {
		return false
	}
	if f.HasPhoto != nil && *f.HasPhoto != (a.Photo != "") {
		return false
	}
	return true
}

func contains(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
