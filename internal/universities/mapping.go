package universities

import (
	"net/url"
	"strings"
	"time"

	"github.com/JaimeStill/scholar/pkg/query"
	"github.com/JaimeStill/scholar/pkg/repository"
	"github.com/JaimeStill/scholar/pkg/unitofwork"
)

var projection = query.NewProjectionMap("public", "universities", "u").
	Project("id", "Id").
	Project("name", "Name").
	Project("country", "Country").
	Project("city", "City").
	Project("website", "Website").
	Project("photo_id", "PhotoId").
	Project("small_photo_id", "SmallPhotoId").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

// Table registers universities with a unit-of-work store.
var Table = &unitofwork.Table[University, int64]{
	Projection: projection,
	Key:        "Id",
	KeyOf:      func(u *University) int64 { return u.ID },
	SetKey:     func(u *University, id int64) { u.ID = id },
	Generated:  true,
	Scan: func(s repository.Scanner) (University, error) {
		var u University
		err := s.Scan(
			&u.ID,
			&u.Name,
			&u.Country,
			&u.City,
			&u.Website,
			repository.EmptyIfNull(&u.Photo),
			repository.EmptyIfNull(&u.Small),
			&u.CreatedAt,
			&u.UpdatedAt,
		)
		return u, err
	},
	Values: func(u *University) []any {
		return []any{
			u.ID, u.Name, u.Country, u.City, u.Website,
			repository.NullString(u.Photo),
			repository.NullString(u.Small),
			u.CreatedAt, u.UpdatedAt,
		}
	},
	Accessors: query.NewAccessors[University]().
		Add("Id", query.By(func(u University) int64 { return u.ID })).
		Add("Name", query.ByFold(func(u University) string { return u.Name })).
		Add("Country", query.By(func(u University) string { return u.Country })).
		Add("City", query.ByFold(func(u University) string { return u.City })).
		Add("Website", query.ByFold(func(u University) string { return u.Website })).
		Add("PhotoId", query.By(func(u University) string { return u.Photo })).
		Add("SmallPhotoId", query.By(func(u University) string { return u.Small })).
		Add("CreatedAt", query.ByTime(func(u University) time.Time { return u.CreatedAt })).
		Add("UpdatedAt", query.ByTime(func(u University) time.Time { return u.UpdatedAt })),
	DefaultSort: query.SortField{Field: "Name"},
}

// Filters contains optional criteria for filtering university queries.
type Filters struct {
	Search  *string
	Country *string
	City    *string
}

// FiltersFromQuery extracts university filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if c := values.Get("country"); c != "" {
		c = strings.ToUpper(c)
		f.Country = &c
	}
	if c := values.Get("city"); c != "" {
		f.City = &c
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b = b.
		WhereSearch(f.Search, "Name", "City").
		WhereContains("City", f.City)

	if f.Country != nil {
		b = b.WhereEquals("Country", *f.Country)
	}
	return b
}

// Match reports whether u satisfies the same conditions as Apply.
func (f Filters) Match(u University) bool {
	fold := func(s, sub string) bool {
		return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
	}

	if f.Search != nil && *f.Search != "" && !fold(u.Name, *f.Search) && !fold(u.City, *f.Search) {
		return false
	}
	if f.City != nil && *f.City != "" && !fold(u.City, *f.City) {
		return false
	}
	if f.Country != nil && u.Country != *f.Country {
		return false
	}
	return true
}
