package users

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/JaimeStill/scholar/pkg/query"
	"github.com/JaimeStill/scholar/pkg/repository"
	"github.com/JaimeStill/scholar/pkg/unitofwork"
	"github.com/google/uuid"
)

var projection = query.NewProjectionMap("public", "users", "u").
	Project("id", "Id").
	Project("username", "Username").
	Project("email", "Email").
	Project("display_name", "DisplayName").
	Project("photo_id", "PhotoId").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

// Table registers users with a unit-of-work store. Keys are minted by Create.
var Table = &unitofwork.Table[User, uuid.UUID]{
	Projection: projection,
	Key:        "Id",
	KeyOf:      func(u *User) uuid.UUID { return u.ID },
	SetKey:     func(u *User, id uuid.UUID) { u.ID = id },
	Scan: func(s repository.Scanner) (User, error) {
		var u User
		err := s.Scan(&u.ID, &u.Username, &u.Email, &u.DisplayName, repository.EmptyIfNull(&u.Photo), &u.CreatedAt, &u.UpdatedAt)
		return u, err
	},
	Values: func(u *User) []any {
		return []any{u.ID, u.Username, u.Email, u.DisplayName, repository.NullString(u.Photo), u.CreatedAt, u.UpdatedAt}
	},
	Accessors: query.NewAccessors[User]().
		Add("Id", query.By(func(u User) string { return u.ID.String() })).
		Add("Username", query.ByFold(func(u User) string { return u.Username })).
		Add("Email", query.ByFold(func(u User) string { return u.Email })).
		Add("DisplayName", query.ByFold(func(u User) string { return u.DisplayName })).
		Add("PhotoId", query.By(func(u User) string { return u.Photo })).
		Add("CreatedAt", query.ByTime(func(u User) time.Time { return u.CreatedAt })).
		Add("UpdatedAt", query.ByTime(func(u User) time.Time { return u.UpdatedAt })),
	DefaultSort: query.SortField{Field: "Username"},
}

// Filters contains optional criteria for filtering user queries.
type Filters struct {
	Search   *string
	HasPhoto *bool
}

func FiltersFromQuery(values url.Values) Filters {
	var f Filters
	if h, err := strconv.ParseBool(values.Get("has_photo")); err == nil {
		f.HasPhoto = &h
	}
	return f
}

func (f Filters) Apply(b *query.Builder) *query.Builder {
	b = b.WhereSearch(f.Search, "Username", "Email", "DisplayName")
	if f.HasPhoto != nil {
		b = b.WhereNull("PhotoId", !*f.HasPhoto)
	}
	return b
}

func (f Filters) Match(u User) bool {
	if f.Search != nil && *f.Search != "" &&
		!contains(u.Username, *f.Search) &&
		!contains(u.Email, *f.Search) &&
		!contains(u.DisplayName, *f.Search) {
		return false
	}
	if f.HasPhoto != nil && *f.HasPhoto != (u.Photo != "") {
		return false
	}
	return true
}

func contains(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
