package authors

import (
	"time"

	"github.com/JaimeStill/scholar/pkg/query"
	"github.com/JaimeStill/scholar/pkg/repository"
	"github.com/JaimeStill/scholar/pkg/unitofwork"
)

var projection = query.NewProjectionMap("public", "authors", "a").
	Project("id", "Id").
	Project("first_name", "FirstName").
	Project("last_name", "LastName").
	Project("email", "Email").
	Project("affiliation", "Affiliation").
	Project("biography", "Biography").
	Project("photo_id", "PhotoId").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var accessors = query.NewAccessors[Author]().
	Add("Id", query.By(func(a Author) int64 { return a.ID })).
	Add("FirstName", query.ByFold(func(a Author) string { return a.FirstName })).
	Add("LastName", query.ByFold(func(a Author) string { return a.LastName })).
	Add("Email", query.ByFold(func(a Author) string { return a.Email })).
	Add("Affiliation", query.ByFold(func(a Author) string { return a.Affiliation })).
	Add("Biography", query.ByFold(func(a Author) string { return a.Biography })).
	Add("PhotoId", query.By(func(a Author) string { return a.Photo })).
	Add("CreatedAt", query.ByTime(func(a Author) time.Time { return a.CreatedAt })).
	Add("UpdatedAt", query.ByTime(func(a Author) time.Time { return a.UpdatedAt }))

var defaultSort = query.SortField{Field: "LastName"}

// Table registers authors with a unit-of-work store.
var Table = &unitofwork.Table[Author, int64]{
	Projection:  projection,
	Key:         "Id",
	KeyOf:       func(a *Author) int64 { return a.ID },
	SetKey:      func(a *Author, id int64) { a.ID = id },
	Generated:   true,
	Scan:        scanAuthor,
	Values:      authorValues,
	Accessors:   accessors,
	DefaultSort: defaultSort,
}

func scanAuthor(s repository.Scanner) (Author, error) {
	var a Author
	err := s.Scan(
		&a.ID,
		&a.FirstName,
		&a.LastName,
		&a.Email,
		&a.Affiliation,
		&a.Biography,
		repository.EmptyIfNull(&a.Photo),
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func authorValues(a *Author) []any {
	return []any{
		a.ID,
		a.FirstName,
		a.LastName,
		a.Email,
		a.Affiliation,
		a.Biography,
		repository.NullString(a.Photo),
		a.CreatedAt,
		a.UpdatedAt,
	}
}
