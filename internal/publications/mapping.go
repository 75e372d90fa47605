package publications

import (
	"time"

	"github.com/JaimeStill/scholar/pkg/query"
	"github.com/JaimeStill/scholar/pkg/repository"
	"github.com/JaimeStill/scholar/pkg/unitofwork"
)

var projection = query.NewProjectionMap("public", "publications", "p").
	Project("id", "Id").
	Project("title", "Title").
	Project("abstract", "Abstract").
	Project("year", "Year").
	Project("doi", "Doi").
	Project("author_id", "AuthorId").
	Project("page_count", "PageCount").
	Project("file_id", "FileId").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var accessors = query.NewAccessors[Publication]().
	Add("Id", query.By(func(p Publication) int64 { return p.ID })).
	Add("Title", query.ByFold(func(p Publication) string { return p.Title })).
	Add("Abstract", query.ByFold(func(p Publication) string { return p.Abstract })).
	Add("Year", query.By(func(p Publication) int { return p.Year })).
	Add("Doi", query.By(func(p Publication) string { return p.DOI })).
	Add("AuthorId", query.ByOptional(func(p Publication) *int64 { return p.AuthorID })).
	Add("PageCount", query.ByOptional(func(p Publication) *int { return p.PageCount })).
	Add("FileId", query.By(func(p Publication) string { return p.File })).
	Add("CreatedAt", query.ByTime(func(p Publication) time.Time { return p.CreatedAt })).
	Add("UpdatedAt", query.ByTime(func(p Publication) time.Time { return p.UpdatedAt }))

var defaultSort = query.SortField{Field: "Year", Descending: true}

// Table registers publications with a unit-of-work store.
var Table = &unitofwork.Table[Publication, int64]{
	Projection:  projection,
	Key:         "Id",
	KeyOf:       func(p *Publication) int64 { return p.ID },
	SetKey:      func(p *Publication, id int64) { p.ID = id },
	Generated:   true,
	Scan:        scanPublication,
	Values:      publicationValues,
	Accessors:   accessors,
	DefaultSort: defaultSort,
}

func scanPublication(s repository.Scanner) (Publication, error) {
	var p Publication
	err := s.Scan(
		&p.ID,
		&p.Title,
		&p.Abstract,
		&p.Year,
		&p.DOI,
		&p.AuthorID,
		&p.PageCount,
		repository.EmptyIfNull(&p.File),
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func publicationValues(p *Publication) []any {
	return []any{
		p.ID,
		p.Title,
		p.Abstract,
		p.Year,
		p.DOI,
		p.AuthorID,
		p.PageCount,
		repository.NullString(p.File),
		p.CreatedAt,
		p.UpdatedAt,
	}
}
