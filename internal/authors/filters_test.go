package authors_test

import (
	"net/url"
	"testing"

	"github.com/JaimeStill/scholar/internal/authors"
)

func TestFiltersFromQuery(t *testing.T) {
	f := authors.FiltersFromQuery(url.Values{
		"email":       {"example.edu"},
		"affiliation": {"Cambridge"},
		"has_photo":   {"false"},
	})

	if f.Email == nil || *f.Email != "example.edu" {
		t.Errorf("Email = %v", f.Email)
	}
	if f.Affiliation == nil || *f.Affiliation != "Cambridge" {
		t.Errorf("Affiliation = %v", f.Affiliation)
	}
	if f.HasPhoto == nil || *f.HasPhoto {
		t.Errorf("HasPhoto = %v, want false", f.HasPhoto)
	}

	empty := authors.FiltersFromQuery(url.Values{"has_photo": {"maybe"}})
	if empty.Email != nil || empty.Affiliation != nil || empty.HasPhoto != nil {
		t.Errorf("FiltersFromQuery() = %+v, want no filters", empty)
	}
}

func TestFilters_Match(t *testing.T) {
	author := authors.Author{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.edu", Photo: "65f1c0ffee0000000000beef"}

	str := func(s string) *string { return &s }
	yes, no := true, false

	tests := []struct {
		name    string
		filters authors.Filters
		want    bool
	}{
		{"empty", authors.Filters{}, true},
		{"search last name", authors.Filters{Search: str("LOVE")}, true},
		{"search miss", authors.Filters{Search: str("turing")}, false},
		{"email", authors.Filters{Email: str("example")}, true},
		{"affiliation miss", authors.Filters{Affiliation: str("Cambridge")}, false},
		{"has photo", authors.Filters{HasPhoto: &yes}, true},
		{"without photo", authors.Filters{HasPhoto: &no}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filters.Match(author); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}
