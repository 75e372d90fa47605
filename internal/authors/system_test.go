package authors_test

import (
	"context"
	"errors"
	"testing"

	"github.com/JaimeStill/scholar/internal/authors"
	"github.com/JaimeStill/scholar/internal/blobs"
	"github.com/JaimeStill/scholar/internal/files"
	"github.com/JaimeStill/scholar/pkg/logging"
	"github.com/JaimeStill/scholar/pkg/pagination"
	"github.com/JaimeStill/scholar/pkg/unitofwork"
)

var testPagination = pagination.Config{DefaultPageSize: 2, MaxPageSize: 5}

func newSystem() (authors.System, *blobs.MemoryStore[blobs.AuthorPhoto]) {
	photos := blobs.NewMemoryStore[blobs.AuthorPhoto]()
	return authors.New(unitofwork.NewMemory(), photos, logging.Discard(), testPagination), photos
}

func command(first, last string) authors.Command {
	return authors.Command{FirstName: first, LastName: last, Email: first + "@example.edu"}
}

func TestSystem_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("without photo", func(t *testing.T) {
		sys, photos := newSystem()

		author, err := sys.Create(ctx, command("Ada", "Lovelace"), nil)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if author.ID != 1 || author.Photo != "" {
			t.Errorf("author = %+v, want id 1 and no photo", author)
		}
		if author.CreatedAt.IsZero() || author.UpdatedAt.IsZero() {
			t.Error("timestamps not set")
		}
		if photos.Len() != 0 {
			t.Errorf("blobs = %d, want 0", photos.Len())
		}

		if _, err := sys.Photo(ctx, author.ID); !errors.Is(err, files.ErrNotFound) {
			t.Errorf("Photo() error = %v, want files.ErrNotFound", err)
		}
	})

	t.Run("with photo", func(t *testing.T) {
		sys, photos := newSystem()

		author, err := sys.Create(ctx, command("Ada", "Lovelace"), files.NewUpload("ada.JPG", []byte("portrait")))
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if len(author.Photo) != 24 || photos.Len() != 1 {
			t.Fatalf("Photo = %q with %d blobs, want linked blob", author.Photo, photos.Len())
		}

		photo, err := sys.Photo(ctx, author.ID)
		if err != nil {
			t.Fatalf("Photo() error = %v", err)
		}
		if string(photo.File) != "portrait" {
			t.Errorf("File = %q, want portrait", photo.File)
		}
	})

	t.Run("rejected photo persists nothing", func(t *testing.T) {
		sys, photos := newSystem()

		_, err := sys.Create(ctx, command("Ada", "Lovelace"), files.NewUpload("ada.png", []byte("portrait")))
		if !errors.Is(err, files.ErrValidation) {
			t.Fatalf("Create() error = %v, want files.ErrValidation", err)
		}
		if photos.Len() != 0 {
			t.Errorf("blobs = %d, want 0", photos.Len())
		}

		result, err := sys.List(ctx, pagination.PageRequest{}, authors.Filters{})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if result.Total != 0 {
			t.Errorf("Total = %d, want 0", result.Total)
		}
	})

	t.Run("missing names", func(t *testing.T) {
		sys, _ := newSystem()

		_, err := sys.Create(ctx, authors.Command{FirstName: "Ada"}, nil)
		if !errors.Is(err, authors.ErrInvalidAuthor) {
			t.Errorf("Create() error = %v, want ErrInvalidAuthor", err)
		}
	})
}

func TestSystem_Update(t *testing.T) {
	ctx := context.Background()
	sys, photos := newSystem()

	created, err := sys.Create(ctx, command("Ada", "Lovelace"), files.NewUpload("a.jpg", []byte("v1")))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("fields only keep photo", func(t *testing.T) {
		cmd := command("Augusta Ada", "King")
		cmd.Affiliation = "Analytical Society"

		updated, err := sys.Update(ctx, created.ID, cmd, nil)
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if updated.FirstName != "Augusta Ada" || updated.Affiliation != "Analytical Society" {
			t.Errorf("updated = %+v", updated)
		}
		if updated.Photo != created.Photo {
			t.Errorf("Photo = %q, want unchanged %q", updated.Photo, created.Photo)
		}
	})

	t.Run("replace photo keeps blob id", func(t *testing.T) {
		updated, err := sys.Update(ctx, created.ID, command("Ada", "Lovelace"), files.NewUpload("b.jpeg", []byte("v2")))
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if updated.Photo != created.Photo || photos.Len() != 1 {
			t.Errorf("Photo = %q (%d blobs), want %q reused", updated.Photo, photos.Len(), created.Photo)
		}

		photo, err := sys.Photo(ctx, created.ID)
		if err != nil || string(photo.File) != "v2" {
			t.Errorf("Photo() = %v, %v, want v2", photo, err)
		}
	})

	t.Run("rejected photo leaves record", func(t *testing.T) {
		_, err := sys.Update(ctx, created.ID, command("Changed", "Name"), files.NewUpload("c.gif", []byte("v3")))
		if !errors.Is(err, files.ErrValidation) {
			t.Fatalf("Update() error = %v, want files.ErrValidation", err)
		}

		stored, err := sys.Find(ctx, created.ID)
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if stored.FirstName != "Ada" {
			t.Errorf("FirstName = %q, want Ada", stored.FirstName)
		}
	})

	t.Run("missing author", func(t *testing.T) {
		if _, err := sys.Update(ctx, 99, command("A", "B"), nil); !errors.Is(err, authors.ErrNotFound) {
			t.Errorf("Update() error = %v, want ErrNotFound", err)
		}
	})
}

func TestSystem_Delete(t *testing.T) {
	ctx := context.Background()
	sys, photos := newSystem()

	created, err := sys.Create(ctx, command("Ada", "Lovelace"), files.NewUpload("a.jpg", []byte("v1")))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := sys.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if photos.Len() != 0 {
		t.Errorf("blobs = %d, want 0", photos.Len())
	}
	if _, err := sys.Find(ctx, created.ID); !errors.Is(err, authors.ErrNotFound) {
		t.Errorf("Find() error = %v, want ErrNotFound", err)
	}
	if err := sys.Delete(ctx, created.ID); !errors.Is(err, authors.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestSystem_List(t *testing.T) {
	ctx := context.Background()
	sys, _ := newSystem()

	seed := []struct {
		first, last string
		photo       bool
	}{
		{"Grace", "Hopper", true},
		{"Ada", "Lovelace", false},
		{"Alan", "Turing", true},
		{"Edsger", "Dijkstra", false},
	}
	for _, s := range seed {
		var photo files.Upload
		if s.photo {
			photo = files.NewUpload("p.jpg", []byte(s.last))
		}
		if _, err := sys.Create(ctx, command(s.first, s.last), photo); err != nil {
			t.Fatalf("Create(%s) error = %v", s.last, err)
		}
	}

	hasPhoto := true
	search := "RA"

	tests := []struct {
		name      string
		page      pagination.PageRequest
		filters   authors.Filters
		wantTotal int
		wantLast  []string
	}{
		{"default page size", pagination.PageRequest{Sort: "lastName"}, authors.Filters{}, 4, []string{"Dijkstra", "Hopper"}},
		{"second page", pagination.PageRequest{Page: 2, Sort: "lastName"}, authors.Filters{}, 4, []string{"Lovelace", "Turing"}},
		{"descending", pagination.PageRequest{PageSize: 10, Sort: "-LastName"}, authors.Filters{}, 4, []string{"Turing", "Lovelace", "Hopper", "Dijkstra"}},
		{"unknown sort field ignored", pagination.PageRequest{PageSize: 10, Sort: "shoeSize"}, authors.Filters{}, 4, []string{"Hopper", "Lovelace", "Turing", "Dijkstra"}},
		{"has photo", pagination.PageRequest{PageSize: 10, Sort: "lastname"}, authors.Filters{HasPhoto: &hasPhoto}, 2, []string{"Hopper", "Turing"}},
		{"search", pagination.PageRequest{PageSize: 5, Search: &search, Sort: "firstName"}, authors.Filters{}, 2, []string{"Dijkstra", "Hopper"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := sys.List(ctx, tt.page, tt.filters)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if result.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", result.Total, tt.wantTotal)
			}

			var got []string
			for _, a := range result.Data {
				got = append(got, a.LastName)
			}
			if len(got) != len(tt.wantLast) {
				t.Fatalf("got %v, want %v", got, tt.wantLast)
			}
			for i := range got {
				if got[i] != tt.wantLast[i] {
					t.Fatalf("got %v, want %v", got, tt.wantLast)
				}
			}
		})
	}
}
