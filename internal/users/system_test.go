package users_test

import (
	"context"
	"errors"
	"testing"

	"github.com/JaimeStill/scholar/internal/blobs"
	"github.com/JaimeStill/scholar/internal/files"
	"github.com/JaimeStill/scholar/internal/users"
	"github.com/JaimeStill/scholar/pkg/logging"
	"github.com/JaimeStill/scholar/pkg/pagination"
	"github.com/JaimeStill/scholar/pkg/unitofwork"
	"github.com/google/uuid"
)

var testPagination = pagination.Config{DefaultPageSize: 10, MaxPageSize: 50}

func newSystem() (users.System, *blobs.MemoryStore[blobs.UserPhoto]) {
	photos := blobs.NewMemoryStore[blobs.UserPhoto]()
	return users.New(unitofwork.NewMemory(), photos, logging.Discard(), testPagination), photos
}

func TestSystem_Lifecycle(t *testing.T) {
	ctx := context.Background()
	sys, photos := newSystem()

	created, err := sys.Create(ctx, users.Command{Username: "admin", Email: "admin@example.edu"}, files.NewUpload("me.jpg", []byte("v1")))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("ID not assigned")
	}
	if photos.Len() != 1 || len(created.Photo) != 24 {
		t.Fatalf("Photo = %q with %d blobs", created.Photo, photos.Len())
	}

	found, err := sys.Find(ctx, created.ID)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if found.Username != "admin" || found.Photo != created.Photo {
		t.Errorf("found = %+v", found)
	}

	updated, err := sys.Update(ctx, created.ID, users.Command{Username: "root", DisplayName: "Root"}, files.NewUpload("me.jpeg", []byte("v2")))
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Username != "root" || updated.Photo != created.Photo || photos.Len() != 1 {
		t.Errorf("updated = %+v with %d blobs", updated, photos.Len())
	}

	photo, err := sys.Photo(ctx, created.ID)
	if err != nil || string(photo.File) != "v2" {
		t.Errorf("Photo() = %v, %v, want v2", photo, err)
	}

	if err := sys.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if photos.Len() != 0 {
		t.Errorf("blobs = %d, want 0", photos.Len())
	}
	if _, err := sys.Find(ctx, created.ID); !errors.Is(err, users.ErrNotFound) {
		t.Errorf("Find() error = %v, want ErrNotFound", err)
	}
}

func TestSystem_Create_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		cmd   users.Command
		photo files.Upload
		want  error
	}{
		{"missing username", users.Command{Email: "x@example.edu"}, nil, users.ErrUsernameRequired},
		{"rejected photo", users.Command{Username: "x"}, files.NewUpload("x.bmp", []byte("x")), files.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, photos := newSystem()

			if _, err := sys.Create(ctx, tt.cmd, tt.photo); !errors.Is(err, tt.want) {
				t.Errorf("Create() error = %v, want %v", err, tt.want)
			}
			if photos.Len() != 0 {
				t.Errorf("blobs = %d, want 0", photos.Len())
			}
		})
	}
}

func TestSystem_List(t *testing.T) {
	ctx := context.Background()
	sys, _ := newSystem()

	for _, name := range []string{"carol", "alice", "bob"} {
		var photo files.Upload
		if name != "bob" {
			photo = files.NewUpload(name+".jpg", []byte(name))
		}
		if _, err := sys.Create(ctx, users.Command{Username: name, Email: name + "@example.edu"}, photo); err != nil {
			t.Fatalf("Create(%s) error = %v", name, err)
		}
	}

	no := false
	search := "AL"

	tests := []struct {
		name    string
		page    pagination.PageRequest
		filters users.Filters
		want    []string
	}{
		{"by username", pagination.PageRequest{Sort: "username"}, users.Filters{}, []string{"alice", "bob", "carol"}},
		{"descending", pagination.PageRequest{Sort: "-Username"}, users.Filters{}, []string{"carol", "bob", "alice"}},
		{"without photo", pagination.PageRequest{Sort: "username"}, users.Filters{HasPhoto: &no}, []string{"bob"}},
		{"search", pagination.PageRequest{Search: &search, Sort: "username"}, users.Filters{}, []string{"alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := sys.List(ctx, tt.page, tt.filters)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(result.Data) != len(tt.want) {
				t.Fatalf("got %d users, want %v", len(result.Data), tt.want)
			}
			for i, u := range result.Data {
				if u.Username != tt.want[i] {
					t.Errorf("Data[%d] = %s, want %s", i, u.Username, tt.want[i])
				}
			}
		})
	}
}
