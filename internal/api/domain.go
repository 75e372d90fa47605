package api

import (
	"github.com/JaimeStill/scholar/internal/authors"
	"github.com/JaimeStill/scholar/internal/publications"
	"github.com/JaimeStill/scholar/internal/universities"
	"github.com/JaimeStill/scholar/internal/users"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Authors      authors.System
	Universities universities.System
	Publications publications.System
	Users        users.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Authors: authors.New(
			runtime.Store,
			runtime.Blobs.AuthorPhotos,
			runtime.Logger,
			runtime.Pagination,
		),
		Universities: universities.New(
			runtime.Store,
			runtime.Blobs.UniversityPhotos,
			runtime.Logger,
			runtime.Pagination,
		),
		Publications: publications.New(
			runtime.Store,
			runtime.Blobs.PublicationFiles,
			runtime.Logger,
			runtime.Pagination,
		),
		Users: users.New(
			runtime.AdminStore,
			runtime.Blobs.UserPhotos,
			runtime.Logger,
			runtime.Pagination,
		),
	}
}
