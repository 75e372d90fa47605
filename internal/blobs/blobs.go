// Package blobs stores binary attachments in the document store, one collection per kind.
package blobs

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind selects the collection a blob lives in.
type Kind interface {
	Collection() string
}

type (
	UserPhoto       struct{}
	AuthorPhoto     struct{}
	UniversityPhoto struct{}
	PublicationFile struct{}
)

func (UserPhoto) Collection() string       { return "user_photos" }
func (AuthorPhoto) Collection() string     { return "author_photos" }
func (UniversityPhoto) Collection() string { return "university_photos" }
func (PublicationFile) Collection() string { return "publication_files" }

// Blob is one stored attachment. A nil File is treated as absent by readers.
type Blob[K Kind] struct {
	ID   primitive.ObjectID `bson:"_id"`
	File []byte             `bson:"file"`
}

// Store is CRUD over one blob kind. Find returns nil, nil when id is absent.
type Store[K Kind] interface {
	Find(ctx context.Context, id primitive.ObjectID) (*Blob[K], error)
	Add(ctx context.Context, blob *Blob[K]) error
	Update(ctx context.Context, blob *Blob[K]) error
	Remove(ctx context.Context, blob *Blob[K]) error
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// NewID mints a fresh identifier.
func NewID() primitive.ObjectID {
	return primitive.NewObjectID()
}

// ParseID parses a 24 character hex identifier. Upper-case hex is accepted;
// ObjectID.Hex always renders lower case.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("parse blob id %q: %w", s, err)
	}
	return id, nil
}

// CollectionOf returns the collection name for K.
func CollectionOf[K Kind]() string {
	var k K
	return k.Collection()
}
