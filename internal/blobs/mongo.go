package blobs

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/JaimeStill/scholar/pkg/docstore"
)

type mongoStore[K Kind] struct {
	coll *docstore.Collection[Blob[K]]
}

// NewMongoStore binds kind K to its collection in db.
func NewMongoStore[K Kind](db *mongo.Database) Store[K] {
	return &mongoStore[K]{
		coll: docstore.NewCollection[Blob[K]](db, CollectionOf[K]()),
	}
}

func (s *mongoStore[K]) Find(ctx context.Context, id primitive.ObjectID) (*Blob[K], error) {
	return s.coll.Find(ctx, id)
}

func (s *mongoStore[K]) Add(ctx context.Context, blob *Blob[K]) error {
	return s.coll.Insert(ctx, blob)
}

func (s *mongoStore[K]) Update(ctx context.Context, blob *Blob[K]) error {
	return s.coll.Replace(ctx, blob.ID, blob)
}

func (s *mongoStore[K]) Remove(ctx context.Context, blob *Blob[K]) error {
	return s.coll.Delete(ctx, blob.ID)
}

func (s *mongoStore[K]) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return s.coll.Exists(ctx, id)
}
