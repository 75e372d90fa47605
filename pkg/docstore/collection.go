package docstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JaimeStill/scholar/pkg/repository"
)

// ErrNotFound is returned by Replace and Delete when no document has the given id.
var ErrNotFound = errors.New("document not found")

// Collection is a typed view over a collection keyed by _id.
type Collection[T any] struct {
	coll *mongo.Collection
}

// NewCollection binds T to the named collection of db.
func NewCollection[T any](db *mongo.Database, name string) *Collection[T] {
	return &Collection[T]{coll: db.Collection(name)}
}

// Name returns the underlying collection name.
func (c *Collection[T]) Name() string {
	return c.coll.Name()
}

// Find returns the document with the given id, or nil when none exists.
func (c *Collection[T]) Find(ctx context.Context, id any) (*T, error) {
	var doc T
	err := c.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", c.Name(), err)
	}
	return &doc, nil
}

// Insert stores a new document. A duplicate _id yields repository.ErrDuplicateKey.
func (c *Collection[T]) Insert(ctx context.Context, doc *T) error {
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert into %s: %w", c.Name(), repository.ErrDuplicateKey)
		}
		return fmt.Errorf("insert into %s: %w", c.Name(), err)
	}
	return nil
}

// Replace overwrites the document with the given id.
func (c *Collection[T]) Replace(ctx context.Context, id any, doc *T) error {
	res, err := c.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: id}}, doc)
	if err != nil {
		return fmt.Errorf("replace in %s: %w", c.Name(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the document with the given id.
func (c *Collection[T]) Delete(ctx context.Context, id any) error {
	res, err := c.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("delete from %s: %w", c.Name(), err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Exists reports whether a document with the given id is stored.
func (c *Collection[T]) Exists(ctx context.Context, id any) (bool, error) {
	n, err := c.coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: id}}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count in %s: %w", c.Name(), err)
	}
	return n > 0, nil
}
