// Package files validates uploads and manages their blobs by string identifier.
//
// Every Service method reports expected failures through its Outcome: ErrArgument
// for a missing or malformed id on writes, ErrParse for a malformed id on reads,
// ErrValidation for a disallowed extension and ErrNotFound for a missing blob.
package files

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/scholar/internal/blobs"
	"github.com/JaimeStill/scholar/pkg/outcome"
)

// Result is the outcome of a blob operation.
type Result[K blobs.Kind] = outcome.Outcome[*blobs.Blob[K]]

// Service manages blobs of kind K.
type Service[K blobs.Kind] struct {
	store  blobs.Store[K]
	logger *slog.Logger
}

// NewService creates a Service over store. Records carry the caller's system
// attribute with component=files added.
func NewService[K blobs.Kind](store blobs.Store[K], logger *slog.Logger) *Service[K] {
	return &Service[K]{
		store:  store,
		logger: logger.With("component", "files", "collection", blobs.CollectionOf[K]()),
	}
}

// Get returns the blob identified by id.
func (s *Service[K]) Get(ctx context.Context, id string) Result[K] {
	if id == "" {
		return outcome.Failure[*blobs.Blob[K]](fmt.Errorf("%w: id required", ErrArgument))
	}

	oid, err := blobs.ParseID(id)
	if err != nil {
		return outcome.Failure[*blobs.Blob[K]](fmt.Errorf("%w: %w", ErrParse, err))
	}

	blob, err := s.store.Find(ctx, oid)
	if err != nil {
		return outcome.Failure[*blobs.Blob[K]](err)
	}
	if blob == nil || blob.File == nil {
		return outcome.Failure[*blobs.Blob[K]](fmt.Errorf("%w: %s", ErrNotFound, id))
	}

	return outcome.Success(blob)
}

// Save stores file as a new blob.
func (s *Service[K]) Save(ctx context.Context, file Upload, mediaType MediaType) Result[K] {
	blob, err := CreateEntity[K](file, mediaType)
	if err != nil {
		return outcome.Failure[*blobs.Blob[K]](err)
	}

	if err := s.store.Add(ctx, blob); err != nil {
		return outcome.Failure[*blobs.Blob[K]](fmt.Errorf("save blob: %w", err))
	}

	s.logger.Info("blob saved", "id", blob.ID.Hex(), "size", len(blob.File))
	return outcome.Success(blob)
}

// Update overwrites the bytes of the blob identified by id. An empty id, or an id
// whose blob no longer exists, saves file as a new blob instead.
func (s *Service[K]) Update(ctx context.Context, file Upload, id string, mediaType MediaType) Result[K] {
	if id == "" {
		return s.Save(ctx, file, mediaType)
	}

	oid, err := blobs.ParseID(id)
	if err != nil {
		return outcome.Failure[*blobs.Blob[K]](fmt.Errorf("%w: %w", ErrArgument, err))
	}

	existing, err := s.store.Find(ctx, oid)
	if err != nil {
		return outcome.Failure[*blobs.Blob[K]](err)
	}
	if existing == nil {
		s.logger.Warn("blob missing on update, saving new", "id", id)
		return s.Save(ctx, file, mediaType)
	}

	blob, err := UpdateEntity(file, mediaType, existing)
	if err != nil {
		return outcome.Failure[*blobs.Blob[K]](err)
	}

	if err := s.store.Update(ctx, blob); err != nil {
		return outcome.Failure[*blobs.Blob[K]](fmt.Errorf("update blob: %w", err))
	}

	s.logger.Info("blob updated", "id", id, "size", len(blob.File))
	return outcome.Success(blob)
}

// Delete removes the blob identified by id. Deleting an absent blob succeeds
// without touching the store.
func (s *Service[K]) Delete(ctx context.Context, id string) Result[K] {
	oid, err := blobs.ParseID(id)
	if err != nil {
		return outcome.Failure[*blobs.Blob[K]](fmt.Errorf("%w: %w", ErrArgument, err))
	}

	existing, err := s.store.Find(ctx, oid)
	if err != nil {
		return outcome.Failure[*blobs.Blob[K]](err)
	}
	if existing == nil {
		return outcome.NoContent[*blobs.Blob[K]]()
	}

	if err := s.store.Remove(ctx, existing); err != nil {
		return outcome.Failure[*blobs.Blob[K]](fmt.Errorf("delete blob: %w", err))
	}

	s.logger.Info("blob deleted", "id", id)
	return outcome.NoContent[*blobs.Blob[K]]()
}
