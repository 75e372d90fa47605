package blobs

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JaimeStill/scholar/pkg/docstore"
	"github.com/JaimeStill/scholar/pkg/repository"
)

// MemoryStore keeps blobs in process. Bytes are copied in and out.
type MemoryStore[K Kind] struct {
	mu    sync.RWMutex
	files map[primitive.ObjectID][]byte
}

// NewMemoryStore creates an empty in-memory store for kind K.
func NewMemoryStore[K Kind]() *MemoryStore[K] {
	return &MemoryStore[K]{files: make(map[primitive.ObjectID][]byte)}
}

// Len returns the number of stored blobs.
func (s *MemoryStore[K]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}

func (s *MemoryStore[K]) Find(ctx context.Context, id primitive.ObjectID) (*Blob[K], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, ok := s.files[id]
	if !ok {
		return nil, nil
	}
	return &Blob[K]{ID: id, File: slices.Clone(file)}, nil
}

func (s *MemoryStore[K]) Add(ctx context.Context, blob *Blob[K]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.files[blob.ID]; ok {
		return fmt.Errorf("insert into %s: %w", CollectionOf[K](), repository.ErrDuplicateKey)
	}
	s.files[blob.ID] = slices.Clone(blob.File)
	return nil
}

func (s *MemoryStore[K]) Update(ctx context.Context, blob *Blob[K]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.files[blob.ID]; !ok {
		return docstore.ErrNotFound
	}
	s.files[blob.ID] = slices.Clone(blob.File)
	return nil
}

func (s *MemoryStore[K]) Remove(ctx context.Context, blob *Blob[K]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.files[blob.ID]; !ok {
		return docstore.ErrNotFound
	}
	delete(s.files, blob.ID)
	return nil
}

func (s *MemoryStore[K]) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.files[id]
	return ok, nil
}
