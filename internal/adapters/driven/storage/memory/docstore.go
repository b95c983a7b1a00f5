// Package memory provides the in-memory document store backing the
// corpus for the lifetime of a process.
package memory

import (
	"context"
	"sync"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// List preserves insertion order, which follows the split order the
// corpus was loaded in.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
	order     []string
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
	}
}

// Put stores a batch of documents. A known ID overwrites in place and
// keeps its original position.
func (s *DocumentStore) Put(_ context.Context, docs []domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range docs {
		if _, ok := s.documents[doc.ID]; !ok {
			s.order = append(s.order, doc.ID)
		}
		s.documents[doc.ID] = doc
	}
	return nil
}

// Get retrieves a document by ID.
func (s *DocumentStore) Get(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// List returns up to limit documents starting at offset, in insertion order.
func (s *DocumentStore) List(_ context.Context, limit, offset int) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset < 0 {
		offset = 0
	}
	if offset >= len(s.order) {
		return nil, nil
	}
	end := len(s.order)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	result := make([]domain.Document, 0, end-offset)
	for _, id := range s.order[offset:end] {
		result = append(result, s.documents[id])
	}
	return result, nil
}

// Count returns the number of stored documents.
func (s *DocumentStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents), nil
}

// Clear removes all documents.
func (s *DocumentStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = make(map[string]domain.Document)
	s.order = nil
	return nil
}

// Close releases resources. A no-op for the in-memory store.
func (s *DocumentStore) Close() error {
	return nil
}
