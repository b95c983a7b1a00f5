package driven

import (
	"context"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
)

// DocumentStore holds the deduplicated corpus in memory for the
// lifetime of the process. Uniqueness by document ID is guaranteed
// upstream by ingest; Put with a known ID overwrites.
type DocumentStore interface {
	// Put stores a batch of documents.
	Put(ctx context.Context, docs []domain.Document) error

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// List returns up to limit documents starting at offset, in
	// insertion order.
	List(ctx context.Context, limit, offset int) ([]domain.Document, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)

	// Clear removes all documents.
	Clear(ctx context.Context) error

	// Close releases resources.
	Close() error
}
