package driving

import (
	"context"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
)

// DocumentService exposes the loaded corpus for browsing.
type DocumentService interface {
	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// List returns up to limit documents starting at offset.
	List(ctx context.Context, limit, offset int) ([]domain.Document, error)

	// Count returns the size of the loaded corpus.
	Count(ctx context.Context) (int, error)

	// Open opens the document's source URL in the default browser.
	Open(ctx context.Context, id string) error
}
