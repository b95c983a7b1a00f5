package driven

import (
	"context"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
)

// Retriever ranks corpus documents against a query. Ranking is
// delegated to an external BM25 library; this port only carries
// documents in and scored documents out.
type Retriever interface {
	// Index adds documents to the ranked corpus.
	Index(ctx context.Context, docs []domain.Document) error

	// Retrieve returns up to topK documents in descending score order.
	Retrieve(ctx context.Context, query string, topK int) ([]domain.RetrievedDocument, error)

	// Count returns the number of indexed documents.
	Count() int

	// Reset discards the index so a fresh corpus can be loaded.
	Reset()

	// Close releases resources.
	Close() error
}
