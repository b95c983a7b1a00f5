package driven

import (
	"context"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
)

// ReaderService extracts answer spans from candidate passages.
// Extraction is performed entirely by an external pretrained
// question-answering model behind an inference API.
type ReaderService interface {
	// Extract runs the question against each candidate document and
	// returns the extracted spans merged across documents, sorted by
	// descending score. At most opts.TopK spans are returned.
	Extract(ctx context.Context, question string, docs []domain.Document, opts ExtractOptions) ([]domain.Answer, error)

	// ModelName returns the name of the reader model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request. Used during pipeline wiring as the warm-up call.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// ExtractOptions configures span extraction.
type ExtractOptions struct {
	// TopK is the maximum number of answers to return overall.
	TopK int

	// PerDocument is how many candidate spans to request per passage.
	// Zero means one span per passage.
	PerDocument int
}
