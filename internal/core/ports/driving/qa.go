package driving

import (
	"context"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
)

// QAService answers natural-language questions.
type QAService interface {
	// Ask runs the retrieve-and-read pipeline over the corpus.
	// Returns domain.ErrNoAnswer when the pipeline produces no spans;
	// surfaces render any failure as the generic no-answer message.
	Ask(ctx context.Context, question string, opts domain.AskOptions) (*domain.AskResult, error)

	// AskContext extracts an answer from a user-supplied passage,
	// skipping retrieval entirely.
	AskContext(ctx context.Context, question, context string) (*domain.AskResult, error)
}
