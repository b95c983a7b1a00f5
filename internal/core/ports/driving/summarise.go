package driving

import (
	"context"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
)

// SummariseService condenses user-supplied text.
type SummariseService interface {
	// Summarise generates a summary and splits it into sentence
	// points. Empty input returns domain.ErrInvalidInput.
	Summarise(ctx context.Context, text string, opts domain.SummaryOptions) (*domain.Summary, error)

	// Profiles returns the built-in model profiles in display order.
	Profiles() []domain.SummaryProfile
}
