package driving

import (
	"context"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
)

// IngestService builds the queryable corpus: fetch, deduplicate,
// store, index, wire the pipeline.
type IngestService interface {
	// Ingest loads the configured corpus. Safe to call again after a
	// failure; a second call while a run is in progress returns the
	// first run's outcome.
	Ingest(ctx context.Context, opts IngestOptions) (*domain.IngestReport, error)

	// Status returns a snapshot of the current run for progress UIs.
	Status() domain.IngestStatus

	// Ready reports whether the corpus is queryable.
	Ready() bool

	// DocumentCount returns the size of the loaded corpus.
	DocumentCount(ctx context.Context) (int, error)
}

// IngestOptions configures a corpus load.
type IngestOptions struct {
	// Refresh bypasses the dataset cache and fetches anew.
	Refresh bool

	// SkipMemoryCheck bypasses the available-memory gate.
	SkipMemoryCheck bool
}
