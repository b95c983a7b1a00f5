package driven

import (
	"context"
	"time"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
)

// DatasetCache persists a deduplicated corpus between runs so repeat
// invocations skip the network fetch. Backed by SQLite.
type DatasetCache interface {
	// Load returns the cached corpus for the reference.
	// Returns domain.ErrCacheMiss unless a complete fetch is recorded.
	Load(ctx context.Context, ref domain.DatasetRef) ([]domain.Document, error)

	// Store replaces the cached corpus for the reference and records
	// the fetch as complete.
	Store(ctx context.Context, ref domain.DatasetRef, docs []domain.Document) error

	// Info returns when the cached corpus was fetched and its size.
	// Returns domain.ErrCacheMiss when nothing is cached.
	Info(ctx context.Context, ref domain.DatasetRef) (CacheInfo, error)

	// Invalidate removes the cached corpus for the reference.
	Invalidate(ctx context.Context, ref domain.DatasetRef) error

	// Close releases resources.
	Close() error
}

// CacheInfo describes a cached corpus.
type CacheInfo struct {
	// FetchedAt is when the complete fetch finished.
	FetchedAt time.Time

	// Documents is the cached corpus size.
	Documents int
}
