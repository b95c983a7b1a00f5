package huggingface

import (
	"context"
	"fmt"
	"time"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driven"
	"github.com/courtside-labs/courtside-cli/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.DatasetSource = (*Source)(nil)

// Config holds configuration for the dataset source.
type Config struct {
	// BaseURL is the datasets server URL (default: the public server).
	BaseURL string

	// Token authenticates against gated datasets. Empty is fine for
	// public datasets.
	Token string

	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration

	// PageSize is the rows page size (default and maximum: 100).
	PageSize int

	// RequestsPerSecond caps the request rate (default: 5).
	RequestsPerSecond float64
}

// Source streams dataset rows from the datasets server.
type Source struct {
	client   *Client
	pageSize int
}

// NewSource creates a new dataset source.
func NewSource(cfg Config) *Source {
	if cfg.PageSize <= 0 || cfg.PageSize > MaxPageSize {
		cfg.PageSize = MaxPageSize
	}

	return &Source{
		client:   NewClient(cfg),
		pageSize: cfg.PageSize,
	}
}

// Validate checks the dataset exists and the first split is servable.
func (s *Source) Validate(ctx context.Context, ref domain.DatasetRef) error {
	servable, err := s.client.IsValid(ctx, ref.Name)
	if err != nil {
		if IsNotFound(err) {
			return fmt.Errorf("%w: dataset %q not found", domain.ErrDatasetUnavailable, ref.Name)
		}
		return fmt.Errorf("%w: %w", domain.ErrDatasetUnavailable, err)
	}
	if !servable {
		return fmt.Errorf("%w: dataset %q is not servable", domain.ErrDatasetUnavailable, ref.Name)
	}

	if len(ref.Splits) == 0 {
		return nil
	}

	// A one-row probe catches a wrong sport configuration early.
	if _, err := s.client.Rows(ctx, ref.Name, ref.Sport, ref.Splits[0].String(), 0, 1); err != nil {
		if IsNotFound(err) {
			return fmt.Errorf("%w: configuration %q has no %s split",
				domain.ErrDatasetUnavailable, ref.Sport, ref.Splits[0])
		}
		return fmt.Errorf("%w: %w", domain.ErrDatasetUnavailable, err)
	}

	return nil
}

// FetchSplit streams all rows of one split in server order. On
// successful completion a FetchComplete sentinel is sent on the error
// channel before both channels close.
func (s *Source) FetchSplit(ctx context.Context, ref domain.DatasetRef, split domain.DatasetSplit) (<-chan domain.DatasetRecord, <-chan error) {
	records := make(chan domain.DatasetRecord)
	errs := make(chan error, 1)

	go func() {
		defer close(records)
		defer close(errs)

		sent := 0
		offset := 0
		retries := 0
		for {
			select {
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			default:
			}

			page, err := s.client.Rows(ctx, ref.Name, ref.Sport, split.String(), offset, s.pageSize)
			if err != nil {
				// The limiter recorded the Retry-After backoff, so the
				// retry waits before hitting the server again.
				if IsRateLimited(err) && retries < MaxRetries {
					retries++
					logger.Debug("dataset: rate limited at offset %d, retry %d/%d", offset, retries, MaxRetries)
					continue
				}
				errs <- fmt.Errorf("fetch rows at offset %d: %w", offset, err)
				return
			}
			retries = 0

			for _, row := range page.Rows {
				record := domain.DatasetRecord{
					ContextID: row.Row.ContextID,
					Context:   row.Row.Context,
					Title:     row.Row.ContextTitle,
					URL:       row.Row.URL,
					Split:     split,
				}
				select {
				case <-ctx.Done():
					errs <- ctx.Err()
					return
				case records <- record:
					sent++
				}
			}

			offset += len(page.Rows)
			if len(page.Rows) == 0 || offset >= page.NumRowsTotal {
				break
			}
		}

		logger.Debug("dataset: split %s streamed %d rows", split, sent)
		errs <- &driven.FetchComplete{Rows: sent}
	}()

	return records, errs
}

// SplitSize returns the total row count of a split.
func (s *Source) SplitSize(ctx context.Context, ref domain.DatasetRef, split domain.DatasetSplit) (int, error) {
	page, err := s.client.Rows(ctx, ref.Name, ref.Sport, split.String(), 0, 1)
	if err != nil {
		return 0, fmt.Errorf("split size: %w", err)
	}
	return page.NumRowsTotal, nil
}

// Close releases resources.
func (s *Source) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
