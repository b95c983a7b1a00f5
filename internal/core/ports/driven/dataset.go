package driven

import (
	"context"
	"errors"
	"fmt"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
)

// DatasetSource streams raw rows from a hosted dataset.
// The only implementation talks to the Hugging Face datasets server.
type DatasetSource interface {
	// Validate checks the dataset exists and the split is servable.
	// Makes a lightweight probe request.
	Validate(ctx context.Context, ref domain.DatasetRef) error

	// FetchSplit streams all rows of one split in server order.
	// Returns channels for records and errors. On successful
	// completion a FetchComplete sentinel is sent on the error
	// channel before both channels close.
	FetchSplit(ctx context.Context, ref domain.DatasetRef, split domain.DatasetSplit) (<-chan domain.DatasetRecord, <-chan error)

	// SplitSize returns the total row count of a split.
	SplitSize(ctx context.Context, ref domain.DatasetRef, split domain.DatasetSplit) (int, error)

	// Close releases resources.
	Close() error
}

// FetchComplete is sent on the error channel when a split fetch
// finishes successfully. Carries the number of rows streamed.
type FetchComplete struct {
	Rows int
}

// Error implements the error interface.
// This allows FetchComplete to be sent on the error channel.
func (c FetchComplete) Error() string {
	return fmt.Sprintf("fetch complete: %d rows", c.Rows)
}

// IsFetchComplete checks if an error is actually a successful completion.
// Returns the FetchComplete and true if it is, nil and false otherwise.
func IsFetchComplete(err error) (*FetchComplete, bool) {
	var fc *FetchComplete
	if errors.As(err, &fc) {
		return fc, true
	}
	return nil, false
}
