package summarise

import "errors"

// Error definitions for the summarise view.
var (
	// ErrNoSummariseService indicates that no summarise service was provided.
	ErrNoSummariseService = errors.New("summarise service is required")
)
