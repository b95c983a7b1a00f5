package driven

import "context"

// ResourceProbe reports host resource availability.
// Model work is gated on available memory before it starts.
type ResourceProbe interface {
	// AvailableMemory returns the bytes of memory currently available.
	AvailableMemory(ctx context.Context) (uint64, error)
}
