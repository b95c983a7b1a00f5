// Package domain defines the core business entities for Courtside.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A deduplicated corpus passage
//   - DatasetRecord: A raw dataset row before deduplication
//   - Answer: A span extracted from a passage by the reader
//   - Summary: Generated summary text with sentence points
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
