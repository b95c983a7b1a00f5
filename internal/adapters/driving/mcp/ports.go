package mcp

import (
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// QA answers questions over the corpus or a supplied passage.
	QA driving.QAService

	// Summarise condenses user-supplied text.
	Summarise driving.SummariseService

	// Ingest builds the corpus before the first corpus question.
	Ingest driving.IngestService

	// Document exposes the loaded corpus for browsing.
	Document driving.DocumentService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.QA == nil {
		return ErrMissingQAService
	}
	// Summarise, Ingest and Document are optional; their tools and
	// resources degrade gracefully when absent.
	return nil
}
