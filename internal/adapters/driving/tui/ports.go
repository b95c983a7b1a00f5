// Package tui provides an interactive terminal user interface for courtside.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// QA answers questions over the corpus and pasted contexts.
	QA driving.QAService

	// Summarise condenses user-supplied text.
	Summarise driving.SummariseService

	// Ingest builds the corpus and reports its readiness.
	Ingest driving.IngestService

	// Document exposes the loaded corpus for browsing.
	Document driving.DocumentService

	// Settings manages application settings.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	qa driving.QAService,
	summarise driving.SummariseService,
	ingest driving.IngestService,
	document driving.DocumentService,
) *Ports {
	return &Ports{
		QA:        qa,
		Summarise: summarise,
		Ingest:    ingest,
		Document:  document,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.QA == nil {
		return ErrMissingQAService
	}
	if p.Summarise == nil {
		return ErrMissingSummariseService
	}
	if p.Ingest == nil {
		return ErrMissingIngestService
	}
	return nil
}
