// Package driving defines interfaces that external actors (CLI, TUI,
// MCP) use to interact with core services. These are the "driving"
// ports in hexagonal architecture terminology - they drive the
// application.
//
// Implementations live in internal/core/services: IngestService builds
// the corpus, QAService and SummariseService run the pipelines, and
// SettingsService and DocumentService back the management surfaces.
package driving
