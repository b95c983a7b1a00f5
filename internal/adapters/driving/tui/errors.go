package tui

import "errors"

// ErrMissingQAService is returned when the QA service is not provided.
var ErrMissingQAService = errors.New("tui: qa service is required")

// ErrMissingSummariseService is returned when the summarise service is not provided.
var ErrMissingSummariseService = errors.New("tui: summarise service is required")

// ErrMissingIngestService is returned when the ingest service is not provided.
var ErrMissingIngestService = errors.New("tui: ingest service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
