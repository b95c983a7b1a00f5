package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errors := []error{
		ErrMissingQAService,
		ErrMissingSummariseService,
		ErrMissingIngestService,
		ErrInvalidPorts,
	}

	// Ensure all errors are unique
	seen := make(map[string]bool)
	for _, err := range errors {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrMissingQAService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingQAService.Error(), "qa service")
}

func TestErrMissingSummariseService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingSummariseService.Error(), "summarise service")
}

func TestErrMissingIngestService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingIngestService.Error(), "ingest service")
}

func TestErrInvalidPorts_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
