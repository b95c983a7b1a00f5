package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driving"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "courtside", rootCmd.Use)
}

func TestRootCmd_Long(t *testing.T) {
	assert.Contains(t, rootCmd.Long, "QASports")
	assert.Contains(t, rootCmd.Long, "two-stage pipeline")
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	assert.NotNil(t, flag, "verbose flag should exist")
	assert.Equal(t, "v", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

func TestSetServices(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	services := &Services{
		QA:        &mockQAService{},
		Summarise: &mockSummariseService{},
		Ingest:    &mockIngestService{},
		Document:  &mockDocumentService{},
		Settings:  newMockSettingsService(),
		SummariserForCLI: func(_ domain.AIProvider) (driving.SummariseService, error) {
			return &mockSummariseService{}, nil
		},
	}

	SetServices(services)

	assert.Equal(t, services.QA, qaService)
	assert.Equal(t, services.Summarise, summariseService)
	assert.Equal(t, services.Ingest, ingestService)
	assert.Equal(t, services.Document, documentService)
	assert.Equal(t, services.Settings, settingsService)
	assert.NotNil(t, summariserFactory)
}

func TestSetServices_NilIsIgnored(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	before := qaService
	SetServices(nil)

	assert.Equal(t, before, qaService)
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)

	// Empty values keep the current version
	SetVersion("")
	assert.Equal(t, "1.2.3", version)
}
