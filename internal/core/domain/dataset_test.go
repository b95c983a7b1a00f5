package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDatasetSplit_IsValid tests split validation
func TestDatasetSplit_IsValid(t *testing.T) {
	assert.True(t, SplitValidation.IsValid())
	assert.True(t, SplitTrain.IsValid())
	assert.True(t, SplitTest.IsValid())
	assert.False(t, DatasetSplit("dev").IsValid())
	assert.False(t, DatasetSplit("").IsValid())
}

// TestDefaultDatasetRef tests the shipped corpus reference
func TestDefaultDatasetRef(t *testing.T) {
	ref := DefaultDatasetRef()

	assert.Equal(t, "PedroCJardim/QASports", ref.Name)
	assert.Equal(t, "basketball", ref.Sport)
	// Dedup keeps the first occurrence, so the split order matters.
	assert.Equal(t, []DatasetSplit{SplitValidation, SplitTrain, SplitTest}, ref.Splits)
}

// TestDatasetRef_Key tests cache key assembly
func TestDatasetRef_Key(t *testing.T) {
	ref := DatasetRef{Name: "PedroCJardim/QASports", Sport: "soccer"}
	assert.Equal(t, "PedroCJardim/QASports/soccer", ref.Key())
}

// TestDatasetRef_Corpus tests the document source name
func TestDatasetRef_Corpus(t *testing.T) {
	assert.Equal(t, "QASports", DefaultDatasetRef().Corpus())
	assert.Equal(t, "local-corpus", DatasetRef{Name: "local-corpus"}.Corpus())
}

// TestIngestStage_Description tests the progress lines shown per stage
func TestIngestStage_Description(t *testing.T) {
	tests := []struct {
		stage    IngestStage
		expected string
	}{
		{StageDownloading, "Downloading dataset..."},
		{StageIndexing, "Indexing documents..."},
		{StagePipeline, "Creating pipeline..."},
		{StageReady, "Ready"},
		{StageFailed, "Failed"},
		{IngestStage("bogus"), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.stage.Description())
		})
	}
}
