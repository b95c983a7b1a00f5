package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAIProvider_IsValid tests provider validation
func TestAIProvider_IsValid(t *testing.T) {
	assert.True(t, AIProviderHuggingFace.IsValid())
	assert.True(t, AIProviderOllama.IsValid())
	assert.True(t, AIProviderOpenAI.IsValid())
	assert.False(t, AIProvider("gemini").IsValid())
	assert.False(t, AIProvider("").IsValid())
}

// TestAIProvider_RequiresAPIKey tests key requirements per provider
func TestAIProvider_RequiresAPIKey(t *testing.T) {
	assert.False(t, AIProviderHuggingFace.RequiresAPIKey(), "HF accepts anonymous calls")
	assert.False(t, AIProviderOllama.RequiresAPIKey())
	assert.True(t, AIProviderOpenAI.RequiresAPIKey())
}

// TestSummariserSettings_IsConfigured tests provider readiness checks
func TestSummariserSettings_IsConfigured(t *testing.T) {
	tests := []struct {
		name     string
		settings SummariserSettings
		expected bool
	}{
		{
			name:     "HuggingFace without key",
			settings: SummariserSettings{Provider: AIProviderHuggingFace},
			expected: true,
		},
		{
			name:     "OpenAI without key",
			settings: SummariserSettings{Provider: AIProviderOpenAI},
			expected: false,
		},
		{
			name:     "OpenAI with key",
			settings: SummariserSettings{Provider: AIProviderOpenAI, APIKey: "sk-test"},
			expected: true,
		},
		{
			name:     "Unknown provider",
			settings: SummariserSettings{Provider: "gemini"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.settings.IsConfigured())
		})
	}
}

// TestDefaultAppSettings tests shipped defaults
func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, "PedroCJardim/QASports", s.Dataset.Name)
	assert.Equal(t, "basketball", s.Dataset.Sport)
	assert.Equal(t, DefaultRetrieverTopK, s.Retriever.TopK)
	assert.Equal(t, DefaultReaderModel, s.Reader.Model)
	assert.Equal(t, DefaultReaderTopK, s.Reader.TopK)
	assert.Equal(t, AIProviderHuggingFace, s.Summariser.Provider)
	assert.Equal(t, ProfileDistilBART, s.Summariser.Profile)
	assert.Equal(t, uint64(DefaultMinAvailableMB), s.Resources.MinAvailableMB)
	assert.Empty(t, s.HuggingFace.Token)
}

// TestAppSettings_DatasetRef tests ref assembly with overrides
func TestAppSettings_DatasetRef(t *testing.T) {
	s := DefaultAppSettings()
	s.Dataset.Sport = "soccer"

	ref := s.DatasetRef()

	assert.Equal(t, "PedroCJardim/QASports", ref.Name)
	assert.Equal(t, "soccer", ref.Sport)
	assert.Len(t, ref.Splits, 3)
}

// TestSummaryProfiles tests the built-in model profiles
func TestSummaryProfiles(t *testing.T) {
	profiles := SummaryProfiles()

	distilbart, ok := profiles[ProfileDistilBART]
	assert.True(t, ok)
	assert.Equal(t, "sshleifer/distilbart-cnn-12-6", distilbart.Model)
	assert.Equal(t, 130, distilbart.MaxLength)
	assert.Equal(t, 30, distilbart.MinLength)

	bart, ok := profiles[ProfileBART]
	assert.True(t, ok)
	assert.Equal(t, "facebook/bart-large-cnn", bart.Model)
	assert.Equal(t, 200, bart.MaxLength)
	assert.Equal(t, 50, bart.MinLength)
}
