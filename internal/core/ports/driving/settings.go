package driving

import "github.com/courtside-labs/courtside-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetSport updates the dataset configuration to load.
	SetSport(sport string) error

	// SetSummariserProvider configures the summariser provider.
	SetSummariserProvider(provider domain.AIProvider, model, apiKey string) error

	// SetSummaryProfile updates the default summary profile.
	SetSummaryProfile(name string) error

	// SetReaderModel updates the hosted question-answering model.
	SetReaderModel(model string) error

	// SetToken stores the Hugging Face API token.
	SetToken(token string) error

	// Token returns the stored Hugging Face API token.
	Token() (string, error)

	// Validate checks if current settings are usable.
	Validate() error

	// ValidateSummariserConfig validates the current summariser
	// configuration by pinging the provider.
	ValidateSummariserConfig() error

	// ValidateReaderConfig validates the current reader configuration
	// by warming up the hosted model.
	ValidateReaderConfig() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
