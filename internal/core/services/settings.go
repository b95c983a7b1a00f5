package services

import (
	"fmt"
	"strings"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driven"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyDatasetName    = "dataset.name"
	keyDatasetSport   = "dataset.sport"
	keyDatasetSplits  = "dataset.splits"
	keyRetrieverTopK  = "retriever.top_k"
	keyReaderModel    = "reader.model"
	keyReaderEndpoint = "reader.endpoint"
	keyReaderTopK     = "reader.top_k"
	keySummProvider   = "summariser.provider"
	keySummProfile    = "summariser.profile"
	keySummModel      = "summariser.model"
	keySummBaseURL    = "summariser.base_url"
	keySummAPIKey     = "summariser.api_key"
	keyMinAvailable   = "resources.min_available_mb"
	keyHFToken        = "huggingface.token"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	aiValidator driven.AIConfigValidator
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore, aiValidator driven.AIConfigValidator) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		aiValidator: aiValidator,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Dataset: domain.DatasetSettings{
			Name:   s.getString(keyDatasetName, defaults.Dataset.Name),
			Sport:  s.getString(keyDatasetSport, defaults.Dataset.Sport),
			Splits: s.getSplits(),
		},
		Retriever: domain.RetrieverSettings{
			TopK: s.getInt(keyRetrieverTopK, defaults.Retriever.TopK),
		},
		Reader: domain.ReaderSettings{
			Model:    s.getString(keyReaderModel, defaults.Reader.Model),
			Endpoint: s.configStore.GetString(keyReaderEndpoint), // No default - empty means the public endpoint
			TopK:     s.getInt(keyReaderTopK, defaults.Reader.TopK),
		},
		Summariser: domain.SummariserSettings{
			Provider: s.getProvider(keySummProvider, defaults.Summariser.Provider),
			Profile:  s.getProfile(keySummProfile, defaults.Summariser.Profile),
			Model:    s.configStore.GetString(keySummModel), // No default - profile or provider decides
			BaseURL:  s.configStore.GetString(keySummBaseURL),
			APIKey:   s.configStore.GetString(keySummAPIKey),
		},
		Resources: domain.ResourceSettings{
			MinAvailableMB: s.getUint(keyMinAvailable, defaults.Resources.MinAvailableMB),
		},
		HuggingFace: domain.HuggingFaceSettings{
			Token: s.configStore.GetString(keyHFToken),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	// Save dataset settings
	if err := s.configStore.Set(keyDatasetName, settings.Dataset.Name); err != nil {
		return fmt.Errorf("save dataset name: %w", err)
	}
	if err := s.configStore.Set(keyDatasetSport, settings.Dataset.Sport); err != nil {
		return fmt.Errorf("save dataset sport: %w", err)
	}
	if len(settings.Dataset.Splits) > 0 {
		splits := make([]string, 0, len(settings.Dataset.Splits))
		for _, split := range settings.Dataset.Splits {
			splits = append(splits, split.String())
		}
		if err := s.configStore.Set(keyDatasetSplits, splits); err != nil {
			return fmt.Errorf("save dataset splits: %w", err)
		}
	}

	// Save retriever settings
	if err := s.configStore.Set(keyRetrieverTopK, settings.Retriever.TopK); err != nil {
		return fmt.Errorf("save retriever top_k: %w", err)
	}

	// Save reader settings
	if err := s.configStore.Set(keyReaderModel, settings.Reader.Model); err != nil {
		return fmt.Errorf("save reader model: %w", err)
	}
	if err := s.configStore.Set(keyReaderEndpoint, settings.Reader.Endpoint); err != nil {
		return fmt.Errorf("save reader endpoint: %w", err)
	}
	if err := s.configStore.Set(keyReaderTopK, settings.Reader.TopK); err != nil {
		return fmt.Errorf("save reader top_k: %w", err)
	}

	// Save summariser settings
	if err := s.configStore.Set(keySummProvider, settings.Summariser.Provider.String()); err != nil {
		return fmt.Errorf("save summariser provider: %w", err)
	}
	if err := s.configStore.Set(keySummProfile, settings.Summariser.Profile); err != nil {
		return fmt.Errorf("save summariser profile: %w", err)
	}
	if err := s.configStore.Set(keySummModel, settings.Summariser.Model); err != nil {
		return fmt.Errorf("save summariser model: %w", err)
	}
	if err := s.configStore.Set(keySummBaseURL, settings.Summariser.BaseURL); err != nil {
		return fmt.Errorf("save summariser base_url: %w", err)
	}
	if settings.Summariser.APIKey != "" {
		if err := s.configStore.Set(keySummAPIKey, settings.Summariser.APIKey); err != nil {
			return fmt.Errorf("save summariser api_key: %w", err)
		}
	}

	// Save resource settings
	if err := s.configStore.Set(keyMinAvailable, int(settings.Resources.MinAvailableMB)); err != nil {
		return fmt.Errorf("save min available memory: %w", err)
	}

	return nil
}

// SetSport updates the dataset configuration to load.
func (s *SettingsService) SetSport(sport string) error {
	sport = strings.TrimSpace(strings.ToLower(sport))
	if sport == "" {
		return fmt.Errorf("sport is required")
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Dataset.Sport = sport
	return s.Save(settings)
}

// SetSummariserProvider configures the summariser provider.
func (s *SettingsService) SetSummariserProvider(provider domain.AIProvider, model, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("invalid summariser provider: %s", provider)
	}

	// Validate API key if required
	if provider.RequiresAPIKey() && apiKey == "" {
		return fmt.Errorf("API key required for %s", provider)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Summariser.Provider = provider

	// Set model - use provided or default. The Hugging Face provider
	// takes its model from the active profile instead.
	if model != "" {
		settings.Summariser.Model = model
	} else {
		defaults := domain.DefaultSummariserModels()
		settings.Summariser.Model = defaults[provider]
	}

	// Set base URL based on provider type
	if provider.IsLocal() {
		// Local providers need a base URL
		if settings.Summariser.BaseURL == "" {
			settings.Summariser.BaseURL = "http://localhost:11434"
		}
	} else {
		// Hosted providers don't need a custom base URL
		settings.Summariser.BaseURL = ""
	}

	// Set API key
	settings.Summariser.APIKey = apiKey

	return s.Save(settings)
}

// SetSummaryProfile updates the default summary profile.
func (s *SettingsService) SetSummaryProfile(name string) error {
	if _, ok := domain.SummaryProfiles()[name]; !ok {
		return fmt.Errorf("unknown summary profile: %s", name)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Summariser.Profile = name
	return s.Save(settings)
}

// SetReaderModel updates the hosted question-answering model.
func (s *SettingsService) SetReaderModel(model string) error {
	model = strings.TrimSpace(model)
	if model == "" {
		model = domain.DefaultReaderModel
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Reader.Model = model
	return s.Save(settings)
}

// SetToken stores the Hugging Face API token.
// An empty token clears the stored one.
func (s *SettingsService) SetToken(token string) error {
	return s.configStore.Set(keyHFToken, strings.TrimSpace(token))
}

// Token returns the stored Hugging Face API token.
func (s *SettingsService) Token() (string, error) {
	return s.configStore.GetString(keyHFToken), nil
}

// Validate checks if current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if settings.Dataset.Name == "" {
		return fmt.Errorf("dataset name is required")
	}
	if settings.Dataset.Sport == "" {
		return fmt.Errorf("dataset sport is required")
	}

	if !settings.Summariser.Provider.IsValid() {
		return fmt.Errorf("invalid summariser provider: %s", settings.Summariser.Provider)
	}
	if !settings.Summariser.IsConfigured() {
		return fmt.Errorf(
			"summariser provider %q requires an API key",
			settings.Summariser.Provider,
		)
	}

	if _, ok := domain.SummaryProfiles()[settings.Summariser.Profile]; !ok {
		return fmt.Errorf("unknown summary profile: %s", settings.Summariser.Profile)
	}

	return nil
}

// ValidateSummariserConfig validates the current summariser
// configuration by pinging the provider.
func (s *SettingsService) ValidateSummariserConfig() error {
	if s.aiValidator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.aiValidator.ValidateSummariser(&settings.Summariser, settings.HuggingFace.Token)
}

// ValidateReaderConfig validates the current reader configuration by
// warming up the hosted model.
func (s *SettingsService) ValidateReaderConfig() error {
	if s.aiValidator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.aiValidator.ValidateReader(&settings.Reader, settings.HuggingFace.Token)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getUint(key string, defaultVal uint64) uint64 {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return uint64(val)
}

func (s *SettingsService) getProvider(key string, defaultVal domain.AIProvider) domain.AIProvider {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	provider := domain.AIProvider(val)
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}

func (s *SettingsService) getProfile(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	if _, ok := domain.SummaryProfiles()[val]; !ok {
		return defaultVal
	}
	return val
}

// getSplits reads the configured split order, dropping anything the
// dataset does not publish. Empty means the default order.
func (s *SettingsService) getSplits() []domain.DatasetSplit {
	values := s.configStore.GetStringSlice(keyDatasetSplits)
	if len(values) == 0 {
		return nil
	}
	splits := make([]domain.DatasetSplit, 0, len(values))
	for _, v := range values {
		split := domain.DatasetSplit(strings.TrimSpace(strings.ToLower(v)))
		if split.IsValid() {
			splits = append(splits, split)
		}
	}
	return splits
}
