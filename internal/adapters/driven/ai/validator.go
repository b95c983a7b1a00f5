package ai

import (
	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driven"
)

// Ensure ConfigValidator implements the interface.
var _ driven.AIConfigValidator = (*ConfigValidator)(nil)

// ConfigValidator validates inference provider configurations.
type ConfigValidator struct{}

// NewConfigValidator creates a new provider config validator.
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{}
}

// ValidateSummariser validates a summariser configuration by pinging the provider.
func (v *ConfigValidator) ValidateSummariser(config *domain.SummariserSettings, token string) error {
	return ValidateSummariserConfig(config, token)
}

// ValidateReader validates the reader configuration by warming up the hosted model.
func (v *ConfigValidator) ValidateReader(config *domain.ReaderSettings, token string) error {
	return ValidateReaderConfig(config, token)
}
