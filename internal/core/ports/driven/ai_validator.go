package driven

import "github.com/courtside-labs/courtside-cli/internal/core/domain"

// AIConfigValidator validates inference provider configurations.
// Implementations verify that configurations are valid by testing
// connectivity to the underlying services.
type AIConfigValidator interface {
	// ValidateSummariser validates a summariser configuration by pinging
	// the provider. Returns nil if there is nothing to validate.
	// The token authenticates hosted providers and may be empty.
	ValidateSummariser(config *domain.SummariserSettings, token string) error

	// ValidateReader validates the reader configuration by warming up
	// the hosted question-answering model.
	ValidateReader(config *domain.ReaderSettings, token string) error
}
