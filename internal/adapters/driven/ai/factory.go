// Package ai provides factory functions for creating the model-backed
// service adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	readerhf "github.com/courtside-labs/courtside-cli/internal/adapters/driven/reader/hf"
	summariserhf "github.com/courtside-labs/courtside-cli/internal/adapters/driven/summariser/hf"
	summariserollama "github.com/courtside-labs/courtside-cli/internal/adapters/driven/summariser/ollama"
	summariseropenai "github.com/courtside-labs/courtside-cli/internal/adapters/driven/summariser/openai"
	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for lightweight connectivity checks.
const pingTimeout = 5 * time.Second

// warmupTimeout is the maximum time to wait for hosted-model warm-up.
// The inference API blocks the warm-up call until the model is loaded.
const warmupTimeout = 120 * time.Second

// CreateReaderService creates the hosted question-answering reader.
// The token authenticates against the inference API and may be empty.
func CreateReaderService(settings *domain.ReaderSettings, token string) driven.ReaderService {
	if settings == nil {
		settings = &domain.ReaderSettings{}
	}

	return readerhf.NewReaderService(readerhf.ReaderConfig{
		BaseURL: settings.Endpoint,
		Model:   settings.Model,
		Token:   token,
	})
}

// CreateSummariserService creates the appropriate summariser service
// based on settings. An empty provider falls back to the hosted
// Hugging Face models. Prompt-based providers pick up the prompt store
// when one is given.
func CreateSummariserService(settings *domain.SummariserSettings, token string, prompts driven.PromptStore) (driven.SummariserService, error) {
	if settings == nil {
		settings = &domain.SummariserSettings{}
	}

	provider := settings.Provider
	if provider == "" {
		provider = domain.AIProviderHuggingFace
	}

	var svc driven.SummariserService
	switch provider {
	case domain.AIProviderHuggingFace:
		svc = summariserhf.NewSummariserService(summariserhf.SummariserConfig{
			Model: settings.Model,
			Token: token,
		})

	case domain.AIProviderOllama:
		svc = summariserollama.NewSummariserService(summariserollama.SummariserConfig{
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	case domain.AIProviderOpenAI:
		openaiSvc, err := summariseropenai.NewSummariserService(summariseropenai.SummariserConfig{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})
		if err != nil {
			return nil, err
		}
		svc = openaiSvc

	default:
		return nil, fmt.Errorf("unsupported summariser provider: %s", settings.Provider)
	}

	if prompts != nil {
		if aware, ok := svc.(driven.PromptStoreAware); ok {
			aware.SetPromptStore(prompts)
		}
	}

	return svc, nil
}

// CreateAndValidateSummariserService creates a summariser service and
// validates connectivity. Returns the service if successful, or an
// error with guidance.
func CreateAndValidateSummariserService(settings *domain.SummariserSettings, token string, prompts driven.PromptStore) (driven.SummariserService, error) {
	svc, err := CreateSummariserService(settings, token, prompts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Run 'courtside settings wizard' to fix",
			domain.ErrSummariserUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), validationTimeout(settings))
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). Run 'courtside settings wizard' to fix",
			domain.ErrSummariserUnavailable, err)
	}

	return svc, nil
}

// ValidateSummariserConfig validates a summariser configuration by creating a service and pinging it.
// This is intended for use in the settings wizard to validate credentials on configuration.
func ValidateSummariserConfig(settings *domain.SummariserSettings, token string) error {
	if settings == nil {
		return nil
	}

	svc, err := CreateSummariserService(settings, token, nil)
	if err != nil {
		return err
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), validationTimeout(settings))
	defer cancel()
	return svc.Ping(ctx)
}

// ValidateReaderConfig validates the reader configuration by warming up
// the hosted model. The first call against a cold model can take well
// over a minute, so this runs on the warm-up budget.
func ValidateReaderConfig(settings *domain.ReaderSettings, token string) error {
	svc := CreateReaderService(settings, token)
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), warmupTimeout)
	defer cancel()
	return svc.Ping(ctx)
}

// validationTimeout returns the ping budget for a summariser provider.
// The hosted provider's ping doubles as warm-up, so it gets the longer
// window.
func validationTimeout(settings *domain.SummariserSettings) time.Duration {
	if settings == nil || settings.Provider == "" || settings.Provider == domain.AIProviderHuggingFace {
		return warmupTimeout
	}
	return pingTimeout
}
