package driven

import "context"

// SummariserService generates abstractive summaries.
// Generation is performed entirely by an external pretrained model;
// implementations cover the hosted Hugging Face Inference API and
// prompt-based providers (Ollama, OpenAI).
type SummariserService interface {
	// Summarise condenses the text within the profile's length bounds.
	Summarise(ctx context.Context, text string, profile SummariseParams) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// SummariseParams carries the resolved length bounds for one call.
// Token-based bounds map directly onto the hosted models; prompt-based
// providers approximate them in the instruction.
type SummariseParams struct {
	// Model is the model to run (hosted providers).
	Model string

	// MaxLength caps the summary, in model tokens.
	MaxLength int

	// MinLength floors the summary, in model tokens.
	MinLength int
}
