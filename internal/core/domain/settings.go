package domain

const unknownDescription = "Unknown"

// AIProvider identifies an inference provider for the reader or summariser.
type AIProvider string

// Available AI providers.
const (
	// AIProviderHuggingFace is the hosted Hugging Face Inference API.
	AIProviderHuggingFace AIProvider = "huggingface"

	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is the OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderHuggingFace, AIProviderOllama, AIProviderOpenAI:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
// The Hugging Face API accepts anonymous calls at reduced rate limits,
// so a key is recommended but not required.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI
}

// IsLocal returns true if this provider runs locally.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderHuggingFace:
		return "Hugging Face (hosted inference)"
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	default:
		return unknownDescription
	}
}

// DatasetSettings holds corpus selection configuration.
type DatasetSettings struct {
	// Name is the hosted dataset identifier (owner/name).
	Name string

	// Sport is the dataset configuration to load.
	Sport string

	// Splits restricts which partitions are ingested, in order.
	// Empty means the default order.
	Splits []DatasetSplit
}

// RetrieverSettings holds first-stage retrieval configuration.
type RetrieverSettings struct {
	// TopK is how many documents retrieval hands to the reader.
	TopK int
}

// ReaderSettings holds extractive reader configuration.
type ReaderSettings struct {
	// Model is the hosted question-answering model.
	Model string

	// Endpoint overrides the inference API base URL. Empty means the
	// public endpoint.
	Endpoint string

	// TopK is how many answers the pipeline keeps.
	TopK int
}

// SummariserSettings holds summariser provider configuration.
type SummariserSettings struct {
	// Provider is the summarisation service provider.
	Provider AIProvider

	// Profile selects the default built-in model profile.
	Profile string

	// Model overrides the profile's model (ollama/openai providers).
	Model string

	// BaseURL is the API endpoint (for Ollama).
	BaseURL string

	// APIKey is the API key (for OpenAI).
	APIKey string
}

// IsConfigured returns true if the summariser provider is set up.
func (s SummariserSettings) IsConfigured() bool {
	if !s.Provider.IsValid() {
		return false
	}
	if s.Provider.RequiresAPIKey() && s.APIKey == "" {
		return false
	}
	return true
}

// ResourceSettings holds the memory gate configuration.
type ResourceSettings struct {
	// MinAvailableMB is the available-memory floor required before
	// model work starts.
	MinAvailableMB uint64
}

// HuggingFaceSettings holds the Hugging Face API token.
type HuggingFaceSettings struct {
	// Token authorises the Inference API and raises dataset-server
	// rate limits. Empty means anonymous access.
	Token string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Dataset selects the corpus.
	Dataset DatasetSettings

	// Retriever holds first-stage retrieval settings.
	Retriever RetrieverSettings

	// Reader holds extractive reader settings.
	Reader ReaderSettings

	// Summariser holds summariser provider settings.
	Summariser SummariserSettings

	// Resources holds the memory gate settings.
	Resources ResourceSettings

	// HuggingFace holds the API token.
	HuggingFace HuggingFaceSettings
}

// Defaults mirror the models and limits the demos shipped with.
const (
	// DefaultRetrieverTopK is how many documents retrieval returns.
	DefaultRetrieverTopK = 10

	// DefaultReaderTopK is how many answers the pipeline keeps.
	DefaultReaderTopK = 3

	// DefaultReaderModel is the extractive question-answering model.
	DefaultReaderModel = "deepset/roberta-base-squad2"

	// DefaultMinAvailableMB is the available-memory floor.
	DefaultMinAvailableMB = 500
)

// DefaultAppSettings returns settings with sensible defaults.
// Everything works out of the box with anonymous Hugging Face access;
// a token raises rate limits and speeds up cold model loads.
func DefaultAppSettings() AppSettings {
	ref := DefaultDatasetRef()
	return AppSettings{
		Dataset: DatasetSettings{
			Name:  ref.Name,
			Sport: ref.Sport,
		},
		Retriever: RetrieverSettings{
			TopK: DefaultRetrieverTopK,
		},
		Reader: ReaderSettings{
			Model: DefaultReaderModel,
			TopK:  DefaultReaderTopK,
		},
		Summariser: SummariserSettings{
			Provider: AIProviderHuggingFace,
			Profile:  ProfileDistilBART,
		},
		Resources: ResourceSettings{
			MinAvailableMB: DefaultMinAvailableMB,
		},
	}
}

// AllSummariserProviders returns providers that support summarisation.
func AllSummariserProviders() []AIProvider {
	return []AIProvider{
		AIProviderHuggingFace,
		AIProviderOllama,
		AIProviderOpenAI,
	}
}

// DefaultSummariserModels returns default models for each provider.
// The Hugging Face default comes from the active profile instead.
func DefaultSummariserModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderOllama: "llama3.2",
		AIProviderOpenAI: "gpt-4o-mini",
	}
}

// DatasetRef assembles the corpus reference the settings select.
func (s AppSettings) DatasetRef() DatasetRef {
	ref := DefaultDatasetRef()
	if s.Dataset.Name != "" {
		ref.Name = s.Dataset.Name
	}
	if s.Dataset.Sport != "" {
		ref.Sport = s.Dataset.Sport
	}
	if len(s.Dataset.Splits) > 0 {
		ref.Splits = s.Dataset.Splits
	}
	return ref
}
