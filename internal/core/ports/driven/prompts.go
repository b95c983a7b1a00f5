package driven

// PromptStore provides access to the prompt templates used by the
// prompt-based summariser providers. Implementations may load prompts
// from files or embed them in the binary.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// If the prompt is not found, implementations should return a
	// sensible default or an error, depending on whether the prompt
	// is required.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next
	// access. Useful when prompts may have been edited on disk.
	Reload()
}

// Well-known prompt names.
const (
	// PromptSummarise instructs a chat/completion model to summarise.
	// The template expects %d (minimum sentences), %d (maximum
	// sentences) and %s (content) placeholders, in that order.
	PromptSummarise = "summarise"
)

// PromptStoreAware is an optional interface for services that can use
// custom prompts. Implementations fall back to hardcoded defaults when
// no store is injected.
type PromptStoreAware interface {
	// SetPromptStore sets the prompt store for loading customisable
	// prompts.
	SetPromptStore(store PromptStore)
}
