// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DatasetSource: Streams raw rows from the hosted dataset
//   - DocumentStore: In-memory corpus storage
//   - Retriever: BM25 ranking over the corpus (external library)
//   - ReaderService: Extractive question answering (external model)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - SummariserService: Abstractive summarisation. Without it, the
//     summarise surfaces are disabled.
//   - DatasetCache: Corpus persistence between runs. Without it, every
//     run fetches the dataset again.
//   - ResourceProbe: Memory gate. Without it, model work starts
//     unchecked.
//   - PromptStore: Custom prompt templates for prompt-based providers.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
