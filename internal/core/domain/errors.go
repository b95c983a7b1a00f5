package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrNoAnswer indicates the pipeline produced no answer spans.
	// Surfaces render this as the generic no-answer message.
	ErrNoAnswer = errors.New("no answer found")

	// ErrCorpusNotReady indicates a question arrived before ingest
	// finished building the corpus.
	ErrCorpusNotReady = errors.New("corpus not ready")

	// ErrCacheMiss indicates the dataset cache has no complete corpus
	// for the requested reference.
	ErrCacheMiss = errors.New("cache miss")

	// ErrDatasetUnavailable indicates the dataset server could not be
	// reached or refused the request.
	ErrDatasetUnavailable = errors.New("dataset unavailable")

	// ErrReaderUnavailable indicates the reader service is not
	// configured or unreachable. Question answering is disabled.
	ErrReaderUnavailable = errors.New("reader service unavailable")

	// ErrSummariserUnavailable indicates the summariser service is not
	// configured or unreachable. Summarisation is disabled.
	ErrSummariserUnavailable = errors.New("summariser service unavailable")

	// ErrLowMemory indicates available memory is below the configured
	// floor for model work.
	ErrLowMemory = errors.New("not enough memory")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)

// User-facing messages for failures the UIs render verbatim.
const (
	// MsgNoAnswer is the blanket message shown for any failed ask.
	MsgNoAnswer = "We do not have an answer for your question"

	// MsgLowMemory is shown when the memory gate trips.
	MsgLowMemory = "Not enough memory to load the model."

	// MsgEmptySummaryInput is shown for an empty summarisation input.
	MsgEmptySummaryInput = "Please enter some text to summarise."

	// MsgEmptyContextQA is shown when direct question answering is
	// missing its context or question.
	MsgEmptyContextQA = "Please enter both context and question."
)
