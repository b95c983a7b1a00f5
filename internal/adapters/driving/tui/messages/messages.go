// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/courtside-labs/courtside-cli/internal/core/domain"
)

// QuestionChanged is sent when the question input changes.
type QuestionChanged struct {
	Question string
}

// AskRequested is a command to run the question-answering pipeline.
type AskRequested struct {
	Question string
	Options  domain.AskOptions
}

// AskCompleted carries the answers back to the model.
type AskCompleted struct {
	Result *domain.AskResult
	Err    error
}

// AnswerSelected is sent when an answer is selected.
type AnswerSelected struct {
	Index int
}

// SummariseCompleted carries the generated summary back to the model.
type SummariseCompleted struct {
	Summary *domain.Summary
	Err     error
}

// IngestProgressed carries a corpus-load progress snapshot.
type IngestProgressed struct {
	Status domain.IngestStatus
}

// IngestCompleted signals the corpus load finished.
type IngestCompleted struct {
	Report *domain.IngestReport
	Err    error
}

// CorpusInfoLoaded carries the corpus size for the caption line.
type CorpusInfoLoaded struct {
	Documents int
	Err       error
}

// ExampleChosen is sent when a canned example is picked from the
// examples view. The receiving view prefills its inputs from it.
type ExampleChosen struct {
	Example domain.Example
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewAsk is the question input and answers view.
	ViewAsk
	// ViewSummarise is the text summarisation view.
	ViewSummarise
	// ViewExamples lists the canned example prompts.
	ViewExamples
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewAsk:
		return "ask"
	case ViewSummarise:
		return "summarise"
	case ViewExamples:
		return "examples"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
