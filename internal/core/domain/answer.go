package domain

import (
	"fmt"
	"time"
)

// AskOptions configures a question-answering run.
type AskOptions struct {
	// RetrieverTopK is how many documents the retriever hands to the
	// reader. Zero means the configured default.
	RetrieverTopK int

	// ReaderTopK is how many answers to keep. Zero means the
	// configured default.
	ReaderTopK int
}

// Answer is a span extracted from a document by the reader model.
type Answer struct {
	// Text is the extracted span.
	Text string

	// Score is the model's confidence, a probability in [0, 1].
	Score float64

	// Start is the rune offset of the span in the document content.
	Start int

	// End is the rune offset one past the span.
	End int

	// Document is the passage the span was extracted from.
	Document Document
}

// FormattedScore renders the confidence the way the UIs display it.
func (a Answer) FormattedScore() string {
	return fmt.Sprintf("%.4f", a.Score)
}

// Excerpt returns the passage text around the span, up to radius runes
// on each side, with ellipses where the passage continues.
func (a Answer) Excerpt(radius int) string {
	content := []rune(a.Document.Content)
	if len(content) == 0 {
		return ""
	}

	start := a.Start - radius
	if start < 0 {
		start = 0
	}
	end := a.End + radius
	if end > len(content) {
		end = len(content)
	}
	if start > len(content) {
		start = len(content)
	}
	if end < start {
		end = start
	}

	excerpt := string(content[start:end])
	if start > 0 {
		excerpt = "..." + excerpt
	}
	if end < len(content) {
		excerpt += "..."
	}
	return excerpt
}

// AskResult is the outcome of a retrieve-and-read run.
type AskResult struct {
	// Question is the query as asked.
	Question string

	// Answers holds the extracted spans in descending score order.
	Answers []Answer

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}
