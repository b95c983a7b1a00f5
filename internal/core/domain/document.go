package domain

import "time"

// Document represents a deduplicated passage from the corpus.
// It is the canonical representation handed to the document store
// and the retriever after dataset loading.
type Document struct {
	// ID is the corpus content-identity key (context_id in QASports).
	// No two stored documents share the same ID.
	ID string

	// Title is the human-readable passage title.
	Title string

	// Content is the full passage text the reader extracts spans from.
	Content string

	// URL is the original location of the passage.
	URL string

	// Source names the corpus the document came from (e.g. "QASports").
	Source string

	// Split is the dataset split the document was first seen in.
	Split string

	// FetchedAt is when the document was fetched from the dataset.
	FetchedAt time.Time
}

// Excerpt returns the first n runes of the content for preview panes.
// The full content is kept intact for the reader.
func (d Document) Excerpt(n int) string {
	runes := []rune(d.Content)
	if len(runes) <= n {
		return d.Content
	}
	return string(runes[:n]) + "..."
}

// RetrievedDocument is a document returned by the retriever with its
// relevance score against the query.
type RetrievedDocument struct {
	// Document is the matched passage.
	Document Document

	// Score is the BM25 relevance score (library-assigned, unbounded).
	Score float64
}
