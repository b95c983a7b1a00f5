// Package bm25 adapts the bm25md library to the Retriever port.
// All ranking maths lives in the library; this adapter only shapes
// documents in and scored documents out.
package bm25

import (
	"context"
	"fmt"
	"sync"

	"github.com/chriscorrea/bm25md"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driven"
	"github.com/courtside-labs/courtside-cli/internal/logger"
)

// Ensure Retriever implements the interface.
var _ driven.Retriever = (*Retriever)(nil)

// Retriever ranks corpus documents with field-weighted BM25.
// Titles are rendered as markdown headings above the passage body, so
// the library's field parser gives title hits extra weight.
type Retriever struct {
	mu     sync.RWMutex
	corpus *bm25md.Corpus
	parser *bm25md.MarkdownFieldParser

	// docs maps the library's int document IDs back to domain
	// documents by position.
	docs []domain.Document
}

// New creates an empty retriever.
func New() *Retriever {
	return &Retriever{
		corpus: bm25md.NewCorpus(),
		parser: bm25md.NewMarkdownFieldParser(),
	}
}

// Index adds documents to the ranked corpus.
func (r *Retriever) Index(ctx context.Context, docs []domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("index cancelled: %w", err)
		}
		rendered := renderMarkdown(doc)
		r.corpus.AddDocument(bm25md.Document{
			ID:       len(r.docs),
			Fields:   r.parser.ParseDocument(rendered),
			Original: rendered,
		})
		r.docs = append(r.docs, doc)
	}

	logger.Debug("bm25: indexed %d documents (corpus now %d)", len(docs), len(r.docs))
	return nil
}

// Retrieve returns up to topK documents in descending score order.
func (r *Retriever) Retrieve(ctx context.Context, query string, topK int) ([]domain.RetrievedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("retrieve cancelled: %w", err)
	}
	if topK <= 0 {
		topK = domain.DefaultRetrieverTopK
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.docs) == 0 {
		return nil, nil
	}

	results := r.corpus.Search(query, topK)
	retrieved := make([]domain.RetrievedDocument, 0, len(results))
	for _, result := range results {
		if result.Document.ID < 0 || result.Document.ID >= len(r.docs) {
			continue
		}
		retrieved = append(retrieved, domain.RetrievedDocument{
			Document: r.docs[result.Document.ID],
			Score:    result.Score,
		})
	}

	logger.Debug("bm25: query %q matched %d documents", query, len(retrieved))
	return retrieved, nil
}

// Count returns the number of indexed documents.
func (r *Retriever) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs)
}

// Reset discards the index so a fresh corpus can be loaded.
func (r *Retriever) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.corpus = bm25md.NewCorpus()
	r.docs = nil
}

// Close releases resources. The corpus is heap-only, so nothing to do.
func (r *Retriever) Close() error {
	return nil
}

// renderMarkdown shapes a document for the field parser: title as a
// heading, passage as body text.
func renderMarkdown(doc domain.Document) string {
	if doc.Title == "" {
		return doc.Content
	}
	return fmt.Sprintf("# %s\n\n%s", doc.Title, doc.Content)
}
