package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driven"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driving"
	"github.com/courtside-labs/courtside-cli/internal/logger"
)

// Ensure QAService implements the interface.
var _ driving.QAService = (*QAService)(nil)

// QAService answers natural-language questions with a two-stage
// retrieve-and-read pipeline: BM25 retrieval narrows the corpus, the
// extractive reader model pulls answer spans from the candidates.
type QAService struct {
	retriever driven.Retriever
	reader    driven.ReaderService

	retrieverTopK int
	readerTopK    int
}

// NewQAService creates a new question-answering service.
// Zero topK values fall back to the domain defaults.
func NewQAService(retriever driven.Retriever, reader driven.ReaderService, retrieverTopK, readerTopK int) *QAService {
	if retrieverTopK <= 0 {
		retrieverTopK = domain.DefaultRetrieverTopK
	}
	if readerTopK <= 0 {
		readerTopK = domain.DefaultReaderTopK
	}
	return &QAService{
		retriever:     retriever,
		reader:        reader,
		retrieverTopK: retrieverTopK,
		readerTopK:    readerTopK,
	}
}

// Ask runs the retrieve-and-read pipeline over the corpus.
func (s *QAService) Ask(ctx context.Context, question string, opts domain.AskOptions) (*domain.AskResult, error) {
	start := time.Now()

	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is empty", domain.ErrInvalidInput)
	}
	if s.retriever.Count() == 0 {
		return nil, domain.ErrCorpusNotReady
	}

	retrieverTopK := opts.RetrieverTopK
	if retrieverTopK <= 0 {
		retrieverTopK = s.retrieverTopK
	}
	readerTopK := opts.ReaderTopK
	if readerTopK <= 0 {
		readerTopK = s.readerTopK
	}

	logger.Section("Question Answering")
	logger.Debug("Question: %q (retriever top_k=%d, reader top_k=%d)", question, retrieverTopK, readerTopK)

	// 1. First stage: rank the corpus against the question
	retrieved, err := s.retriever.Retrieve(ctx, question, retrieverTopK)
	if err != nil {
		return nil, fmt.Errorf("retrieve candidates: %w", err)
	}
	if len(retrieved) == 0 {
		logger.Debug("Retriever returned no candidates")
		return nil, domain.ErrNoAnswer
	}
	logger.Debug("Retrieved %d candidate documents", len(retrieved))

	docs := make([]domain.Document, 0, len(retrieved))
	for _, r := range retrieved {
		docs = append(docs, r.Document)
	}

	// 2. Second stage: extract answer spans from the candidates.
	// Each candidate passage is asked for readerTopK spans so a single
	// document can surface more than one answer; the reader still caps
	// the merged result at readerTopK overall.
	answers, err := s.reader.Extract(ctx, question, docs, driven.ExtractOptions{
		TopK:        readerTopK,
		PerDocument: readerTopK,
	})
	if err != nil {
		return nil, fmt.Errorf("extract answers: %w", err)
	}
	if len(answers) == 0 {
		logger.Debug("Reader extracted no spans")
		return nil, domain.ErrNoAnswer
	}

	logger.Info("Answered with %d spans in %s", len(answers), time.Since(start).Round(time.Millisecond))
	return &domain.AskResult{
		Question: question,
		Answers:  answers,
		Elapsed:  time.Since(start),
	}, nil
}

// AskContext extracts an answer from a user-supplied passage,
// skipping retrieval entirely.
func (s *QAService) AskContext(ctx context.Context, question, passage string) (*domain.AskResult, error) {
	start := time.Now()

	question = strings.TrimSpace(question)
	passage = strings.TrimSpace(passage)
	if question == "" || passage == "" {
		return nil, fmt.Errorf("%w: context and question are required", domain.ErrInvalidInput)
	}

	logger.Section("Context Question Answering")
	logger.Debug("Question: %q over %d-byte context", question, len(passage))

	doc := domain.Document{
		ID:        uuid.NewString(),
		Title:     "Pasted context",
		Content:   passage,
		Source:    "context",
		FetchedAt: time.Now().UTC(),
	}

	answers, err := s.reader.Extract(ctx, question, []domain.Document{doc}, driven.ExtractOptions{TopK: 1})
	if err != nil {
		return nil, fmt.Errorf("extract answer: %w", err)
	}
	if len(answers) == 0 {
		return nil, domain.ErrNoAnswer
	}

	return &domain.AskResult{
		Question: question,
		Answers:  answers,
		Elapsed:  time.Since(start),
	}, nil
}
