package services

import (
	"context"
	"sync"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driven"
)

// --- Mock implementations shared across service tests ---

// mockDatasetSource implements driven.DatasetSource for testing.
// Records are streamed per split the way the real adapter does: rows
// on an unbuffered channel, a FetchComplete sentinel on the buffered
// error channel, then both closed.
type mockDatasetSource struct {
	records     map[domain.DatasetSplit][]domain.DatasetRecord
	sizes       map[domain.DatasetSplit]int
	sizeErr     error
	validateErr error
	fetchErr    error
	failSplit   domain.DatasetSplit // fetchErr applies to this split only ("" means all)
	stall       bool                // emit nothing until the context is cancelled

	fetched []domain.DatasetSplit
	sized   []domain.DatasetSplit
}

func (m *mockDatasetSource) Validate(_ context.Context, _ domain.DatasetRef) error {
	return m.validateErr
}

func (m *mockDatasetSource) FetchSplit(ctx context.Context, _ domain.DatasetRef, split domain.DatasetSplit) (<-chan domain.DatasetRecord, <-chan error) {
	m.fetched = append(m.fetched, split)

	records := make(chan domain.DatasetRecord)
	errs := make(chan error, 1)

	go func() {
		defer close(records)
		defer close(errs)

		if m.stall {
			<-ctx.Done()
			return
		}
		if m.fetchErr != nil && (m.failSplit == "" || m.failSplit == split) {
			errs <- m.fetchErr
			return
		}

		sent := 0
		for _, record := range m.records[split] {
			select {
			case records <- record:
				sent++
			case <-ctx.Done():
				return
			}
		}
		errs <- &driven.FetchComplete{Rows: sent}
	}()

	return records, errs
}

func (m *mockDatasetSource) SplitSize(_ context.Context, _ domain.DatasetRef, split domain.DatasetSplit) (int, error) {
	m.sized = append(m.sized, split)
	if m.sizeErr != nil {
		return 0, m.sizeErr
	}
	return m.sizes[split], nil
}

func (m *mockDatasetSource) Close() error {
	return nil
}

// mockDatasetCache implements driven.DatasetCache for testing.
type mockDatasetCache struct {
	docs     []domain.Document
	loadErr  error
	storeErr error

	stored      []domain.Document
	invalidated bool
}

func (m *mockDatasetCache) Load(_ context.Context, _ domain.DatasetRef) ([]domain.Document, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if len(m.docs) == 0 {
		return nil, domain.ErrCacheMiss
	}
	return m.docs, nil
}

func (m *mockDatasetCache) Store(_ context.Context, _ domain.DatasetRef, docs []domain.Document) error {
	if m.storeErr != nil {
		return m.storeErr
	}
	m.stored = docs
	return nil
}

func (m *mockDatasetCache) Info(_ context.Context, _ domain.DatasetRef) (driven.CacheInfo, error) {
	if len(m.docs) == 0 {
		return driven.CacheInfo{}, domain.ErrCacheMiss
	}
	return driven.CacheInfo{Documents: len(m.docs)}, nil
}

func (m *mockDatasetCache) Invalidate(_ context.Context, _ domain.DatasetRef) error {
	m.invalidated = true
	m.docs = nil
	return nil
}

func (m *mockDatasetCache) Close() error {
	return nil
}

// mockRetriever implements driven.Retriever for testing.
type mockRetriever struct {
	results     []domain.RetrievedDocument
	retrieveErr error
	indexErr    error
	count       int

	indexed   []domain.Document
	lastQuery string
	lastTopK  int
	resets    int
}

func (m *mockRetriever) Index(_ context.Context, docs []domain.Document) error {
	if m.indexErr != nil {
		return m.indexErr
	}
	m.indexed = append(m.indexed, docs...)
	m.count += len(docs)
	return nil
}

func (m *mockRetriever) Retrieve(_ context.Context, query string, topK int) ([]domain.RetrievedDocument, error) {
	m.lastQuery = query
	m.lastTopK = topK
	if m.retrieveErr != nil {
		return nil, m.retrieveErr
	}
	if topK < len(m.results) {
		return m.results[:topK], nil
	}
	return m.results, nil
}

func (m *mockRetriever) Count() int {
	return m.count
}

func (m *mockRetriever) Reset() {
	m.resets++
	m.indexed = nil
	m.count = 0
}

func (m *mockRetriever) Close() error {
	return nil
}

// mockReader implements driven.ReaderService for testing.
type mockReader struct {
	answers    []domain.Answer
	extractErr error
	pingErr    error
	pingGate   chan struct{} // Ping blocks until closed (if set)

	extractCalls int
	pings        int
	lastQuestion string
	lastDocs     []domain.Document
	lastOpts     driven.ExtractOptions
}

func (m *mockReader) Extract(_ context.Context, question string, docs []domain.Document, opts driven.ExtractOptions) ([]domain.Answer, error) {
	m.extractCalls++
	m.lastQuestion = question
	m.lastDocs = docs
	m.lastOpts = opts
	if m.extractErr != nil {
		return nil, m.extractErr
	}
	if opts.TopK > 0 && opts.TopK < len(m.answers) {
		return m.answers[:opts.TopK], nil
	}
	return m.answers, nil
}

func (m *mockReader) ModelName() string {
	return "mock-reader"
}

func (m *mockReader) Ping(ctx context.Context) error {
	m.pings++
	if m.pingGate != nil {
		select {
		case <-m.pingGate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return m.pingErr
}

func (m *mockReader) Close() error {
	return nil
}

// mockSummariser implements driven.SummariserService for testing.
type mockSummariser struct {
	result       string
	summariseErr error
	model        string

	lastText   string
	lastParams driven.SummariseParams
}

func (m *mockSummariser) Summarise(_ context.Context, text string, params driven.SummariseParams) (string, error) {
	m.lastText = text
	m.lastParams = params
	if m.summariseErr != nil {
		return "", m.summariseErr
	}
	return m.result, nil
}

func (m *mockSummariser) ModelName() string {
	if m.model != "" {
		return m.model
	}
	return "mock-summariser"
}

func (m *mockSummariser) Ping(_ context.Context) error {
	return nil
}

func (m *mockSummariser) Close() error {
	return nil
}

// mockProbe implements driven.ResourceProbe for testing.
type mockProbe struct {
	available uint64
	err       error
}

func (m *mockProbe) AvailableMemory(_ context.Context) (uint64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.available, nil
}

// mockAIValidator implements driven.AIConfigValidator for testing.
type mockAIValidator struct {
	mu            sync.Mutex
	summariserErr error
	readerErr     error

	summariserCalls int
	readerCalls     int
	lastToken       string
}

func (m *mockAIValidator) ValidateSummariser(_ *domain.SummariserSettings, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summariserCalls++
	m.lastToken = token
	return m.summariserErr
}

func (m *mockAIValidator) ValidateReader(_ *domain.ReaderSettings, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readerCalls++
	m.lastToken = token
	return m.readerErr
}

// --- Shared fixtures ---

// mb converts megabytes to bytes for probe fixtures.
func mb(n uint64) uint64 {
	return n * 1024 * 1024
}

// corpusDocs returns a small deduplicated corpus.
func corpusDocs() []domain.Document {
	return []domain.Document{
		{
			ID:      "ctx-1",
			Title:   "Kobe Bryant",
			Content: "Kobe Bryant scored 81 points against the Toronto Raptors in January 2006.",
			URL:     "https://en.wikipedia.org/wiki/Kobe_Bryant",
			Source:  "QASports",
			Split:   "validation",
		},
		{
			ID:      "ctx-2",
			Title:   "James Naismith",
			Content: "James Naismith invented basketball in 1891 in Springfield, Massachusetts.",
			URL:     "https://en.wikipedia.org/wiki/James_Naismith",
			Source:  "QASports",
			Split:   "validation",
		},
		{
			ID:      "ctx-3",
			Title:   "Shot clock",
			Content: "The 24-second shot clock was introduced in 1954 to speed up play.",
			URL:     "https://en.wikipedia.org/wiki/Shot_clock",
			Source:  "QASports",
			Split:   "train",
		},
	}
}

// splitRecords returns raw dataset rows exercising both skip rules:
// one row with an empty context and two duplicate context IDs.
func splitRecords() map[domain.DatasetSplit][]domain.DatasetRecord {
	return map[domain.DatasetSplit][]domain.DatasetRecord{
		domain.SplitValidation: {
			{ContextID: "ctx-1", Context: "Kobe Bryant scored 81 points.", Title: "Kobe Bryant", Split: domain.SplitValidation},
			{ContextID: "ctx-2", Context: "", Title: "Empty passage", Split: domain.SplitValidation},
			{ContextID: "ctx-3", Context: "The Celtics won 17 championships.", Title: "Boston Celtics", Split: domain.SplitValidation},
			{ContextID: "ctx-1", Context: "Kobe Bryant scored 81 points again.", Title: "Kobe Bryant", Split: domain.SplitValidation},
		},
		domain.SplitTrain: {
			{ContextID: "ctx-4", Context: "The shot clock was introduced in 1954.", Title: "Shot clock", Split: domain.SplitTrain},
			{ContextID: "ctx-3", Context: "The Celtics duplicate.", Title: "Boston Celtics", Split: domain.SplitTrain},
		},
		domain.SplitTest: {},
	}
}
