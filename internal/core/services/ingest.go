package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driven"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driving"
	"github.com/courtside-labs/courtside-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// indexBatchSize is how many documents are stored and indexed at once.
const indexBatchSize = 256

// IngestService builds the queryable corpus: fetch, deduplicate,
// store, index, wire the pipeline.
type IngestService struct {
	source    driven.DatasetSource
	cache     driven.DatasetCache
	docStore  driven.DocumentStore
	retriever driven.Retriever
	reader    driven.ReaderService
	probe     driven.ResourceProbe

	ref            domain.DatasetRef
	minAvailableMB uint64

	// Status tracking
	mu       sync.RWMutex
	status   domain.IngestStatus
	inflight *ingestRun
}

// ingestRun carries the outcome of an in-progress run to joiners.
type ingestRun struct {
	done   chan struct{}
	report *domain.IngestReport
	err    error
}

// NewIngestService creates a new ingest service.
// The cache and probe are optional - if nil, corpus caching and the
// memory gate are disabled.
func NewIngestService(
	source driven.DatasetSource,
	cache driven.DatasetCache,
	docStore driven.DocumentStore,
	retriever driven.Retriever,
	reader driven.ReaderService,
	probe driven.ResourceProbe,
	ref domain.DatasetRef,
	minAvailableMB uint64,
) *IngestService {
	if len(ref.Splits) == 0 {
		ref = domain.DefaultDatasetRef()
	}
	if minAvailableMB == 0 {
		minAvailableMB = domain.DefaultMinAvailableMB
	}
	return &IngestService{
		source:         source,
		cache:          cache,
		docStore:       docStore,
		retriever:      retriever,
		reader:         reader,
		probe:          probe,
		ref:            ref,
		minAvailableMB: minAvailableMB,
		status:         domain.IngestStatus{Stage: domain.StageIdle},
	}
}

// Ingest loads the configured corpus. A second call while a run is in
// progress joins it and returns the first run's outcome.
func (s *IngestService) Ingest(ctx context.Context, opts driving.IngestOptions) (*domain.IngestReport, error) {
	s.mu.Lock()
	if run := s.inflight; run != nil {
		s.mu.Unlock()
		select {
		case <-run.done:
			return run.report, run.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	run := &ingestRun{done: make(chan struct{})}
	s.inflight = run
	s.mu.Unlock()

	report, err := s.run(ctx, opts)

	s.mu.Lock()
	run.report = report
	run.err = err
	s.inflight = nil
	s.mu.Unlock()
	close(run.done)

	return report, err
}

// run executes one corpus load end to end.
func (s *IngestService) run(ctx context.Context, opts driving.IngestOptions) (*domain.IngestReport, error) {
	start := time.Now()
	runID := uuid.NewString()

	logger.Section("Corpus Ingest")
	logger.Info("Loading corpus %s (run %s)", s.ref.Key(), runID)

	// 1. Memory gate - model work only starts with headroom
	if !opts.SkipMemoryCheck {
		if err := ensureMemory(ctx, s.probe, s.minAvailableMB); err != nil {
			return nil, s.fail(err)
		}
	}

	// 2. Refresh drops the cached corpus first
	if opts.Refresh && s.cache != nil {
		if err := s.cache.Invalidate(ctx, s.ref); err != nil && !errors.Is(err, domain.ErrCacheMiss) {
			logger.Warn("Invalidate cache: %v", err)
		}
	}

	// 3. Try the cache before going to the network
	if !opts.Refresh && s.cache != nil {
		docs, err := s.cache.Load(ctx, s.ref)
		switch {
		case err == nil:
			logger.Info("Corpus served from cache: %d documents", len(docs))
			if err := s.buildIndex(ctx, docs); err != nil {
				return nil, s.fail(err)
			}
			if err := s.wirePipeline(ctx); err != nil {
				return nil, s.fail(err)
			}
			s.setStatus(domain.IngestStatus{Stage: domain.StageReady, Unique: len(docs)})
			return &domain.IngestReport{
				RunID:     runID,
				Ref:       s.ref,
				FromCache: true,
				Documents: len(docs),
				Elapsed:   time.Since(start),
			}, nil
		case errors.Is(err, domain.ErrCacheMiss):
			// Fall through to the network fetch
		default:
			logger.Warn("Load cache: %v", err)
		}
	}

	// 4. Validate the dataset reference before streaming
	s.setStatus(domain.IngestStatus{Stage: domain.StageDownloading})
	if err := s.source.Validate(ctx, s.ref); err != nil {
		return nil, s.fail(fmt.Errorf("validate dataset: %w", err))
	}

	// 5. Stream every split, deduplicating as rows arrive
	docs, report, err := s.download(ctx)
	if err != nil {
		return nil, s.fail(err)
	}

	// 6. Store and index the deduplicated corpus
	if err := s.buildIndex(ctx, docs); err != nil {
		return nil, s.fail(err)
	}

	// 7. Wire the retrieve-and-read pipeline (warms up the reader)
	if err := s.wirePipeline(ctx); err != nil {
		return nil, s.fail(err)
	}

	// 8. Persist for the next run. Failure here only costs the cache.
	if s.cache != nil {
		if err := s.cache.Store(ctx, s.ref, docs); err != nil {
			logger.Warn("Store corpus cache: %v", err)
		}
	}

	s.setStatus(domain.IngestStatus{Stage: domain.StageReady, Unique: len(docs)})

	report.RunID = runID
	report.Ref = s.ref
	report.Documents = len(docs)
	report.Elapsed = time.Since(start)
	logger.Info("Corpus ready: %d documents (%d skipped) in %s",
		report.Documents, report.SkippedEmpty+report.SkippedDuplicate, report.Elapsed.Round(time.Millisecond))
	return report, nil
}

// download streams all configured splits in order and deduplicates
// rows by context ID. The first occurrence of an ID wins, so the
// split order is part of the corpus identity.
//
//nolint:gocognit // Orchestration function coordinating multiple async operations
func (s *IngestService) download(ctx context.Context) ([]domain.Document, *domain.IngestReport, error) {
	var (
		docs    []domain.Document
		seen    = make(map[string]bool)
		fetched = make(map[domain.DatasetSplit]int)
		report  = &domain.IngestReport{FetchedBySplit: fetched}
		status  = domain.IngestStatus{Stage: domain.StageDownloading}
	)

	// Probe split sizes so progress can show rows against a total.
	// Best-effort: a failed probe just leaves the total unknown.
	for _, split := range s.ref.Splits {
		rows, err := s.source.SplitSize(ctx, s.ref, split)
		if err != nil {
			logger.Debug("Split size probe for %s failed: %v", split, err)
			status.Total = 0
			break
		}
		status.Total += rows
	}

	for _, split := range s.ref.Splits {
		status.Split = split
		s.setStatus(status)
		logger.Debug("Fetching split %s", split)

		records, errs := s.source.FetchSplit(ctx, s.ref, split)

	drain:
		for {
			select {
			case <-ctx.Done():
				return nil, nil, ctx.Err()

			case err, ok := <-errs:
				if !ok {
					errs = nil
					continue
				}
				// A FetchComplete sentinel means the split finished
				if fc, done := driven.IsFetchComplete(err); done {
					logger.Debug("Split %s complete: %d rows", split, fc.Rows)
					continue
				}
				if err != nil {
					return nil, nil, fmt.Errorf("fetch split %s: %w", split, err)
				}

			case record, ok := <-records:
				if !ok {
					break drain
				}
				fetched[split]++
				status.Fetched++

				switch {
				case record.Context == "":
					report.SkippedEmpty++
					status.Skipped++
				case seen[record.ContextID]:
					report.SkippedDuplicate++
					status.Skipped++
				default:
					seen[record.ContextID] = true
					docs = append(docs, domain.Document{
						ID:        record.ContextID,
						Title:     record.Title,
						Content:   record.Context,
						URL:       record.URL,
						Source:    s.ref.Corpus(),
						Split:     record.Split.String(),
						FetchedAt: time.Now().UTC(),
					})
					status.Unique++
				}
				s.setStatus(status)
			}
		}
	}

	return docs, report, nil
}

// buildIndex replaces the document store and retriever contents with
// the given corpus.
func (s *IngestService) buildIndex(ctx context.Context, docs []domain.Document) error {
	s.setStatus(domain.IngestStatus{Stage: domain.StageIndexing, Unique: len(docs)})

	if err := s.docStore.Clear(ctx); err != nil {
		return fmt.Errorf("clear document store: %w", err)
	}
	s.retriever.Reset()

	for start := 0; start < len(docs); start += indexBatchSize {
		end := start + indexBatchSize
		if end > len(docs) {
			end = len(docs)
		}
		batch := docs[start:end]
		if err := s.docStore.Put(ctx, batch); err != nil {
			return fmt.Errorf("store documents: %w", err)
		}
		if err := s.retriever.Index(ctx, batch); err != nil {
			return fmt.Errorf("index documents: %w", err)
		}
	}
	return nil
}

// wirePipeline warms up the reader so the first question does not pay
// the model load.
func (s *IngestService) wirePipeline(ctx context.Context) error {
	s.setStatus(domain.IngestStatus{Stage: domain.StagePipeline, Unique: s.retriever.Count()})

	if s.reader == nil {
		return fmt.Errorf("%w: no reader configured", domain.ErrReaderUnavailable)
	}
	if err := s.reader.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrReaderUnavailable, err)
	}
	return nil
}

// Status returns a snapshot of the current run for progress UIs.
func (s *IngestService) Status() domain.IngestStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Ready reports whether the corpus is queryable.
func (s *IngestService) Ready() bool {
	return s.Status().Stage == domain.StageReady
}

// DocumentCount returns the size of the loaded corpus.
func (s *IngestService) DocumentCount(ctx context.Context) (int, error) {
	return s.docStore.Count(ctx)
}

// setStatus publishes a status snapshot.
func (s *IngestService) setStatus(status domain.IngestStatus) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

// fail records the failure in the status and passes the error through.
func (s *IngestService) fail(err error) error {
	s.setStatus(domain.IngestStatus{Stage: domain.StageFailed, Err: err})
	logger.Warn("Ingest failed: %v", err)
	return err
}

// ensureMemory checks available memory against the configured floor.
// A nil probe or a probe failure skips the gate; the gate protects
// against known-low memory, not against unknown memory.
func ensureMemory(ctx context.Context, probe driven.ResourceProbe, minAvailableMB uint64) error {
	if probe == nil {
		return nil
	}
	available, err := probe.AvailableMemory(ctx)
	if err != nil {
		logger.Debug("Memory probe failed, skipping gate: %v", err)
		return nil
	}
	availableMB := available / (1024 * 1024)
	if availableMB < minAvailableMB {
		return fmt.Errorf("%w: %d MB available, %d MB required",
			domain.ErrLowMemory, availableMB, minAvailableMB)
	}
	return nil
}
