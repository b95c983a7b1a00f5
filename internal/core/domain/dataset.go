package domain

import (
	"fmt"
	"strings"
	"time"
)

// DatasetSplit names a partition of the dataset.
type DatasetSplit string

// Splits published by the QASports dataset.
const (
	// SplitValidation is the validation partition.
	SplitValidation DatasetSplit = "validation"

	// SplitTrain is the training partition.
	SplitTrain DatasetSplit = "train"

	// SplitTest is the test partition.
	SplitTest DatasetSplit = "test"
)

// IsValid returns true if the split is recognised.
func (s DatasetSplit) IsValid() bool {
	switch s {
	case SplitValidation, SplitTrain, SplitTest:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s DatasetSplit) String() string {
	return string(s)
}

// DatasetRef identifies a corpus to load: a hosted dataset, a sport
// configuration, and the splits to read.
type DatasetRef struct {
	// Name is the hosted dataset identifier (owner/name).
	Name string

	// Sport is the dataset configuration to read (e.g. "basketball").
	Sport string

	// Splits are read in order. Deduplication keeps the first
	// occurrence of each context ID, so the order is part of the
	// corpus identity.
	Splits []DatasetSplit
}

// Key returns a stable identifier for cache lookups.
func (r DatasetRef) Key() string {
	return fmt.Sprintf("%s/%s", r.Name, r.Sport)
}

// Corpus returns the bare corpus name without the owner prefix,
// e.g. "QASports" for "PedroCJardim/QASports". Documents record it
// as their Source.
func (r DatasetRef) Corpus() string {
	if i := strings.LastIndex(r.Name, "/"); i >= 0 {
		return r.Name[i+1:]
	}
	return r.Name
}

// DefaultDatasetRef returns the corpus the tool ships configured for:
// the basketball slice of QASports, validation then train then test.
func DefaultDatasetRef() DatasetRef {
	return DatasetRef{
		Name:   "PedroCJardim/QASports",
		Sport:  "basketball",
		Splits: []DatasetSplit{SplitValidation, SplitTrain, SplitTest},
	}
}

// DatasetRecord is one raw row from the dataset server, before
// deduplication. Rows with an empty Context exist in the corpus and
// are skipped during ingest.
type DatasetRecord struct {
	// ContextID is the content-identity key shared by rows that quote
	// the same passage.
	ContextID string

	// Context is the passage text. May be empty.
	Context string

	// Title is the passage title.
	Title string

	// URL is the original location of the passage.
	URL string

	// Split is the partition the row was read from.
	Split DatasetSplit
}

// IngestStage identifies the phase corpus construction is in.
type IngestStage string

// Stages in order of progression.
const (
	// StageIdle means no ingest has started.
	StageIdle IngestStage = "idle"

	// StageDownloading means dataset rows are being fetched.
	StageDownloading IngestStage = "downloading"

	// StageIndexing means documents are being stored and indexed.
	StageIndexing IngestStage = "indexing"

	// StagePipeline means the retrieve-and-read pipeline is being wired.
	StagePipeline IngestStage = "pipeline"

	// StageReady means the corpus is queryable.
	StageReady IngestStage = "ready"

	// StageFailed means ingest aborted with an error.
	StageFailed IngestStage = "failed"
)

// Description returns the progress line shown while the stage runs.
func (s IngestStage) Description() string {
	switch s {
	case StageIdle:
		return "Waiting to start"
	case StageDownloading:
		return "Downloading dataset..."
	case StageIndexing:
		return "Indexing documents..."
	case StagePipeline:
		return "Creating pipeline..."
	case StageReady:
		return "Ready"
	case StageFailed:
		return "Failed"
	default:
		return unknownDescription
	}
}

// IngestStatus is a point-in-time snapshot of corpus construction.
// Safe to copy; produced under lock by the ingest service.
type IngestStatus struct {
	// Stage is the current phase.
	Stage IngestStage

	// Split is the split currently being fetched (downloading only).
	Split DatasetSplit

	// Fetched counts rows received from the dataset server.
	Fetched int

	// Total is the expected row count across the configured splits,
	// from the split-size probes. Zero when unknown.
	Total int

	// Skipped counts rows dropped for an empty context or a
	// duplicate context ID.
	Skipped int

	// Unique counts documents kept after deduplication.
	Unique int

	// Err holds the failure when Stage is StageFailed.
	Err error
}

// IngestReport summarises a completed ingest run.
type IngestReport struct {
	// RunID identifies the ingest run.
	RunID string

	// Ref is the corpus that was loaded.
	Ref DatasetRef

	// FromCache is true when the corpus came from the local cache
	// instead of the dataset server.
	FromCache bool

	// FetchedBySplit counts rows received per split (empty for cache hits).
	FetchedBySplit map[DatasetSplit]int

	// SkippedEmpty counts rows dropped for an empty context.
	SkippedEmpty int

	// SkippedDuplicate counts rows dropped as duplicate context IDs.
	SkippedDuplicate int

	// Documents is the deduplicated corpus size.
	Documents int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}
