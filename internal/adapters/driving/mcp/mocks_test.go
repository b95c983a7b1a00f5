package mcp

import (
	"context"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driving"
)

// mockQAService is a mock implementation of driving.QAService.
type mockQAService struct {
	result        *domain.AskResult
	contextResult *domain.AskResult
	err           error
}

func (m *mockQAService) Ask(
	_ context.Context,
	_ string,
	_ domain.AskOptions,
) (*domain.AskResult, error) {
	return m.result, m.err
}

func (m *mockQAService) AskContext(
	_ context.Context,
	_, _ string,
) (*domain.AskResult, error) {
	if m.contextResult != nil {
		return m.contextResult, m.err
	}
	return m.result, m.err
}

// mockSummariseService is a mock implementation of driving.SummariseService.
type mockSummariseService struct {
	summary *domain.Summary
	err     error
}

func (m *mockSummariseService) Summarise(
	_ context.Context,
	_ string,
	_ domain.SummaryOptions,
) (*domain.Summary, error) {
	return m.summary, m.err
}

func (m *mockSummariseService) Profiles() []domain.SummaryProfile {
	return domain.AllSummaryProfiles()
}

// mockIngestService is a mock implementation of driving.IngestService.
type mockIngestService struct {
	report  *domain.IngestReport
	status  domain.IngestStatus
	ready   bool
	count   int
	err     error
	ingests int
}

func (m *mockIngestService) Ingest(
	_ context.Context,
	_ driving.IngestOptions,
) (*domain.IngestReport, error) {
	m.ingests++
	return m.report, m.err
}

func (m *mockIngestService) Status() domain.IngestStatus {
	return m.status
}

func (m *mockIngestService) Ready() bool {
	return m.ready
}

func (m *mockIngestService) DocumentCount(_ context.Context) (int, error) {
	return m.count, m.err
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	documents []domain.Document
	document  *domain.Document
	count     int
	err       error
}

func (m *mockDocumentService) Get(_ context.Context, _ string) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockDocumentService) List(_ context.Context, _, _ int) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockDocumentService) Count(_ context.Context) (int, error) {
	return m.count, m.err
}

func (m *mockDocumentService) Open(_ context.Context, _ string) error {
	return m.err
}
