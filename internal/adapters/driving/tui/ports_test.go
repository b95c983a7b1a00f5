package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driving"
)

// MockQAService implements driving.QAService for testing.
type MockQAService struct {
	AskFunc func(
		ctx context.Context, question string, opts domain.AskOptions,
	) (*domain.AskResult, error)
	AskContextFunc func(
		ctx context.Context, question, context string,
	) (*domain.AskResult, error)
}

func (m *MockQAService) Ask(
	ctx context.Context, question string, opts domain.AskOptions,
) (*domain.AskResult, error) {
	if m.AskFunc != nil {
		return m.AskFunc(ctx, question, opts)
	}
	return &domain.AskResult{Question: question}, nil
}

func (m *MockQAService) AskContext(
	ctx context.Context, question, contextText string,
) (*domain.AskResult, error) {
	if m.AskContextFunc != nil {
		return m.AskContextFunc(ctx, question, contextText)
	}
	return &domain.AskResult{Question: question}, nil
}

// MockSummariseService implements driving.SummariseService for testing.
type MockSummariseService struct {
	SummariseFunc func(
		ctx context.Context, text string, opts domain.SummaryOptions,
	) (*domain.Summary, error)
	ProfilesFunc func() []domain.SummaryProfile
}

func (m *MockSummariseService) Summarise(
	ctx context.Context, text string, opts domain.SummaryOptions,
) (*domain.Summary, error) {
	if m.SummariseFunc != nil {
		return m.SummariseFunc(ctx, text, opts)
	}
	return &domain.Summary{Text: text}, nil
}

func (m *MockSummariseService) Profiles() []domain.SummaryProfile {
	if m.ProfilesFunc != nil {
		return m.ProfilesFunc()
	}
	return domain.AllSummaryProfiles()
}

// MockIngestService implements driving.IngestService for testing.
type MockIngestService struct {
	IngestFunc        func(ctx context.Context, opts driving.IngestOptions) (*domain.IngestReport, error)
	StatusFunc        func() domain.IngestStatus
	ReadyFunc         func() bool
	DocumentCountFunc func(ctx context.Context) (int, error)
}

func (m *MockIngestService) Ingest(
	ctx context.Context, opts driving.IngestOptions,
) (*domain.IngestReport, error) {
	if m.IngestFunc != nil {
		return m.IngestFunc(ctx, opts)
	}
	return &domain.IngestReport{}, nil
}

func (m *MockIngestService) Status() domain.IngestStatus {
	if m.StatusFunc != nil {
		return m.StatusFunc()
	}
	return domain.IngestStatus{Stage: domain.StageReady}
}

func (m *MockIngestService) Ready() bool {
	if m.ReadyFunc != nil {
		return m.ReadyFunc()
	}
	return true
}

func (m *MockIngestService) DocumentCount(ctx context.Context) (int, error) {
	if m.DocumentCountFunc != nil {
		return m.DocumentCountFunc(ctx)
	}
	return 0, nil
}

// MockDocumentService implements driving.DocumentService for testing.
type MockDocumentService struct {
	GetFunc   func(ctx context.Context, id string) (*domain.Document, error)
	ListFunc  func(ctx context.Context, limit, offset int) ([]domain.Document, error)
	CountFunc func(ctx context.Context) (int, error)
	OpenFunc  func(ctx context.Context, id string) error
}

func (m *MockDocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockDocumentService) List(ctx context.Context, limit, offset int) ([]domain.Document, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *MockDocumentService) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockDocumentService) Open(ctx context.Context, id string) error {
	if m.OpenFunc != nil {
		return m.OpenFunc(ctx, id)
	}
	return nil
}

func TestNewPorts(t *testing.T) {
	qa := &MockQAService{}
	summarise := &MockSummariseService{}
	ingest := &MockIngestService{}
	document := &MockDocumentService{}

	ports := NewPorts(qa, summarise, ingest, document)

	require.NotNil(t, ports)
	assert.Equal(t, qa, ports.QA)
	assert.Equal(t, summarise, ports.Summarise)
	assert.Equal(t, ingest, ports.Ingest)
	assert.Equal(t, document, ports.Document)
}

func TestPorts_Validate_AllSet(t *testing.T) {
	ports := &Ports{
		QA:        &MockQAService{},
		Summarise: &MockSummariseService{},
		Ingest:    &MockIngestService{},
	}

	err := ports.Validate()

	assert.NoError(t, err)
}

func TestPorts_Validate_MissingQA(t *testing.T) {
	ports := &Ports{
		QA:        nil,
		Summarise: &MockSummariseService{},
		Ingest:    &MockIngestService{},
	}

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingQAService)
}

func TestPorts_Validate_MissingSummarise(t *testing.T) {
	ports := &Ports{
		QA:        &MockQAService{},
		Summarise: nil,
		Ingest:    &MockIngestService{},
	}

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingSummariseService)
}

func TestPorts_Validate_MissingIngest(t *testing.T) {
	ports := &Ports{
		QA:        &MockQAService{},
		Summarise: &MockSummariseService{},
		Ingest:    nil,
	}

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingIngestService)
}
