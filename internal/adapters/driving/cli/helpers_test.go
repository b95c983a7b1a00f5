package cli

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driving"
)

// --- Mock services shared across command tests ---

type mockQAService struct{}

func (m *mockQAService) Ask(_ context.Context, question string, _ domain.AskOptions) (*domain.AskResult, error) {
	return &domain.AskResult{
		Question: question,
		Answers: []domain.Answer{
			{
				Text:  "81 points",
				Score: 0.93,
				Start: 35,
				End:   44,
				Document: domain.Document{
					ID:      "ctx-1",
					Title:   "Kobe Bryant",
					Content: "In January 2006 Kobe Bryant scored 81 points against the Toronto Raptors.",
					URL:     "https://en.wikipedia.org/wiki/Kobe_Bryant",
					Source:  "QASports",
					Split:   "validation",
				},
			},
			{
				Text:  "James Naismith",
				Score: 0.41,
				Document: domain.Document{
					ID:    "ctx-2",
					Title: "History of basketball",
				},
			},
		},
		Elapsed: 120 * time.Millisecond,
	}, nil
}

func (m *mockQAService) AskContext(_ context.Context, question, passage string) (*domain.AskResult, error) {
	return &domain.AskResult{
		Question: question,
		Answers: []domain.Answer{
			{
				Text:     "a Programmer",
				Score:    0.87,
				Document: domain.Document{ID: "context", Content: passage, Source: "context"},
			},
		},
		Elapsed: 40 * time.Millisecond,
	}, nil
}

type mockQAServiceError struct{}

func (m *mockQAServiceError) Ask(_ context.Context, _ string, _ domain.AskOptions) (*domain.AskResult, error) {
	return nil, errors.New("model backend down")
}

func (m *mockQAServiceError) AskContext(_ context.Context, _, _ string) (*domain.AskResult, error) {
	return nil, errors.New("model backend down")
}

type mockSummariseService struct{}

func (m *mockSummariseService) Summarise(_ context.Context, _ string, _ domain.SummaryOptions) (*domain.Summary, error) {
	return &domain.Summary{
		Text:    "The Lakers beat the Celtics. Davis led all scorers.",
		Points:  []string{"The Lakers beat the Celtics.", "Davis led all scorers."},
		Model:   "sshleifer/distilbart-cnn-12-6",
		Elapsed: 300 * time.Millisecond,
	}, nil
}

func (m *mockSummariseService) Profiles() []domain.SummaryProfile {
	return domain.AllSummaryProfiles()
}

type mockSummariseServiceError struct{}

func (m *mockSummariseServiceError) Summarise(_ context.Context, _ string, _ domain.SummaryOptions) (*domain.Summary, error) {
	return nil, errors.New("model backend down")
}

func (m *mockSummariseServiceError) Profiles() []domain.SummaryProfile {
	return domain.AllSummaryProfiles()
}

type mockIngestService struct{}

func (m *mockIngestService) Ingest(_ context.Context, _ driving.IngestOptions) (*domain.IngestReport, error) {
	return &domain.IngestReport{
		RunID:     "run-test",
		Ref:       domain.DefaultDatasetRef(),
		FromCache: true,
		Documents: 3,
		Elapsed:   5 * time.Millisecond,
	}, nil
}

func (m *mockIngestService) Status() domain.IngestStatus {
	return domain.IngestStatus{Stage: domain.StageReady, Unique: 3}
}

func (m *mockIngestService) Ready() bool { return true }

func (m *mockIngestService) DocumentCount(_ context.Context) (int, error) { return 3, nil }

type mockIngestServiceError struct{}

func (m *mockIngestServiceError) Ingest(_ context.Context, _ driving.IngestOptions) (*domain.IngestReport, error) {
	return nil, errors.New("dataset server unreachable")
}

func (m *mockIngestServiceError) Status() domain.IngestStatus {
	return domain.IngestStatus{Stage: domain.StageFailed, Err: errors.New("dataset server unreachable")}
}

func (m *mockIngestServiceError) Ready() bool { return false }

func (m *mockIngestServiceError) DocumentCount(_ context.Context) (int, error) { return 0, nil }

type mockDocumentService struct{}

func (m *mockDocumentService) Get(_ context.Context, id string) (*domain.Document, error) {
	if id == "missing" {
		return nil, domain.ErrNotFound
	}
	return &domain.Document{
		ID:      id,
		Title:   "Shot clock",
		Content: "The shot clock gives the attacking team 24 seconds to attempt a shot.",
		URL:     "https://en.wikipedia.org/wiki/Shot_clock",
		Source:  "QASports",
		Split:   "train",
	}, nil
}

func (m *mockDocumentService) List(_ context.Context, limit, _ int) ([]domain.Document, error) {
	docs := []domain.Document{
		{ID: "ctx-1", Title: "Kobe Bryant", URL: "https://en.wikipedia.org/wiki/Kobe_Bryant"},
		{ID: "ctx-2", Title: "History of basketball"},
	}
	if limit > 0 && limit < len(docs) {
		docs = docs[:limit]
	}
	return docs, nil
}

func (m *mockDocumentService) Count(_ context.Context) (int, error) { return 2, nil }

func (m *mockDocumentService) Open(_ context.Context, _ string) error { return nil }

type mockDocumentServiceEmpty struct{}

func (m *mockDocumentServiceEmpty) Get(_ context.Context, _ string) (*domain.Document, error) {
	return nil, domain.ErrNotFound
}

func (m *mockDocumentServiceEmpty) List(_ context.Context, _, _ int) ([]domain.Document, error) {
	return nil, nil
}

func (m *mockDocumentServiceEmpty) Count(_ context.Context) (int, error) { return 0, nil }

func (m *mockDocumentServiceEmpty) Open(_ context.Context, _ string) error {
	return domain.ErrNotFound
}

type mockSettingsService struct {
	settings domain.AppSettings
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{settings: domain.DefaultAppSettings()}
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	settings := m.settings
	return &settings, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	m.settings = *settings
	return nil
}

func (m *mockSettingsService) SetSport(sport string) error {
	sport = strings.ToLower(strings.TrimSpace(sport))
	if sport == "" {
		return domain.ErrInvalidInput
	}
	m.settings.Dataset.Sport = sport
	return nil
}

func (m *mockSettingsService) SetSummariserProvider(provider domain.AIProvider, model, apiKey string) error {
	if !provider.IsValid() {
		return domain.ErrInvalidInput
	}
	m.settings.Summariser.Provider = provider
	m.settings.Summariser.Model = model
	m.settings.Summariser.APIKey = apiKey
	return nil
}

func (m *mockSettingsService) SetSummaryProfile(name string) error {
	if _, ok := domain.SummaryProfiles()[name]; !ok {
		return domain.ErrInvalidInput
	}
	m.settings.Summariser.Profile = name
	return nil
}

func (m *mockSettingsService) SetReaderModel(model string) error {
	if model == "" {
		model = domain.DefaultReaderModel
	}
	m.settings.Reader.Model = model
	return nil
}

func (m *mockSettingsService) SetToken(token string) error {
	m.settings.HuggingFace.Token = strings.TrimSpace(token)
	return nil
}

func (m *mockSettingsService) Token() (string, error) {
	return m.settings.HuggingFace.Token, nil
}

func (m *mockSettingsService) Validate() error { return nil }

func (m *mockSettingsService) ValidateSummariserConfig() error { return nil }

func (m *mockSettingsService) ValidateReaderConfig() error { return nil }

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// setupTestServices installs mock services for command tests and
// returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldQA := qaService
	oldSummarise := summariseService
	oldIngest := ingestService
	oldDocument := documentService
	oldSettings := settingsService
	oldFactory := summariserFactory

	qaService = &mockQAService{}
	summariseService = &mockSummariseService{}
	ingestService = &mockIngestService{}
	documentService = &mockDocumentService{}
	settingsService = newMockSettingsService()
	summariserFactory = func(_ domain.AIProvider) (driving.SummariseService, error) {
		return &mockSummariseService{}, nil
	}

	return func() {
		qaService = oldQA
		summariseService = oldSummarise
		ingestService = oldIngest
		documentService = oldDocument
		settingsService = oldSettings
		summariserFactory = oldFactory
	}
}
