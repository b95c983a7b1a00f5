// Package hf provides a summariser service adapter using the Hugging
// Face Inference API summarisation task. Generation is performed
// entirely by the hosted pretrained model.
package hf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driven"
)

// Ensure SummariserService implements the interface.
var _ driven.SummariserService = (*SummariserService)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api-inference.huggingface.co"
	DefaultModel   = "sshleifer/distilbart-cnn-12-6"
	DefaultTimeout = 120 * time.Second
)

// SummariserConfig holds configuration for the Hugging Face summariser
// service.
type SummariserConfig struct {
	// BaseURL is the inference API base URL (default: the public endpoint).
	BaseURL string

	// Model is the fallback summarisation model when a call does not
	// name one (default: sshleifer/distilbart-cnn-12-6).
	Model string

	// Token is the API token. Empty means anonymous access.
	Token string

	// Timeout is the per-request timeout (default: 120s).
	Timeout time.Duration
}

// SummariserService generates summaries via hosted summarisation models.
type SummariserService struct {
	client  *http.Client
	baseURL string
	model   string
}

// summariseRequest is the inference API summarisation request format.
type summariseRequest struct {
	Inputs     string           `json:"inputs"`
	Parameters *summariseParams `json:"parameters,omitempty"`
	Options    *apiOption       `json:"options,omitempty"`
}

// summariseParams holds generation parameters.
type summariseParams struct {
	MaxLength int  `json:"max_length,omitempty"`
	MinLength int  `json:"min_length,omitempty"`
	DoSample  bool `json:"do_sample"`
}

// apiOption controls hosted-model behaviour.
type apiOption struct {
	WaitForModel bool `json:"wait_for_model"`
	UseCache     bool `json:"use_cache"`
}

// summaryResult is one element of the response array.
type summaryResult struct {
	SummaryText string `json:"summary_text"`
}

// apiError is the inference API error envelope.
type apiError struct {
	Error string `json:"error"`
}

// NewSummariserService creates a new Hugging Face summariser service.
func NewSummariserService(cfg SummariserConfig) *SummariserService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	client := &http.Client{Timeout: cfg.Timeout}
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		client = oauth2.NewClient(context.Background(), ts)
		client.Timeout = cfg.Timeout
	}

	return &SummariserService{
		client:  client,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
	}
}

// Summarise condenses the text within the given length bounds. The
// call runs against p.Model when set, otherwise the configured
// fallback model.
func (s *SummariserService) Summarise(ctx context.Context, text string, p driven.SummariseParams) (string, error) {
	model := p.Model
	if model == "" {
		model = s.model
	}

	params := &summariseParams{DoSample: false}
	if p.MaxLength > 0 {
		params.MaxLength = p.MaxLength
	}
	if p.MinLength > 0 {
		params.MinLength = p.MinLength
	}

	return s.summariseOne(ctx, model, text, params)
}

// summariseOne runs a single summarisation request against one model.
func (s *SummariserService) summariseOne(ctx context.Context, model, text string, params *summariseParams) (string, error) {
	reqBody := summariseRequest{
		Inputs:     text,
		Parameters: params,
		Options:    &apiOption{WaitForModel: true, UseCache: true},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.modelURL(model),
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// Fall through to decoding.
	case http.StatusTooManyRequests:
		return "", fmt.Errorf("%w: %s", domain.ErrRateLimited, apiErrorMessage(body))
	default:
		return "", fmt.Errorf("inference API status %d: %s", resp.StatusCode, apiErrorMessage(body))
	}

	return decodeSummary(body)
}

// decodeSummary extracts the summary text from the response array.
func decodeSummary(body []byte) (string, error) {
	var results []summaryResult
	if err := json.Unmarshal(bytes.TrimSpace(body), &results); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("inference API returned no summary")
	}
	return strings.TrimSpace(results[0].SummaryText), nil
}

// apiErrorMessage extracts the error field, falling back to raw body.
func apiErrorMessage(body []byte) string {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return apiErr.Error
	}
	return string(body)
}

// ModelName returns the fallback summarisation model.
func (s *SummariserService) ModelName() string {
	return s.model
}

// Ping validates the service is reachable by summarising a one-line
// input. Doubles as the warm-up call: the wait_for_model option makes
// the API block until the model is loaded.
func (s *SummariserService) Ping(ctx context.Context) error {
	_, err := s.summariseOne(ctx, s.model, "I am a Programmer.", nil)
	if err != nil {
		return fmt.Errorf("huggingface: ping failed: %w", err)
	}
	return nil
}

// Close releases resources.
func (s *SummariserService) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}

func (s *SummariserService) modelURL(model string) string {
	return fmt.Sprintf("%s/models/%s", s.baseURL, model)
}
