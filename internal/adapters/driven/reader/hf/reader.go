// Package hf provides a reader service adapter using the Hugging Face
// Inference API question-answering task. Span extraction is performed
// entirely by the hosted pretrained model.
package hf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"golang.org/x/oauth2"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driven"
	"github.com/courtside-labs/courtside-cli/internal/logger"
)

// Ensure ReaderService implements the interface.
var _ driven.ReaderService = (*ReaderService)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api-inference.huggingface.co"
	DefaultModel   = domain.DefaultReaderModel
	DefaultTimeout = 60 * time.Second
)

// ReaderConfig holds configuration for the Hugging Face reader service.
type ReaderConfig struct {
	// BaseURL is the inference API base URL (default: the public endpoint).
	BaseURL string

	// Model is the question-answering model (default: deepset/roberta-base-squad2).
	Model string

	// Token is the API token. Empty means anonymous access.
	Token string

	// Timeout is the per-request timeout (default: 60s).
	Timeout time.Duration
}

// ReaderService extracts answer spans via the hosted QA model.
type ReaderService struct {
	client  *http.Client
	baseURL string
	model   string
}

// qaRequest is the inference API question-answering request format.
type qaRequest struct {
	Inputs     qaInputs   `json:"inputs"`
	Parameters *qaParams  `json:"parameters,omitempty"`
	Options    *apiOption `json:"options,omitempty"`
}

// qaInputs pairs the question with one candidate passage.
type qaInputs struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

// qaParams holds extraction parameters.
type qaParams struct {
	TopK int `json:"top_k,omitempty"`
}

// apiOption controls hosted-model behaviour.
type apiOption struct {
	WaitForModel bool `json:"wait_for_model"`
	UseCache     bool `json:"use_cache"`
}

// qaAnswer is one extracted span in the response.
// With top_k=1 the API returns a bare object, otherwise an array.
type qaAnswer struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
}

// apiError is the inference API error envelope.
type apiError struct {
	Error string `json:"error"`
}

// NewReaderService creates a new Hugging Face reader service.
func NewReaderService(cfg ReaderConfig) *ReaderService {
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

	return &ReaderService{
		client:  client,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
	}
}

// Extract runs the question against each candidate document and merges
// the extracted spans, sorted by descending score. At most opts.TopK
// spans are returned.
func (s *ReaderService) Extract(ctx context.Context, question string, docs []domain.Document, opts driven.ExtractOptions) ([]domain.Answer, error) {
	if opts.TopK <= 0 {
		opts.TopK = domain.DefaultReaderTopK
	}
	perDoc := opts.PerDocument
	if perDoc <= 0 {
		perDoc = 1
	}

	var answers []domain.Answer
	for _, doc := range docs {
		spans, err := s.extractOne(ctx, question, doc.Content, perDoc)
		if err != nil {
			return nil, fmt.Errorf("extract from %q: %w", doc.ID, err)
		}
		for _, span := range spans {
			if span.Answer == "" {
				continue
			}
			answers = append(answers, domain.Answer{
				Text:     span.Answer,
				Score:    span.Score,
				Start:    span.Start,
				End:      span.End,
				Document: doc,
			})
		}
	}

	sort.SliceStable(answers, func(i, j int) bool {
		return answers[i].Score > answers[j].Score
	})
	if len(answers) > opts.TopK {
		answers = answers[:opts.TopK]
	}

	logger.Debug("reader: %d candidate documents produced %d spans", len(docs), len(answers))
	return answers, nil
}

// extractOne asks the model for spans within a single passage.
func (s *ReaderService) extractOne(ctx context.Context, question, passage string, topK int) ([]qaAnswer, error) {
	reqBody := qaRequest{
		Inputs:  qaInputs{Question: question, Context: passage},
		Options: &apiOption{WaitForModel: true, UseCache: true},
	}
	if topK > 1 {
		reqBody.Parameters = &qaParams{TopK: topK}
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.modelURL(),
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// Fall through to decoding.
	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: %s", domain.ErrRateLimited, apiErrorMessage(body))
	default:
		return nil, fmt.Errorf("inference API status %d: %s", resp.StatusCode, apiErrorMessage(body))
	}

	return decodeAnswers(body)
}

// decodeAnswers handles both response shapes: a bare object for a
// single span and an array when top_k asks for more.
func decodeAnswers(body []byte) ([]qaAnswer, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var spans []qaAnswer
		if err := json.Unmarshal(trimmed, &spans); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return spans, nil
	}

	var span qaAnswer
	if err := json.Unmarshal(trimmed, &span); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return []qaAnswer{span}, nil
}

// apiErrorMessage extracts the error field, falling back to raw body.
func apiErrorMessage(body []byte) string {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return apiErr.Error
	}
	return string(body)
}

// ModelName returns the name of the reader model being used.
func (s *ReaderService) ModelName() string {
	return s.model
}

// Ping validates the service is reachable by running the question the
// model card ships as its example. Doubles as the warm-up call: the
// wait_for_model option makes the API block until the model is loaded.
func (s *ReaderService) Ping(ctx context.Context) error {
	_, err := s.extractOne(ctx, "Why is model conversion important?",
		"The option to convert models gives freedom to the user.", 1)
	if err != nil {
		return fmt.Errorf("huggingface: ping failed: %w", err)
	}
	return nil
}

// Close releases resources.
func (s *ReaderService) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}

func (s *ReaderService) modelURL() string {
	return fmt.Sprintf("%s/models/%s", s.baseURL, s.model)
}
