package hf

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driven"
)

// capturedRequest is the inference request body as the server saw it.
type capturedRequest struct {
	Inputs struct {
		Question string `json:"question"`
		Context  string `json:"context"`
	} `json:"inputs"`
	Parameters *struct {
		TopK int `json:"top_k"`
	} `json:"parameters"`
}

func TestDecodeAnswers_SingleObject(t *testing.T) {
	body := []byte(`{"answer":"81 points","score":0.9731,"start":54,"end":63}`)

	spans, err := decodeAnswers(body)
	require.NoError(t, err)
	require.Len(t, spans, 1)
	assert.Equal(t, "81 points", spans[0].Answer)
	assert.InDelta(t, 0.9731, spans[0].Score, 1e-9)
	assert.Equal(t, 54, spans[0].Start)
	assert.Equal(t, 63, spans[0].End)
}

func TestDecodeAnswers_Array(t *testing.T) {
	body := []byte(`[
		{"answer":"81 points","score":0.97,"start":54,"end":63},
		{"answer":"Lakers","score":0.41,"start":30,"end":36}
	]`)

	spans, err := decodeAnswers(body)
	require.NoError(t, err)
	require.Len(t, spans, 2)
	assert.Equal(t, "81 points", spans[0].Answer)
	assert.Equal(t, "Lakers", spans[1].Answer)
}

func TestDecodeAnswers_LeadingWhitespace(t *testing.T) {
	body := []byte("\n  [{\"answer\":\"six\",\"score\":0.8,\"start\":0,\"end\":3}]")

	spans, err := decodeAnswers(body)
	require.NoError(t, err)
	require.Len(t, spans, 1)
	assert.Equal(t, "six", spans[0].Answer)
}

func TestDecodeAnswers_Malformed(t *testing.T) {
	_, err := decodeAnswers([]byte(`{"answer":`))
	assert.Error(t, err)
}

func TestAPIErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "Error envelope",
			body:     `{"error":"Model deepset/roberta-base-squad2 is currently loading"}`,
			expected: "Model deepset/roberta-base-squad2 is currently loading",
		},
		{
			name:     "Plain body fallback",
			body:     "Service Unavailable",
			expected: "Service Unavailable",
		},
		{
			name:     "Empty error field falls back to raw",
			body:     `{"error":""}`,
			expected: `{"error":""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, apiErrorMessage([]byte(tt.body)))
		})
	}
}

func TestReaderService_Extract_RequestsSpansPerDocument(t *testing.T) {
	var captured capturedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"answer":"81 points","score":0.97,"start":35,"end":44},
			{"answer":"the Toronto Raptors","score":0.31,"start":53,"end":72}
		]`))
	}))
	defer server.Close()

	s := NewReaderService(ReaderConfig{BaseURL: server.URL})
	docs := []domain.Document{{
		ID:      "ctx-1",
		Content: "In January 2006 Kobe Bryant scored 81 points against the Toronto Raptors.",
	}}

	answers, err := s.Extract(context.Background(), "How many points did Kobe score?",
		docs, driven.ExtractOptions{TopK: 3, PerDocument: 3})

	require.NoError(t, err)

	// The request asked the model for multiple spans from the passage
	require.NotNil(t, captured.Parameters)
	assert.Equal(t, 3, captured.Parameters.TopK)
	assert.Equal(t, "How many points did Kobe score?", captured.Inputs.Question)

	// Both spans from the single document came back, best first
	require.Len(t, answers, 2)
	assert.Equal(t, "81 points", answers[0].Text)
	assert.Equal(t, "the Toronto Raptors", answers[1].Text)
	assert.Equal(t, "ctx-1", answers[0].Document.ID)
	assert.Equal(t, "ctx-1", answers[1].Document.ID)
}

func TestReaderService_Extract_SingleSpanOmitsParameters(t *testing.T) {
	var captured capturedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"answer":"81 points","score":0.97,"start":35,"end":44}`))
	}))
	defer server.Close()

	s := NewReaderService(ReaderConfig{BaseURL: server.URL})
	docs := []domain.Document{{ID: "ctx-1", Content: "Kobe Bryant scored 81 points."}}

	answers, err := s.Extract(context.Background(), "How many points?",
		docs, driven.ExtractOptions{TopK: 1})

	require.NoError(t, err)
	assert.Nil(t, captured.Parameters)
	require.Len(t, answers, 1)
	assert.Equal(t, "81 points", answers[0].Text)
}

func TestNewReaderService_Defaults(t *testing.T) {
	s := NewReaderService(ReaderConfig{})

	assert.Equal(t, DefaultModel, s.ModelName())
	assert.Equal(t, DefaultBaseURL+"/models/"+DefaultModel, s.modelURL())
}
