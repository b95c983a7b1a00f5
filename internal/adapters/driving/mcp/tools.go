package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driving"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the natural-language sports question to answer"`
	Context  string `json:"context,omitempty" jsonschema:"answer from this passage instead of the corpus"`
	TopK     int    `json:"top_k,omitempty" jsonschema:"maximum number of answers to return (default 3)"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Question string         `json:"question"`
	Answers  []AnswerOutput `json:"answers"`
	Count    int            `json:"count"`
	Message  string         `json:"message,omitempty"`
}

// AnswerOutput represents a single extracted answer span.
type AnswerOutput struct {
	Text       string  `json:"text"`
	Score      float64 `json:"score"`
	DocumentID string  `json:"document_id,omitempty"`
	Title      string  `json:"title,omitempty"`
	URL        string  `json:"url,omitempty"`
}

// SummariseInput is the input schema for the summarise tool.
type SummariseInput struct {
	Text    string `json:"text" jsonschema:"the text to summarise"`
	Profile string `json:"profile,omitempty" jsonschema:"summary profile to use: distilbart or bart (default from settings)"`
}

// SummariseOutput is the output schema for the summarise tool.
type SummariseOutput struct {
	Summary string   `json:"summary"`
	Points  []string `json:"points"`
	Model   string   `json:"model"`
}

// CorpusStatusInput is the (empty) input schema for the corpus_status tool.
type CorpusStatusInput struct{}

// CorpusStatusOutput is the output schema for the corpus_status tool.
type CorpusStatusOutput struct {
	Stage     string `json:"stage"`
	Ready     bool   `json:"ready"`
	Documents int    `json:"documents"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a sports question from the QASports corpus, or from a supplied passage",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "corpus_status",
		Description: "Report whether the question-answering corpus is loaded and how many passages it holds",
	}, s.handleCorpusStatus)

	if s.ports.Summarise != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "summarise",
			Description: "Generate an abstractive summary of the supplied text",
		}, s.handleSummarise)
	}
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	// Direct mode: answer from the supplied passage, no corpus needed.
	if input.Context != "" {
		result, err := s.ports.QA.AskContext(ctx, input.Question, input.Context)
		return s.askOutcome(input.Question, result, err)
	}

	// Corpus mode: the first question triggers the corpus build.
	if s.ports.Ingest != nil && !s.ports.Ingest.Ready() {
		if _, err := s.ports.Ingest.Ingest(ctx, driving.IngestOptions{}); err != nil {
			return nil, AskOutput{}, fmt.Errorf("loading corpus: %w", err)
		}
	}

	result, err := s.ports.QA.Ask(ctx, input.Question, domain.AskOptions{ReaderTopK: input.TopK})
	return s.askOutcome(input.Question, result, err)
}

// askOutcome maps a pipeline result onto the tool output. A run that
// produced no spans is a normal outcome with the blanket message, not
// a tool error.
func (s *Server) askOutcome(
	question string,
	result *domain.AskResult,
	err error,
) (*mcp.CallToolResult, AskOutput, error) {
	if err != nil {
		if errors.Is(err, domain.ErrNoAnswer) {
			return nil, AskOutput{
				Question: question,
				Answers:  []AnswerOutput{},
				Message:  domain.MsgNoAnswer,
			}, nil
		}
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Question: result.Question,
		Answers:  make([]AnswerOutput, len(result.Answers)),
		Count:    len(result.Answers),
	}

	for i := range result.Answers {
		output.Answers[i] = AnswerOutput{
			Text:       result.Answers[i].Text,
			Score:      result.Answers[i].Score,
			DocumentID: result.Answers[i].Document.ID,
			Title:      result.Answers[i].Document.Title,
			URL:        result.Answers[i].Document.URL,
		}
	}

	return nil, output, nil
}

// handleCorpusStatus handles the corpus_status tool invocation.
func (s *Server) handleCorpusStatus(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ CorpusStatusInput,
) (*mcp.CallToolResult, CorpusStatusOutput, error) {
	output := CorpusStatusOutput{Stage: string(domain.StageIdle)}

	if s.ports.Ingest != nil {
		output.Stage = string(s.ports.Ingest.Status().Stage)
		output.Ready = s.ports.Ingest.Ready()

		count, err := s.ports.Ingest.DocumentCount(ctx)
		if err != nil {
			return nil, CorpusStatusOutput{}, fmt.Errorf("counting documents: %w", err)
		}
		output.Documents = count
	}

	return nil, output, nil
}

// handleSummarise handles the summarise tool invocation.
func (s *Server) handleSummarise(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SummariseInput,
) (*mcp.CallToolResult, SummariseOutput, error) {
	opts := domain.SummaryOptions{Profile: input.Profile}
	summary, err := s.ports.Summarise.Summarise(ctx, input.Text, opts)
	if err != nil {
		return nil, SummariseOutput{}, err
	}

	return nil, SummariseOutput{
		Summary: summary.Text,
		Points:  summary.Points,
		Model:   summary.Model,
	}, nil
}
