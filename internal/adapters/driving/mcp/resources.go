package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Courtside resources.
	uriScheme = "courtside://"

	// documentListLimit caps how many documents the corpus listing
	// resource returns.
	documentListLimit = 100
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for corpus status.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "corpus/info",
		Name:        "corpus-info",
		Description: "Status and size of the loaded question-answering corpus",
		MIMEType:    "application/json",
	}, s.handleCorpusResource)

	// Static resource for listing corpus documents.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "documents",
		Name:        "documents",
		Description: "Deduplicated passages indexed from the dataset",
		MIMEType:    "application/json",
	}, s.handleDocumentsResource)

	// Template for passage content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{documentId}",
		Name:        "document-content",
		Description: "Full text of a specific passage",
		MIMEType:    "text/plain",
	}, s.handleDocumentContentResource)
}

// handleCorpusResource returns the ingest status and corpus size.
func (s *Server) handleCorpusResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type corpusInfo struct {
		Stage     string `json:"stage"`
		Ready     bool   `json:"ready"`
		Fetched   int    `json:"fetched,omitempty"`
		Unique    int    `json:"unique,omitempty"`
		Documents int    `json:"documents"`
	}

	info := corpusInfo{Stage: "idle"}
	if s.ports.Ingest != nil {
		status := s.ports.Ingest.Status()
		info.Stage = string(status.Stage)
		info.Ready = s.ports.Ingest.Ready()
		info.Fetched = status.Fetched
		info.Unique = status.Unique
	}
	if s.ports.Document != nil {
		count, err := s.ports.Document.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("counting documents: %w", err)
		}
		info.Documents = count
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling corpus status: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDocumentsResource returns the corpus document listing.
func (s *Server) handleDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Document == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	docs, err := s.ports.Document.List(ctx, documentListLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	// Build simplified document list.
	type docInfo struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		URL   string `json:"url"`
	}

	infos := make([]docInfo, len(docs))
	for i := range docs {
		infos[i] = docInfo{
			ID:    docs[i].ID,
			Title: docs[i].Title,
			URL:   docs[i].URL,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling documents: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDocumentContentResource returns the full text of a specific passage.
func (s *Server) handleDocumentContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Document == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract documentId from URI: courtside://documents/{documentId}
	docID := extractDocumentID(req.Params.URI)
	if docID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Document.Get(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     doc.Content,
		}},
	}, nil
}

// extractDocumentID extracts the document ID from a URI like courtside://documents/{documentId}.
func extractDocumentID(uri string) string {
	const prefix = uriScheme + "documents/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
