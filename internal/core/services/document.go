package services

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driven"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driving"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// defaultListLimit is the page size when callers pass zero.
const defaultListLimit = 20

// DocumentService exposes the loaded corpus for browsing.
type DocumentService struct {
	docStore driven.DocumentStore
}

// NewDocumentService creates a new document service.
func NewDocumentService(docStore driven.DocumentStore) *DocumentService {
	return &DocumentService{docStore: docStore}
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: document id is empty", domain.ErrInvalidInput)
	}
	return s.docStore.Get(ctx, id)
}

// List returns up to limit documents starting at offset.
func (s *DocumentService) List(ctx context.Context, limit, offset int) ([]domain.Document, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.docStore.List(ctx, limit, offset)
}

// Count returns the size of the loaded corpus.
func (s *DocumentService) Count(ctx context.Context) (int, error) {
	return s.docStore.Count(ctx)
}

// Open opens the document's source URL in the default browser.
func (s *DocumentService) Open(ctx context.Context, id string) error {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if doc.URL == "" {
		return fmt.Errorf("document %s has no source URL", id)
	}
	return openURL(doc.URL)
}

// openURL opens a URL using the system default handler.
func openURL(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
