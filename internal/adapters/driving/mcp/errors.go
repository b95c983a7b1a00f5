// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Courtside. It lets AI assistants like Claude ask sports questions over the
// loaded corpus and summarise text through the same core services the CLI
// and TUI use.
package mcp

import "errors"

// ErrMissingQAService is returned when the question-answering service is not provided.
var ErrMissingQAService = errors.New("mcp: question answering service is required")
