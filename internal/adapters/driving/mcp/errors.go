// Package mcp provides an MCP (Model Context Protocol) server adapter for Scribe.
// It lets AI assistants retrieve indexed context and generate articles.
package mcp

import "errors"

// ErrMissingRetrievalService is returned when the retrieval service is not provided.
var ErrMissingRetrievalService = errors.New("mcp: retrieval service is required")
