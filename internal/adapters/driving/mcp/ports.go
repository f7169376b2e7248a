package mcp

import (
	"github.com/scribe-labs/scribe-cli/internal/core/ports/driven"
	"github.com/scribe-labs/scribe-cli/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Retrieval serves similarity search and context retrieval.
	Retrieval driving.RetrievalService

	// Generator runs the article pipeline.
	Generator driving.ArticleGenerator

	// Articles lists previously generated articles.
	Articles driven.ArticleStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Retrieval == nil {
		return ErrMissingRetrievalService
	}
	// Generator and Articles are optional; their tools report errors.
	return nil
}
