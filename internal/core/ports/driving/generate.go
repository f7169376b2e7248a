package driving

import (
	"context"

	"github.com/scribe-labs/scribe-cli/internal/core/domain"
	"github.com/scribe-labs/scribe-cli/internal/core/ports/driven"
)

// GenerateRequest describes one article generation run.
type GenerateRequest struct {
	// Topic is the free-form topic request.
	Topic string

	// Temperature overrides the configured sampling temperature when > 0.
	Temperature float64

	// Save writes the article and metadata sidecar to the article store.
	Save bool
}

// ArticleGenerator runs the full pipeline for a topic request.
type ArticleGenerator interface {
	// Generate runs discovery, crawling, ingestion, retrieval, and
	// completion for the topic and returns the finished article.
	Generate(ctx context.Context, req GenerateRequest) (*domain.Article, error)

	// GenerateStream is Generate with the completion stage streamed.
	// Deltas arrive in order; the channel closes on completion, error, or
	// ctx cancellation.
	GenerateStream(ctx context.Context, req GenerateRequest) (<-chan driven.StreamDelta, error)
}
