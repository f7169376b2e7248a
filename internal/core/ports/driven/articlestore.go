package driven

import (
	"context"

	"github.com/scribe-labs/scribe-cli/internal/core/domain"
)

// ArticleStore persists generated articles and their metadata sidecars.
// The orchestrator does not own the output directory; listing and saving
// are this collaborator's concern.
type ArticleStore interface {
	// Save writes the article and its metadata sidecar, returning the
	// path of the article file.
	Save(ctx context.Context, article *domain.Article) (string, error)

	// List returns metadata for all previously generated articles.
	List(ctx context.Context) ([]domain.ArticleMetadata, error)

	// Close releases resources (watchers, handles).
	Close() error
}
