package driven

import (
	"context"

	"github.com/scribe-labs/scribe-cli/internal/core/domain"
)

// VectorStore persists chunks and their embeddings and answers
// nearest-neighbour queries. Implementations must treat a missing or
// corrupted backing file as "no index yet" rather than an error, support
// incremental append, and persist after every successful mutation.
type VectorStore interface {
	// Add appends chunks (with embeddings) to the index and persists them.
	Add(ctx context.Context, chunks []domain.Chunk) error

	// Search returns the k stored chunks nearest to the query vector,
	// ranked by cosine similarity. An empty index yields an empty result,
	// not an error.
	Search(ctx context.Context, query []float32, k int) ([]domain.ScoredChunk, error)

	// Count reports the number of stored chunks.
	Count(ctx context.Context) (int, error)

	// Rebuild discards all stored chunks, leaving an empty index.
	Rebuild(ctx context.Context) error

	// Close releases resources.
	Close() error
}
