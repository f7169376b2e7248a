package driving

import (
	"context"

	"github.com/scribe-labs/scribe-cli/internal/core/domain"
)

// RetrievalService provides retrieval-augmented context to external actors.
//
// The degradation contract: once the service observes an embedding or
// index failure it serves fallback content for the rest of the process.
// None of the operations except RetrieveRelevantContent with an empty
// query ever return an error for environmental failures.
type RetrievalService interface {
	// AddDocuments ingests raw texts: each non-empty text is wrapped as a
	// document, chunked, embedded, and appended to the persisted index.
	// Returns the chunks created, or nil when degraded. Ingestion failure
	// degrades the store instead of returning an error.
	AddDocuments(ctx context.Context, texts []string) []domain.Chunk

	// SimilaritySearch returns the k chunks most similar to the query.
	// Empty result (never an error) when degraded, when the index is
	// empty, or on any backend failure.
	SimilaritySearch(ctx context.Context, query string, k int) []domain.ScoredChunk

	// RetrieveRelevantContent returns a non-empty, usable context string
	// for any non-empty query, falling back to generated outline text
	// when semantic retrieval is unavailable. An empty query returns
	// domain.ErrInvalidInput - the one caller-bug case that errors.
	RetrieveRelevantContent(ctx context.Context, query string, k int) (string, error)

	// State reports the store's current lifecycle state.
	State() domain.StoreState
}
