// Package memory provides an in-memory VectorStore implementation.
// It is used by unit tests and as a non-persistent fallback; the SQLite
// adapter is the production store.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/scribe-labs/scribe-cli/internal/adapters/driven/index/vecmath"
	"github.com/scribe-labs/scribe-cli/internal/core/domain"
	"github.com/scribe-labs/scribe-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// Store is an in-memory vector store.
type Store struct {
	mu     sync.RWMutex
	chunks []domain.Chunk
}

// New creates an empty in-memory vector store.
func New() *Store {
	return &Store{}
}

// Add appends chunks to the index.
func (s *Store) Add(_ context.Context, chunks []domain.Chunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = append(s.chunks, chunks...)
	return nil
}

// Search ranks stored chunks by cosine similarity to the query vector.
func (s *Store) Search(_ context.Context, query []float32, k int) ([]domain.ScoredChunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.chunks) == 0 || k <= 0 {
		return nil, nil
	}

	scored := make([]domain.ScoredChunk, 0, len(s.chunks))
	for _, chunk := range s.chunks {
		scored = append(scored, domain.ScoredChunk{
			Chunk:      chunk,
			Similarity: vecmath.Cosine(query, chunk.Embedding),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})

	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k], nil
}

// Count reports the number of stored chunks.
func (s *Store) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks), nil
}

// Rebuild discards all stored chunks.
func (s *Store) Rebuild(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = nil
	return nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error {
	return nil
}
