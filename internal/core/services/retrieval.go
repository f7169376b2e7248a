package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/scribe-labs/scribe-cli/internal/chunker"
	"github.com/scribe-labs/scribe-cli/internal/core/domain"
	"github.com/scribe-labs/scribe-cli/internal/core/ports/driven"
	"github.com/scribe-labs/scribe-cli/internal/core/ports/driving"
	"github.com/scribe-labs/scribe-cli/internal/logger"
)

// Ensure RetrievalStore implements the interface.
var _ driving.RetrievalService = (*RetrievalStore)(nil)

// DefaultTopK is the result count when callers pass k <= 0.
const DefaultTopK = 3

// RetrievalStore is the process-wide retrieval service. It owns the
// lifecycle state: UNINITIALIZED until the first successful ingestion
// or load, READY while vector search works, DEGRADED permanently after
// any embedding or index failure. Environmental failures never
// propagate to callers; they degrade the store and reads are served by
// the fallback generator instead.
type RetrievalStore struct {
	embedder driven.EmbeddingService
	index    driven.VectorStore
	splitter *chunker.Splitter
	fallback *FallbackGenerator

	mu    sync.Mutex
	state domain.StoreState
}

// NewRetrievalStore creates the retrieval store. If the underlying
// index already holds chunks from a previous run, the store starts
// READY; otherwise it stays UNINITIALIZED until first ingestion.
func NewRetrievalStore(
	embedder driven.EmbeddingService,
	index driven.VectorStore,
	splitter *chunker.Splitter,
) *RetrievalStore {
	s := &RetrievalStore{
		embedder: embedder,
		index:    index,
		splitter: splitter,
		fallback: NewFallbackGenerator(),
		state:    domain.StateUninitialized,
	}

	if count, err := index.Count(context.Background()); err == nil && count > 0 {
		logger.Debug("loaded existing index with %d chunks", count)
		s.state = domain.StateReady
	}
	return s
}

// State reports the store's current lifecycle state.
func (s *RetrievalStore) State() domain.StoreState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// degrade transitions to DEGRADED. One-way: the store never recovers
// within a process lifetime.
func (s *RetrievalStore) degrade(cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == domain.StateDegraded {
		return
	}
	logger.Warn("retrieval degraded: %v", cause)
	s.state = domain.StateDegraded
}

func (s *RetrievalStore) degraded() bool {
	return s.State() == domain.StateDegraded
}

// markReady records a successful index mutation.
func (s *RetrievalStore) markReady() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == domain.StateUninitialized {
		s.state = domain.StateReady
	}
}

// AddDocuments ingests raw texts: each non-empty text becomes a
// document, is chunked, embedded, and appended to the persisted index.
// Returns nil when degraded or when ingestion fails; failure degrades
// the store instead of propagating.
func (s *RetrievalStore) AddDocuments(ctx context.Context, texts []string) []domain.Chunk {
	if s.degraded() {
		return nil
	}

	var chunks []domain.Chunk
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		doc := &domain.Document{ID: uuid.NewString(), Text: text}
		chunks = append(chunks, s.splitter.SplitDocument(doc)...)
	}
	if len(chunks) == 0 {
		return nil
	}

	contents := make([]string, len(chunks))
	for i, chunk := range chunks {
		contents[i] = chunk.Content
	}

	vectors, err := s.embedder.EmbedBatch(ctx, contents)
	if err != nil {
		s.degrade(fmt.Errorf("embed documents: %w", err))
		return nil
	}
	if err := validateVectors(vectors, len(chunks)); err != nil {
		s.degrade(err)
		return nil
	}
	for i := range chunks {
		chunks[i].Embedding = vectors[i]
	}

	if err := s.index.Add(ctx, chunks); err != nil {
		s.degrade(fmt.Errorf("append to index: %w", err))
		return nil
	}

	s.markReady()
	logger.Info("indexed %d chunks from %d texts", len(chunks), len(texts))
	return chunks
}

// validateVectors rejects empty or near-empty embeddings before they
// reach the index.
func validateVectors(vectors [][]float32, want int) error {
	if len(vectors) != want {
		return fmt.Errorf("%w: got %d vectors for %d chunks", domain.ErrInvalidEmbedding, len(vectors), want)
	}
	for i, vec := range vectors {
		if len(vec) < 2 {
			return fmt.Errorf("%w: vector %d has %d dimensions", domain.ErrInvalidEmbedding, i, len(vec))
		}
	}
	return nil
}

// SimilaritySearch returns the k chunks most similar to the query.
// Empty result when degraded, when the index is empty, or on any
// backend failure; never an error.
func (s *RetrievalStore) SimilaritySearch(ctx context.Context, query string, k int) []domain.ScoredChunk {
	if s.degraded() || strings.TrimSpace(query) == "" {
		return nil
	}
	if k <= 0 {
		k = DefaultTopK
	}

	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		s.degrade(fmt.Errorf("embed query: %w", err))
		return nil
	}
	if len(vector) < 2 {
		s.degrade(fmt.Errorf("%w: query vector has %d dimensions", domain.ErrInvalidEmbedding, len(vector)))
		return nil
	}

	results, err := s.index.Search(ctx, vector, k)
	if err != nil {
		s.degrade(fmt.Errorf("index search: %w", err))
		return nil
	}
	return results
}

// RetrieveRelevantContent returns a non-empty context string for any
// non-empty query. When retrieval works, matched chunks are joined with
// blank lines; when it cannot produce anything, the fallback outline is
// returned instead. An empty query is a caller bug and errors.
func (s *RetrievalStore) RetrieveRelevantContent(ctx context.Context, query string, k int) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("retrieve: %w: query is empty", domain.ErrInvalidInput)
	}

	if s.degraded() {
		return s.fallback.Generate(query), nil
	}

	results := s.SimilaritySearch(ctx, query, k)
	if len(results) == 0 {
		// Covers fresh degradation, empty index, and no matches alike.
		return s.fallback.Generate(query), nil
	}

	parts := make([]string, len(results))
	for i, result := range results {
		parts[i] = result.Chunk.Content
	}
	return strings.Join(parts, "\n\n"), nil
}
