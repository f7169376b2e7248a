package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribe-labs/scribe-cli/internal/adapters/driven/index/memory"
	"github.com/scribe-labs/scribe-cli/internal/chunker"
	"github.com/scribe-labs/scribe-cli/internal/core/domain"
)

// --- Mock implementations ---

// mockEmbeddingService implements driven.EmbeddingService for testing.
type mockEmbeddingService struct {
	embedding  []float32
	embedErr   error
	embedCalls int
}

func (m *mockEmbeddingService) Embed(_ context.Context, _ string) ([]float32, error) {
	m.embedCalls++
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	return m.embedding, nil
}

func (m *mockEmbeddingService) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	m.embedCalls++
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	result := make([][]float32, len(texts))
	for i := range texts {
		result[i] = m.embedding
	}
	return result, nil
}

func (m *mockEmbeddingService) Dimensions() int { return len(m.embedding) }

func (m *mockEmbeddingService) ModelName() string { return "mock-embed" }

func (m *mockEmbeddingService) Ping(_ context.Context) error { return nil }

func (m *mockEmbeddingService) Close() error { return nil }

// failingVectorStore wraps the in-memory store with injectable errors.
type failingVectorStore struct {
	*memory.Store
	addErr    error
	searchErr error
}

func (f *failingVectorStore) Add(ctx context.Context, chunks []domain.Chunk) error {
	if f.addErr != nil {
		return f.addErr
	}
	return f.Store.Add(ctx, chunks)
}

func (f *failingVectorStore) Search(ctx context.Context, query []float32, k int) ([]domain.ScoredChunk, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.Store.Search(ctx, query, k)
}

func newTestRetrievalStore(embedder *mockEmbeddingService) *RetrievalStore {
	return NewRetrievalStore(embedder, memory.New(), chunker.New())
}

// --- Tests ---

func TestRetrievalStore_StartsUninitialized(t *testing.T) {
	store := newTestRetrievalStore(&mockEmbeddingService{embedding: []float32{1, 0, 0}})
	assert.Equal(t, domain.StateUninitialized, store.State())
}

func TestRetrievalStore_StartsReadyWithExistingIndex(t *testing.T) {
	index := memory.New()
	require.NoError(t, index.Add(context.Background(), []domain.Chunk{
		{ID: "c1", Content: "existing", Embedding: []float32{1, 0}},
	}))

	store := NewRetrievalStore(&mockEmbeddingService{embedding: []float32{1, 0}}, index, chunker.New())
	assert.Equal(t, domain.StateReady, store.State())
}

func TestRetrievalStore_AddDocumentsTransitionsToReady(t *testing.T) {
	store := newTestRetrievalStore(&mockEmbeddingService{embedding: []float32{1, 0, 0}})

	chunks := store.AddDocuments(context.Background(), []string{"some crawled content worth indexing"})

	require.NotEmpty(t, chunks)
	assert.Equal(t, domain.StateReady, store.State())
	for _, chunk := range chunks {
		assert.Len(t, chunk.Embedding, 3)
	}
}

func TestRetrievalStore_AddDocumentsSkipsBlankTexts(t *testing.T) {
	store := newTestRetrievalStore(&mockEmbeddingService{embedding: []float32{1, 0, 0}})

	chunks := store.AddDocuments(context.Background(), []string{"", "   ", "\n"})

	assert.Nil(t, chunks)
	assert.Equal(t, domain.StateUninitialized, store.State())
}

func TestRetrievalStore_EmbeddingFailureDegrades(t *testing.T) {
	embedder := &mockEmbeddingService{embedErr: errors.New("quota exceeded")}
	store := newTestRetrievalStore(embedder)

	chunks := store.AddDocuments(context.Background(), []string{"content"})

	assert.Nil(t, chunks)
	assert.Equal(t, domain.StateDegraded, store.State())
}

func TestRetrievalStore_EmptyVectorDegrades(t *testing.T) {
	// A near-empty vector is an invalid embedding, not a usable result.
	store := newTestRetrievalStore(&mockEmbeddingService{embedding: []float32{}})

	chunks := store.AddDocuments(context.Background(), []string{"content"})

	assert.Nil(t, chunks)
	assert.Equal(t, domain.StateDegraded, store.State())
}

func TestRetrievalStore_IndexFailureDegrades(t *testing.T) {
	index := &failingVectorStore{Store: memory.New(), addErr: errors.New("disk full")}
	store := NewRetrievalStore(&mockEmbeddingService{embedding: []float32{1, 0}}, index, chunker.New())

	chunks := store.AddDocuments(context.Background(), []string{"content"})

	assert.Nil(t, chunks)
	assert.Equal(t, domain.StateDegraded, store.State())
}

func TestRetrievalStore_DegradedIsTerminal(t *testing.T) {
	embedder := &mockEmbeddingService{embedErr: errors.New("boom")}
	store := newTestRetrievalStore(embedder)

	store.AddDocuments(context.Background(), []string{"content"})
	require.Equal(t, domain.StateDegraded, store.State())

	// The backend recovers, but the store must not.
	embedder.embedErr = nil
	embedder.embedding = []float32{1, 0, 0}

	chunks := store.AddDocuments(context.Background(), []string{"more content"})
	assert.Nil(t, chunks)
	assert.Equal(t, domain.StateDegraded, store.State())

	results := store.SimilaritySearch(context.Background(), "query", 3)
	assert.Empty(t, results)
}

func TestRetrievalStore_DegradedAddIsNoOpOnBackend(t *testing.T) {
	embedder := &mockEmbeddingService{embedErr: errors.New("boom")}
	store := newTestRetrievalStore(embedder)

	store.AddDocuments(context.Background(), []string{"content"})
	callsAfterDegrade := embedder.embedCalls

	store.AddDocuments(context.Background(), []string{"more"})
	assert.Equal(t, callsAfterDegrade, embedder.embedCalls)
}

func TestRetrievalStore_SimilaritySearchReturnsRankedChunks(t *testing.T) {
	store := newTestRetrievalStore(&mockEmbeddingService{embedding: []float32{1, 0, 0}})

	require.NotEmpty(t, store.AddDocuments(context.Background(), []string{"indexed content"}))

	results := store.SimilaritySearch(context.Background(), "related query", 2)
	require.NotEmpty(t, results)
	assert.InDelta(t, 1.0, results[0].Similarity, 1e-6)
}

func TestRetrievalStore_SimilaritySearchEmptyWhenUninitialized(t *testing.T) {
	store := newTestRetrievalStore(&mockEmbeddingService{embedding: []float32{1, 0, 0}})

	results := store.SimilaritySearch(context.Background(), "query", 3)
	assert.Empty(t, results)
}

func TestRetrievalStore_SearchFailureDegradesAndReturnsEmpty(t *testing.T) {
	index := &failingVectorStore{Store: memory.New(), searchErr: errors.New("index corrupt")}
	store := NewRetrievalStore(&mockEmbeddingService{embedding: []float32{1, 0}}, index, chunker.New())

	results := store.SimilaritySearch(context.Background(), "query", 3)

	assert.Empty(t, results)
	assert.Equal(t, domain.StateDegraded, store.State())
}

func TestRetrievalStore_RetrieveRelevantContent(t *testing.T) {
	t.Run("returns joined chunks when ready", func(t *testing.T) {
		store := newTestRetrievalStore(&mockEmbeddingService{embedding: []float32{1, 0, 0}})
		require.NotEmpty(t, store.AddDocuments(context.Background(), []string{
			"useful reference material",
			"a second passage on the topic",
		}))

		content, err := store.RetrieveRelevantContent(context.Background(), "reference", 3)
		require.NoError(t, err)
		assert.Contains(t, content, "useful reference material")
		assert.Contains(t, content, "a second passage on the topic")
		assert.Contains(t, content, "\n\n")
	})

	t.Run("falls back when degraded", func(t *testing.T) {
		store := newTestRetrievalStore(&mockEmbeddingService{embedErr: errors.New("boom")})
		store.AddDocuments(context.Background(), []string{"content"})
		require.Equal(t, domain.StateDegraded, store.State())

		content, err := store.RetrieveRelevantContent(context.Background(), "machine learning pipelines", 3)
		require.NoError(t, err)
		assert.NotEmpty(t, content)
		assert.NotContains(t, content, "content")
	})

	t.Run("falls back on empty index instead of empty string", func(t *testing.T) {
		store := newTestRetrievalStore(&mockEmbeddingService{embedding: []float32{1, 0, 0}})

		content, err := store.RetrieveRelevantContent(context.Background(), "anything at all", 3)
		require.NoError(t, err)
		assert.NotEmpty(t, strings.TrimSpace(content))
	})

	t.Run("empty query is a caller bug", func(t *testing.T) {
		store := newTestRetrievalStore(&mockEmbeddingService{embedding: []float32{1, 0, 0}})

		_, err := store.RetrieveRelevantContent(context.Background(), "   ", 3)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("never returns empty for non-empty query after degradation mid-call", func(t *testing.T) {
		index := &failingVectorStore{Store: memory.New(), searchErr: errors.New("boom")}
		store := NewRetrievalStore(&mockEmbeddingService{embedding: []float32{1, 0}}, index, chunker.New())

		content, err := store.RetrieveRelevantContent(context.Background(), "budget planning", 3)
		require.NoError(t, err)
		assert.NotEmpty(t, content)
		assert.Equal(t, domain.StateDegraded, store.State())
	})
}
