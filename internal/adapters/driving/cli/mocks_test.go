package cli

import (
	"context"

	"github.com/scribe-labs/scribe-cli/internal/core/domain"
	"github.com/scribe-labs/scribe-cli/internal/core/ports/driven"
	"github.com/scribe-labs/scribe-cli/internal/core/ports/driving"
)

// mockRetrievalService is a mock implementation of driving.RetrievalService.
type mockRetrievalService struct {
	chunks      []domain.Chunk
	results     []domain.ScoredChunk
	content     string
	retrieveErr error
	state       domain.StoreState

	addedTexts []string
}

func (m *mockRetrievalService) AddDocuments(_ context.Context, texts []string) []domain.Chunk {
	m.addedTexts = append(m.addedTexts, texts...)
	return m.chunks
}

func (m *mockRetrievalService) SimilaritySearch(_ context.Context, _ string, _ int) []domain.ScoredChunk {
	return m.results
}

func (m *mockRetrievalService) RetrieveRelevantContent(_ context.Context, _ string, _ int) (string, error) {
	if m.retrieveErr != nil {
		return "", m.retrieveErr
	}
	return m.content, nil
}

func (m *mockRetrievalService) State() domain.StoreState {
	return m.state
}

// mockArticleGenerator is a mock implementation of driving.ArticleGenerator.
type mockArticleGenerator struct {
	article *domain.Article
	deltas  []driven.StreamDelta
	err     error

	lastReq driving.GenerateRequest
}

func (m *mockArticleGenerator) Generate(_ context.Context, req driving.GenerateRequest) (*domain.Article, error) {
	m.lastReq = req
	return m.article, m.err
}

func (m *mockArticleGenerator) GenerateStream(_ context.Context, req driving.GenerateRequest) (<-chan driven.StreamDelta, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	ch := make(chan driven.StreamDelta, len(m.deltas))
	for _, delta := range m.deltas {
		ch <- delta
	}
	close(ch)
	return ch, nil
}

// mockArticleStore is a mock implementation of driven.ArticleStore.
type mockArticleStore struct {
	articles []domain.ArticleMetadata
	err      error
}

func (m *mockArticleStore) Save(_ context.Context, _ *domain.Article) (string, error) {
	return "", m.err
}

func (m *mockArticleStore) List(_ context.Context) ([]domain.ArticleMetadata, error) {
	return m.articles, m.err
}

func (m *mockArticleStore) Close() error { return nil }

// withServices installs mocks for the duration of a test.
func withServices(t interface{ Cleanup(func()) }, retrieval driving.RetrievalService, generator driving.ArticleGenerator, articles driven.ArticleStore) {
	prevRetrieval := retrievalService
	prevGenerator := generatorService
	prevArticles := articleStore
	retrievalService = retrieval
	generatorService = generator
	articleStore = articles
	t.Cleanup(func() {
		retrievalService = prevRetrieval
		generatorService = prevGenerator
		articleStore = prevArticles
	})
}
