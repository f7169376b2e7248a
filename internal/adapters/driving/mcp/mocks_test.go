package mcp

import (
	"context"

	"github.com/scribe-labs/scribe-cli/internal/core/domain"
	"github.com/scribe-labs/scribe-cli/internal/core/ports/driven"
	"github.com/scribe-labs/scribe-cli/internal/core/ports/driving"
)

// mockRetrievalService is a mock implementation of driving.RetrievalService.
type mockRetrievalService struct {
	content     string
	retrieveErr error
	results     []domain.ScoredChunk
	state       domain.StoreState

	lastQuery string
	lastTopK  int
}

func (m *mockRetrievalService) AddDocuments(_ context.Context, _ []string) []domain.Chunk {
	return nil
}

func (m *mockRetrievalService) SimilaritySearch(_ context.Context, _ string, _ int) []domain.ScoredChunk {
	return m.results
}

func (m *mockRetrievalService) RetrieveRelevantContent(_ context.Context, query string, k int) (string, error) {
	m.lastQuery = query
	m.lastTopK = k
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
	ch := make(chan driven.StreamDelta, 1)
	ch <- driven.StreamDelta{Content: m.article.Content}
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
