package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribe-labs/scribe-cli/internal/core/domain"
)

func TestArticlesCmd_ListsArticles(t *testing.T) {
	articles := &mockArticleStore{articles: []domain.ArticleMetadata{
		{
			Topic:       "coffee roasting",
			GeneratedAt: time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC),
			Filename:    "coffee_roasting_20260314_092600.md",
		},
	}}
	withServices(t, &mockRetrievalService{}, &mockArticleGenerator{}, articles)

	out, err := execute(t, "articles")
	require.NoError(t, err)

	assert.Contains(t, out, "coffee roasting")
	assert.Contains(t, out, "coffee_roasting_20260314_092600.md")
}

func TestArticlesCmd_EmptyList(t *testing.T) {
	withServices(t, &mockRetrievalService{}, &mockArticleGenerator{}, &mockArticleStore{})

	out, err := execute(t, "articles")
	require.NoError(t, err)
	assert.Contains(t, out, "No articles generated yet")
}
