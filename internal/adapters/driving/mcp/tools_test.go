package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribe-labs/scribe-cli/internal/core/domain"
)

func TestHandleRetrieve(t *testing.T) {
	t.Run("returns retrieved content and state", func(t *testing.T) {
		retrieval := &mockRetrievalService{content: "relevant context", state: domain.StateReady}
		server, err := NewServer(&Ports{Retrieval: retrieval})
		require.NoError(t, err)

		_, output, err := server.handleRetrieve(context.Background(), nil, RetrieveInput{
			Query: "coffee roasting",
			TopK:  5,
		})
		require.NoError(t, err)

		assert.Equal(t, "relevant context", output.Content)
		assert.Equal(t, "ready", output.State)
		assert.Equal(t, "coffee roasting", retrieval.lastQuery)
		assert.Equal(t, 5, retrieval.lastTopK)
	})

	t.Run("propagates retrieval error", func(t *testing.T) {
		retrieval := &mockRetrievalService{retrieveErr: domain.ErrInvalidInput}
		server, err := NewServer(&Ports{Retrieval: retrieval})
		require.NoError(t, err)

		_, _, err = server.handleRetrieve(context.Background(), nil, RetrieveInput{Query: ""})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestHandleGenerate(t *testing.T) {
	t.Run("returns generated article", func(t *testing.T) {
		generator := &mockArticleGenerator{article: &domain.Article{
			Topic:           "coffee roasting",
			RelevantKeyword: "espresso brewing",
			Content:         "# Article",
			GeneratedAt:     time.Now(),
		}}
		server, err := NewServer(&Ports{
			Retrieval: &mockRetrievalService{},
			Generator: generator,
		})
		require.NoError(t, err)

		_, output, err := server.handleGenerate(context.Background(), nil, GenerateInput{
			Topic: "coffee roasting",
			Save:  true,
		})
		require.NoError(t, err)

		assert.Equal(t, "coffee roasting", output.Topic)
		assert.Equal(t, "espresso brewing", output.RelevantKeyword)
		assert.Equal(t, "# Article", output.Content)
		assert.True(t, generator.lastReq.Save)
	})

	t.Run("missing generator returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Retrieval: &mockRetrievalService{}})
		require.NoError(t, err)

		_, _, err = server.handleGenerate(context.Background(), nil, GenerateInput{Topic: "anything"})
		assert.Error(t, err)
	})

	t.Run("propagates generation error", func(t *testing.T) {
		generator := &mockArticleGenerator{err: errors.New("model overloaded")}
		server, err := NewServer(&Ports{
			Retrieval: &mockRetrievalService{},
			Generator: generator,
		})
		require.NoError(t, err)

		_, _, err = server.handleGenerate(context.Background(), nil, GenerateInput{Topic: "anything"})
		assert.Error(t, err)
	})
}
