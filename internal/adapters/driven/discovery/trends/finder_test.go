package trends

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribe-labs/scribe-cli/internal/core/domain"
)

const suggestionPayload = `)]}'
{"default":{"topics":[
	{"title":"Coffee roasting","type":"Topic"},
	{"title":"coffee","type":"Search term"},
	{"title":"Coffee beans","type":"Topic"},
	{"title":"Coffee Roasting","type":"Search term"},
	{"title":"Espresso","type":"Topic"}
]}}`

func TestFinder_RelatedKeywords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/trends/api/autocomplete/")
		w.Write([]byte(suggestionPayload)) //nolint:errcheck
	}))
	defer server.Close()

	finder := NewFinder(Config{BaseURL: server.URL})

	keywords, err := finder.RelatedKeywords(context.Background(), "coffee", 10)
	require.NoError(t, err)

	// The topic itself and case-insensitive duplicates are dropped.
	assert.Equal(t, []string{"Coffee roasting", "Coffee beans", "Espresso"}, keywords)
}

func TestFinder_RelatedKeywordsHonoursLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(suggestionPayload)) //nolint:errcheck
	}))
	defer server.Close()

	finder := NewFinder(Config{BaseURL: server.URL})

	keywords, err := finder.RelatedKeywords(context.Background(), "coffee", 2)
	require.NoError(t, err)
	assert.Len(t, keywords, 2)
}

func TestFinder_RelatedKeywordsEmptyTopic(t *testing.T) {
	finder := NewFinder(Config{BaseURL: "http://unused"})

	_, err := finder.RelatedKeywords(context.Background(), "  ", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFinder_RelatedKeywordsRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	finder := NewFinder(Config{BaseURL: server.URL})

	_, err := finder.RelatedKeywords(context.Background(), "coffee", 5)
	assert.ErrorIs(t, err, domain.ErrRateLimited)
}

func TestParseSuggestions_NoPrefix(t *testing.T) {
	// Some mirrors return plain JSON without the guard.
	body := []byte(`{"default":{"topics":[{"title":"Latte","type":"Topic"}]}}`)

	keywords, err := parseSuggestions(body, "coffee", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Latte"}, keywords)
}

func TestParseSuggestions_Malformed(t *testing.T) {
	_, err := parseSuggestions([]byte(")]}'\nnot json"), "coffee", 5)
	assert.Error(t, err)
}
