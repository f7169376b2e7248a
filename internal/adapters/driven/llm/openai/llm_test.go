package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribe-labs/scribe-cli/internal/core/domain"
	"github.com/scribe-labs/scribe-cli/internal/core/ports/driven"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *LLMService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := NewLLMService(LLMConfig{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)
	return svc
}

func TestNewLLMService_RequiresAPIKey(t *testing.T) {
	_, err := NewLLMService(LLMConfig{})
	assert.Error(t, err)
}

func TestChat(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"choices":[{"message":{"content":"a completion"},"finish_reason":"stop"}]}`))
	})

	reply, err := svc.Chat(context.Background(), []driven.ChatMessage{
		{Role: "user", Content: "hello"},
	}, driven.ChatOptions{})
	require.NoError(t, err)
	assert.Equal(t, "a completion", reply)
}

func TestChat_RateLimited(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := svc.Chat(context.Background(), []driven.ChatMessage{
		{Role: "user", Content: "hello"},
	}, driven.ChatOptions{})
	assert.ErrorIs(t, err, domain.ErrRateLimited)
}

func TestChatStream(t *testing.T) {
	const streamBody = `data: {"choices":[{"delta":{"content":"Hello"}}]}

data: {"choices":[{"delta":{"content":" world"}}]}

data: {"choices":[{"delta":{},"finish_reason":"stop"}]}

data: [DONE]

`

	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte(streamBody))
	})

	deltas, err := svc.ChatStream(context.Background(), []driven.ChatMessage{
		{Role: "user", Content: "hello"},
	}, driven.ChatOptions{})
	require.NoError(t, err)

	var buf strings.Builder
	for delta := range deltas {
		require.NoError(t, delta.Err)
		buf.WriteString(delta.Content)
	}
	assert.Equal(t, "Hello world", buf.String())
}

func TestChatStream_ErrorStatusFailsBeforeStreaming(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := svc.ChatStream(context.Background(), []driven.ChatMessage{
		{Role: "user", Content: "hello"},
	}, driven.ChatOptions{})
	assert.ErrorIs(t, err, domain.ErrRateLimited)
}

func TestChatStream_CancelledContextStopsStream(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte("data: {\"choices\":[{\"delta\":{\"content\":\"partial\"}}]}\n\n"))
	})

	ctx, cancel := context.WithCancel(context.Background())
	deltas, err := svc.ChatStream(ctx, []driven.ChatMessage{
		{Role: "user", Content: "hello"},
	}, driven.ChatOptions{})
	require.NoError(t, err)

	cancel()
	// The channel must close; draining must not hang.
	for range deltas {
	}
}
