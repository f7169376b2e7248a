package fake

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribe-labs/scribe-cli/internal/core/ports/driven"
)

func TestGenerate_CyclesResponses(t *testing.T) {
	svc := NewLLMService("first", "second")

	a, err := svc.Generate(context.Background(), "prompt", driven.GenerateOptions{})
	require.NoError(t, err)
	b, err := svc.Generate(context.Background(), "prompt", driven.GenerateOptions{})
	require.NoError(t, err)
	c, err := svc.Generate(context.Background(), "prompt", driven.GenerateOptions{})
	require.NoError(t, err)

	assert.Equal(t, "first", a)
	assert.Equal(t, "second", b)
	assert.Equal(t, "first", c)
}

func TestChatStream_ReassemblesToChatReply(t *testing.T) {
	svc := NewLLMService("a short canned reply")

	deltas, err := svc.ChatStream(context.Background(), []driven.ChatMessage{
		{Role: "user", Content: "hello"},
	}, driven.ChatOptions{})
	require.NoError(t, err)

	var buf strings.Builder
	for delta := range deltas {
		require.NoError(t, delta.Err)
		buf.WriteString(delta.Content)
	}
	assert.Equal(t, "a short canned reply", buf.String())
}

func TestDefaultResponsesMarkDemoMode(t *testing.T) {
	svc := NewLLMService()

	reply, err := svc.Chat(context.Background(), []driven.ChatMessage{
		{Role: "user", Content: "write an article"},
	}, driven.ChatOptions{})
	require.NoError(t, err)
	assert.NotEmpty(t, reply)
	assert.Equal(t, "fake-llm", svc.ModelName())
}
