package cli

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribe-labs/scribe-cli/internal/core/domain"
	"github.com/scribe-labs/scribe-cli/internal/core/ports/driven"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestGenerateCmd_PrintsArticle(t *testing.T) {
	generator := &mockArticleGenerator{article: &domain.Article{
		Topic:           "coffee roasting",
		RelevantKeyword: "espresso brewing",
		Content:         "# Coffee Roasting\n\nBody.",
		GeneratedAt:     time.Now(),
	}}
	withServices(t, &mockRetrievalService{}, generator, &mockArticleStore{})

	out, err := execute(t, "generate", "coffee roasting")
	require.NoError(t, err)

	assert.Contains(t, out, "# Coffee Roasting")
	assert.Contains(t, out, "espresso brewing")
	assert.Equal(t, "coffee roasting", generator.lastReq.Topic)
}

func TestGenerateCmd_PassesFlags(t *testing.T) {
	generator := &mockArticleGenerator{article: &domain.Article{
		Topic:   "coffee roasting",
		Content: "body",
	}}
	withServices(t, &mockRetrievalService{}, generator, &mockArticleStore{})

	_, err := execute(t, "generate", "coffee roasting", "--save", "--temperature", "0.9")
	require.NoError(t, err)

	assert.True(t, generator.lastReq.Save)
	assert.InDelta(t, 0.9, generator.lastReq.Temperature, 1e-9)
}

func TestGenerateCmd_StreamPrintsDeltas(t *testing.T) {
	generator := &mockArticleGenerator{deltas: []driven.StreamDelta{
		{Content: "part one "},
		{Content: "part two"},
	}}
	withServices(t, &mockRetrievalService{}, generator, &mockArticleStore{})

	out, err := execute(t, "generate", "coffee roasting", "--stream")
	require.NoError(t, err)
	assert.Contains(t, out, "part one part two")
}

func TestGenerateCmd_StreamErrorFailsCommand(t *testing.T) {
	generator := &mockArticleGenerator{deltas: []driven.StreamDelta{
		{Content: "partial"},
		{Err: errors.New("connection reset")},
	}}
	withServices(t, &mockRetrievalService{}, generator, &mockArticleStore{})

	_, err := execute(t, "generate", "coffee roasting", "--stream")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generation interrupted")
}

func TestGenerateCmd_PropagatesError(t *testing.T) {
	generator := &mockArticleGenerator{err: domain.ErrInvalidInput}
	withServices(t, &mockRetrievalService{}, generator, &mockArticleStore{})

	_, err := execute(t, "generate", "topic")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
