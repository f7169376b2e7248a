// Package fake provides a deterministic LLM service for demo mode and
// tests. Responses cycle through a fixed list, so a full pipeline run
// works end to end without provider credentials.
package fake

import (
	"context"
	"strings"
	"sync"

	"github.com/scribe-labs/scribe-cli/internal/core/ports/driven"
)

// Ensure LLMService implements the interface.
var _ driven.LLMService = (*LLMService)(nil)

// defaultResponses cover the two call sites of a generation run: query
// refinement first, article text second.
var defaultResponses = []string{
	"key facts, recent developments, practical guidance",
	"# Draft Article\n\nThis placeholder article was produced in demo mode. " +
		"Configure a provider API key to generate real content.\n\n" +
		"## Overview\n\nThe retrieved context would normally shape this text.\n",
}

// LLMService replays canned responses in order, wrapping around when
// exhausted.
type LLMService struct {
	mu        sync.Mutex
	responses []string
	next      int
}

// NewLLMService creates a fake LLM. With no responses given, a default
// refinement-then-article pair is used.
func NewLLMService(responses ...string) *LLMService {
	if len(responses) == 0 {
		responses = defaultResponses
	}
	return &LLMService{responses: responses}
}

func (s *LLMService) reply() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp := s.responses[s.next%len(s.responses)]
	s.next++
	return resp
}

// Generate returns the next canned response.
func (s *LLMService) Generate(_ context.Context, _ string, _ driven.GenerateOptions) (string, error) {
	return s.reply(), nil
}

// Chat returns the next canned response.
func (s *LLMService) Chat(_ context.Context, _ []driven.ChatMessage, _ driven.ChatOptions) (string, error) {
	return s.reply(), nil
}

// ChatStream returns the next canned response word by word.
func (s *LLMService) ChatStream(ctx context.Context, _ []driven.ChatMessage, _ driven.ChatOptions) (<-chan driven.StreamDelta, error) {
	words := strings.SplitAfter(s.reply(), " ")

	deltas := make(chan driven.StreamDelta)
	go func() {
		defer close(deltas)
		for _, word := range words {
			select {
			case deltas <- driven.StreamDelta{Content: word}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return deltas, nil
}

// ModelName identifies the fake model.
func (s *LLMService) ModelName() string {
	return "fake-llm"
}

// Ping always succeeds.
func (s *LLMService) Ping(context.Context) error {
	return nil
}

// Close releases nothing.
func (s *LLMService) Close() error {
	return nil
}
