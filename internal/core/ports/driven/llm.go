// Package driven provides interfaces for infrastructure adapters (secondary/outbound ports).
package driven

import "context"

// LLMService provides text generation for query refinement and article
// writing. This is an optional service - when nil, generation degrades to
// deterministic placeholder content.
//
// Implementations may include:
//   - OpenAI (GPT-4 family)
//   - Anthropic (Claude)
//   - Ollama (local models)
//   - The fake demo-mode adapter (no credentials required)
type LLMService interface {
	// Generate produces text completion from a single prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// Chat produces a completion from an ordered list of role-tagged messages.
	Chat(ctx context.Context, messages []ChatMessage, opts ChatOptions) (string, error)

	// ChatStream produces a completion as an ordered, append-only sequence
	// of deltas. The returned channel is closed when generation completes,
	// fails, or ctx is cancelled; a delta with a non-nil Err terminates the
	// stream. No work continues once ctx is done.
	ChatStream(ctx context.Context, messages []ChatMessage, opts ChatOptions) (<-chan StreamDelta, error)

	// ModelName returns the model identifier being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64

	// StopWords are sequences that stop generation when encountered.
	StopWords []string
}

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	// Role is one of "system", "user", or "assistant".
	Role string

	// Content is the message text.
	Content string
}

// ChatOptions configures chat behaviour.
type ChatOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}

// StreamDelta is a single fragment of a streamed completion.
type StreamDelta struct {
	// Content is the text fragment, in order, append-only.
	Content string

	// Err is non-nil if the stream terminated abnormally. The channel is
	// closed after an error delta.
	Err error
}
