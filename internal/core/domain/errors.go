package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	// This signals a caller bug, not an environmental failure.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLLMUnavailable indicates the completion service is not configured.
	// Generation falls back to deterministic placeholder content.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrEmbeddingUnavailable indicates the embedding service is not configured.
	// Semantic retrieval is disabled without embeddings.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrStoreDegraded indicates the retrieval store has permanently
	// switched to fallback content for this process.
	ErrStoreDegraded = errors.New("retrieval store degraded")

	// ErrInvalidEmbedding indicates the embedding backend returned an
	// empty or near-empty vector.
	ErrInvalidEmbedding = errors.New("invalid embedding vector")

	// ErrRateLimited indicates an API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
