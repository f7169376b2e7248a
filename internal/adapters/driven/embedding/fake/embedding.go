// Package fake provides a deterministic embedding service for demo
// mode and tests. Vectors are derived from a hash of the input text,
// so identical texts always embed identically and similar runs are
// reproducible without any provider credentials.
package fake

import (
	"context"
	"hash/fnv"
	"math"

	"github.com/scribe-labs/scribe-cli/internal/core/ports/driven"
)

// Ensure EmbeddingService implements the interface.
var _ driven.EmbeddingService = (*EmbeddingService)(nil)

// DefaultDimensions keeps vectors small; nothing downstream assumes a
// provider-specific size.
const DefaultDimensions = 64

// EmbeddingService produces hash-derived pseudo-embeddings.
type EmbeddingService struct {
	dimensions int
}

// NewEmbeddingService creates a fake embedding service. A non-positive
// dimensions falls back to DefaultDimensions.
func NewEmbeddingService(dimensions int) *EmbeddingService {
	if dimensions <= 0 {
		dimensions = DefaultDimensions
	}
	return &EmbeddingService{dimensions: dimensions}
}

// Embed returns a unit-length vector seeded by a hash of the text.
func (s *EmbeddingService) Embed(_ context.Context, text string) ([]float32, error) {
	h := fnv.New64a()
	h.Write([]byte(text)) //nolint:errcheck
	state := h.Sum64()

	vec := make([]float32, s.dimensions)
	var norm float64
	for i := range vec {
		// xorshift64 keeps the sequence deterministic per seed.
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
		vec[i] = float32(int64(state)) / float32(math.MaxInt64)
		norm += float64(vec[i]) * float64(vec[i])
	}

	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] = float32(float64(vec[i]) / norm)
		}
	}
	return vec, nil
}

// EmbedBatch embeds each text independently.
func (s *EmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := s.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		embeddings[i] = vec
	}
	return embeddings, nil
}

// Dimensions returns the embedding vector size.
func (s *EmbeddingService) Dimensions() int {
	return s.dimensions
}

// ModelName identifies the fake model.
func (s *EmbeddingService) ModelName() string {
	return "fake-embed"
}

// Ping always succeeds.
func (s *EmbeddingService) Ping(context.Context) error {
	return nil
}

// Close releases nothing.
func (s *EmbeddingService) Close() error {
	return nil
}
