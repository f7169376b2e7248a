// Package chunker provides a recursive-boundary text splitter.
//
// Text is split into windows of at most the configured chunk size, with
// consecutive chunks sharing exactly the configured overlap. When a window
// would end mid-text, the cut point is pulled back to the nearest paragraph
// break, sentence end, or word boundary in the tail of the window so that
// local context survives chunking.
package chunker

import (
	"strings"

	"github.com/google/uuid"

	"github.com/scribe-labs/scribe-cli/internal/core/domain"
)

// DefaultChunkSize is the default soft maximum characters per chunk.
const DefaultChunkSize = 500

// DefaultChunkOverlap is the default number of shared boundary characters.
const DefaultChunkOverlap = 50

// Splitter splits document text into overlapping chunks.
type Splitter struct {
	chunkSize int
	overlap   int
}

// Option configures the splitter.
type Option func(*Splitter)

// WithChunkSize sets the soft maximum chunk size in characters.
func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between consecutive chunks in characters.
func WithOverlap(overlap int) Option {
	return func(s *Splitter) {
		if overlap >= 0 {
			s.overlap = overlap
		}
	}
}

// New creates a new splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Invariant: overlap < chunkSize
	if s.overlap >= s.chunkSize {
		s.overlap = s.chunkSize / 4
	}

	return s
}

// ChunkSize returns the configured soft maximum chunk size.
func (s *Splitter) ChunkSize() int {
	return s.chunkSize
}

// Overlap returns the configured overlap length.
func (s *Splitter) Overlap() int {
	return s.overlap
}

// SplitDocument splits a document's text into chunks linked to the parent.
// Empty text produces no chunks.
func (s *Splitter) SplitDocument(doc *domain.Document) []domain.Chunk {
	pieces := s.Split(doc.Text)
	if len(pieces) == 0 {
		return nil
	}

	chunks := make([]domain.Chunk, 0, len(pieces))
	for i, piece := range pieces {
		chunks = append(chunks, domain.Chunk{
			ID:         uuid.New().String(),
			DocumentID: doc.ID,
			Content:    piece,
			Position:   i,
		})
	}
	return chunks
}

// Split breaks text into pieces of at most the chunk size. Consecutive
// pieces share exactly the overlap length, except when a boundary
// adjustment shortens a window (the next piece then restarts overlap
// characters before the adjusted end, so the shared suffix/prefix length
// is preserved).
func (s *Splitter) Split(text string) []string {
	if text == "" {
		return nil
	}
	if len(text) <= s.chunkSize {
		return []string{text}
	}

	estimated := len(text)/(s.chunkSize-s.overlap) + 1
	pieces := make([]string, 0, estimated)

	start := 0
	for start < len(text) {
		end := start + s.chunkSize
		if end >= len(text) {
			pieces = append(pieces, text[start:])
			break
		}

		end = s.boundary(text, start, end)
		pieces = append(pieces, text[start:end])

		next := end - s.overlap
		if next <= start {
			// Forward progress even with pathological configurations.
			next = start + 1
		}
		start = next
	}

	return pieces
}

// boundary pulls the cut point at end back to the most natural split
// within the window tail: paragraph break first, then sentence end, then
// word boundary. A cut point is only accepted from the window midpoint
// onward so that chunks never collapse to fragments.
func (s *Splitter) boundary(text string, start, end int) int {
	window := text[start:end]
	floor := len(window) / 2

	if i := strings.LastIndex(window, "\n\n"); i >= floor {
		return start + i + 2
	}

	best := -1
	for _, sep := range []string{". ", "! ", "? ", ".\n", "!\n", "?\n"} {
		if i := strings.LastIndex(window, sep); i >= floor && i+len(sep) > best {
			best = i + len(sep)
		}
	}
	if best > 0 {
		return start + best
	}

	if i := strings.LastIndexByte(window, ' '); i >= floor {
		return start + i + 1
	}

	return end
}
