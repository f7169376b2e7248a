package domain

// Document represents a unit of source material gathered for a topic.
// Documents are created by the crawler (or by direct ingestion) and are
// consumed by the chunking stage; they are not retained after splitting.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Text is the full extracted text content.
	Text string

	// SourceURL is the page the text was extracted from.
	// Empty for directly ingested text.
	SourceURL string
}

// Chunk represents a bounded substring of a source document, the atomic
// unit of semantic indexing. A chunk's embedding is computed once and
// never mutated; chunks are owned by the retrieval store's index and are
// destroyed only when the index is rebuilt.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// DocumentID links back to the parent Document.
	DocumentID string

	// Content is the text content of this chunk.
	Content string

	// Position is the ordinal position within the parent document.
	Position int

	// Embedding is the vector representation for similarity search.
	Embedding []float32
}

// CrawlResult is the per-URL outcome of a crawl pass. Results are
// ephemeral: they are aggregated into a single corpus string and never
// persisted independently.
type CrawlResult struct {
	// URL is the address that was fetched.
	URL string

	// Domain is the host portion of the URL, used for provenance tags.
	Domain string

	// Content is the extracted text, empty on failure.
	Content string

	// Success reports whether usable content was extracted.
	Success bool
}

// ScoredChunk pairs a chunk with its similarity to a query.
type ScoredChunk struct {
	// Chunk is the matched chunk.
	Chunk Chunk

	// Similarity is the cosine similarity score (0-1).
	Similarity float64
}
