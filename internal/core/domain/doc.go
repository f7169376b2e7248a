// Package domain defines the core business entities for Scribe.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A unit of source material gathered for a topic
//   - Chunk: A bounded substring of a document, the atomic unit of indexing
//   - CrawlResult: The per-URL outcome of a crawl pass
//   - Article: A generated long-form article with metadata
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
