// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - VectorStore: Persisted chunk/embedding storage with similarity search
//   - ConfigStore: Application configuration
//   - ArticleStore: Generated article persistence
//
// # Optional Interfaces
//
// These can be nil - the pipeline degrades gracefully:
//
//   - EmbeddingService: Generates vector embeddings. Without it, the
//     retrieval store runs degraded from the start.
//   - LLMService: Completion service. Without it, generation uses
//     deterministic placeholder content.
//   - KeywordFinder: Related-keyword discovery. Without it, the topic
//     itself is the only query.
//   - URLSearcher: Web search URL discovery. Without it, the corpus is
//     whatever is ingested directly.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
