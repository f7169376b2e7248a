package driven

import "context"

// KeywordFinder resolves a topic into a short list of related keyword
// strings. Failures (quota, network) are returned as errors; callers
// treat them as "no keywords" and never propagate them.
type KeywordFinder interface {
	// RelatedKeywords returns up to limit related keyword strings for the topic.
	RelatedKeywords(ctx context.Context, topic string, limit int) ([]string, error)
}

// URLSearcher resolves a query string into candidate source URLs via an
// external web search API. A failed search yields an empty list at the
// call site, logged, never raised.
type URLSearcher interface {
	// SearchURLs returns candidate page URLs for the query.
	SearchURLs(ctx context.Context, query string) ([]string, error)
}
