// Package googlesearch provides URL discovery through the Google
// Custom Search JSON API.
package googlesearch

import (
	"context"
	"fmt"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/scribe-labs/scribe-cli/internal/core/ports/driven"
	"github.com/scribe-labs/scribe-cli/internal/logger"
)

// Ensure Searcher implements the interface.
var _ driven.URLSearcher = (*Searcher)(nil)

// maxResultsPerQuery is the API's hard cap on num per request.
const maxResultsPerQuery = 10

// Config holds configuration for the Custom Search client.
type Config struct {
	// APIKey is the Google API key (required).
	APIKey string

	// CX is the Programmable Search Engine identifier (required).
	CX string

	// ResultsPerQuery bounds the URLs returned per search (max 10).
	ResultsPerQuery int
}

// Searcher finds article URLs for a query via Custom Search.
type Searcher struct {
	service *customsearch.Service
	cx      string
	num     int64
}

// NewSearcher creates a Custom Search URL searcher.
func NewSearcher(ctx context.Context, cfg Config) (*Searcher, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("googlesearch: API key is required")
	}
	if cfg.CX == "" {
		return nil, fmt.Errorf("googlesearch: search engine ID is required")
	}

	num := cfg.ResultsPerQuery
	if num <= 0 || num > maxResultsPerQuery {
		num = maxResultsPerQuery
	}

	service, err := customsearch.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("googlesearch: create service: %w", err)
	}

	return &Searcher{
		service: service,
		cx:      cfg.CX,
		num:     int64(num),
	}, nil
}

// SearchURLs returns result links for the query. The query is decorated
// to steer results toward article and blog pages rather than product or
// landing pages.
func (s *Searcher) SearchURLs(ctx context.Context, query string) ([]string, error) {
	decorated := decorateQuery(query)
	logger.Debug("custom search: %q", decorated)

	resp, err := s.service.Cse.List().
		Context(ctx).
		Cx(s.cx).
		Q(decorated).
		Num(s.num).
		Do()
	if err != nil {
		return nil, fmt.Errorf("googlesearch: search %q: %w", query, err)
	}

	urls := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Link != "" {
			urls = append(urls, item.Link)
		}
	}
	logger.Info("found %d urls for %q", len(urls), query)
	return urls, nil
}

// decorateQuery biases the search toward blog posts about the query
// and filters out tag, category and other listing pages.
func decorateQuery(query string) string {
	return fmt.Sprintf(`%q (intitle:%q OR intext:%q) `+
		`(inurl:blog OR site:medium.com OR site:wordpress.com OR site:blogspot.com OR site:hashnode.com OR site:dev.to) `+
		`-inurl:/tag/ -inurl:/category/ -inurl:/topics/ -inurl:/labels/ -inurl:/groups/ -inurl:/collections/ -inurl:/blog/ -inurl:/blogs/`,
		query, query, query)
}
