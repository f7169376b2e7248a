// Package crawl fetches web pages and aggregates their readable text into
// a single corpus for ingestion.
//
// Requests to successive URLs are spaced out by a fixed politeness
// delay enforced with a rate limiter.
package crawl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/scribe-labs/scribe-cli/internal/core/domain"
	"github.com/scribe-labs/scribe-cli/internal/extract"
	"github.com/scribe-labs/scribe-cli/internal/logger"
)

// Default configuration values.
const (
	// DefaultTimeout bounds each page fetch.
	DefaultTimeout = 15 * time.Second

	// DefaultDelay is the politeness delay between requests.
	DefaultDelay = 1 * time.Second

	// maxBodyBytes caps how much of a response body is read.
	maxBodyBytes = 2 << 20 // 2MB

	// userAgent presents as a desktop browser; many blog hosts refuse
	// requests with default Go client identification.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// separator divides per-source blocks in the aggregated corpus.
var separator = "\n\n" + strings.Repeat("-", 40) + "\n\n"

// Crawler fetches URLs and extracts their text content.
type Crawler struct {
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures the crawler.
type Option func(*Crawler)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Crawler) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// WithDelay sets the politeness delay between requests.
func WithDelay(d time.Duration) Option {
	return func(c *Crawler) {
		if d > 0 {
			c.limiter = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

// WithHTTPClient replaces the HTTP client. Useful for testing.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Crawler) {
		if client != nil {
			c.client = client
		}
	}
}

// New creates a crawler with the given options.
func New(opts ...Option) *Crawler {
	c := &Crawler{
		client:  &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Every(DefaultDelay), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Crawl fetches every URL, extracts readable text, and returns the
// aggregated corpus with per-source provenance tags. Failing URLs are
// logged and skipped; they never abort the batch and leave no trace in
// the corpus. The result is empty if every URL failed.
func (c *Crawler) Crawl(ctx context.Context, urls []string) string {
	if len(urls) == 0 {
		logger.Warn("no URLs provided for crawling")
		return ""
	}

	logger.Section("Crawl")
	logger.Info("crawling %d URLs", len(urls))

	var blocks []string
	succeeded := 0

	for _, u := range urls {
		if err := c.limiter.Wait(ctx); err != nil {
			// Context cancelled; return what we have.
			break
		}

		result := c.fetchOne(ctx, u)
		if !result.Success {
			continue
		}

		logger.Info("crawled %s (%d chars)", result.Domain, len(result.Content))
		blocks = append(blocks, fmt.Sprintf("Source: %s\n\n%s", result.Domain, result.Content))
		succeeded++
	}

	logger.Info("crawl complete: %d/%d URLs yielded content", succeeded, len(urls))
	return strings.Join(blocks, separator)
}

// fetchOne fetches and extracts a single URL. All failures are reported
// through the result's Success flag; nothing is raised.
func (c *Crawler) fetchOne(ctx context.Context, pageURL string) domain.CrawlResult {
	result := domain.CrawlResult{URL: pageURL}

	parsed, err := url.Parse(pageURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		logger.Warn("invalid URL: %s", pageURL)
		return result
	}
	result.Domain = parsed.Host

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		logger.Warn("build request for %s: %v", pageURL, err)
		return result
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.client.Do(req)
	if err != nil {
		// Timeouts, redirect loops, connection failures all land here.
		logger.Warn("fetch %s: %v", pageURL, err)
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("fetch %s: status %d", pageURL, resp.StatusCode)
		return result
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "text/html") && !strings.Contains(contentType, "application/xhtml") {
		logger.Debug("skipping non-HTML content from %s: %s", pageURL, contentType)
		return result
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		logger.Warn("read %s: %v", pageURL, err)
		return result
	}

	text, ok := extract.Extract(string(body))
	if !ok {
		logger.Debug("no content extracted from %s", pageURL)
		return result
	}

	result.Content = text
	result.Success = true
	return result
}
