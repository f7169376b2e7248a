// Package trends provides related-keyword discovery through the
// unofficial Google Trends autocomplete endpoint. The endpoint needs
// no API key; responses carry an XSSI guard prefix that must be
// stripped before JSON decoding.
package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/scribe-labs/scribe-cli/internal/core/domain"
	"github.com/scribe-labs/scribe-cli/internal/core/ports/driven"
	"github.com/scribe-labs/scribe-cli/internal/logger"
)

// Ensure Finder implements the interface.
var _ driven.KeywordFinder = (*Finder)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://trends.google.com"
	DefaultTimeout = 10 * time.Second

	// xssiPrefix guards Trends API responses against script inclusion.
	xssiPrefix = ")]}'"

	maxResponseBytes = 1 << 20
)

// Config holds configuration for the Trends keyword finder.
type Config struct {
	// BaseURL overrides the Trends endpoint, for tests.
	BaseURL string

	// Timeout is the request timeout (default: 10s).
	Timeout time.Duration
}

// Finder suggests keywords related to a topic.
type Finder struct {
	client  *http.Client
	baseURL string
}

// autocompleteResponse is the Trends autocomplete payload after the
// XSSI prefix is removed.
type autocompleteResponse struct {
	Default struct {
		Topics []struct {
			Title string `json:"title"`
			Type  string `json:"type"`
		} `json:"topics"`
	} `json:"default"`
}

// NewFinder creates a Trends keyword finder.
func NewFinder(cfg Config) *Finder {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Finder{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
	}
}

// RelatedKeywords returns up to limit keyword suggestions for the
// topic. The topic itself is never returned as a suggestion.
func (f *Finder) RelatedKeywords(ctx context.Context, topic string, limit int) ([]string, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("trends: %w: topic is empty", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s/trends/api/autocomplete/%s?hl=en-US&tz=360",
		f.baseURL, url.PathEscape(topic))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("trends: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trends: fetch suggestions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("trends: %w", domain.ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trends: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("trends: read response: %w", err)
	}

	keywords, err := parseSuggestions(body, topic, limit)
	if err != nil {
		return nil, err
	}
	logger.Info("found %d related keywords for %q", len(keywords), topic)
	return keywords, nil
}

// parseSuggestions strips the XSSI prefix and extracts suggestion
// titles, deduplicated and capped at limit.
func parseSuggestions(body []byte, topic string, limit int) ([]string, error) {
	payload := strings.TrimPrefix(strings.TrimSpace(string(body)), xssiPrefix)

	var parsed autocompleteResponse
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, fmt.Errorf("trends: decode response: %w", err)
	}

	seen := make(map[string]struct{})
	keywords := make([]string, 0, limit)
	for _, suggestion := range parsed.Default.Topics {
		title := strings.TrimSpace(suggestion.Title)
		if title == "" || strings.EqualFold(title, topic) {
			continue
		}
		key := strings.ToLower(title)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keywords = append(keywords, title)
		if len(keywords) == limit {
			break
		}
	}
	return keywords, nil
}
