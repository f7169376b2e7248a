package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/scribe-labs/scribe-cli/internal/core/domain"
	"github.com/scribe-labs/scribe-cli/internal/core/ports/driven"
	"github.com/scribe-labs/scribe-cli/internal/core/ports/driving"
	"github.com/scribe-labs/scribe-cli/internal/logger"
)

// Ensure PipelineService implements the interface.
var _ driving.ArticleGenerator = (*PipelineService)(nil)

// Crawler aggregates extracted page content from a list of URLs.
// Implemented by the crawl package; narrowed here for testability.
type Crawler interface {
	Crawl(ctx context.Context, urls []string) string
}

// urlsFilename holds the raw discovered URL set for inspection.
const urlsFilename = "urls.json"

// PipelineService runs the full article pipeline: keyword discovery,
// URL discovery, crawling, ingestion, retrieval, and completion. The
// discovery and crawl stages are each allowed to come up empty; an
// empty corpus is a legitimate input to ingestion and the run still
// produces an article.
type PipelineService struct {
	keywords  driven.KeywordFinder
	searcher  driven.URLSearcher
	crawler   Crawler
	retrieval driving.RetrievalService
	llm       driven.LLMService
	articles  driven.ArticleStore

	temperature float64
	maxKeywords int
	topK        int
	dataDir     string
}

// PipelineConfig holds construction parameters for the pipeline.
type PipelineConfig struct {
	// Temperature is the default sampling temperature for completions.
	Temperature float64

	// MaxKeywords bounds the related-keyword list (default 10).
	MaxKeywords int

	// TopK is the retrieval result count (default DefaultTopK).
	TopK int

	// DataDir receives the discovered-URL inspection file. Empty
	// disables persisting the URL set.
	DataDir string
}

// NewPipelineService creates the orchestrator. The keyword finder and
// URL searcher may be nil; their stages are then skipped, leaving an
// empty corpus.
func NewPipelineService(
	keywords driven.KeywordFinder,
	searcher driven.URLSearcher,
	crawler Crawler,
	retrieval driving.RetrievalService,
	llm driven.LLMService,
	articles driven.ArticleStore,
	cfg PipelineConfig,
) *PipelineService {
	if cfg.MaxKeywords <= 0 {
		cfg.MaxKeywords = 10
	}
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}

	return &PipelineService{
		keywords:    keywords,
		searcher:    searcher,
		crawler:     crawler,
		retrieval:   retrieval,
		llm:         llm,
		articles:    articles,
		temperature: cfg.Temperature,
		maxKeywords: cfg.MaxKeywords,
		topK:        cfg.TopK,
		dataDir:     cfg.DataDir,
	}
}

// Generate runs the pipeline and returns the finished article.
func (s *PipelineService) Generate(ctx context.Context, req driving.GenerateRequest) (*domain.Article, error) {
	prep, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	content, err := s.llm.Chat(ctx, prep.messages, s.chatOptions(req))
	if err != nil {
		return nil, fmt.Errorf("generate article: %w", err)
	}
	logger.Stage("complete", start, 1)

	article := &domain.Article{
		Topic:           req.Topic,
		RelevantKeyword: prep.keyword,
		Content:         content,
		GeneratedAt:     time.Now(),
	}
	if req.Save {
		if _, err := s.articles.Save(ctx, article); err != nil {
			return nil, fmt.Errorf("save article: %w", err)
		}
	}
	return article, nil
}

// GenerateStream runs the pipeline with the completion stage streamed.
// Deltas are forwarded in order; when saving is requested, the article
// is persisted after the stream completes cleanly.
func (s *PipelineService) GenerateStream(ctx context.Context, req driving.GenerateRequest) (<-chan driven.StreamDelta, error) {
	prep, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	upstream, err := s.llm.ChatStream(ctx, prep.messages, s.chatOptions(req))
	if err != nil {
		return nil, fmt.Errorf("generate article: %w", err)
	}

	deltas := make(chan driven.StreamDelta)
	go func() {
		defer close(deltas)

		var buf strings.Builder
		failed := false
		for delta := range upstream {
			if delta.Err != nil {
				failed = true
			} else {
				buf.WriteString(delta.Content)
			}
			select {
			case deltas <- delta:
			case <-ctx.Done():
				return
			}
		}
		if ctx.Err() != nil || failed || !req.Save {
			return
		}

		article := &domain.Article{
			Topic:           req.Topic,
			RelevantKeyword: prep.keyword,
			Content:         buf.String(),
			GeneratedAt:     time.Now(),
		}
		if _, err := s.articles.Save(ctx, article); err != nil {
			select {
			case deltas <- driven.StreamDelta{Err: fmt.Errorf("save article: %w", err)}:
			case <-ctx.Done():
			}
		}
	}()
	return deltas, nil
}

// preparation carries the state shared by Generate and GenerateStream.
type preparation struct {
	keyword  string
	messages []driven.ChatMessage
}

// prepare runs every stage before the completion call.
func (s *PipelineService) prepare(ctx context.Context, req driving.GenerateRequest) (*preparation, error) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return nil, fmt.Errorf("generate: %w: topic is empty", domain.ErrInvalidInput)
	}

	keywords := s.discoverKeywords(ctx, topic)
	keyword := s.selectKeyword(ctx, topic, keywords)
	urls := s.discoverURLs(ctx, topic, keywords)

	corpus := ""
	if s.crawler != nil && len(urls) > 0 {
		start := time.Now()
		corpus = s.crawler.Crawl(ctx, urls)
		logger.Stage("crawl", start, len(urls))
	}

	// Silently degrades per the retrieval store's own contract.
	start := time.Now()
	chunks := s.retrieval.AddDocuments(ctx, []string{corpus})
	logger.Stage("ingest", start, len(chunks))

	query := s.refineQuery(ctx, topic)

	start = time.Now()
	retrieved, err := s.retrieval.RetrieveRelevantContent(ctx, query, s.topK)
	if err != nil {
		return nil, err
	}
	logger.Stage("retrieve", start, s.topK)

	return &preparation{
		keyword: keyword,
		messages: []driven.ChatMessage{
			{Role: "system", Content: ArticleSystemPrompt(keyword, retrieved)},
			{Role: "user", Content: ArticleUserPrompt(topic)},
		},
	}, nil
}

func (s *PipelineService) chatOptions(req driving.GenerateRequest) driven.ChatOptions {
	temperature := s.temperature
	if req.Temperature > 0 {
		temperature = req.Temperature
	}
	return driven.ChatOptions{Temperature: temperature}
}

// discoverKeywords finds related keywords. Failure means no keywords,
// never a pipeline abort.
func (s *PipelineService) discoverKeywords(ctx context.Context, topic string) []string {
	if s.keywords == nil {
		return nil
	}

	start := time.Now()
	keywords, err := s.keywords.RelatedKeywords(ctx, topic, s.maxKeywords)
	if err != nil {
		logger.Warn("keyword discovery failed: %v", err)
		return nil
	}
	logger.Stage("keywords", start, len(keywords))
	return keywords
}

// selectKeyword asks the LLM to pick the most relevant trending keyword
// for the topic, falling back to the topic itself.
func (s *PipelineService) selectKeyword(ctx context.Context, topic string, keywords []string) string {
	if len(keywords) == 0 {
		return topic
	}

	choice, err := s.llm.Generate(ctx, SelectKeywordPrompt(topic, keywords), driven.GenerateOptions{
		MaxTokens:   50,
		Temperature: 0.3,
	})
	if err != nil {
		logger.Warn("keyword selection failed: %v", err)
		return topic
	}
	choice = strings.TrimSpace(choice)
	if choice == "" {
		return topic
	}
	return choice
}

// discoverURLs searches for candidate source URLs for the topic and
// each keyword, deduplicated in discovery order, and persists the raw
// set for inspection. Failures shrink the list instead of aborting.
func (s *PipelineService) discoverURLs(ctx context.Context, topic string, keywords []string) []string {
	if s.searcher == nil {
		return nil
	}

	start := time.Now()
	queries := append([]string{topic}, keywords...)

	seen := make(map[string]struct{})
	byQuery := make(map[string][]string, len(queries))
	var urls []string
	for _, query := range queries {
		found, err := s.searcher.SearchURLs(ctx, query)
		if err != nil {
			logger.Warn("url discovery failed for %q: %v", query, err)
			continue
		}
		byQuery[query] = found
		for _, u := range found {
			if _, dup := seen[u]; dup {
				continue
			}
			seen[u] = struct{}{}
			urls = append(urls, u)
		}
	}
	logger.Stage("discover", start, len(urls))

	s.persistURLs(byQuery)
	return urls
}

// persistURLs writes the discovered URL set to the data directory.
// Best effort: inspection data never fails the pipeline.
func (s *PipelineService) persistURLs(byQuery map[string][]string) {
	if s.dataDir == "" || len(byQuery) == 0 {
		return
	}

	data, err := json.MarshalIndent(byQuery, "", "  ")
	if err != nil {
		logger.Debug("marshal url set: %v", err)
		return
	}
	path := filepath.Join(s.dataDir, urlsFilename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		logger.Debug("write url set: %v", err)
	}
}

// refineQuery turns the topic into a targeted retrieval query via the
// LLM, falling back to the raw topic.
func (s *PipelineService) refineQuery(ctx context.Context, topic string) string {
	refined, err := s.llm.Generate(ctx, RefineQueryPrompt(topic), driven.GenerateOptions{
		MaxTokens:   100,
		Temperature: 0.3,
	})
	if err != nil {
		logger.Warn("query refinement failed: %v", err)
		return topic
	}
	refined = strings.TrimSpace(refined)
	if refined == "" {
		return topic
	}
	return refined
}
