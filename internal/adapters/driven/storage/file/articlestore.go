// Package file provides the on-disk article store. Articles are saved
// as markdown files with a JSON metadata sidecar; listings are served
// from a cache invalidated by a filesystem watcher.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/scribe-labs/scribe-cli/internal/core/domain"
	"github.com/scribe-labs/scribe-cli/internal/core/ports/driven"
	"github.com/scribe-labs/scribe-cli/internal/logger"
)

// Ensure ArticleStore implements the interface.
var _ driven.ArticleStore = (*ArticleStore)(nil)

const (
	articleExt = ".md"
	metaSuffix = "_meta.json"

	// timestampLayout keeps filenames sortable.
	timestampLayout = "20060102_150405"
)

// unsafeChars matches filename characters replaced during sanitising.
var unsafeChars = regexp.MustCompile(`[^a-z0-9]+`)

// ArticleStore saves and lists generated articles in a directory.
type ArticleStore struct {
	dir     string
	watcher *fsnotify.Watcher

	mu     sync.Mutex
	cached []domain.ArticleMetadata
	dirty  bool
	done   chan struct{}
}

// NewArticleStore creates a store rooted at dir, creating it if needed.
// A watcher invalidates the listing cache when files change outside
// this process.
func NewArticleStore(dir string) (*ArticleStore, error) {
	if dir == "" {
		dir = "generated_articles"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	store := &ArticleStore{
		dir:   dir,
		dirty: true,
		done:  make(chan struct{}),
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		// Degrade to rescanning on every List call.
		logger.Warn("article watcher unavailable: %v", err)
		return store, nil
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		logger.Warn("cannot watch %s: %v", dir, err)
		return store, nil
	}

	store.watcher = watcher
	go store.watch()
	return store, nil
}

// watch marks the cache dirty whenever the directory changes.
func (s *ArticleStore) watch() {
	for {
		select {
		case _, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			s.mu.Lock()
			s.dirty = true
			s.mu.Unlock()
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			logger.Debug("article watcher: %v", err)
		case <-s.done:
			return
		}
	}
}

// Save writes the article and its metadata sidecar, returning the path
// of the article file.
func (s *ArticleStore) Save(_ context.Context, article *domain.Article) (string, error) {
	if article == nil || strings.TrimSpace(article.Content) == "" {
		return "", fmt.Errorf("article store: %w: empty article", domain.ErrInvalidInput)
	}

	generatedAt := article.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	base := fmt.Sprintf("%s_%s", sanitizeTopic(article.Topic), generatedAt.Format(timestampLayout))
	articlePath := filepath.Join(s.dir, base+articleExt)

	if err := os.WriteFile(articlePath, []byte(article.Content), 0644); err != nil {
		return "", fmt.Errorf("write article: %w", err)
	}

	meta := domain.ArticleMetadata{
		Topic:           article.Topic,
		RelevantKeyword: article.RelevantKeyword,
		GeneratedAt:     generatedAt,
		Filename:        base + articleExt,
	}
	metaBytes, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, base+metaSuffix), metaBytes, 0644); err != nil {
		return "", fmt.Errorf("write metadata: %w", err)
	}

	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()

	logger.Info("saved article %s", articlePath)
	return articlePath, nil
}

// List returns metadata for all stored articles, newest first.
func (s *ArticleStore) List(_ context.Context) ([]domain.ArticleMetadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty && s.watcher != nil {
		return append([]domain.ArticleMetadata(nil), s.cached...), nil
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read output directory: %w", err)
	}

	var articles []domain.ArticleMetadata
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), metaSuffix) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			logger.Debug("skip unreadable sidecar %s: %v", entry.Name(), err)
			continue
		}
		var meta domain.ArticleMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			logger.Debug("skip malformed sidecar %s: %v", entry.Name(), err)
			continue
		}
		articles = append(articles, meta)
	}

	sort.Slice(articles, func(i, j int) bool {
		return articles[i].GeneratedAt.After(articles[j].GeneratedAt)
	})

	s.cached = articles
	s.dirty = false
	return append([]domain.ArticleMetadata(nil), articles...), nil
}

// Close stops the directory watcher.
func (s *ArticleStore) Close() error {
	close(s.done)
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

// sanitizeTopic turns a topic into a safe filename fragment.
func sanitizeTopic(topic string) string {
	cleaned := unsafeChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(topic)), "_")
	cleaned = strings.Trim(cleaned, "_")
	if cleaned == "" {
		cleaned = "article"
	}
	const maxLen = 60
	if len(cleaned) > maxLen {
		cleaned = cleaned[:maxLen]
	}
	return cleaned
}
