package domain

import "time"

// Article represents a generated long-form article.
type Article struct {
	// Topic is the original topic request.
	Topic string

	// RelevantKeyword is the trending keyword the article was angled at.
	RelevantKeyword string

	// Content is the generated article body (markdown).
	Content string

	// GeneratedAt is when generation completed.
	GeneratedAt time.Time
}

// ArticleMetadata is the sidecar record saved alongside an article file.
type ArticleMetadata struct {
	Topic           string    `json:"topic"`
	RelevantKeyword string    `json:"relevant_keyword"`
	GeneratedAt     time.Time `json:"generated_at"`
	Filename        string    `json:"filename"`
}
