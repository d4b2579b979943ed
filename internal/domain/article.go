// Package domain defines the records shared across the ingestion pipeline.
package domain

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrMissingTitle indicates an article without a title.
	ErrMissingTitle = errors.New("article: missing title")
	// ErrMissingURL indicates an article without a URL.
	ErrMissingURL = errors.New("article: missing url")
	// ErrInvalidURL indicates an article URL that is not absolute HTTP(S).
	ErrInvalidURL = errors.New("article: url must be an absolute http(s) url")
)

// Article is the canonical unit produced by the adapters and persisted by
// the store. After canonicalization the URL is the record's identity key:
// two articles with the same canonical URL collapse into one stored row,
// with the later write winning on every field.
type Article struct {
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Author      string     `json:"author,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	FetchedAt   time.Time  `json:"fetched_at"`
	Source      string     `json:"source"`
}

// Validate checks the store invariants: a non-empty title and an absolute
// HTTP(S) URL. Records failing validation are rejected before persistence.
func (a *Article) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrMissingTitle
	}

	if strings.TrimSpace(a.URL) == "" {
		return ErrMissingURL
	}

	parsed, err := url.Parse(a.URL)
	if err != nil {
		return ErrInvalidURL
	}

	if parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return ErrInvalidURL
	}

	return nil
}
