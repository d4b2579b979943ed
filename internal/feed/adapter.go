// Package feed turns syndication feed endpoints into article candidates.
package feed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/jonesrussell/gridironwire/internal/domain"
)

// httpPrefix is the scheme prefix used to decide whether a GUID is usable
// as an entry link.
const httpPrefix = "http"

// Fetcher is the HTTP boundary the adapter reads feed bodies through.
type Fetcher interface {
	Get(ctx context.Context, url string) (body []byte, status int, err error)
}

// Source describes one feed endpoint from the catalog.
type Source struct {
	// Endpoint is the feed URL.
	Endpoint string
	// Origin is the attribution stored on every candidate, normally the
	// scheme+host of the originating site.
	Origin string
	// Labels are the topical tags applied to every candidate.
	Labels []string
}

// Adapter fetches and parses syndication feeds into article candidates.
type Adapter struct {
	fetcher Fetcher
	now     func() time.Time
}

// NewAdapter creates a feed adapter using the given fetcher.
func NewAdapter(fetcher Fetcher) *Adapter {
	return &Adapter{
		fetcher: fetcher,
		now:     time.Now,
	}
}

// Fetch retrieves and parses the feed, returning one candidate per entry
// that carries both a title and a link. Entries missing either are silently
// dropped. Entry publish dates are not parsed; published_at is left for a
// later enrichment stage. A fetch or parse failure for the whole feed
// returns zero candidates and the error — the caller isolates it.
func (a *Adapter) Fetch(ctx context.Context, src Source) ([]domain.Article, error) {
	body, _, err := a.fetcher.Get(ctx, src.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("feed fetch %s: %w", src.Endpoint, err)
	}

	parsed, parseErr := gofeed.NewParser().ParseString(string(body))
	if parseErr != nil {
		return nil, fmt.Errorf("feed parse %s: %w", src.Endpoint, parseErr)
	}

	fetchedAt := a.now().UTC()
	out := make([]domain.Article, 0, len(parsed.Items))

	for _, entry := range parsed.Items {
		title := strings.TrimSpace(entry.Title)
		link := strings.TrimSpace(extractLink(entry))

		if title == "" || link == "" {
			continue
		}

		out = append(out, domain.Article{
			Title:     title,
			URL:       link,
			Author:    extractAuthor(entry),
			Summary:   entry.Description,
			Tags:      src.Labels,
			FetchedAt: fetchedAt,
			Source:    src.Origin,
		})
	}

	return out, nil
}

// extractLink returns the best available URL from a feed entry, preferring
// the explicit link and falling back to a GUID that looks like an HTTP URL.
func extractLink(entry *gofeed.Item) string {
	if entry.Link != "" {
		return entry.Link
	}

	if strings.HasPrefix(entry.GUID, httpPrefix) {
		return entry.GUID
	}

	return ""
}

// extractAuthor returns the first listed author name, if any.
func extractAuthor(entry *gofeed.Item) string {
	for _, person := range entry.Authors {
		if person != nil && person.Name != "" {
			return person.Name
		}
	}

	if entry.Author != nil {
		return entry.Author.Name
	}

	return ""
}
