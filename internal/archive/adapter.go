// Package archive turns HTML listing pages into article candidates.
// Archive sources have no structured feed: the adapter extracts anchors by
// CSS selector and runs each link through the story heuristic to separate
// genuine stories from navigation chrome.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/gridironwire/internal/domain"
)

// DefaultLinkSelector matches story anchors on the Sidearm-style athletics
// sites that make up most of the archive catalog. Sources may override it.
const DefaultLinkSelector = "a[href*='/news/']"

// Fetcher is the HTTP boundary the adapter reads listing pages through.
type Fetcher interface {
	Get(ctx context.Context, url string) (body []byte, status int, err error)
}

// Source describes one HTML listing page from the catalog.
type Source struct {
	// Endpoint is the listing page URL.
	Endpoint string
	// Origin is the scheme+host of the site; links outside it are
	// rejected, and it is stored as the candidate's source.
	Origin string
	// LinkSelector selects anchor elements. Empty means DefaultLinkSelector.
	LinkSelector string
	// Labels are the topical tags applied to every candidate.
	Labels []string
	// Allow, when non-empty, requires links to contain one of its
	// substrings.
	Allow []string
	// Deny rejects links containing any of its substrings. Empty means
	// DefaultDenySubstrings.
	Deny []string
}

// Adapter fetches listing pages and extracts story candidates.
type Adapter struct {
	fetcher Fetcher
	now     func() time.Time
}

// NewAdapter creates an archive adapter using the given fetcher.
func NewAdapter(fetcher Fetcher) *Adapter {
	return &Adapter{
		fetcher: fetcher,
		now:     time.Now,
	}
}

// Fetch retrieves the listing page, selects anchors, resolves relative
// hrefs against the origin, and keeps the anchors whose links classify as
// stories. Anchors missing title or href are dropped silently. A fetch or
// parse failure for the whole page returns zero candidates and the error —
// the caller isolates it.
func (a *Adapter) Fetch(ctx context.Context, src Source) ([]domain.Article, error) {
	body, _, err := a.fetcher.Get(ctx, src.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("archive fetch %s: %w", src.Endpoint, err)
	}

	doc, parseErr := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if parseErr != nil {
		return nil, fmt.Errorf("archive parse %s: %w", src.Endpoint, parseErr)
	}

	selector := src.LinkSelector
	if selector == "" {
		selector = DefaultLinkSelector
	}

	classifier := NewClassifier(src.Origin, src.Allow, src.Deny)
	fetchedAt := a.now().UTC()

	var out []domain.Article

	doc.Find(selector).Each(func(_ int, anchor *goquery.Selection) {
		title := strings.TrimSpace(anchor.Text())
		href, _ := anchor.Attr("href")
		href = strings.TrimSpace(href)

		if title == "" || href == "" {
			return
		}

		if strings.HasPrefix(href, "/") {
			href = strings.TrimRight(src.Origin, "/") + href
		}

		if !classifier.IsStory(href) {
			return
		}

		out = append(out, domain.Article{
			Title:     title,
			URL:       href,
			Tags:      src.Labels,
			FetchedAt: fetchedAt,
			Source:    src.Origin,
		})
	})

	return out, nil
}
