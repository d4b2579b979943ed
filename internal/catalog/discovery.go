package catalog

import (
	"context"
	"errors"
	"strings"
)

// feedProbePaths are the common RSS endpoints probed on a site, in order.
var feedProbePaths = []string{
	"/rss/news", "/rss", "/rss.xml",
	"/news/rss", "/news/feed", "/feed", "/feed.xml",
	"/rss/team-news", "/media/rss", "/rss/feeds/news",
}

// feedSniffBytes is how much of a response body is inspected for an <rss>
// marker.
const feedSniffBytes = 2000

// ErrNoFeedFound indicates that none of the probed endpoints answered with
// something that looks like an RSS feed.
var ErrNoFeedFound = errors.New("catalog: no rss endpoint found")

// Prober is the HTTP boundary used by feed discovery; the short-timeout
// fetch client satisfies it.
type Prober interface {
	Get(ctx context.Context, url string) (body []byte, status int, err error)
}

// DiscoverFeed probes a handful of common RSS paths on the given origin and
// returns the first URL whose response looks like an RSS document. Probe
// failures are skipped, not surfaced; only total failure is an error.
func DiscoverFeed(ctx context.Context, prober Prober, origin string) (string, error) {
	base := strings.TrimRight(origin, "/")

	for _, path := range feedProbePaths {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate := base + path

		body, _, err := prober.Get(ctx, candidate)
		if err != nil {
			continue
		}

		if looksLikeRSS(body) {
			return candidate, nil
		}
	}

	return "", ErrNoFeedFound
}

// looksLikeRSS reports whether a response body reads as an RSS document:
// an XML prolog or rss element near the top.
func looksLikeRSS(body []byte) bool {
	head := strings.ToLower(strings.TrimSpace(string(body)))
	if len(head) > feedSniffBytes {
		head = head[:feedSniffBytes]
	}

	if !strings.HasPrefix(head, "<?xml") && !strings.HasPrefix(head, "<rss") {
		return false
	}

	return strings.Contains(head, "<rss")
}
