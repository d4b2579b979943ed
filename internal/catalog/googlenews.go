package catalog

import "net/url"

// googleNewsOrigin is the attribution stored on candidates from Google News
// pseudo-feeds.
const googleNewsOrigin = "https://news.google.com"

// localLabel tags candidates sourced through search-engine pseudo-feeds,
// which stand in for local beat-writer coverage.
const localLabel = "LOCAL"

// GoogleNewsFeed builds a feed descriptor for the Google News RSS search
// endpoint. The query is URL-encoded into the endpoint and the descriptor
// carries the fixed two-element label set {label, "LOCAL"}.
func GoogleNewsFeed(query, label string) Descriptor {
	endpoint := "https://news.google.com/rss/search?q=" + url.QueryEscape(query) +
		"&hl=en-US&gl=US&ceid=US:en"

	return Descriptor{
		Kind:     KindFeed,
		Endpoint: endpoint,
		Origin:   googleNewsOrigin,
		Labels:   []string{label, localLabel},
	}
}
