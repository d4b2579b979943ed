package archive

import "strings"

// DefaultDenySubstrings lists URL fragments of known non-story pages on
// team and athletics sites: rosters, schedules, ticketing, media galleries,
// storefronts. Applied when a source omits its own deny list.
var DefaultDenySubstrings = []string{
	"/roster", "/schedule", "/stats", "/tickets", "evenue", "shop.",
	"/media-guide", "/coaches", "/facilities", "calendar", "gatornetwork",
	"/photo", "/gallery", "/podcast", "/video", "/store", "/promo",
}

// minSlugLength is the minimum length of the final path segment for a link
// to read as a slugged story title rather than a short category or id page.
const minSlugLength = 8

// Classifier decides whether a resolved link on a listing page points at a
// genuine story rather than navigation chrome. Rules short-circuit in
// order: absolute HTTP(S), same-origin prefix, no deny substring, an allow
// substring when the allow list is non-empty, and finally a hyphenated
// final path segment longer than minSlugLength. The chain is conservative:
// it prefers missing a story over admitting a category page.
type Classifier struct {
	origin string
	allow  []string
	deny   []string
}

// NewClassifier builds a classifier scoped to the given origin. An empty
// deny list falls back to DefaultDenySubstrings; an empty allow list
// disables the allow rule.
func NewClassifier(origin string, allow, deny []string) *Classifier {
	if len(deny) == 0 {
		deny = DefaultDenySubstrings
	}

	return &Classifier{
		origin: strings.ToLower(origin),
		allow:  allow,
		deny:   deny,
	}
}

// IsStory applies the rule chain to a resolved link.
func (c *Classifier) IsStory(link string) bool {
	h := strings.ToLower(link)

	if !strings.HasPrefix(h, "http") {
		return false
	}

	if !strings.HasPrefix(h, c.origin) {
		return false
	}

	if containsAny(h, c.deny) {
		return false
	}

	if len(c.allow) > 0 && !containsAny(h, c.allow) {
		return false
	}

	// Story slugs usually have hyphens in the last path segment.
	last := lastPathSegment(h)

	return strings.Contains(last, "-") && len(last) > minSlugLength
}

// containsAny reports whether s contains at least one of the substrings.
func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}

// lastPathSegment returns the final slash-separated segment of a URL with
// any trailing slash stripped.
func lastPathSegment(link string) string {
	trimmed := strings.TrimRight(link, "/")
	idx := strings.LastIndex(trimmed, "/")

	if idx < 0 {
		return trimmed
	}

	return trimmed[idx+1:]
}
