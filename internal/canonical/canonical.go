// Package canonical reduces URLs to the stable identity key used for
// article deduplication. URLs that differ only in query string or fragment
// (tracking parameters, in-page anchors) collapse to the same key.
package canonical

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var errMissingSchemeOrHost = errors.New("canonicalize: missing scheme or host")

// Canonicalize returns the URL reduced to scheme, host, and path. The
// scheme and host are lowercased; query string and fragment are dropped.
// The result is stable under repeated application. Malformed input yields
// an error so callers reject the candidate rather than store a partial key.
func Canonicalize(raw string) (string, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("canonicalize: %w", err)
	}

	if parsed.Scheme == "" || parsed.Host == "" {
		return "", errMissingSchemeOrHost
	}

	clean := url.URL{
		Scheme: strings.ToLower(parsed.Scheme),
		Host:   strings.ToLower(parsed.Host),
		Path:   parsed.Path,
	}

	return clean.String(), nil
}

// Origin returns the scheme://host prefix of a URL. The ingestion pipeline
// uses it as the fallback source label for catalog entries that omit one,
// and the archive adapter uses it to scope links to the originating site.
func Origin(raw string) (string, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("origin: %w", err)
	}

	if parsed.Scheme == "" || parsed.Host == "" {
		return "", errMissingSchemeOrHost
	}

	return strings.ToLower(parsed.Scheme) + "://" + strings.ToLower(parsed.Host), nil
}

// Host returns the lowercased hostname (without port) of a URL. The worker
// pool keys per-host serialization on it.
func Host(raw string) (string, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("host: %w", err)
	}

	if parsed.Scheme == "" || parsed.Host == "" {
		return "", errMissingSchemeOrHost
	}

	return strings.ToLower(parsed.Hostname()), nil
}
