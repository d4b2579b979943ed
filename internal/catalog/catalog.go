// Package catalog models the declarative source catalog: every feed
// endpoint, HTML archive page, and search-engine pseudo-feed the ingestion
// run visits. Descriptors are static configuration, loaded once per run and
// never mutated.
package catalog

import (
	"errors"
	"fmt"

	"github.com/jonesrussell/gridironwire/internal/canonical"
)

// Kind selects the adapter a descriptor is dispatched to.
type Kind string

const (
	// KindFeed marks syndication feed endpoints.
	KindFeed Kind = "feed"
	// KindArchive marks HTML listing pages.
	KindArchive Kind = "archive"
)

var (
	// ErrMissingEndpoint indicates a descriptor without an endpoint URL.
	ErrMissingEndpoint = errors.New("catalog: missing endpoint")
	// ErrUnknownKind indicates a descriptor with an unrecognized kind.
	ErrUnknownKind = errors.New("catalog: unknown kind")
)

// Descriptor declares one source. Archive descriptors may carry a link
// selector and allow/deny substring lists; descriptors that omit them rely
// on the archive adapter's defaults. Feed descriptors ignore those fields.
type Descriptor struct {
	Kind         Kind
	Endpoint     string
	Origin       string
	Labels       []string
	LinkSelector string
	Allow        []string
	Deny         []string
}

// Normalize fills derived fields in place: an empty origin becomes the
// scheme+host of the endpoint. Returns an error when the endpoint cannot
// supply one.
func (d *Descriptor) Normalize() error {
	if d.Endpoint == "" {
		return ErrMissingEndpoint
	}

	if d.Origin == "" {
		origin, err := canonical.Origin(d.Endpoint)
		if err != nil {
			return fmt.Errorf("catalog normalize %s: %w", d.Endpoint, err)
		}

		d.Origin = origin
	}

	return nil
}

// Validate checks that the descriptor can be dispatched.
func (d *Descriptor) Validate() error {
	if d.Endpoint == "" {
		return ErrMissingEndpoint
	}

	if d.Kind != KindFeed && d.Kind != KindArchive {
		return fmt.Errorf("%w: %q", ErrUnknownKind, d.Kind)
	}

	if _, err := canonical.Origin(d.Endpoint); err != nil {
		return fmt.Errorf("catalog validate %s: %w", d.Endpoint, err)
	}

	return nil
}
