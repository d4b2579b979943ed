package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/gridironwire/internal/catalog"
)

func TestDescriptor_Normalize(t *testing.T) {
	t.Parallel()

	t.Run("derives origin from endpoint", func(t *testing.T) {
		t.Parallel()

		descriptor := catalog.Descriptor{
			Kind:     catalog.KindFeed,
			Endpoint: "https://Rolltide.com/sports/football/rss",
		}

		require.NoError(t, descriptor.Normalize())
		assert.Equal(t, "https://rolltide.com", descriptor.Origin)
	})

	t.Run("keeps explicit origin", func(t *testing.T) {
		t.Parallel()

		descriptor := catalog.Descriptor{
			Kind:     catalog.KindFeed,
			Endpoint: "https://news.google.com/rss/search?q=x",
			Origin:   "https://news.google.com",
		}

		require.NoError(t, descriptor.Normalize())
		assert.Equal(t, "https://news.google.com", descriptor.Origin)
	})

	t.Run("missing endpoint", func(t *testing.T) {
		t.Parallel()

		descriptor := catalog.Descriptor{Kind: catalog.KindFeed}
		assert.ErrorIs(t, descriptor.Normalize(), catalog.ErrMissingEndpoint)
	})

	t.Run("relative endpoint", func(t *testing.T) {
		t.Parallel()

		descriptor := catalog.Descriptor{Kind: catalog.KindFeed, Endpoint: "/rss/news"}
		assert.Error(t, descriptor.Normalize())
	})
}

func TestDescriptor_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		descriptor catalog.Descriptor
		wantErr    error
	}{
		{
			name: "valid feed",
			descriptor: catalog.Descriptor{
				Kind:     catalog.KindFeed,
				Endpoint: "https://example.com/rss",
			},
		},
		{
			name: "valid archive",
			descriptor: catalog.Descriptor{
				Kind:     catalog.KindArchive,
				Endpoint: "https://example.com/news",
			},
		},
		{
			name:       "missing endpoint",
			descriptor: catalog.Descriptor{Kind: catalog.KindFeed},
			wantErr:    catalog.ErrMissingEndpoint,
		},
		{
			name: "unknown kind",
			descriptor: catalog.Descriptor{
				Kind:     catalog.Kind("sitemap"),
				Endpoint: "https://example.com/news",
			},
			wantErr: catalog.ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.descriptor.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGoogleNewsFeed(t *testing.T) {
	t.Parallel()

	descriptor := catalog.GoogleNewsFeed("Green Bay Packers football", "Packers")

	assert.Equal(t, catalog.KindFeed, descriptor.Kind)
	assert.Equal(t,
		"https://news.google.com/rss/search?q=Green+Bay+Packers+football&hl=en-US&gl=US&ceid=US:en",
		descriptor.Endpoint)
	assert.Equal(t, "https://news.google.com", descriptor.Origin)
	assert.Equal(t, []string{"Packers", "LOCAL"}, descriptor.Labels)
}

func TestBuiltin(t *testing.T) {
	t.Parallel()

	descriptors := catalog.Builtin()
	require.NotEmpty(t, descriptors)

	feeds, archives := 0, 0

	for _, descriptor := range descriptors {
		require.NoError(t, descriptor.Validate(), "endpoint %s", descriptor.Endpoint)
		assert.NotEmpty(t, descriptor.Origin, "endpoint %s", descriptor.Endpoint)

		switch descriptor.Kind {
		case catalog.KindFeed:
			feeds++
		case catalog.KindArchive:
			archives++
		}
	}

	assert.Positive(t, feeds)
	assert.Positive(t, archives)
}
