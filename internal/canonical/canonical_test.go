package canonical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/gridironwire/internal/canonical"
)

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "plain url unchanged",
			input: "https://example.com/sports/story-slug",
			want:  "https://example.com/sports/story-slug",
		},
		{
			name:  "query string dropped",
			input: "https://example.com/story?utm_source=x&utm_medium=y",
			want:  "https://example.com/story",
		},
		{
			name:  "fragment dropped",
			input: "https://example.com/story#comments",
			want:  "https://example.com/story",
		},
		{
			name:  "query and fragment dropped",
			input: "https://example.com/story?id=9#top",
			want:  "https://example.com/story",
		},
		{
			name:  "host lowercased",
			input: "https://Example.COM/Story",
			want:  "https://example.com/Story",
		},
		{
			name:    "relative url rejected",
			input:   "/sports/story",
			wantErr: true,
		},
		{
			name:    "empty input rejected",
			input:   "",
			wantErr: true,
		},
		{
			name:    "bad escape rejected",
			input:   "https://example.com/%zz",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := canonical.Canonicalize(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"https://example.com/a/b-c?x=1#frag",
		"http://example.com/",
		"https://news.google.com/rss/search?q=team+football",
	}

	for _, input := range inputs {
		once, err := canonical.Canonicalize(input)
		require.NoError(t, err)

		twice, err := canonical.Canonicalize(once)
		require.NoError(t, err)

		assert.Equal(t, once, twice)
	}
}

func TestCanonicalize_CollapsesTrackingVariants(t *testing.T) {
	t.Parallel()

	a, err := canonical.Canonicalize("https://example.com/story?utm_campaign=social")
	require.NoError(t, err)

	b, err := canonical.Canonicalize("https://example.com/story#share")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestOrigin(t *testing.T) {
	t.Parallel()

	origin, err := canonical.Origin("https://Rolltide.com/sports/football/archives")
	require.NoError(t, err)
	assert.Equal(t, "https://rolltide.com", origin)

	_, err = canonical.Origin("not a url")
	require.Error(t, err)
}

func TestHost(t *testing.T) {
	t.Parallel()

	host, err := canonical.Host("https://www.espn.com:443/espn/rss/nfl/news")
	require.NoError(t, err)
	assert.Equal(t, "www.espn.com", host)
}
