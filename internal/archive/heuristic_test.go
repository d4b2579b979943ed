package archive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/gridironwire/internal/archive"
)

const testOrigin = "https://example.com"

func TestClassifier_IsStory_DefaultDeny(t *testing.T) {
	t.Parallel()

	classifier := archive.NewClassifier(testOrigin, nil, nil)

	tests := []struct {
		name string
		link string
		want bool
	}{
		{
			name: "slugged story accepted",
			link: "https://example.com/sports/football/star-qb-injury-update",
			want: true,
		},
		{
			name: "deny substring rejected",
			link: "https://example.com/sports/roster",
			want: false,
		},
		{
			name: "short unslugged segment rejected",
			link: "https://example.com/id1",
			want: false,
		},
		{
			name: "origin mismatch rejected",
			link: "http://other.com/long-story-slug",
			want: false,
		},
		{
			name: "relative link rejected",
			link: "/sports/football/star-qb-injury-update",
			want: false,
		},
		{
			name: "schedule page rejected",
			link: "https://example.com/sports/football/schedule",
			want: false,
		},
		{
			name: "ticketing page rejected",
			link: "https://example.com/tickets/season-packages-on-sale",
			want: false,
		},
		{
			name: "trailing slash stripped before slug check",
			link: "https://example.com/news/coach-previews-season-opener/",
			want: true,
		},
		{
			name: "hyphenated but short segment rejected",
			link: "https://example.com/a-b",
			want: false,
		},
		{
			name: "origin case insensitive",
			link: "https://EXAMPLE.com/news/coach-previews-season-opener",
			want: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, classifier.IsStory(tt.link))
		})
	}
}

func TestClassifier_IsStory_AllowList(t *testing.T) {
	t.Parallel()

	classifier := archive.NewClassifier(testOrigin, []string{"/news/"}, nil)

	assert.True(t, classifier.IsStory("https://example.com/news/star-qb-injury-update"))
	assert.False(t, classifier.IsStory("https://example.com/blog/star-qb-injury-update"))
}

func TestClassifier_IsStory_CustomDenyReplacesDefault(t *testing.T) {
	t.Parallel()

	classifier := archive.NewClassifier(testOrigin, nil, []string{"/opinion/"})

	// The default deny list no longer applies once a custom one is given.
	assert.True(t, classifier.IsStory("https://example.com/roster/walk-on-earns-scholarship"))
	assert.False(t, classifier.IsStory("https://example.com/opinion/why-the-offense-struggles"))
}
