package archive_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/gridironwire/internal/archive"
)

const listingFixture = `<!DOCTYPE html>
<html><body>
<nav>
  <a href="/sports/roster">Roster</a>
  <a href="/sports/schedule">Schedule</a>
</nav>
<main>
  <a href="/news/star-qb-injury-update">Star QB injury update</a>
  <a href="https://example.com/news/defense-dominates-spring-game">Defense dominates spring game</a>
  <a href="https://other.com/news/rival-team-wins-big-opener">Rival team wins</a>
  <a href="/news/tickets">Tickets</a>
  <a href="/news/coach-previews-season-opener"></a>
  <a>Missing href</a>
</main>
</body></html>`

// stubFetcher returns a fixed body or error for every URL.
type stubFetcher struct {
	body []byte
	err  error
}

func (s *stubFetcher) Get(context.Context, string) ([]byte, int, error) {
	if s.err != nil {
		return nil, 0, s.err
	}

	return s.body, 200, nil
}

func TestAdapter_Fetch(t *testing.T) {
	t.Parallel()

	adapter := archive.NewAdapter(&stubFetcher{body: []byte(listingFixture)})

	candidates, err := adapter.Fetch(context.Background(), archive.Source{
		Endpoint:     "https://example.com/sports/football/news",
		Origin:       "https://example.com",
		LinkSelector: "a",
		Labels:       []string{"TEAM", "Example"},
	})
	require.NoError(t, err)

	// Roster/schedule hit the default deny list, the off-origin link fails
	// scoping, /news/tickets has no slug, and the empty anchor is dropped.
	require.Len(t, candidates, 2)

	assert.Equal(t, "Star QB injury update", candidates[0].Title)
	assert.Equal(t, "https://example.com/news/star-qb-injury-update", candidates[0].URL)
	assert.Equal(t, []string{"TEAM", "Example"}, candidates[0].Tags)
	assert.Equal(t, "https://example.com", candidates[0].Source)
	assert.False(t, candidates[0].FetchedAt.IsZero())
	assert.Nil(t, candidates[0].PublishedAt)

	assert.Equal(t, "https://example.com/news/defense-dominates-spring-game", candidates[1].URL)
}

func TestAdapter_Fetch_DefaultSelector(t *testing.T) {
	t.Parallel()

	adapter := archive.NewAdapter(&stubFetcher{body: []byte(listingFixture)})

	candidates, err := adapter.Fetch(context.Background(), archive.Source{
		Endpoint: "https://example.com/sports/football/news",
		Origin:   "https://example.com",
		Labels:   []string{"TEAM", "Example"},
	})
	require.NoError(t, err)

	// The default selector only matches anchors with '/news/' in the href.
	require.Len(t, candidates, 2)
}

func TestAdapter_Fetch_TransportError(t *testing.T) {
	t.Parallel()

	transportErr := errors.New("connection refused")
	adapter := archive.NewAdapter(&stubFetcher{err: transportErr})

	candidates, err := adapter.Fetch(context.Background(), archive.Source{
		Endpoint: "https://example.com/sports/football/news",
		Origin:   "https://example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, transportErr)
	assert.Empty(t, candidates)
}
