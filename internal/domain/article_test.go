package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/gridironwire/internal/domain"
)

func validArticle() domain.Article {
	return domain.Article{
		Title:     "Star QB injury update",
		URL:       "https://example.com/sports/star-qb-injury-update",
		Tags:      []string{"TEAM", "Example"},
		FetchedAt: time.Now().UTC(),
		Source:    "https://example.com",
	}
}

func TestArticle_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*domain.Article)
		wantErr error
	}{
		{
			name:   "valid article",
			mutate: func(*domain.Article) {},
		},
		{
			name:    "missing title",
			mutate:  func(a *domain.Article) { a.Title = "  " },
			wantErr: domain.ErrMissingTitle,
		},
		{
			name:    "missing url",
			mutate:  func(a *domain.Article) { a.URL = "" },
			wantErr: domain.ErrMissingURL,
		},
		{
			name:    "relative url",
			mutate:  func(a *domain.Article) { a.URL = "/sports/story" },
			wantErr: domain.ErrInvalidURL,
		},
		{
			name:    "non-http scheme",
			mutate:  func(a *domain.Article) { a.URL = "ftp://example.com/story" },
			wantErr: domain.ErrInvalidURL,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			article := validArticle()
			tt.mutate(&article)

			err := article.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
