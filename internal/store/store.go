// Package store persists articles in a SQLite database keyed by canonical
// URL. Batches are applied in a single transaction: either every record in
// the batch is durably applied or none of it is.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/jonesrussell/gridironwire/internal/canonical"
	"github.com/jonesrussell/gridironwire/internal/domain"
)

// schema defines the articles table. The UNIQUE constraint on url is what
// makes the upsert idempotent; id preserves insertion order for the export
// projection.
const schema = `
CREATE TABLE IF NOT EXISTS articles (
	id INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	url TEXT UNIQUE NOT NULL,
	published_at TEXT,
	author TEXT,
	summary TEXT,
	tags TEXT,
	fetched_at TEXT NOT NULL,
	source TEXT NOT NULL
);
`

// pragmas applied on open: WAL for concurrent readers, a busy timeout so
// parallel test processes back off instead of failing, foreign keys on.
var openPragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 10000",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA foreign_keys = ON",
}

const upsertQuery = `
INSERT INTO articles (title, url, published_at, author, summary, tags, fetched_at, source)
VALUES (:title, :url, :published_at, :author, :summary, :tags, :fetched_at, :source)
ON CONFLICT(url) DO UPDATE SET
	title = excluded.title,
	published_at = excluded.published_at,
	author = excluded.author,
	summary = excluded.summary,
	tags = excluded.tags,
	fetched_at = excluded.fetched_at,
	source = excluded.source
`

const listQuery = `
SELECT title, url, published_at, author, summary, tags, fetched_at, source
FROM articles ORDER BY id DESC
`

// tagSeparator joins the ordered tag set into the tags column.
const tagSeparator = ","

// Store is the article store. Safe for concurrent use; writes happen once
// per run through UpsertBatch.
type Store struct {
	db *sqlx.DB
}

// Open opens (creating as needed) the SQLite store at path and ensures the
// schema exists. Parent directories are created. ":memory:" opens an
// in-process database, used by tests.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("store mkdir: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store open: %w", err)
	}

	// An in-memory database exists per connection; pin the pool to one.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	for _, pragma := range openPragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			db.Close()
			return nil, fmt.Errorf("store pragma: %w", execErr)
		}
	}

	if _, execErr := db.Exec(schema); execErr != nil {
		db.Close()
		return nil, fmt.Errorf("store schema: %w", execErr)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// UpsertResult summarizes one batch application.
type UpsertResult struct {
	// Stored counts records inserted or overwritten.
	Stored int
	// Skipped counts records rejected before the transaction: failed
	// validation or uncanonicalizable URL.
	Skipped int
}

// articleRow is the database shape of an article.
type articleRow struct {
	Title       string  `db:"title"`
	URL         string  `db:"url"`
	PublishedAt *string `db:"published_at"`
	Author      *string `db:"author"`
	Summary     *string `db:"summary"`
	Tags        *string `db:"tags"`
	FetchedAt   string  `db:"fetched_at"`
	Source      string  `db:"source"`
}

// UpsertBatch canonicalizes and persists the batch in one transaction.
// Records failing validation or canonicalization are skipped — a single
// malformed record never fails the batch — but a transaction failure is
// returned as an error with nothing applied.
func (s *Store) UpsertBatch(ctx context.Context, articles []domain.Article) (UpsertResult, error) {
	var result UpsertResult

	rows := make([]articleRow, 0, len(articles))

	for i := range articles {
		row, ok := toRow(&articles[i])
		if !ok {
			result.Skipped++
			continue
		}

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return result, nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("store begin tx: %w", err)
	}

	for i := range rows {
		if _, execErr := tx.NamedExecContext(ctx, upsertQuery, &rows[i]); execErr != nil {
			tx.Rollback()
			return UpsertResult{Skipped: result.Skipped}, fmt.Errorf("store upsert %s: %w", rows[i].URL, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		return UpsertResult{Skipped: result.Skipped}, fmt.Errorf("store commit: %w", commitErr)
	}

	result.Stored = len(rows)

	return result, nil
}

// List returns every stored article, most recently inserted first. This is
// the read path the export projection consumes.
func (s *Store) List(ctx context.Context) ([]domain.Article, error) {
	var rows []articleRow
	if err := s.db.SelectContext(ctx, &rows, listQuery); err != nil {
		return nil, fmt.Errorf("store list: %w", err)
	}

	articles := make([]domain.Article, 0, len(rows))
	for i := range rows {
		articles = append(articles, fromRow(&rows[i]))
	}

	return articles, nil
}

// Count returns the number of stored articles.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM articles"); err != nil {
		return 0, fmt.Errorf("store count: %w", err)
	}

	return count, nil
}

// toRow validates and canonicalizes an article into its database shape.
// Returns false when the record must be skipped.
func toRow(a *domain.Article) (articleRow, bool) {
	if err := a.Validate(); err != nil {
		return articleRow{}, false
	}

	canonicalURL, err := canonical.Canonicalize(a.URL)
	if err != nil {
		return articleRow{}, false
	}

	row := articleRow{
		Title:     a.Title,
		URL:       canonicalURL,
		Author:    nullable(a.Author),
		Summary:   nullable(a.Summary),
		FetchedAt: a.FetchedAt.UTC().Format(time.RFC3339),
		Source:    a.Source,
	}

	if a.PublishedAt != nil {
		v := a.PublishedAt.UTC().Format(time.RFC3339)
		row.PublishedAt = &v
	}

	if len(a.Tags) > 0 {
		v := strings.Join(a.Tags, tagSeparator)
		row.Tags = &v
	}

	return row, true
}

// fromRow converts a database row back to the domain shape. Timestamps
// that fail to parse are left zero rather than failing the read.
func fromRow(row *articleRow) domain.Article {
	article := domain.Article{
		Title:  row.Title,
		URL:    row.URL,
		Author: deref(row.Author),
		Source: row.Source,
	}

	article.Summary = deref(row.Summary)

	if row.Tags != nil && *row.Tags != "" {
		article.Tags = strings.Split(*row.Tags, tagSeparator)
	}

	if fetchedAt, err := time.Parse(time.RFC3339, row.FetchedAt); err == nil {
		article.FetchedAt = fetchedAt
	}

	if row.PublishedAt != nil {
		if publishedAt, err := time.Parse(time.RFC3339, *row.PublishedAt); err == nil {
			article.PublishedAt = &publishedAt
		}
	}

	return article
}

// nullable maps an empty string to NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// deref returns the value of a nullable column, empty when NULL.
func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
