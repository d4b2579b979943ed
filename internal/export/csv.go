// Package export materializes the article store as a flat CSV file. The
// projection is pure and read-only: identical store contents produce
// byte-identical output, so it can be regenerated on demand.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonesrussell/gridironwire/internal/domain"
)

// Header is the fixed CSV header row.
var Header = []string{"title", "url", "published_at", "author", "summary", "tags", "fetched_at", "source"}

// WriteCSV writes the header and one row per article in the given order.
// Callers pass the store's List output, which is reverse-insertion ordered.
func WriteCSV(w io.Writer, articles []domain.Article) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("export write header: %w", err)
	}

	for i := range articles {
		if err := writer.Write(toRecord(&articles[i])); err != nil {
			return fmt.Errorf("export write row: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("export flush: %w", err)
	}

	return nil
}

// ToFile writes the projection to path, creating parent directories and
// truncating any existing file.
func ToFile(path string, articles []domain.Article) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export mkdir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export create %s: %w", path, err)
	}

	if writeErr := WriteCSV(f, articles); writeErr != nil {
		f.Close()
		return writeErr
	}

	if closeErr := f.Close(); closeErr != nil {
		return fmt.Errorf("export close %s: %w", path, closeErr)
	}

	return nil
}

// toRecord flattens an article into a CSV row matching Header.
func toRecord(a *domain.Article) []string {
	publishedAt := ""
	if a.PublishedAt != nil {
		publishedAt = a.PublishedAt.UTC().Format(time.RFC3339)
	}

	return []string{
		a.Title,
		a.URL,
		publishedAt,
		a.Author,
		a.Summary,
		strings.Join(a.Tags, ","),
		a.FetchedAt.UTC().Format(time.RFC3339),
		a.Source,
	}
}
