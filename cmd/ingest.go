package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/gridironwire/internal/archive"
	"github.com/jonesrussell/gridironwire/internal/catalog"
	"github.com/jonesrussell/gridironwire/internal/export"
	"github.com/jonesrussell/gridironwire/internal/feed"
	"github.com/jonesrussell/gridironwire/internal/fetch"
	"github.com/jonesrussell/gridironwire/internal/ingest"
	"github.com/jonesrussell/gridironwire/internal/store"
)

// newIngestCmd creates the ingest command: one full pipeline run over the
// catalog, followed by a fresh CSV export.
func newIngestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest",
		Short: "Run the ingestion pipeline once",
		Long:  "Fetches every catalog source, merges the candidates into the article store, and regenerates the CSV export.",
		RunE:  runIngest,
	}
}

func runIngest(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	descriptors := catalog.Builtin()

	fileDescriptors, loadErr := catalog.LoadFile(cfg.CatalogPath)
	if loadErr != nil {
		// A present but malformed catalog file is fatal misconfiguration;
		// a missing file would have loaded as empty.
		return loadErr
	}

	descriptors = append(descriptors, fileDescriptors...)

	log.Info("catalog assembled",
		"builtin", len(descriptors)-len(fileDescriptors),
		"from_file", len(fileDescriptors),
	)

	st, openErr := store.Open(cfg.DBPath)
	if openErr != nil {
		return openErr
	}
	defer st.Close()

	client := fetch.NewClient(cfg.FetchTimeout)

	orchestrator := ingest.New(
		feed.NewAdapter(client),
		archive.NewAdapter(client),
		st,
		log,
		ingest.Config{Workers: cfg.Workers, RunTimeout: cfg.RunTimeout},
	)

	stats, runErr := orchestrator.Run(cmd.Context(), descriptors)
	if runErr != nil {
		return runErr
	}

	if stats.Candidates == 0 {
		return nil
	}

	articles, listErr := st.List(cmd.Context())
	if listErr != nil {
		return listErr
	}

	if exportErr := export.ToFile(cfg.ExportPath, articles); exportErr != nil {
		return exportErr
	}

	log.Info("export written",
		"path", cfg.ExportPath,
		"rows", len(articles),
	)

	fmt.Printf("Done. %d candidates from %d sources (%d failed), %d stored, export at %s\n",
		stats.Candidates, stats.Sources, stats.Failed, stats.Stored, cfg.ExportPath)

	return nil
}
