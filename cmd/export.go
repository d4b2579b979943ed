package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/gridironwire/internal/export"
	"github.com/jonesrussell/gridironwire/internal/store"
)

// newExportCmd creates the export command, which regenerates the CSV
// projection from the store without fetching anything.
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Regenerate the CSV export from the store",
		RunE:  runExport,
	}
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	st, openErr := store.Open(cfg.DBPath)
	if openErr != nil {
		return openErr
	}
	defer st.Close()

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

	fmt.Printf("Exported %d articles to %s\n", len(articles), cfg.ExportPath)

	return nil
}
