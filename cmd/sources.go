package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/gridironwire/internal/catalog"
	"github.com/jonesrussell/gridironwire/internal/fetch"
)

// newSourcesCmd creates the sources command group for inspecting the
// catalog without running an ingestion.
func newSourcesCmd() *cobra.Command {
	sourcesCmd := &cobra.Command{
		Use:   "sources",
		Short: "Inspect the source catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	sourcesCmd.AddCommand(newSourcesListCmd())
	sourcesCmd.AddCommand(newSourcesValidateCmd())
	sourcesCmd.AddCommand(newSourcesDiscoverCmd())

	return sourcesCmd
}

// newSourcesListCmd lists every catalog entry, builtin and file-loaded.
func newSourcesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all catalog sources",
		RunE: func(cmd *cobra.Command, _ []string) error {
			descriptors, err := assembleCatalog()
			if err != nil {
				return err
			}

			for _, d := range descriptors {
				fmt.Printf("%-8s %-60s %s\n", d.Kind, d.Endpoint, strings.Join(d.Labels, ","))
			}

			fmt.Printf("%d sources\n", len(descriptors))

			return nil
		},
	}
}

// newSourcesValidateCmd checks every catalog entry and reports failures.
func newSourcesValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate all catalog sources",
		RunE: func(cmd *cobra.Command, _ []string) error {
			descriptors, err := assembleCatalog()
			if err != nil {
				return err
			}

			invalid := 0

			for _, d := range descriptors {
				if validateErr := d.Validate(); validateErr != nil {
					invalid++

					fmt.Printf("INVALID %s: %v\n", d.Endpoint, validateErr)
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d sources invalid", invalid, len(descriptors))
			}

			fmt.Printf("All %d sources valid\n", len(descriptors))

			return nil
		},
	}
}

// newSourcesDiscoverCmd probes a site for a usable RSS endpoint.
func newSourcesDiscoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discover <origin>",
		Short: "Probe a site for a usable RSS endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := fetch.NewClient(fetch.DiscoveryTimeout)

			found, err := catalog.DiscoverFeed(cmd.Context(), client, args[0])
			if err != nil {
				if errors.Is(err, catalog.ErrNoFeedFound) {
					fmt.Printf("No RSS endpoint found on %s\n", args[0])
					return nil
				}

				return err
			}

			fmt.Println(found)

			return nil
		},
	}
}

// assembleCatalog combines the builtin catalog with the configured file.
func assembleCatalog() ([]catalog.Descriptor, error) {
	cfg, _, err := setup()
	if err != nil {
		return nil, err
	}

	descriptors := catalog.Builtin()

	fileDescriptors, loadErr := catalog.LoadFile(cfg.CatalogPath)
	if loadErr != nil {
		return nil, loadErr
	}

	return append(descriptors, fileDescriptors...), nil
}
