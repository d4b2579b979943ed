// Package cmd implements the command-line interface for GridironWire,
// a football news aggregator: it ingests a catalog of feeds and HTML
// archive pages into a deduplicated article store and exports it as CSV.
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/gridironwire/internal/config"
	"github.com/jonesrussell/gridironwire/internal/logger"
)

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// debug enables debug logging for all commands.
	debug bool

	rootCmd = &cobra.Command{
		Use:   "gridironwire",
		Short: "Football news aggregator",
		Long:  "Aggregates NFL and college football news from feeds and archive pages into a deduplicated article store.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./gridironwire.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newIngestCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newSourcesCmd())
}

// Execute runs the root command.
func Execute() error {
	// A missing .env file is fine; environment variables still apply.
	_ = godotenv.Load()

	return rootCmd.Execute()
}

// setup loads configuration and builds the logger shared by subcommands.
func setup() (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	if debug {
		cfg.Log.Level = "debug"
		cfg.Log.Development = true
	}

	return cfg, logger.New(cfg.Log), nil
}
