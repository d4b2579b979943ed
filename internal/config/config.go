// Package config loads application configuration from defaults, an
// optional YAML file, and GRIDIRON_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jonesrussell/gridironwire/internal/logger"
)

const envPrefix = "GRIDIRON"

var (
	// ErrMissingDBPath indicates an empty database path.
	ErrMissingDBPath = errors.New("config: db_path cannot be empty")
	// ErrMissingExportPath indicates an empty export path.
	ErrMissingExportPath = errors.New("config: export_path cannot be empty")
	// ErrInvalidWorkers indicates a non-positive worker count.
	ErrInvalidWorkers = errors.New("config: workers must be positive")
)

// Config holds the application configuration.
type Config struct {
	// DBPath is the SQLite article store location.
	DBPath string `mapstructure:"db_path"`
	// ExportPath is where the CSV projection is written.
	ExportPath string `mapstructure:"export_path"`
	// CatalogPath is the optional JSON catalog file of extra feed sources.
	CatalogPath string `mapstructure:"catalog_path"`
	// FetchTimeout bounds each page or feed fetch.
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
	// Workers bounds global fetch concurrency.
	Workers int `mapstructure:"workers"`
	// RunTimeout bounds a whole ingestion run. Zero disables the deadline.
	RunTimeout time.Duration `mapstructure:"run_timeout"`
	// Log configures the logger.
	Log logger.Config `mapstructure:"log"`
}

// Load reads configuration. cfgFile, when non-empty, names an explicit
// config file; otherwise ./gridironwire.yaml is used if present. A missing
// config file is not an error — defaults and environment apply.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("db_path", "data/gridironwire.db")
	v.SetDefault("export_path", "data/articles.csv")
	v.SetDefault("catalog_path", "feeds.json")
	v.SetDefault("fetch_timeout", "30s")
	v.SetDefault("workers", 16)
	v.SetDefault("run_timeout", "10m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("gridironwire")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return ErrMissingDBPath
	}

	if c.ExportPath == "" {
		return ErrMissingExportPath
	}

	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}

	return nil
}
