package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/gridironwire/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "data/gridironwire.db", cfg.DBPath)
	assert.Equal(t, "data/articles.csv", cfg.ExportPath)
	assert.Equal(t, "feeds.json", cfg.CatalogPath)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 16, cfg.Workers)
	assert.Equal(t, 10*time.Minute, cfg.RunTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Encoding)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridironwire.yaml")
	contents := `
db_path: /tmp/custom.db
workers: 4
fetch_timeout: 5s
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Unset keys keep their defaults.
	assert.Equal(t, "data/articles.csv", cfg.ExportPath)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("GRIDIRON_WORKERS", "8")
	t.Setenv("GRIDIRON_DB_PATH", "/tmp/env.db")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := func() config.Config {
		return config.Config{
			DBPath:     "data/gridironwire.db",
			ExportPath: "data/articles.csv",
			Workers:    16,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(*config.Config) {},
		},
		{
			name:    "missing db path",
			mutate:  func(c *config.Config) { c.DBPath = "" },
			wantErr: config.ErrMissingDBPath,
		},
		{
			name:    "missing export path",
			mutate:  func(c *config.Config) { c.ExportPath = "" },
			wantErr: config.ErrMissingExportPath,
		},
		{
			name:    "zero workers",
			mutate:  func(c *config.Config) { c.Workers = 0 },
			wantErr: config.ErrInvalidWorkers,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
