package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			URL:     "https://api.themoviedb.org/3",
			APIKey:  "valid-api-key",
			Timeout: 30 * time.Second,
		},
		Output: OutputConfig{
			Format: "table",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			modify: func(*Config) {},
		},
		{
			name:    "missing url",
			modify:  func(c *Config) { c.TMDB.URL = "" },
			wantErr: "tmdb.url is required",
		},
		{
			name:    "missing api key",
			modify:  func(c *Config) { c.TMDB.APIKey = "" },
			wantErr: "tmdb.api_key must be set to a valid API key",
		},
		{
			name:    "placeholder api key",
			modify:  func(c *Config) { c.TMDB.APIKey = "your-api-key-here" },
			wantErr: "tmdb.api_key must be set to a valid API key",
		},
		{
			name:    "zero timeout",
			modify:  func(c *Config) { c.TMDB.Timeout = 0 },
			wantErr: "tmdb.timeout must be positive",
		},
		{
			name:    "invalid level",
			modify:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "invalid logging level: verbose",
		},
		{
			name:    "invalid log format",
			modify:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format: xml",
		},
		{
			name:    "invalid output format",
			modify:  func(c *Config) { c.Output.Format = "csv" },
			wantErr: "invalid output.format: csv (must be 'table' or 'json')",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("from file with defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `tmdb:
  api_key: file-key
  timeout: 5s
logging:
  level: debug
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "file-key", cfg.TMDB.APIKey)
		assert.Equal(t, 5*time.Second, cfg.TMDB.Timeout)
		assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.URL)
		assert.Equal(t, "en-US", cfg.TMDB.Language)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "console", cfg.Logging.Format)
		assert.Equal(t, "table", cfg.Output.Format)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tmdb:\n  api_key: file-key\n"), 0o600))
		t.Setenv("REELSCOPE_TMDB_API_KEY", "env-key")
		t.Setenv("REELSCOPE_OUTPUT_FORMAT", "json")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "env-key", cfg.TMDB.APIKey)
		assert.Equal(t, "json", cfg.Output.Format)
	})

	t.Run("explicit missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config")
	})

	t.Run("invalid file content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tmdb:\n  api_key: k\nlogging:\n  level: loud\n"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid logging level: loud")
	})
}
