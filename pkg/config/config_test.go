package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"news-crawler/pkg/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crawler.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultSiteURL, cfg.SiteURL)
	assert.Equal(t, DefaultSiteURL+"/rss", cfg.FeedURL)
	assert.Equal(t, DiscoveryHomepage, cfg.Discovery)
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Equal(t, ExtractorSelectors, cfg.Extractor)
	assert.Equal(t, DateFormatContents, cfg.DateFormat)
	assert.Equal(t, db.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, DefaultDSN, cfg.Database.DSN)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.RequestTimeout)
}

func TestLoad_YAMLValues(t *testing.T) {
	path := writeConfig(t, `
site_url: https://example.com/
discovery: feed
workers: 4
request_timeout: 15s
extractor: readability
date_format: text
database:
  driver: sqlite3
  dsn: /tmp/news.db
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", cfg.SiteURL)
	assert.Equal(t, "https://example.com/rss", cfg.FeedURL)
	assert.Equal(t, DiscoveryFeed, cfg.Discovery)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, ExtractorReadability, cfg.Extractor)
	assert.Equal(t, DateFormatText, cfg.DateFormat)
	assert.Equal(t, "/tmp/news.db", cfg.Database.DSN)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, "workers: 2\nsite_url: https://yaml.example\n")

	t.Setenv("NEWS_CRAWLER_WORKERS", "8")
	t.Setenv("NEWS_CRAWLER_SITE_URL", "https://env.example")
	t.Setenv("NEWS_CRAWLER_REQUEST_TIMEOUT", "3s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "https://env.example", cfg.SiteURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestLoad_InvalidEnvNumber(t *testing.T) {
	t.Setenv("NEWS_CRAWLER_WORKERS", "many")

	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NEWS_CRAWLER_WORKERS")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "workers: [")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "bad discovery", mutate: func(c *Config) { c.Discovery = "sitemap" }, wantErr: "invalid discovery"},
		{name: "bad extractor", mutate: func(c *Config) { c.Extractor = "llm" }, wantErr: "invalid extractor"},
		{name: "bad date format", mutate: func(c *Config) { c.DateFormat = "iso" }, wantErr: "invalid date_format"},
		{name: "bad driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: "invalid database driver"},
		{
			name: "postgres needs dsn",
			mutate: func(c *Config) {
				c.Database.Driver = db.DriverPostgres
				c.Database.DSN = ""
			},
			wantErr: "database dsn is required",
		},
		{name: "negative timeout", mutate: func(c *Config) { c.RequestTimeout = -time.Second }, wantErr: "request_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.SetDefaults()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_AcceptsStoreDrivers(t *testing.T) {
	for _, driver := range []string{db.DriverSQLite, db.DriverPostgres} {
		cfg := &Config{Database: DatabaseConfig{Driver: driver, DSN: "dsn"}}
		cfg.SetDefaults()
		assert.NoError(t, cfg.Validate(), driver)
	}
}

func TestSetDefaults_PostgresKeepsEmptyDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Driver: db.DriverPostgres}}
	cfg.SetDefaults()
	assert.Empty(t, cfg.Database.DSN)
}
