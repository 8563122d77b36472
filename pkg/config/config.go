// Package config loads crawler settings from an optional YAML file, .env files
// and NEWS_CRAWLER_* environment variables.
//
// Every setting has a default, so the crawler runs with no file and no
// environment at all. Precedence (highest first): environment, YAML, defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"news-crawler/pkg/db"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when no explicit path is given
const DefaultPath = "crawler.yml"

const (
	DefaultSiteURL   = "https://lenta.ru"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/102.0.0.0 Safari/537.36"
	DefaultDSN       = "articles.db"
	DefaultWorkers   = 1
)

// Discovery modes
const (
	DiscoveryHomepage = "homepage"
	DiscoveryFeed     = "feed"
)

// Extractor kinds
const (
	ExtractorSelectors   = "selectors"
	ExtractorReadability = "readability"
)

// Date formats
const (
	DateFormatContents = "contents"
	DateFormatText     = "text"
)

// Config is the crawler configuration
type Config struct {
	SiteURL        string         `yaml:"site_url"`
	FeedURL        string         `yaml:"feed_url"`
	Discovery      string         `yaml:"discovery"`
	UserAgent      string         `yaml:"user_agent"`
	RequestTimeout time.Duration  `yaml:"request_timeout"`
	Workers        int            `yaml:"workers"`
	Extractor      string         `yaml:"extractor"`
	DateFormat     string         `yaml:"date_format"`
	Database       DatabaseConfig `yaml:"database"`
	LogLevel       string         `yaml:"log_level"`
}

// DatabaseConfig selects the storage backend
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	// DSN is a file path for sqlite3 or a connection URL for pgx
	DSN string `yaml:"dsn"`
}

// Load reads the YAML file at path if it exists, applies environment overrides
// and defaults, then validates the result.
func Load(path string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, err
	}

	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	default:
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFiles loads .env.local then .env; missing files are ignored.
// godotenv never overwrites variables that are already set.
func loadEnvFiles() error {
	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// SetDefaults fills every unset field
func (c *Config) SetDefaults() {
	if c.SiteURL == "" {
		c.SiteURL = DefaultSiteURL
	}
	c.SiteURL = strings.TrimRight(c.SiteURL, "/")
	if c.FeedURL == "" {
		c.FeedURL = c.SiteURL + "/rss"
	}
	if c.Discovery == "" {
		c.Discovery = DiscoveryHomepage
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	if c.Extractor == "" {
		c.Extractor = ExtractorSelectors
	}
	if c.DateFormat == "" {
		c.DateFormat = DateFormatContents
	}
	if c.Database.Driver == "" {
		c.Database.Driver = db.DriverSQLite
	}
	if c.Database.DSN == "" && c.Database.Driver == db.DriverSQLite {
		c.Database.DSN = DefaultDSN
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks enumerated fields and required values
func (c *Config) Validate() error {
	switch c.Discovery {
	case DiscoveryHomepage, DiscoveryFeed:
	default:
		return fmt.Errorf("invalid discovery %q: expected %s or %s", c.Discovery, DiscoveryHomepage, DiscoveryFeed)
	}
	switch c.Extractor {
	case ExtractorSelectors, ExtractorReadability:
	default:
		return fmt.Errorf("invalid extractor %q: expected %s or %s", c.Extractor, ExtractorSelectors, ExtractorReadability)
	}
	switch c.DateFormat {
	case DateFormatContents, DateFormatText:
	default:
		return fmt.Errorf("invalid date_format %q: expected %s or %s", c.DateFormat, DateFormatContents, DateFormatText)
	}
	switch c.Database.Driver {
	case db.DriverSQLite, db.DriverPostgres:
	default:
		return fmt.Errorf("invalid database driver %q: expected %s or %s", c.Database.Driver, db.DriverSQLite, db.DriverPostgres)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database dsn is required for driver %s", c.Database.Driver)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative")
	}
	return nil
}

func applyEnvOverrides(c *Config) error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	setString("NEWS_CRAWLER_SITE_URL", &c.SiteURL)
	setString("NEWS_CRAWLER_FEED_URL", &c.FeedURL)
	setString("NEWS_CRAWLER_DISCOVERY", &c.Discovery)
	setString("NEWS_CRAWLER_USER_AGENT", &c.UserAgent)
	setString("NEWS_CRAWLER_EXTRACTOR", &c.Extractor)
	setString("NEWS_CRAWLER_DATE_FORMAT", &c.DateFormat)
	setString("NEWS_CRAWLER_DB_DRIVER", &c.Database.Driver)
	setString("NEWS_CRAWLER_DB_DSN", &c.Database.DSN)
	setString("NEWS_CRAWLER_LOG_LEVEL", &c.LogLevel)

	if v := os.Getenv("NEWS_CRAWLER_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse NEWS_CRAWLER_WORKERS: %w", err)
		}
		c.Workers = n
	}
	if v := os.Getenv("NEWS_CRAWLER_REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse NEWS_CRAWLER_REQUEST_TIMEOUT: %w", err)
		}
		c.RequestTimeout = d
	}
	return nil
}
