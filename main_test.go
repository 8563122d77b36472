package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"news-crawler/pkg/config"
	"news-crawler/pkg/content"
	"news-crawler/pkg/db"
	"news-crawler/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_CrawlsHomepageIntoSQLite(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<a class="card-mini _compact" href="/news/one/">One</a>`))
	})
	mux.HandleFunc("/news/one/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><h1>One</h1><a class="topic-header__rubric">Sport</a>
<div class="topic-header__time">08:00</div><p>a</p><p>b</p></body></html>`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	cfg := &config.Config{
		SiteURL:  server.URL,
		Database: config.DatabaseConfig{DSN: filepath.Join(t.TempDir(), "articles.db")},
	}
	cfg.SetDefaults()
	require.NoError(t, cfg.Validate())

	require.NoError(t, run(context.Background(), cfg, logger.NewNop()))

	store, err := db.Open(context.Background(), db.Config{Driver: db.DriverSQLite, DSN: cfg.Database.DSN})
	require.NoError(t, err)
	defer store.Close()

	articles, err := store.ListArticles(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "One", articles[0].Title)
	assert.Equal(t, "Sport", articles[0].Category)
	assert.Equal(t, "['08:00']", articles[0].CreateDate)
	assert.Equal(t, "a\nb", articles[0].Body)
}

func TestRun_OpenStoreFailure(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{Driver: db.DriverSQLite, DSN: filepath.Join(t.TempDir(), "missing", "dir", "articles.db")}}
	cfg.SetDefaults()

	err := run(context.Background(), cfg, logger.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open article store")
}

func TestNewExtractor(t *testing.T) {
	cfg := &config.Config{}
	cfg.SetDefaults()
	assert.IsType(t, &content.SelectorExtractor{}, newExtractor(cfg))

	cfg.Extractor = config.ExtractorReadability
	assert.IsType(t, &content.ReadabilityExtractor{}, newExtractor(cfg))
}
