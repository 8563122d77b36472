package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"news-crawler/pkg/config"
	"news-crawler/pkg/content"
	"news-crawler/pkg/db"
	"news-crawler/pkg/httpclient"
	"news-crawler/pkg/logger"
	"news-crawler/pkg/pipeline"
)

func main() {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("Crawler failed", logger.Error(err))
		stop()
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	store, err := db.Open(ctx, db.Config{Driver: cfg.Database.Driver, DSN: cfg.Database.DSN})
	if err != nil {
		return fmt.Errorf("open article store: %w", err)
	}
	defer store.Close()

	// inserts will fail and be logged one by one
	if err := store.EnsureSchema(ctx); err != nil {
		log.Error("Failed to create articles table", logger.Error(err))
	}

	builderCfg := pipeline.BuilderConfig{
		Client: httpclient.NewClient(httpclient.Options{
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.RequestTimeout,
		}),
		Saver:          store,
		Extractor:      newExtractor(cfg),
		SiteURL:        cfg.SiteURL,
		ContentWorkers: cfg.Workers,
		Logger:         log,
	}

	p, startURL := pipeline.HomepagePipelineBuilder(builderCfg), cfg.SiteURL
	if cfg.Discovery == config.DiscoveryFeed {
		p, startURL = pipeline.FeedPipelineBuilder(builderCfg), cfg.FeedURL
	}

	start := time.Now()
	log.Info("Crawl started",
		logger.String("discovery", cfg.Discovery),
		logger.String("url", startURL),
		logger.Int("workers", cfg.Workers))

	if _, err := p.Run(ctx, startURL); err != nil {
		return fmt.Errorf("run pipeline: %w", err)
	}

	log.Info("Done", logger.Duration("duration", time.Since(start)))
	return nil
}

func newExtractor(cfg *config.Config) content.Extractor {
	dateFormat := content.DateFormat(cfg.DateFormat)
	if cfg.Extractor == config.ExtractorReadability {
		return content.NewReadabilityExtractor(dateFormat)
	}
	return content.NewSelectorExtractor(dateFormat)
}
