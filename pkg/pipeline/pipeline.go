package pipeline

import (
	"context"
	"errors"
	"fmt"

	"news-crawler/pkg/domain"
	"news-crawler/pkg/httpclient"
	"news-crawler/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// URLFetcher extracts article URLs from a given URL (homepage or feed)
type URLFetcher interface {
	Fetch(ctx context.Context, url string) ([]string, error)
}

// ContentProcessor processes a URL and returns an Article
// Handles fetching HTML and extracting the article fields
type ContentProcessor interface {
	ProcessContent(ctx context.Context, url string) (*domain.Article, error)
}

// ContentSaver saves an Article to a storage backend
type ContentSaver interface {
	SaveArticle(ctx context.Context, article *domain.Article) error
}

// PipelineStep is the discovery step that turns the base URL into article URLs
type PipelineStep struct {
	Name    string
	Fetcher URLFetcher
}

// ContentConsumer fetches and parses article URLs with WorkerCount workers
// and hands the results to a single writer that calls ContentSaver
type ContentConsumer struct {
	WorkerCount      int
	ContentProcessor ContentProcessor // Processor to fetch and extract content
	ContentSaver     ContentSaver     // Saver to persist articles
}

// Stats counts what happened to the discovered URLs during one run
type Stats struct {
	Discovered int
	Stored     int
	Skipped    int // parsed but incomplete
	Failed     int // fetch, parse or storage error
}

// Pipeline runs discovery followed by the content consumer
type Pipeline struct {
	step            PipelineStep
	contentConsumer ContentConsumer
	logger          logger.Logger
}

// NewPipeline creates a new pipeline with the given discovery step and content consumer
func NewPipeline(step PipelineStep, consumer ContentConsumer, log logger.Logger) *Pipeline {
	if log == nil {
		log = logger.NewNop()
	}
	return &Pipeline{
		step:            step,
		contentConsumer: consumer,
		logger:          log,
	}
}

type job struct {
	seq int
	url string
}

type result struct {
	seq     int
	url     string
	article *domain.Article
	err     error
}

// Run executes the pipeline:
// 1. The discovery step fetches baseURL and extracts article URLs
// 2. Content workers fetch and parse every URL concurrently
// 3. A single writer stores complete articles in discovery order
//
// A failed discovery is logged and ends the run with zero stored articles.
// Per-article failures are logged and never abort the run. The returned
// error is only set for a misconfigured pipeline or a cancelled context.
func (p *Pipeline) Run(ctx context.Context, baseURL string) (Stats, error) {
	if err := p.validate(); err != nil {
		return Stats{}, err
	}

	log := p.logger.With(logger.String("run_id", uuid.NewString()))

	urls, err := p.step.Fetcher.Fetch(ctx, baseURL)
	if err != nil {
		log.Error("Discovery failed, nothing to crawl",
			append(errorFields(err), logger.String("step", p.step.Name), logger.String("url", baseURL))...)
		return Stats{}, nil
	}

	log.Info("Discovered article URLs",
		logger.String("step", p.step.Name),
		logger.Int("count", len(urls)),
		logger.Strings("urls", urls))

	stats := Stats{Discovered: len(urls)}
	if len(urls) == 0 {
		return stats, nil
	}

	results, wait := p.startContentWorkers(ctx, log, urls)
	p.writeResults(ctx, log, results, &stats)

	log.Info("Crawl completed",
		logger.Int("discovered", stats.Discovered),
		logger.Int("stored", stats.Stored),
		logger.Int("skipped", stats.Skipped),
		logger.Int("failed", stats.Failed))

	if err := wait(); err != nil {
		return stats, err
	}
	return stats, nil
}

func (p *Pipeline) validate() error {
	if p.step.Fetcher == nil {
		return fmt.Errorf("discovery step has no fetcher")
	}
	if p.contentConsumer.ContentProcessor == nil {
		return fmt.Errorf("content processor is not set")
	}
	if p.contentConsumer.ContentSaver == nil {
		return fmt.Errorf("content saver is not set")
	}
	return nil
}

// startContentWorkers feeds urls to the content workers. The returned channel
// is closed once every worker has stopped; wait reports a cancelled context.
func (p *Pipeline) startContentWorkers(ctx context.Context, log logger.Logger, urls []string) (<-chan result, func() error) {
	workers := p.contentConsumer.WorkerCount
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan job)
	results := make(chan result, workers*2)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i, u := range urls {
			select {
			case jobs <- job{seq: i, url: u}:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < workers; i++ {
		workerID := i
		g.Go(func() error {
			for j := range jobs {
				log.Debug("Content worker: processing URL", logger.Int("worker", workerID), logger.String("url", j.url))
				article, err := p.contentConsumer.ContentProcessor.ProcessContent(gctx, j.url)

				select {
				case results <- result{seq: j.seq, url: j.url, article: article, err: err}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	var waitErr error
	go func() {
		waitErr = g.Wait()
		close(results)
	}()

	return results, func() error { return waitErr }
}

// writeResults is the only caller of ContentSaver. Results arrive in
// completion order and are handled in discovery order so that ids follow
// the homepage order no matter how many workers run.
func (p *Pipeline) writeResults(ctx context.Context, log logger.Logger, results <-chan result, stats *Stats) {
	pending := make(map[int]result)
	next := 0

	for r := range results {
		pending[r.seq] = r
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			p.handleResult(ctx, log, ready, stats)
			next++
		}
	}
}

func (p *Pipeline) handleResult(ctx context.Context, log logger.Logger, r result, stats *Stats) {
	urlField := logger.String("url", r.url)

	if r.err != nil {
		stats.Failed++
		log.Error("Failed to process article", append(errorFields(r.err), urlField)...)
		return
	}

	if !r.article.Complete() {
		stats.Skipped++
		log.Warn("Skipping incomplete article", urlField)
		return
	}

	if err := p.contentConsumer.ContentSaver.SaveArticle(ctx, r.article); err != nil {
		stats.Failed++
		log.Error("Failed to save article", logger.Error(err), urlField)
		return
	}

	stats.Stored++
	log.Info("Article stored", logger.Int64("id", r.article.ID), logger.String("title", r.article.Title), urlField)
}

// errorFields adds the HTTP status code when err carries one
func errorFields(err error) []logger.Field {
	fields := []logger.Field{logger.Error(err)}
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) {
		fields = append(fields, logger.Int("status_code", statusErr.StatusCode))
	}
	return fields
}
