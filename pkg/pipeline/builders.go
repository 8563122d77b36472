package pipeline

import (
	"news-crawler/pkg/content"
	"news-crawler/pkg/httpclient"
	"news-crawler/pkg/logger"
	"news-crawler/pkg/urls"
)

// BuilderConfig holds what every pipeline builder needs
type BuilderConfig struct {
	Client         *httpclient.HTTPClient
	Saver          ContentSaver
	Extractor      content.Extractor // nil means the selector extractor
	SiteURL        string            // base for resolving homepage links
	ContentWorkers int
	Logger         logger.Logger
}

// HomepagePipelineBuilder builds a pipeline for the site homepage
// Pipeline: Homepage → [Homepage Link Fetcher] → [Content Consumer]
func HomepagePipelineBuilder(cfg BuilderConfig) *Pipeline {
	step := PipelineStep{
		Name:    "Homepage Fetcher",
		Fetcher: NewBasicURLFetcher(urls.NewHTMLFetcher(cfg.Client, urls.HomepageLinkExtractor(cfg.SiteURL))),
	}
	return NewPipeline(step, newConsumer(cfg), cfg.Logger)
}

// FeedPipelineBuilder builds a pipeline for the site RSS feed
// Pipeline: Feed URL → [Feed Fetcher] → [Content Consumer]
func FeedPipelineBuilder(cfg BuilderConfig) *Pipeline {
	step := PipelineStep{
		Name:    "Feed Fetcher",
		Fetcher: NewBasicURLFetcher(urls.NewFeedFetcher(cfg.Client)),
	}
	return NewPipeline(step, newConsumer(cfg), cfg.Logger)
}

func newConsumer(cfg BuilderConfig) ContentConsumer {
	return ContentConsumer{
		WorkerCount:      cfg.ContentWorkers,
		ContentProcessor: NewHTTPContentProcessor(cfg.Client, cfg.Extractor),
		ContentSaver:     cfg.Saver,
	}
}
