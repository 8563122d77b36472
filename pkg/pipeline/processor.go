package pipeline

import (
	"context"
	"fmt"

	"news-crawler/pkg/content"
	"news-crawler/pkg/domain"
	"news-crawler/pkg/httpclient"
)

// HTTPContentProcessor implements ContentProcessor by fetching HTML from URLs
// and extracting the article fields with a content.Extractor
type HTTPContentProcessor struct {
	client    *httpclient.HTTPClient
	extractor content.Extractor
}

// NewHTTPContentProcessor creates a new HTTP content processor.
// A nil extractor means the selector extractor with the raw date dump.
func NewHTTPContentProcessor(client *httpclient.HTTPClient, extractor content.Extractor) *HTTPContentProcessor {
	if extractor == nil {
		extractor = content.NewSelectorExtractor(content.DateContents)
	}
	return &HTTPContentProcessor{
		client:    client,
		extractor: extractor,
	}
}

// ProcessContent fetches HTML from the URL and extracts an Article.
// A fetch failure is returned as an error: none of the fields exist then.
func (p *HTTPContentProcessor) ProcessContent(ctx context.Context, url string) (*domain.Article, error) {
	htmlContent, err := p.client.FetchHTML(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch HTML: %w", err)
	}

	article, err := p.extractor.Extract(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("failed to extract article: %w", err)
	}

	article.URL = url
	return article, nil
}
