package urls

import (
	"context"
	"fmt"
	"strings"

	"news-crawler/pkg/httpclient"

	"github.com/mmcdole/gofeed"
)

// FeedFetcher discovers article URLs from an RSS/Atom feed
type FeedFetcher struct {
	client     *httpclient.HTTPClient
	feedParser *gofeed.Parser
}

// NewFeedFetcher creates a feed fetcher that downloads feeds with client
func NewFeedFetcher(client *httpclient.HTTPClient) *FeedFetcher {
	return &FeedFetcher{
		client:     client,
		feedParser: gofeed.NewParser(),
	}
}

// Fetch downloads and parses the feed at feedURL and returns its item links in feed order
func (f *FeedFetcher) Fetch(ctx context.Context, feedURL string) ([]URL, error) {
	body, err := f.client.FetchHTML(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	feed, err := f.feedParser.ParseString(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	urls := make([]URL, 0, len(feed.Items))
	for _, item := range feed.Items {
		link := strings.TrimSpace(item.Link)
		if link == "" {
			continue
		}
		urls = append(urls, URL{
			Location: link,
			Title:    item.Title,
		})
	}

	return urls, nil
}
