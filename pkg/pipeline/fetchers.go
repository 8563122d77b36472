package pipeline

import (
	"context"
	"fmt"

	"news-crawler/pkg/urls"
)

// BasicUrlFetcher wraps a URLsFetcher to extract URLs from a base URL
// Used for the homepage and the RSS feed, where article URLs come straight from the base URL
type BasicUrlFetcher struct {
	fetcher urls.URLsFetcher
}

// NewBasicURLFetcher creates a new base URL fetcher
func NewBasicURLFetcher(fetcher urls.URLsFetcher) *BasicUrlFetcher {
	return &BasicUrlFetcher{
		fetcher: fetcher,
	}
}

// Fetch extracts URLs from the given base URL, keeping their order and duplicates
func (f *BasicUrlFetcher) Fetch(ctx context.Context, baseURL string) ([]string, error) {
	found, err := f.fetcher.Fetch(ctx, baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URLs: %w", err)
	}

	return extractLocations(found), nil
}

// extractLocations extracts location strings from URL structs
func extractLocations(found []urls.URL) []string {
	result := make([]string, 0, len(found))
	for _, u := range found {
		if u.Location != "" {
			result = append(result, u.Location)
		}
	}
	return result
}
