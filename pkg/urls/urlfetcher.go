package urls

import "context"

// URL represents an article link found by a fetcher (homepage or feed)
type URL struct {
	Location string // absolute URL of the article
	Title    string // link text or feed item title (optional)
}

// URLsFetcher discovers article URLs starting from a base URL
type URLsFetcher interface {
	Fetch(ctx context.Context, baseURL string) ([]URL, error)
}
