package urls

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"news-crawler/pkg/httpclient"

	"github.com/PuerkitoBio/goquery"
)

// URLExtractor is a function type that extracts URLs from HTML content
type URLExtractor func(html string) ([]URL, error)

// HomepageMarkers are the card classes of the homepage placement zones, in
// the order their links are collected: top news, partner slider, long grid,
// compact.
var HomepageMarkers = []string{
	"card-mini _topnews",
	"card-big _slider _partners _news",
	"card-mini _longgrid",
	"card-mini _compact",
}

// HTMLFetcher handles fetching HTML pages and extracting URLs using a provided extractor
type HTMLFetcher struct {
	client    *httpclient.HTTPClient
	extractor URLExtractor
}

// NewHTMLFetcher creates a new HTML fetcher with the given client and extractor function
func NewHTMLFetcher(client *httpclient.HTTPClient, extractor URLExtractor) *HTMLFetcher {
	return &HTMLFetcher{
		client:    client,
		extractor: extractor,
	}
}

// Fetch implements URLsFetcher - fetches HTML from the given URL and extracts URLs.
// A page without matching links yields an empty result, not an error.
func (f *HTMLFetcher) Fetch(ctx context.Context, pageURL string) ([]URL, error) {
	if f.extractor == nil {
		return nil, fmt.Errorf("extractor function is not set")
	}

	html, err := f.client.FetchHTML(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch HTML: %w", err)
	}

	urls, err := f.extractor(html)
	if err != nil {
		return nil, fmt.Errorf("failed to extract URLs: %w", err)
	}

	return urls, nil
}

// HomepageLinkExtractor returns an extractor that collects the links of every
// element whose class attribute is exactly one of the HomepageMarkers. Extra or
// reordered classes do not match. The zones are concatenated in marker order
// without dedup. Each href is resolved against baseURL.
func HomepageLinkExtractor(baseURL string) URLExtractor {
	return func(html string) ([]URL, error) {
		base, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			return nil, fmt.Errorf("failed to parse HTML: %w", err)
		}

		classed := doc.Find("[class]")

		var result []URL
		for _, marker := range HomepageMarkers {
			want := normalizeClass(marker)
			classed.FilterFunction(func(_ int, s *goquery.Selection) bool {
				return normalizeClass(s.AttrOr("class", "")) == want
			}).Each(func(_ int, s *goquery.Selection) {
				href, exists := s.Attr("href")
				if !exists || href == "" {
					return
				}
				ref, err := url.Parse(href)
				if err != nil {
					return
				}
				result = append(result, URL{
					Location: base.ResolveReference(ref).String(),
					Title:    strings.TrimSpace(s.Text()),
				})
			})
		}

		return result, nil
	}
}

// normalizeClass collapses whitespace runs in a class attribute
func normalizeClass(class string) string {
	return strings.Join(strings.Fields(class), " ")
}
