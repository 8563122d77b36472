package pipeline

import (
	"context"
	"errors"
	"testing"

	"news-crawler/pkg/urls"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockURLsFetcher is a mock implementation of urls.URLsFetcher for testing
type mockURLsFetcher struct {
	urls []urls.URL
	err  error
}

func (m *mockURLsFetcher) Fetch(ctx context.Context, baseURL string) ([]urls.URL, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.urls, nil
}

func TestBasicUrlFetcher_Fetch_Success(t *testing.T) {
	mockFetcher := &mockURLsFetcher{
		urls: []urls.URL{
			{Location: "https://example.com/article1", Title: "Article 1"},
			{Location: "", Title: "Empty Location"}, // Should be dropped
			{Location: "https://example.com/article2", Title: "Article 2"},
			{Location: "https://example.com/article1", Title: "Article 1 again"},
		},
	}

	result, err := NewBasicURLFetcher(mockFetcher).Fetch(context.Background(), "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://example.com/article1",
		"https://example.com/article2",
		"https://example.com/article1",
	}, result)
}

func TestBasicUrlFetcher_Fetch_Error(t *testing.T) {
	mockFetcher := &mockURLsFetcher{err: errors.New("network error")}

	result, err := NewBasicURLFetcher(mockFetcher).Fetch(context.Background(), "https://example.com")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to fetch URLs")
	assert.Contains(t, err.Error(), "network error")
}

func TestBasicUrlFetcher_Fetch_Empty(t *testing.T) {
	result, err := NewBasicURLFetcher(&mockURLsFetcher{}).Fetch(context.Background(), "https://example.com")

	require.NoError(t, err)
	assert.Empty(t, result)
}
