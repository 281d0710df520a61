package feedview

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mohammed-danyal/brainrot-news/internal/domain"
)

const DefaultFetchTimeout = 10 * time.Second

// HTTPFetcher reads the feed from GET {base}/api/news.
type HTTPFetcher struct {
	endpoint string
	http     *http.Client
}

type FetcherOption func(*HTTPFetcher)

func WithHttpClient(c *http.Client) FetcherOption {
	return func(f *HTTPFetcher) {
		f.http = c
	}
}

func NewHTTPFetcher(baseURL string, opts ...FetcherOption) (*HTTPFetcher, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api base url %q", baseURL)
	}

	f := &HTTPFetcher{
		endpoint: u.JoinPath("api", "news").String(),
		http:     &http.Client{Timeout: DefaultFetchTimeout},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func (f *HTTPFetcher) Fetch(ctx context.Context) ([]domain.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(io.LimitReader(resp.Body, 4<<10)).Decode(&body)
		if body.Error != "" {
			return nil, fmt.Errorf("fetch news: status %d: %s", resp.StatusCode, body.Error)
		}
		return nil, fmt.Errorf("fetch news: status %d", resp.StatusCode)
	}

	var articles []domain.Article
	if err := json.NewDecoder(resp.Body).Decode(&articles); err != nil {
		return nil, fmt.Errorf("decode news: %w", err)
	}
	return articles, nil
}
