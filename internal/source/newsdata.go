package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mohammed-danyal/brainrot-news/internal/domain"
)

const (
	DefaultNewsDataBaseURL = "https://newsdata.io/api/1"
	DefaultCountry         = "in"
	DefaultLanguage        = "en"

	defaultTimeout = 15 * time.Second
	pubDateLayout  = "2006-01-02 15:04:05"
)

type NewsDataOption func(*NewsDataClient)

// NewsDataClient queries the newsdata.io "latest" endpoint.
type NewsDataClient struct {
	base     url.URL
	apiKey   string
	country  string
	language string
	http     *http.Client
}

var _ Source = (*NewsDataClient)(nil)

func NewNewsDataClient(apiKey string, opts ...NewsDataOption) (*NewsDataClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("newsdata api key is empty")
	}

	base, err := url.Parse(DefaultNewsDataBaseURL)
	if err != nil {
		return nil, err
	}

	c := &NewsDataClient{
		base:     *base,
		apiKey:   apiKey,
		country:  DefaultCountry,
		language: DefaultLanguage,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func WithBaseURL(raw string) NewsDataOption {
	return func(c *NewsDataClient) {
		if raw == "" {
			return
		}
		if u, err := url.Parse(raw); err == nil {
			c.base = *u
		}
	}
}

func WithRegion(country, language string) NewsDataOption {
	return func(c *NewsDataClient) {
		if country != "" {
			c.country = country
		}
		if language != "" {
			c.language = language
		}
	}
}

func WithHttpClient(httpClient *http.Client) NewsDataOption {
	return func(c *NewsDataClient) {
		c.http = httpClient
	}
}

type newsDataResponse struct {
	Status  string         `json:"status"`
	Results []newsDataItem `json:"results"`
}

type newsDataItem struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	ImageURL string `json:"image_url"`
	PubDate  string `json:"pubDate"`
}

func (c *NewsDataClient) Latest(ctx context.Context, category domain.Category) ([]Candidate, error) {
	reqURL := c.base.JoinPath("latest")
	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("language", c.language)
	q.Set("country", c.country)
	if !category.IsRegional() {
		q.Set("category", string(category))
	}
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s news: %w", category, redact(err, c.apiKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("newsdata error %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var payload newsDataResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode newsdata response: %w", err)
	}
	if payload.Status != "" && payload.Status != "success" {
		return nil, fmt.Errorf("newsdata status %q", payload.Status)
	}

	candidates := make([]Candidate, 0, len(payload.Results))
	for _, item := range payload.Results {
		candidates = append(candidates, Candidate{
			Title:       strings.TrimSpace(item.Title),
			Link:        strings.TrimSpace(item.Link),
			ImageURL:    strings.TrimSpace(item.ImageURL),
			PublishedAt: parsePubDate(item.PubDate),
		})
	}
	return candidates, nil
}

func parsePubDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{pubDateLayout, time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return &t
		}
	}
	return nil
}

// redact strips the api key from transport errors, which embed the request URL.
func redact(err error, secret string) error {
	if secret == "" || !strings.Contains(err.Error(), secret) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), secret, "***"))
}
