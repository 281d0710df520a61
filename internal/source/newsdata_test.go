package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mohammed-danyal/brainrot-news/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...NewsDataOption) *NewsDataClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewNewsDataClient("secret-key", append([]NewsDataOption{WithBaseURL(srv.URL + "/api/1")}, opts...)...)
	require.NoError(t, err)
	return c
}

func TestNewsDataClient_Latest(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/1/latest", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "secret-key", q.Get("apikey"))
		assert.Equal(t, "en", q.Get("language"))
		assert.Equal(t, "in", q.Get("country"))
		assert.Equal(t, "sports", q.Get("category"))

		_, _ = w.Write([]byte(`{
			"status": "success",
			"results": [
				{"title": " Cup final tonight ", "link": "https://example.com/cup", "image_url": "https://img/1.jpg", "pubDate": "2026-01-09 10:30:00"},
				{"title": "No date", "link": "https://example.com/nodate", "image_url": null, "pubDate": "yesterday"}
			]
		}`))
	})

	got, err := c.Latest(context.Background(), domain.CategorySports)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Cup final tonight", got[0].Title)
	assert.Equal(t, "https://example.com/cup", got[0].Link)
	require.NotNil(t, got[0].PublishedAt)
	assert.Equal(t, time.Date(2026, 1, 9, 10, 30, 0, 0, time.UTC), *got[0].PublishedAt)

	assert.Empty(t, got[1].ImageURL)
	assert.Nil(t, got[1].PublishedAt)
}

func TestNewsDataClient_Latest_RegionalCategoryOmitsCategoryParam(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.False(t, q.Has("category"))
		assert.Equal(t, "in", q.Get("country"))
		_, _ = w.Write([]byte(`{"status":"success","results":[]}`))
	})

	got, err := c.Latest(context.Background(), domain.CategoryIndia)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNewsDataClient_Latest_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non 2xx",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"status":"error"}`))
			},
		},
		{
			name: "error status in body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"status":"error","results":{"message":"quota"}}`))
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler)
			_, err := c.Latest(context.Background(), domain.CategoryWorld)
			assert.Error(t, err)
		})
	}
}

func TestNewsDataClient_Latest_Timeout(t *testing.T) {
	block := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-block
	}, WithHttpClient(&http.Client{Timeout: 20 * time.Millisecond}))
	defer close(block)

	_, err := c.Latest(context.Background(), domain.CategoryWorld)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-key")
}

func TestCandidate_Usable(t *testing.T) {
	assert.True(t, Candidate{Title: "t", Link: "l"}.Usable())
	assert.False(t, Candidate{Title: "t"}.Usable())
	assert.False(t, Candidate{Link: "l", Title: "  "}.Usable())
}
