package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mohammed-danyal/brainrot-news/internal/apperr"
	"github.com/mohammed-danyal/brainrot-news/internal/domain"
	"github.com/mohammed-danyal/brainrot-news/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeed struct {
	articles []domain.Article
	err      error
	limit    *int
}

func (s stubFeed) List(_ context.Context, limit int) ([]domain.Article, error) {
	if s.limit != nil {
		*s.limit = limit
	}
	return s.articles, s.err
}

func serve(t *testing.T, feed FeedLister) *httptest.ResponseRecorder {
	t.Helper()
	return serveURL(t, feed, "/api/news")
}

func serveURL(t *testing.T, feed FeedLister, target string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewNewsRouter(e, feed).Bind()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestNewsRouter_List(t *testing.T) {
	created := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	feed := stubFeed{articles: []domain.Article{{
		Title:     "POV: markets 💀",
		Summary:   "bestie",
		Category:  domain.CategoryBusiness,
		Section:   domain.SectionTrending,
		ImageURL:  domain.PlaceholderImage(domain.CategoryBusiness),
		SourceURL: "https://example.com/1",
		CreatedAt: created,
	}}}

	rec := serve(t, feed)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "POV: markets 💀", got[0]["title"])
	assert.Equal(t, "trending", got[0]["section"])
	assert.Equal(t, "business", got[0]["category"])
	assert.Equal(t, "https://example.com/1", got[0]["source_url"])
	assert.Equal(t, "2026-04-01T12:00:00Z", got[0]["created_at"])
	assert.NotContains(t, got[0], "published_at")
}

func TestNewsRouter_ListEmpty(t *testing.T) {
	rec := serve(t, stubFeed{articles: []domain.Article{}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestNewsRouter_ErrorsAreGeneric(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{
			name: "storage unavailable",
			err:  fmt.Errorf("%w: dial tcp 10.0.0.7:5432: connection refused", storage.ErrStorageUnavailable),
			code: http.StatusServiceUnavailable,
			body: `{"error":"news feed temporarily unavailable"}`,
		},
		{
			name: "unexpected",
			err:  errors.New("pq: relation articles does not exist"),
			code: http.StatusInternalServerError,
			body: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, stubFeed{err: tt.err})
			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "5432")
		})
	}
}

func TestNewsRouter_Limit(t *testing.T) {
	tests := []struct {
		name   string
		target string
		code   int
		limit  int
		body   string
	}{
		{name: "default", target: "/api/news", code: http.StatusOK, limit: 100},
		{name: "explicit", target: "/api/news?limit=7", code: http.StatusOK, limit: 7},
		{
			name:   "not a number",
			target: "/api/news?limit=lots",
			code:   http.StatusBadRequest,
			body:   `{"error":"limit: must be a number","title":"validation error"}`,
		},
		{
			name:   "too large",
			target: "/api/news?limit=101",
			code:   http.StatusBadRequest,
			body:   `{"error":"limit: must be between 1 and 100","title":"validation error"}`,
		},
		{
			name:   "zero",
			target: "/api/news?limit=0",
			code:   http.StatusBadRequest,
			body:   `{"error":"limit: must be between 1 and 100","title":"validation error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := -1
			rec := serveURL(t, stubFeed{articles: []domain.Article{}, limit: &got}, tt.target)
			assert.Equal(t, tt.code, rec.Code)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, rec.Body.String())
				assert.Equal(t, -1, got)
				return
			}
			assert.Equal(t, tt.limit, got)
		})
	}
}
