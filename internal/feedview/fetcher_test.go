package feedview

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/mohammed-danyal/brainrot-news/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newsServer(t *testing.T, list []domain.Article, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/api/news", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(list)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPFetcher_Fetch(t *testing.T) {
	list := articles(3, domain.CategoryIndia)
	var hits atomic.Int32
	srv := newsServer(t, list, &hits)

	f, err := NewHTTPFetcher(srv.URL)
	require.NoError(t, err)

	got, err := f.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, list[0].ID, got[0].ID)
	assert.Equal(t, list[2].Title, got[2].Title)
	assert.Equal(t, int32(1), hits.Load())
}

func TestHTTPFetcher_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"news feed temporarily unavailable"}`))
	}))
	defer srv.Close()

	f, err := NewHTTPFetcher(srv.URL)
	require.NoError(t, err)

	_, err = f.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "temporarily unavailable")
}

func TestNewHTTPFetcher_InvalidURL(t *testing.T) {
	_, err := NewHTTPFetcher("localhost")
	assert.Error(t, err)
}

func TestModel_DetailViewMakesNoRequests(t *testing.T) {
	list := articles(10, domain.CategoryTechnology)
	var hits atomic.Int32
	srv := newsServer(t, list, &hits)

	f, err := NewHTTPFetcher(srv.URL)
	require.NoError(t, err)

	m := NewModel()
	require.NoError(t, m.Load(context.Background(), f))
	require.Equal(t, int32(1), hits.Load())

	for _, a := range m.Trending() {
		require.True(t, m.Select(a.ID))
		m.Close()
	}
	m.LoadMore()
	m.SelectCategory("technology")
	require.True(t, m.Select(list[9].ID))
	m.Close()

	assert.False(t, m.Select(uuid.Nil))
	assert.False(t, m.ScrollLocked())
	assert.Equal(t, int32(1), hits.Load())
}
