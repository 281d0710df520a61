package in_mem

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/mohammed-danyal/brainrot-news/internal/domain"
	"github.com/mohammed-danyal/brainrot-news/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArticle(url string, createdAt time.Time) domain.Article {
	return domain.Article{
		Title:     "title " + url,
		Summary:   "summary",
		Category:  domain.CategoryWorld,
		Section:   domain.SectionLatest,
		SourceURL: url,
		CreatedAt: createdAt,
	}
}

func TestInMemStore_InsertAndExists(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStore()

	ok, err := s.Exists(ctx, "https://example.com/a")
	require.NoError(t, err)
	assert.False(t, ok)

	id, err := s.Insert(ctx, newArticle("https://example.com/a", time.Time{}))
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	ok, err = s.Exists(ctx, "https://example.com/a")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInMemStore_InsertDuplicate(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStore()

	_, err := s.Insert(ctx, newArticle("https://example.com/a", time.Now()))
	require.NoError(t, err)

	_, err = s.Insert(ctx, newArticle("https://example.com/a", time.Now()))
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	list, err := s.Latest(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestInMemStore_ConcurrentInsertSameURL(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStore()

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Insert(ctx, newArticle("https://example.com/race", time.Now()))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, dup int
	for err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.ErrorIs(t, err, storage.ErrDuplicateKey)
		dup++
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 9, dup)
}

func TestInMemStore_LatestOrderAndCap(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStore()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 150; i++ {
		_, err := s.Insert(ctx, newArticle(fmt.Sprintf("https://example.com/%d", i), base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}

	list, err := s.Latest(ctx, 100)
	require.NoError(t, err)
	require.Len(t, list, 100)
	assert.Equal(t, "https://example.com/149", list[0].SourceURL)
	for i := 1; i < len(list); i++ {
		assert.True(t, list[i-1].CreatedAt.After(list[i].CreatedAt))
	}
}

func TestInMemStore_Purge(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStore()

	_, err := s.Insert(ctx, newArticle("https://example.com/a", time.Now()))
	require.NoError(t, err)
	_, err = s.Insert(ctx, newArticle("https://example.com/b", time.Now()))
	require.NoError(t, err)

	n, err := s.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	ok, err := s.Exists(ctx, "https://example.com/a")
	require.NoError(t, err)
	assert.False(t, ok)
}
