package feed

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mohammed-danyal/brainrot-news/internal/domain"
	"github.com/mohammed-danyal/brainrot-news/internal/storage"
	"github.com/mohammed-danyal/brainrot-news/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLister struct {
	articles []domain.Article
	err      error
	limit    int
}

func (s *stubLister) Latest(_ context.Context, limit int) ([]domain.Article, error) {
	s.limit = limit
	return s.articles, s.err
}

func TestService_ListNewestFirstCapped(t *testing.T) {
	ctx := context.Background()
	store := in_mem.NewInMemStore()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 150; i++ {
		_, err := store.Insert(ctx, domain.Article{
			Title:     fmt.Sprintf("t%d", i),
			SourceURL: fmt.Sprintf("https://example.com/%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	list, err := NewService(store).List(ctx, MaxItems)
	require.NoError(t, err)

	require.Len(t, list, MaxItems)
	assert.Equal(t, "t149", list[0].Title)
	assert.Equal(t, "t50", list[MaxItems-1].Title)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].CreatedAt.After(list[i-1].CreatedAt))
	}
}

func TestService_ListResortsStorageResults(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	lister := &stubLister{articles: []domain.Article{
		{Title: "old", CreatedAt: base},
		{Title: "new", CreatedAt: base.Add(time.Hour)},
	}}

	list, err := NewService(lister).List(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, MaxItems, lister.limit)
	assert.Equal(t, "new", list[0].Title)
	assert.Equal(t, "old", list[1].Title)
}

func TestService_ListEmpty(t *testing.T) {
	list, err := NewService(&stubLister{}).List(context.Background(), 0)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestService_ListStorageError(t *testing.T) {
	lister := &stubLister{err: fmt.Errorf("%w: conn refused", storage.ErrStorageUnavailable)}

	_, err := NewService(lister).List(context.Background(), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrStorageUnavailable))
}

func TestService_ListLimit(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	lister := &stubLister{articles: []domain.Article{
		{Title: "a", CreatedAt: base},
		{Title: "b", CreatedAt: base.Add(time.Minute)},
		{Title: "c", CreatedAt: base.Add(2 * time.Minute)},
	}}

	list, err := NewService(lister).List(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, lister.limit)
	require.Len(t, list, 2)
	assert.Equal(t, "c", list[0].Title)

	_, err = NewService(lister).List(context.Background(), MaxItems+1)
	require.NoError(t, err)
	assert.Equal(t, MaxItems, lister.limit)
}
