package feed

import (
	"context"
	"fmt"
	"sort"

	"github.com/mohammed-danyal/brainrot-news/internal/domain"
	"github.com/mohammed-danyal/brainrot-news/internal/storage"
)

// MaxItems caps every feed response.
const MaxItems = 100

type Service struct {
	lister storage.Lister
}

func NewService(lister storage.Lister) *Service {
	return &Service{lister: lister}
}

// List returns the newest articles first, at most limit. A limit outside
// 1..MaxItems means MaxItems. An empty store yields an empty, non-nil slice.
func (s *Service) List(ctx context.Context, limit int) ([]domain.Article, error) {
	if limit <= 0 || limit > MaxItems {
		limit = MaxItems
	}

	articles, err := s.lister.Latest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list latest articles: %w", err)
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].CreatedAt.After(articles[j].CreatedAt)
	})
	if len(articles) > limit {
		articles = articles[:limit]
	}
	if articles == nil {
		articles = []domain.Article{}
	}

	return articles, nil
}
