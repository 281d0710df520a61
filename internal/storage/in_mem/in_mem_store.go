package in_mem

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mohammed-danyal/brainrot-news/internal/domain"
	"github.com/mohammed-danyal/brainrot-news/internal/storage"
)

// InMemStore keeps articles in process memory. The source URL index plays
// the role of the unique constraint a database would enforce.
type InMemStore struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.Article
	bySource    map[string]uuid.UUID

	now func() time.Time
}

var _ storage.Store = (*InMemStore)(nil)

func NewInMemStore() *InMemStore {
	return &InMemStore{
		storage:  make(map[uuid.UUID]domain.Article),
		bySource: make(map[string]uuid.UUID),
		now:      time.Now,
	}
}

func (s *InMemStore) Exists(_ context.Context, sourceURL string) (bool, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	_, ok := s.bySource[sourceURL]
	return ok, nil
}

func (s *InMemStore) Insert(_ context.Context, article domain.Article) (uuid.UUID, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if _, ok := s.bySource[article.SourceURL]; ok {
		return uuid.Nil, storage.ErrDuplicateKey
	}

	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	if article.CreatedAt.IsZero() {
		article.CreatedAt = s.now()
	}

	s.storage[article.ID] = article
	s.bySource[article.SourceURL] = article.ID
	slog.Debug("Saved article to in-memory storage", "id", article.ID, "source_url", article.SourceURL)

	return article.ID, nil
}

func (s *InMemStore) Latest(_ context.Context, limit int) ([]domain.Article, error) {
	s.storageLock.RLock()
	articles := make([]domain.Article, 0, len(s.storage))
	for _, a := range s.storage {
		articles = append(articles, a)
	}
	s.storageLock.RUnlock()

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].CreatedAt.After(articles[j].CreatedAt)
	})

	if limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}
	return articles, nil
}

func (s *InMemStore) Purge(_ context.Context) (int64, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	n := int64(len(s.storage))
	s.storage = make(map[uuid.UUID]domain.Article)
	s.bySource = make(map[string]uuid.UUID)
	return n, nil
}

func (s *InMemStore) Ping(context.Context) error {
	return nil
}
