// Package feedview holds the client side view model of the news feed: a
// single fetch of the latest articles, a category filter, a top stories
// strip and an incrementally revealed feed with a detail overlay.
package feedview

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/mohammed-danyal/brainrot-news/internal/domain"
	"github.com/mohammed-danyal/brainrot-news/pkg/pagination"
)

const (
	CategoryAll   = "ALL"
	TrendingCount = 3
	PageSize      = pagination.DefaultPageSize
)

type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Fetcher loads the full capped article list in one call.
type Fetcher interface {
	Fetch(ctx context.Context) ([]domain.Article, error)
}

// Model is not safe for concurrent use; it is driven from one goroutine.
type Model struct {
	state State
	err   error

	all      []domain.Article
	category string
	trending []domain.Article
	window   *pagination.Window[domain.Article]

	selected     *domain.Article
	scrollLocked bool

	pageSize    int
	scrollToTop func()
}

type Option func(*Model)

// WithScrollToTop registers the hook run on every category change.
func WithScrollToTop(fn func()) Option {
	return func(m *Model) {
		m.scrollToTop = fn
	}
}

func WithPageSize(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.pageSize = n
		}
	}
}

func NewModel(opts ...Option) *Model {
	m := &Model{
		state:    StateLoading,
		category: CategoryAll,
		pageSize: PageSize,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.window = pagination.NewWindow([]domain.Article(nil), m.pageSize)
	return m
}

// Load performs the one network fetch of the session. A failure moves the
// model to StateError.
func (m *Model) Load(ctx context.Context, f Fetcher) error {
	m.state = StateLoading
	articles, err := f.Fetch(ctx)
	if err != nil {
		m.state = StateError
		m.err = err
		return err
	}
	m.SetArticles(articles)
	return nil
}

// SetArticles enters StateReady with the given list and re-applies the active category.
func (m *Model) SetArticles(articles []domain.Article) {
	m.all = articles
	m.err = nil
	m.state = StateReady
	m.apply()
}

// SelectCategory refilters from the full list and restarts pagination.
// Matching is case-insensitive; CategoryAll keeps everything.
func (m *Model) SelectCategory(category string) {
	m.category = strings.TrimSpace(category)
	if m.category == "" {
		m.category = CategoryAll
	}
	if m.scrollToTop != nil {
		m.scrollToTop()
	}
	m.apply()
}

func (m *Model) apply() {
	filtered := m.all
	if !strings.EqualFold(m.category, CategoryAll) {
		filtered = make([]domain.Article, 0, len(m.all))
		for _, a := range m.all {
			if strings.EqualFold(string(a.Category), m.category) {
				filtered = append(filtered, a)
			}
		}
	}

	split := min(TrendingCount, len(filtered))
	m.trending = filtered[:split]
	m.window = pagination.NewWindow(filtered[split:], m.pageSize)
}

// LoadMore reveals the next page and returns the appended items. It is a
// no-op once everything is revealed.
func (m *Model) LoadMore() []domain.Article {
	if m.state != StateReady {
		return nil
	}
	return m.window.Next()
}

// Select opens the detail overlay for a fetched article. It never touches
// the network and reports false for unknown ids.
func (m *Model) Select(id uuid.UUID) bool {
	for i := range m.all {
		if m.all[i].ID == id {
			a := m.all[i]
			m.selected = &a
			m.scrollLocked = true
			return true
		}
	}
	return false
}

// Close dismisses the overlay and releases the scroll lock.
func (m *Model) Close() {
	m.selected = nil
	m.scrollLocked = false
}

func (m *Model) State() State {
	return m.state
}

func (m *Model) Err() error {
	return m.err
}

func (m *Model) Category() string {
	return m.category
}

func (m *Model) Articles() []domain.Article {
	return slices.Clone(m.all)
}

func (m *Model) Trending() []domain.Article {
	return slices.Clone(m.trending)
}

func (m *Model) Feed() []domain.Article {
	return slices.Clone(m.window.Revealed())
}

func (m *Model) HasMore() bool {
	return m.window.HasMore()
}

// Cursor is the number of revealed items of the pagination source.
func (m *Model) Cursor() int {
	return m.window.Cursor()
}

func (m *Model) Selected() (domain.Article, bool) {
	if m.selected == nil {
		return domain.Article{}, false
	}
	return *m.selected, true
}

func (m *Model) ScrollLocked() bool {
	return m.scrollLocked
}

// TrendingHeading labels the top stories strip for the active category.
func (m *Model) TrendingHeading() string {
	if strings.EqualFold(m.category, CategoryAll) {
		return "Trending News"
	}
	return "Top " + strings.ToUpper(m.category) + " News"
}
