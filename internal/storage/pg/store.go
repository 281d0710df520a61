package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mohammed-danyal/brainrot-news/internal/domain"
	"github.com/mohammed-danyal/brainrot-news/internal/storage"
)

// SQLSTATE unique_violation
const uniqueViolation = "23505"

type Store struct {
	db DB
}

var _ storage.Store = (*Store)(nil)

func NewStore(db DB) *Store {
	return &Store{db: db}
}

func (s *Store) Exists(ctx context.Context, sourceURL string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM articles WHERE source_url = $1)`,
		sourceURL,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check article existence: %w", classify(err))
	}
	return exists, nil
}

func (s *Store) Insert(ctx context.Context, article domain.Article) (uuid.UUID, error) {
	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now().UTC()
	}

	cmd := `
        INSERT INTO articles (id, title, summary, category, section, image_url, source_url, published_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		article.ID,
		article.Title,
		article.Summary,
		string(article.Category),
		string(article.Section),
		article.ImageURL,
		article.SourceURL,
		article.PublishedAt,
		article.CreatedAt,
	).Scan(&id)
	if err != nil {
		err = classify(err)
		if errors.Is(err, storage.ErrDuplicateKey) {
			slog.Info("Article already stored (duplicate)", "source_url", article.SourceURL)
			return uuid.Nil, err
		}
		return uuid.Nil, fmt.Errorf("failed to insert article: %w", err)
	}

	return id, nil
}

func (s *Store) Latest(ctx context.Context, limit int) ([]domain.Article, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, title, summary, category, section, image_url, source_url, published_at, created_at
		FROM articles
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest articles: %w", classify(err))
	}
	defer rows.Close()

	articles := make([]domain.Article, 0, limit)
	for rows.Next() {
		var (
			a                 domain.Article
			category, section string
		)
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Summary,
			&category,
			&section,
			&a.ImageURL,
			&a.SourceURL,
			&a.PublishedAt,
			&a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		a.Category = domain.Category(category)
		a.Section = domain.Section(section)
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", classify(err))
	}

	return articles, nil
}

func (s *Store) Purge(ctx context.Context) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM articles`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge articles: %w", classify(err))
	}
	return tag.RowsAffected(), nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return storage.ErrDuplicateKey
	}
	return fmt.Errorf("%w: %w", storage.ErrStorageUnavailable, err)
}
