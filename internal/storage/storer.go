package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mohammed-danyal/brainrot-news/internal/domain"
)

// Store is the dedup-aware article persistence used by the ingest pipeline
// and the feed service.
type Store interface {
	Deduper
	Lister

	// Insert persists a new article. It returns ErrDuplicateKey when the
	// source URL is already stored, regardless of any earlier Exists check.
	Insert(ctx context.Context, article domain.Article) (uuid.UUID, error)

	// Purge removes every stored article. Operator escape hatch only.
	Purge(ctx context.Context) (int64, error)
}

type Deduper interface {
	Exists(ctx context.Context, sourceURL string) (bool, error)
}

type Lister interface {
	// Latest returns at most limit articles, newest created_at first.
	Latest(ctx context.Context, limit int) ([]domain.Article, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Type string

const (
	PG    Type = "pg"
	InMem Type = "in_mem"
)

var (
	ErrDuplicateKey       = errors.New("article with this source url already exists")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
