package factory

import (
	"context"
	"fmt"

	"github.com/mohammed-danyal/brainrot-news/internal/storage"
	"github.com/mohammed-danyal/brainrot-news/internal/storage/in_mem"
	"github.com/mohammed-danyal/brainrot-news/internal/storage/pg"
)

// NewStore connects the configured backend. The returned close func releases
// its resources and is never nil.
func NewStore(ctx context.Context, cfg StorageConfig) (storage.Store, func(), error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, nil, fmt.Errorf("missing PostgreSQL configuration")
		}

		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		return pg.NewStore(pool.GetConn()), pool.Close, nil

	case storage.InMem:
		return in_mem.NewInMemStore(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
