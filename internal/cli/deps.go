package cli

import (
	"context"
	"log/slog"

	"github.com/mohammed-danyal/brainrot-news/internal/enrich"
	"github.com/mohammed-danyal/brainrot-news/internal/ingest"
	"github.com/mohammed-danyal/brainrot-news/internal/source"
	"github.com/mohammed-danyal/brainrot-news/internal/storage"
	"github.com/mohammed-danyal/brainrot-news/internal/storage/factory"
)

func openStoreFromEnv(ctx context.Context) (storage.Store, func(), error) {
	cfg, err := factory.LoadEnv()
	if err != nil {
		return nil, nil, err
	}
	return factory.NewStore(ctx, *cfg)
}

func newPipelineFromEnv(store storage.Store) (CycleRunner, error) {
	cfg, err := ingest.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}

	srcCfg, err := source.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	src, err := source.NewFromConfig(*srcCfg)
	if err != nil {
		return nil, err
	}

	var enricher ingest.Enricher
	if enrichCfg, err := enrich.LoadConfigFromEnv(); err != nil {
		slog.Warn("Enrichment disabled, headlines will use the fallback stylizer", "reason", err)
	} else {
		e, err := enrich.NewFromConfig(*enrichCfg)
		if err != nil {
			return nil, err
		}
		enricher = e
	}

	return ingest.NewNewsPipeline(*cfg, src, store, enricher), nil
}
