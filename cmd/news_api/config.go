package main

import (
	"log/slog"
	"os"

	"github.com/mohammed-danyal/brainrot-news/internal/enrich"
	"github.com/mohammed-danyal/brainrot-news/internal/ingest"
	"github.com/mohammed-danyal/brainrot-news/internal/server"
	"github.com/mohammed-danyal/brainrot-news/internal/source"
	"github.com/mohammed-danyal/brainrot-news/internal/storage/cache"
	"github.com/mohammed-danyal/brainrot-news/internal/storage/factory"
	"github.com/mohammed-danyal/brainrot-news/pkg/config/env"
	"github.com/mohammed-danyal/brainrot-news/pkg/logging"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type NewsAPIConfig struct {
	Server        *server.Config
	StorageConfig factory.StorageConfig
	Cache         cache.Config
	Source        source.Config
	// Enrich is nil when no Gemini key is configured; ingest then relies on the fallback stylizer.
	Enrich *enrich.Config
	Ingest ingest.Config
}

func (as *AppConfig) Load() (*NewsAPIConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/news_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}
	logging.Setup()

	serverCfg, err := server.LoadConfig()
	if err != nil {
		return nil, err
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	cacheCfg, err := cache.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}

	sourceCfg, err := source.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}

	enrichCfg, err := enrich.LoadConfigFromEnv()
	if err != nil {
		slog.Warn("Enrichment disabled, headlines will use the fallback stylizer", "reason", err)
		enrichCfg = nil
	}

	ingestCfg, err := ingest.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}

	return &NewsAPIConfig{
		Server:        serverCfg,
		StorageConfig: *storageCfg,
		Cache:         cacheCfg,
		Source:        *sourceCfg,
		Enrich:        enrichCfg,
		Ingest:        *ingestCfg,
	}, nil
}
