// Package main Brainrot News API
// @title Brainrot News API
// @version 1.0
// @description Latest news headlines rewritten in Gen Z slang
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	_ "github.com/mohammed-danyal/brainrot-news/docs"
	"github.com/mohammed-danyal/brainrot-news/internal/enrich"
	"github.com/mohammed-danyal/brainrot-news/internal/feed"
	"github.com/mohammed-danyal/brainrot-news/internal/ingest"
	"github.com/mohammed-danyal/brainrot-news/internal/router"
	"github.com/mohammed-danyal/brainrot-news/internal/server"
	"github.com/mohammed-danyal/brainrot-news/internal/source"
	"github.com/mohammed-danyal/brainrot-news/internal/storage"
	"github.com/mohammed-danyal/brainrot-news/internal/storage/cache"
	"github.com/mohammed-danyal/brainrot-news/internal/storage/factory"
	pkgserver "github.com/mohammed-danyal/brainrot-news/pkg/server"
)

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	store, closeStore, err := factory.NewStore(context.Background(), cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to connect to storage", "type", cfg.StorageConfig.Type, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	var healthChecker pkgserver.HealthChecker = pkgserver.NewOkHealthChecker()
	if p, ok := store.(pkgserver.Pinger); ok {
		healthChecker = pkgserver.NewPingHealthChecker(p)
	}

	s := server.New(cfg.Server, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupMetrics("/metrics").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Brainrot News API is running")
	})

	var lister storage.Lister = store
	var pipelineOpts []ingest.NewsPipelineOption
	if cfg.Cache.Enabled() {
		client, err := cache.NewClient(cfg.Cache)
		if err != nil {
			slog.Error("Failed to create feed cache client", "error", err)
			os.Exit(1)
		}
		cached := cache.NewRedisLister(client, store, cfg.Cache.TTL)
		defer cached.Close()

		lister = cached
		pipelineOpts = append(pipelineOpts, ingest.WithInvalidator(cached))
		slog.Info("Feed cache enabled", "ttl", cfg.Cache.TTL)
	}

	router.NewNewsRouter(s.Echo, feed.NewService(lister)).Bind()

	src, err := source.NewFromConfig(cfg.Source)
	if err != nil {
		slog.Error("Failed to create news source", "error", err)
		os.Exit(1)
	}

	var enricher ingest.Enricher
	if cfg.Enrich != nil {
		e, err := enrich.NewFromConfig(*cfg.Enrich)
		if err != nil {
			slog.Error("Failed to create enricher", "error", err)
			os.Exit(1)
		}
		enricher = e
	}

	pipeline := ingest.NewNewsPipeline(cfg.Ingest, src, store, enricher, pipelineOpts...)
	scheduler, err := ingest.NewScheduler(pipeline, cfg.Ingest)
	if err != nil {
		slog.Error("Failed to create ingest scheduler", "error", err)
		os.Exit(1)
	}
	scheduler.Start(s.Context())

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	scheduler.Stop()
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
