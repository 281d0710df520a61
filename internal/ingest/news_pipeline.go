package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mohammed-danyal/brainrot-news/internal/domain"
	"github.com/mohammed-danyal/brainrot-news/internal/enrich"
	"github.com/mohammed-danyal/brainrot-news/internal/metrics"
	"github.com/mohammed-danyal/brainrot-news/internal/source"
	"github.com/mohammed-danyal/brainrot-news/internal/storage"
	"github.com/mohammed-danyal/brainrot-news/internal/stylize"
)

// DefaultFallbackSummary is stylized into the summary of articles whose
// enrichment failed.
const DefaultFallbackSummary = "This story just dropped and bestie, people are talking."

var errEnrichmentDisabled = errors.New("enrichment disabled")

type Enricher interface {
	Rewrite(ctx context.Context, headline string) (enrich.Rewrite, error)
}

type Stylizer interface {
	Stylize(text string) string
}

// Invalidator is notified after every insert so read caches can drop stale feeds.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

type NewsPipeline struct {
	cfg         Config
	source      source.Source
	store       storage.Store
	enricher    Enricher
	stylizer    Stylizer
	pacer       Pacer
	invalidator Invalidator
	now         func() time.Time
}

var _ Pipeline = (*NewsPipeline)(nil)

type NewsPipelineOption func(*NewsPipeline)

func WithStylizer(s Stylizer) NewsPipelineOption {
	return func(p *NewsPipeline) {
		p.stylizer = s
	}
}

func WithPacer(pacer Pacer) NewsPipelineOption {
	return func(p *NewsPipeline) {
		p.pacer = pacer
	}
}

func WithInvalidator(inv Invalidator) NewsPipelineOption {
	return func(p *NewsPipeline) {
		p.invalidator = inv
	}
}

func WithClock(now func() time.Time) NewsPipelineOption {
	return func(p *NewsPipeline) {
		p.now = now
	}
}

func NewNewsPipeline(cfg Config, src source.Source, store storage.Store, enricher Enricher, opts ...NewsPipelineOption) *NewsPipeline {
	p := &NewsPipeline{
		cfg:      cfg,
		source:   src,
		store:    store,
		enricher: enricher,
		stylizer: stylize.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.pacer == nil {
		p.pacer = NewRatePacer(cfg.Cooldown)
	}

	return p
}

func (p *NewsPipeline) Run(ctx context.Context) error {
	_, err := p.RunCycle(ctx)
	return err
}

// RunCycle processes every configured category once. Source and enrichment
// failures are absorbed; a storage failure ends the cycle and is returned.
func (p *NewsPipeline) RunCycle(ctx context.Context) (Report, error) {
	start := time.Now()
	slog.Info("News pipeline cycle started", "categories", len(p.cfg.Categories))

	p.pacer.Reset()

	var report Report
	for _, category := range p.cfg.Categories {
		catReport, err := p.processCategory(ctx, category)
		report.add(catReport)
		if err != nil {
			duration := time.Since(start)
			metrics.RecordCycle("failed", duration.Seconds())
			slog.Error("News pipeline cycle aborted", "category", category, "error", err, "duration", duration)
			return report, err
		}
	}

	duration := time.Since(start)
	metrics.RecordCycle("ok", duration.Seconds())
	slog.Info("News pipeline cycle completed",
		"duration", duration,
		"inserted", report.Inserted,
		"enriched", report.Enriched,
		"fallbacks", report.Fallbacks,
		"duplicates", report.Duplicates,
		"malformed", report.Malformed,
		"source_failures", report.SourceFailures,
	)
	return report, nil
}

func (p *NewsPipeline) processCategory(ctx context.Context, category domain.Category) (Report, error) {
	var report Report
	log := slog.With("category", category)

	candidates, err := p.source.Latest(ctx, category)
	if err != nil {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		log.Warn("Source fetch failed, skipping category", "error", err)
		metrics.RecordSourceFailure(string(category))
		report.SourceFailures++
		return report, nil
	}

	if len(candidates) > p.cfg.MaxPerCategory {
		candidates = candidates[:p.cfg.MaxPerCategory]
	}

	rank := 0
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if !c.Usable() {
			log.Debug("Skipping candidate without link or title")
			metrics.RecordSkipped(string(category), "malformed")
			report.Malformed++
			continue
		}

		exists, err := p.store.Exists(ctx, c.Link)
		if err != nil {
			return report, fmt.Errorf("dedup check %s: %w", c.Link, err)
		}
		if exists {
			log.Debug("Duplicate skipped", "source_url", c.Link)
			metrics.RecordSkipped(string(category), "duplicate")
			report.Duplicates++
			continue
		}

		article, enriched := p.buildArticle(ctx, category, c, rank)
		if err := ctx.Err(); err != nil {
			return report, err
		}

		id, err := p.store.Insert(ctx, article)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				log.Info("Duplicate rejected by store", "source_url", c.Link)
				metrics.RecordSkipped(string(category), "duplicate")
				report.Duplicates++
				continue
			}
			return report, fmt.Errorf("persist article %s: %w", c.Link, err)
		}

		path := metrics.PathFallback
		if enriched {
			path = metrics.PathEnriched
			report.Enriched++
		} else {
			report.Fallbacks++
		}
		report.Inserted++
		rank++
		metrics.RecordIngested(string(category), string(article.Section), path)
		log.Info("Article saved", "id", id, "section", article.Section, "path", path)

		if p.invalidator != nil {
			if err := p.invalidator.Invalidate(ctx); err != nil {
				log.Warn("Feed cache invalidation failed", "error", err)
			}
		}

		if err := p.pacer.Wait(ctx); err != nil {
			return report, err
		}
	}

	return report, nil
}

// buildArticle enriches the headline or falls back to local stylizing. The
// boolean reports whether enrichment succeeded.
func (p *NewsPipeline) buildArticle(ctx context.Context, category domain.Category, c source.Candidate, rank int) (domain.Article, bool) {
	article := domain.Article{
		Category:    category,
		Section:     domain.SectionForRank(rank),
		ImageURL:    domain.ImageOrPlaceholder(c.ImageURL, category),
		SourceURL:   c.Link,
		PublishedAt: c.PublishedAt,
		CreatedAt:   p.now().UTC(),
	}

	rewrite, err := enrich.Rewrite{}, errEnrichmentDisabled
	if p.enricher != nil {
		rewrite, err = p.enricher.Rewrite(ctx, c.Title)
	}
	if err == nil {
		article.Title = rewrite.Title
		article.Summary = rewrite.Summary
		return article, true
	}

	slog.Warn("Enrichment failed, using fallback stylizer", "category", category, "source_url", c.Link, "error", err)
	metrics.RecordEnrichmentFailure(string(category))
	article.Title = p.stylizer.Stylize(c.Title)
	article.Summary = p.stylizer.Stylize(DefaultFallbackSummary)
	return article, false
}
