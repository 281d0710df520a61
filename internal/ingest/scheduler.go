package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
)

// Scheduler runs a pipeline on a cron schedule. Overlapping runs are
// skipped, so at most one cycle is in flight per process.
type Scheduler struct {
	pipeline   Pipeline
	schedule   string
	runOnStart bool

	cron *cron.Cron
	job  cron.Job

	// tracks the run on start, which cron does not wait for
	wg sync.WaitGroup

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

func NewScheduler(p Pipeline, cfg Config) (*Scheduler, error) {
	logger := cron.PrintfLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelInfo))

	s := &Scheduler{
		pipeline:   p,
		schedule:   cfg.Schedule,
		runOnStart: cfg.RunOnStart,
		cron:       cron.New(cron.WithLogger(logger)),
	}

	schedule, err := cron.ParseStandard(cfg.Schedule)
	if err != nil {
		return nil, fmt.Errorf("invalid ingest schedule %q: %w", cfg.Schedule, err)
	}

	s.job = cron.NewChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)).
		Then(cron.FuncJob(s.runOnce))
	s.cron.Schedule(schedule, s.job)

	return s, nil
}

// Start begins scheduling. Cycles run with a context derived from ctx and
// are cancelled by Stop or when ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	slog.Info("Ingest scheduler started", "schedule", s.schedule, "run_on_start", s.runOnStart)
	if s.runOnStart {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.job.Run()
		}()
	}
	s.cron.Start()
}

// Stop cancels any running cycle and waits for it to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	<-s.cron.Stop().Done()
	s.wg.Wait()
	slog.Info("Ingest scheduler stopped")
}

func (s *Scheduler) runOnce() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()
	if ctx == nil || ctx.Err() != nil {
		return
	}

	if err := s.pipeline.Run(ctx); err != nil {
		slog.Error("Ingest cycle failed", "error", err)
	}
}
