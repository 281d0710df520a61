package ingest

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPipeline struct {
	runs    atomic.Int32
	running atomic.Int32
	maxPar  atomic.Int32
	block   chan struct{}
	// cleanup delays the return after cancellation.
	cleanup time.Duration
}

func (p *countingPipeline) Run(ctx context.Context) error {
	n := p.running.Add(1)
	defer p.running.Add(-1)
	if n > p.maxPar.Load() {
		p.maxPar.Store(n)
	}
	p.runs.Add(1)

	if p.block != nil {
		select {
		case <-p.block:
		case <-ctx.Done():
			time.Sleep(p.cleanup)
			return ctx.Err()
		}
	}
	return nil
}

func TestNewScheduler_InvalidSchedule(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Schedule = "not a schedule"

	_, err := NewScheduler(&countingPipeline{}, cfg)
	assert.Error(t, err)
}

func TestScheduler_RunsOnStart(t *testing.T) {
	p := &countingPipeline{}
	cfg := DefaultConfig()
	cfg.RunOnStart = true

	s, err := NewScheduler(p, cfg)
	require.NoError(t, err)

	s.Start(context.Background())
	defer s.Stop()

	assert.Eventually(t, func() bool { return p.runs.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_NoRunOnStartWhenDisabled(t *testing.T) {
	p := &countingPipeline{}
	cfg := DefaultConfig()
	cfg.RunOnStart = false

	s, err := NewScheduler(p, cfg)
	require.NoError(t, err)

	s.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	assert.Equal(t, int32(0), p.runs.Load())
}

func TestScheduler_SkipsOverlappingRuns(t *testing.T) {
	p := &countingPipeline{block: make(chan struct{})}
	cfg := DefaultConfig()
	cfg.Schedule = "@every 1s"
	cfg.RunOnStart = true

	s, err := NewScheduler(p, cfg)
	require.NoError(t, err)

	s.Start(context.Background())
	require.Eventually(t, func() bool { return p.runs.Load() == 1 }, time.Second, 5*time.Millisecond)

	// the cron tick fires while the first run is still blocked
	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, int32(1), p.runs.Load())
	assert.Equal(t, int32(1), p.maxPar.Load())

	close(p.block)
	s.Stop()
}

func TestScheduler_StopWaitsForRunningCycle(t *testing.T) {
	p := &countingPipeline{block: make(chan struct{}), cleanup: 100 * time.Millisecond}
	cfg := DefaultConfig()
	cfg.RunOnStart = true

	s, err := NewScheduler(p, cfg)
	require.NoError(t, err)

	s.Start(context.Background())
	require.Eventually(t, func() bool { return p.running.Load() == 1 }, time.Second, 5*time.Millisecond)

	s.Stop()
	assert.Equal(t, int32(0), p.running.Load())
}
