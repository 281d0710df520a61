package ingest

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces out consecutive items to stay within upstream rate limits.
type Pacer interface {
	// Reset marks the start of a cycle. The next Wait blocks for a full
	// interval even if the pacer sat idle between cycles.
	Reset()
	Wait(ctx context.Context) error
}

// RatePacer is a token bucket with burst 1. Reset drains any token that
// accumulated while idle, so every Wait blocks until at least one interval
// has passed since the previous grant or reset.
type RatePacer struct {
	limiter *rate.Limiter
}

func NewRatePacer(interval time.Duration) Pacer {
	if interval <= 0 {
		return NoopPacer{}
	}
	p := &RatePacer{limiter: rate.NewLimiter(rate.Every(interval), 1)}
	p.Reset()
	return p
}

func (p *RatePacer) Reset() {
	p.limiter.Allow()
}

func (p *RatePacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

type NoopPacer struct{}

func (NoopPacer) Reset() {}

func (NoopPacer) Wait(ctx context.Context) error {
	return ctx.Err()
}
