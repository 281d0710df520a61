package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

const (
	DefaultRetries = 1
	DefaultBackoff = 2 * time.Second
)

const promptTemplate = `
You are a JSON API.

STRICT RULES:
- Output VALID JSON ONLY
- No markdown
- No emojis
- No extra text

Schema:
{
  "genZTitle": string,
  "summary": string
}

Headline: %q

Rewrite the headline in viral Gen Z slang (short & punchy).
Summarize the news in a funny Gen Z paragraph (3-4 sentences).
`

// Rewrite is the stylized version of a headline.
type Rewrite struct {
	Title   string
	Summary string
}

type rewritePayload struct {
	Title   *string `json:"genZTitle"`
	Summary *string `json:"summary"`
}

type Enricher struct {
	gen     TextGenerator
	retries int
	backoff time.Duration
}

type EnricherOption func(*Enricher)

// WithRetries sets how many extra attempts follow a transient failure.
func WithRetries(n int) EnricherOption {
	return func(e *Enricher) {
		if n >= 0 {
			e.retries = n
		}
	}
}

func WithBackoff(d time.Duration) EnricherOption {
	return func(e *Enricher) {
		e.backoff = d
	}
}

func NewEnricher(gen TextGenerator, opts ...EnricherOption) *Enricher {
	e := &Enricher{
		gen:     gen,
		retries: DefaultRetries,
		backoff: DefaultBackoff,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rewrite asks the model for a stylized title and summary. Malformed output
// is returned as an error and is never retried.
func (e *Enricher) Rewrite(ctx context.Context, headline string) (Rewrite, error) {
	text, err := e.generate(ctx, fmt.Sprintf(promptTemplate, headline))
	if err != nil {
		return Rewrite{}, err
	}
	return ParseRewrite(text)
}

func (e *Enricher) generate(ctx context.Context, prompt string) (string, error) {
	for remaining := e.retries; ; remaining-- {
		text, err := e.gen.Generate(ctx, prompt)
		if err == nil {
			return text, nil
		}
		if !IsTransient(err) || remaining <= 0 {
			return "", err
		}

		slog.Info("Retrying enrichment call", "error", err, "backoff", e.backoff)
		timer := time.NewTimer(e.backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	}
}

// ParseRewrite extracts and validates the structured block of a model response.
func ParseRewrite(text string) (Rewrite, error) {
	raw := ExtractJSON(text)
	if raw == "" {
		return Rewrite{}, ErrNoJSON
	}

	var payload rewritePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return Rewrite{}, fmt.Errorf("invalid json in response: %w", err)
	}

	if payload.Title == nil || payload.Summary == nil {
		return Rewrite{}, ErrMissingFields
	}

	title, summary := strings.TrimSpace(*payload.Title), strings.TrimSpace(*payload.Summary)
	if title == "" || summary == "" {
		return Rewrite{}, ErrMissingFields
	}

	return Rewrite{Title: title, Summary: summary}, nil
}
