package enrich

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	i := f.calls
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return "", errors.New("no scripted response")
}

const validResponse = `{"genZTitle":"Markets said bye fr","summary":"Stocks took an L today. Bestie it was rough."}`

func TestEnricher_Rewrite_Success(t *testing.T) {
	gen := &fakeGenerator{responses: []string{validResponse}}
	e := NewEnricher(gen, WithBackoff(0))

	got, err := e.Rewrite(context.Background(), "Markets fall sharply")
	require.NoError(t, err)
	assert.Equal(t, "Markets said bye fr", got.Title)
	assert.Equal(t, "Stocks took an L today. Bestie it was rough.", got.Summary)
	assert.Equal(t, 1, gen.calls)
	assert.Contains(t, gen.prompts[0], `Headline: "Markets fall sharply"`)
}

func TestEnricher_Rewrite_RetriesTransientOnce(t *testing.T) {
	gen := &fakeGenerator{
		errs:      []error{NewTransientError(errors.New("timeout")), nil},
		responses: []string{"", validResponse},
	}
	e := NewEnricher(gen, WithBackoff(time.Millisecond))

	got, err := e.Rewrite(context.Background(), "headline")
	require.NoError(t, err)
	assert.Equal(t, "Markets said bye fr", got.Title)
	assert.Equal(t, 2, gen.calls)
}

func TestEnricher_Rewrite_RetryBudgetExhausted(t *testing.T) {
	transient := NewTransientError(errors.New("503"))
	gen := &fakeGenerator{errs: []error{transient, transient, transient}}
	e := NewEnricher(gen, WithBackoff(0))

	_, err := e.Rewrite(context.Background(), "headline")
	require.Error(t, err)
	assert.True(t, IsTransient(err))
	assert.Equal(t, 2, gen.calls)
}

func TestEnricher_Rewrite_NoRetryOnPermanentError(t *testing.T) {
	gen := &fakeGenerator{errs: []error{errors.New("400 bad request")}}
	e := NewEnricher(gen, WithBackoff(0))

	_, err := e.Rewrite(context.Background(), "headline")
	require.Error(t, err)
	assert.Equal(t, 1, gen.calls)
}

func TestEnricher_Rewrite_NoRetryOnMalformedOutput(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"lol no json here"}}
	e := NewEnricher(gen, WithBackoff(0))

	_, err := e.Rewrite(context.Background(), "headline")
	assert.ErrorIs(t, err, ErrNoJSON)
	assert.Equal(t, 1, gen.calls)
}

func TestEnricher_Rewrite_ContextCancelledDuringBackoff(t *testing.T) {
	gen := &fakeGenerator{errs: []error{NewTransientError(errors.New("timeout"))}}
	e := NewEnricher(gen, WithBackoff(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Rewrite(ctx, "headline")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, gen.calls)
}

func TestParseRewrite(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{name: "valid", text: validResponse},
		{name: "no json", text: "nope", wantErr: ErrNoJSON},
		{name: "missing summary", text: `{"genZTitle":"x"}`, wantErr: ErrMissingFields},
		{name: "missing title", text: `{"summary":"x"}`, wantErr: ErrMissingFields},
		{name: "empty title", text: `{"genZTitle":"  ","summary":"x"}`, wantErr: ErrMissingFields},
		{name: "null summary", text: `{"genZTitle":"x","summary":null}`, wantErr: ErrMissingFields},
		{name: "trailing prose with braces", text: `{"genZTitle":"x","summary":"y"} note {z}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRewrite(tt.text)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseRewrite_WrongFieldType(t *testing.T) {
	_, err := ParseRewrite(`{"genZTitle": 42, "summary": "x"}`)
	assert.Error(t, err)
}
