// Package stylize decorates plain text with a random slang prefix and suffix.
// It is the local fallback when headline enrichment is unavailable.
package stylize

import (
	"math/rand/v2"
	"sync"
)

var (
	DefaultPrefixes = []string{"POV: ", "Just in: ", "Y'all... ", "Oop- ", "Wait... "}
	DefaultSuffixes = []string{" 💀", " (Real)", " No Cap", " fr fr", " 💅", " It's giving drama"}
)

// Stylizer is safe for concurrent use.
type Stylizer struct {
	prefixes []string
	suffixes []string

	mu   sync.Mutex
	intn func(n int) int
}

type Option func(*Stylizer)

// WithRand makes selection reproducible for a seeded source.
func WithRand(r *rand.Rand) Option {
	return func(s *Stylizer) {
		s.intn = r.IntN
	}
}

// WithIntn replaces the random index picker, e.g. with a fixed choice in tests.
func WithIntn(intn func(n int) int) Option {
	return func(s *Stylizer) {
		s.intn = intn
	}
}

func WithPhrases(prefixes, suffixes []string) Option {
	return func(s *Stylizer) {
		if len(prefixes) > 0 {
			s.prefixes = prefixes
		}
		if len(suffixes) > 0 {
			s.suffixes = suffixes
		}
	}
}

func New(opts ...Option) *Stylizer {
	s := &Stylizer{
		prefixes: DefaultPrefixes,
		suffixes: DefaultSuffixes,
		intn:     rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stylize returns prefix + text + suffix. It never fails.
func (s *Stylizer) Stylize(text string) string {
	s.mu.Lock()
	prefix := s.prefixes[s.pick(len(s.prefixes))]
	suffix := s.suffixes[s.pick(len(s.suffixes))]
	s.mu.Unlock()

	return prefix + text + suffix
}

func (s *Stylizer) pick(n int) int {
	i := s.intn(n)
	if i < 0 || i >= n {
		return 0
	}
	return i
}
