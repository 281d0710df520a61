package source

import (
	"context"
	"strings"
	"time"

	"github.com/mohammed-danyal/brainrot-news/internal/domain"
)

// Candidate is a raw upstream item before enrichment.
type Candidate struct {
	Title       string
	Link        string
	ImageURL    string
	PublishedAt *time.Time
}

// Usable reports whether the candidate carries the fields the pipeline needs.
func (c Candidate) Usable() bool {
	return strings.TrimSpace(c.Link) != "" && strings.TrimSpace(c.Title) != ""
}

type Source interface {
	// Latest returns the newest items for a category in upstream order.
	Latest(ctx context.Context, category domain.Category) ([]Candidate, error)
}
