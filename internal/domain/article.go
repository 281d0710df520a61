package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PlaceholderImageBase renders a dark card with the category name as text.
const PlaceholderImageBase = "https://placehold.co/600x400/161b22/7ee787"

type Article struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	Category    Category   `json:"category"`
	Section     Section    `json:"section"`
	ImageURL    string     `json:"image_url"`
	SourceURL   string     `json:"source_url"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Section string

const (
	SectionTrending Section = "trending"
	SectionLatest   Section = "latest"
)

// SectionForRank tags the first accepted item of a category batch as trending.
func SectionForRank(rank int) Section {
	if rank == 0 {
		return SectionTrending
	}
	return SectionLatest
}

// PlaceholderImage returns the image used when the source item carries none.
func PlaceholderImage(category Category) string {
	return fmt.Sprintf("%s?text=%s", PlaceholderImageBase, url.QueryEscape(string(category)))
}

// ImageOrPlaceholder keeps a usable source image and falls back to the category placeholder.
func ImageOrPlaceholder(imageURL string, category Category) string {
	if strings.TrimSpace(imageURL) == "" {
		return PlaceholderImage(category)
	}
	return imageURL
}
