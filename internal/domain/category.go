package domain

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryTechnology Category = "technology"
	CategorySports     Category = "sports"
	CategoryBusiness   Category = "business"
	CategoryIndia      Category = "india"
	CategoryWorld      Category = "world"
)

// DefaultCategories is the ingest order used when no categories file is configured.
var DefaultCategories = []Category{
	CategoryTechnology,
	CategorySports,
	CategoryBusiness,
	CategoryIndia,
	CategoryWorld,
}

// IsRegional reports whether the category is expressed as a country filter
// rather than an upstream topic.
func (c Category) IsRegional() bool {
	return c == CategoryIndia
}

func (c Category) Valid() bool {
	for _, known := range DefaultCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory normalizes case and whitespace and rejects unknown values.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q, expected one of %v", s, DefaultCategories)
	}
	return c, nil
}
