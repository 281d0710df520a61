package ingest

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mohammed-danyal/brainrot-news/internal/domain"
	"github.com/mohammed-danyal/brainrot-news/pkg/config/env"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxPerCategory = 2
	DefaultCooldown       = 10 * time.Second
	DefaultSchedule       = "@every 1h"
)

type Config struct {
	Categories     []domain.Category
	MaxPerCategory int
	Cooldown       time.Duration
	Schedule       string
	RunOnStart     bool
}

func DefaultConfig() Config {
	return Config{
		Categories:     append([]domain.Category(nil), domain.DefaultCategories...),
		MaxPerCategory: DefaultMaxPerCategory,
		Cooldown:       DefaultCooldown,
		Schedule:       DefaultSchedule,
		RunOnStart:     true,
	}
}

func (c Config) Validate() error {
	if len(c.Categories) == 0 {
		return errors.New("at least one category is required")
	}
	for _, cat := range c.Categories {
		if !cat.Valid() {
			return fmt.Errorf("unknown category %q", cat)
		}
	}
	if c.MaxPerCategory < 1 {
		return fmt.Errorf("max per category must be positive, got %d", c.MaxPerCategory)
	}
	if c.Cooldown < 0 {
		return fmt.Errorf("cooldown must not be negative, got %s", c.Cooldown)
	}
	return nil
}

// LoadConfigFromEnv starts from DefaultConfig, applies INGEST_CATEGORIES_FILE
// and then the individual INGEST_* overrides.
func LoadConfigFromEnv() (*Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv("INGEST_CATEGORIES_FILE"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open categories file: %w", err)
		}
		defer f.Close()

		if err := NewYAMLConfigLoader(f).Apply(&cfg); err != nil {
			return nil, fmt.Errorf("load categories file %s: %w", path, err)
		}
		slog.Info("Loaded ingest categories", "path", path, "categories", cfg.Categories)
	}

	var err error
	if cfg.MaxPerCategory, err = env.Int("INGEST_MAX_PER_CATEGORY", cfg.MaxPerCategory); err != nil {
		return nil, err
	}
	if cfg.Cooldown, err = env.Duration("INGEST_COOLDOWN", cfg.Cooldown); err != nil {
		return nil, err
	}
	if cfg.RunOnStart, err = env.Bool("INGEST_ON_START", cfg.RunOnStart); err != nil {
		return nil, err
	}
	cfg.Schedule = env.String("INGEST_SCHEDULE", cfg.Schedule)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type yamlConfig struct {
	Categories     []string `yaml:"categories"`
	MaxPerCategory *int     `yaml:"max_per_category"`
	Cooldown       string   `yaml:"cooldown"`
	Schedule       string   `yaml:"schedule"`
}

type YAMLConfigLoader struct {
	reader io.Reader
}

func NewYAMLConfigLoader(reader io.Reader) *YAMLConfigLoader {
	return &YAMLConfigLoader{
		reader: reader,
	}
}

// Apply overlays the fields present in the document onto cfg.
func (cl *YAMLConfigLoader) Apply(cfg *Config) error {
	decoder := yaml.NewDecoder(cl.reader)
	var doc yamlConfig
	if err := decoder.Decode(&doc); err != nil {
		return err
	}

	if len(doc.Categories) > 0 {
		categories := make([]domain.Category, 0, len(doc.Categories))
		for _, raw := range doc.Categories {
			c, err := domain.ParseCategory(raw)
			if err != nil {
				return err
			}
			categories = append(categories, c)
		}
		cfg.Categories = categories
	}
	if doc.MaxPerCategory != nil {
		cfg.MaxPerCategory = *doc.MaxPerCategory
	}
	if doc.Cooldown != "" {
		d, err := time.ParseDuration(doc.Cooldown)
		if err != nil {
			return fmt.Errorf("invalid cooldown: %w", err)
		}
		cfg.Cooldown = d
	}
	if doc.Schedule != "" {
		cfg.Schedule = doc.Schedule
	}
	return nil
}
