package enrich

import (
	"errors"
	"os"
)

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

func LoadConfigFromEnv() (*Config, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY environment variable not set")
	}

	return &Config{
		APIKey:  apiKey,
		Model:   os.Getenv("GEMINI_MODEL"),
		BaseURL: os.Getenv("GEMINI_BASE_URL"),
	}, nil
}

// NewFromConfig wires the Gemini client into an Enricher with the default retry budget.
func NewFromConfig(cfg Config) (*Enricher, error) {
	client, err := NewGeminiClient(cfg.APIKey,
		WithGeminiModel(cfg.Model),
		WithGeminiBaseURL(cfg.BaseURL),
	)
	if err != nil {
		return nil, err
	}
	return NewEnricher(client), nil
}
