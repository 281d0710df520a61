package source

import (
	"errors"
	"os"
)

type Config struct {
	APIKey   string
	BaseURL  string
	Country  string
	Language string
}

func LoadConfigFromEnv() (*Config, error) {
	apiKey := os.Getenv("NEWSDATA_API_KEY")
	if apiKey == "" {
		return nil, errors.New("NEWSDATA_API_KEY environment variable not set")
	}

	return &Config{
		APIKey:   apiKey,
		BaseURL:  os.Getenv("NEWSDATA_BASE_URL"),
		Country:  os.Getenv("NEWS_COUNTRY"),
		Language: os.Getenv("NEWS_LANGUAGE"),
	}, nil
}

func NewFromConfig(cfg Config) (*NewsDataClient, error) {
	return NewNewsDataClient(cfg.APIKey,
		WithBaseURL(cfg.BaseURL),
		WithRegion(cfg.Country, cfg.Language),
	)
}
