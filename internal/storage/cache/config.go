package cache

import (
	"fmt"
	"os"
	"time"

	"github.com/mohammed-danyal/brainrot-news/pkg/config/env"
	"github.com/redis/go-redis/v9"
)

type Config struct {
	URL string
	TTL time.Duration
}

// Enabled reports whether a Redis URL was configured.
func (c Config) Enabled() bool {
	return c.URL != ""
}

func LoadConfigFromEnv() (Config, error) {
	ttl, err := env.Duration("FEED_CACHE_TTL", DefaultTTL)
	if err != nil {
		return Config{}, err
	}

	return Config{
		URL: os.Getenv("REDIS_URL"),
		TTL: ttl,
	}, nil
}

func NewClient(cfg Config) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	return redis.NewClient(opts), nil
}
