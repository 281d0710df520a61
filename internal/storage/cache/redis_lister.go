// Package cache provides a Redis read-through cache in front of the feed store.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mohammed-danyal/brainrot-news/internal/domain"
	"github.com/mohammed-danyal/brainrot-news/internal/storage"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL = 30 * time.Second
	keyPrefix  = "brainrot:feed:latest:"
	genKey     = "brainrot:feed:generation"
)

// RedisLister serves Latest from Redis when possible. Any cache failure
// degrades to a direct read from the wrapped lister.
//
// Pages are keyed by a generation counter that Invalidate bumps. A read that
// loaded from the store before an invalidation writes under the old
// generation, where no later read looks.
type RedisLister struct {
	client *redis.Client
	next   storage.Lister
	ttl    time.Duration
}

var _ storage.Lister = (*RedisLister)(nil)

func NewRedisLister(client *redis.Client, next storage.Lister, ttl time.Duration) *RedisLister {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisLister{client: client, next: next, ttl: ttl}
}

func (l *RedisLister) Latest(ctx context.Context, limit int) ([]domain.Article, error) {
	gen, err := l.generation(ctx)
	if err != nil {
		slog.Warn("Feed cache unavailable, reading from store", "error", err)
		return l.next.Latest(ctx, limit)
	}
	key := cacheKey(gen, limit)

	raw, err := l.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var articles []domain.Article
		if err := json.Unmarshal(raw, &articles); err == nil {
			return articles, nil
		}
		slog.Warn("Discarding unreadable feed cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		slog.Warn("Feed cache read failed, reading from store", "error", err)
	}

	articles, err := l.next.Latest(ctx, limit)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(articles)
	if err != nil {
		return articles, nil
	}
	if err := l.client.Set(ctx, key, payload, l.ttl).Err(); err != nil {
		slog.Warn("Feed cache write failed", "error", err)
	}

	return articles, nil
}

// Invalidate starts a new generation and drops every cached feed page.
func (l *RedisLister) Invalidate(ctx context.Context) error {
	if err := l.client.Incr(ctx, genKey).Err(); err != nil {
		return fmt.Errorf("bump feed cache generation: %w", err)
	}

	iter := l.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan feed cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := l.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete feed cache keys: %w", err)
	}
	return nil
}

func (l *RedisLister) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

func (l *RedisLister) Close() error {
	return l.client.Close()
}

func (l *RedisLister) generation(ctx context.Context) (int64, error) {
	gen, err := l.client.Get(ctx, genKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func cacheKey(gen int64, limit int) string {
	return fmt.Sprintf("%s%d:%d", keyPrefix, gen, limit)
}
