package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/repository"
)

type statsCache struct {
	client *redislib.Client
	key    string
	ttl    time.Duration
}

// NewStatsCache creates a Redis-backed TTL cache for the stats snapshot.
func NewStatsCache(client *redislib.Client, ttl time.Duration) repository.StatsCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &statsCache{
		client: client,
		key:    "stats:resumen",
		ttl:    ttl,
	}
}

func (c *statsCache) Get(ctx context.Context) (*domain.Estadisticas, error) {
	result, err := c.client.Get(ctx, c.key).Result()
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return nil, domain.ErrStatsNotCached
		}
		return nil, err
	}

	var stats domain.Estadisticas
	if err := json.Unmarshal([]byte(result), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *statsCache) Set(ctx context.Context, stats *domain.Estadisticas) error {
	if stats == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, payload, c.ttl).Err()
}
