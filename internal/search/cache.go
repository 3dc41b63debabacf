package search

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"gymbook/internal/gym"
	"gymbook/internal/logger"

	"github.com/redis/go-redis/v9"
)

// GymCache keeps recently scanned gym rows per normalized location query.
// Only gym identity fields are cached; they are immutable after registration,
// so a stale entry can never misreport availability. Slot availability is
// always read fresh from the store.
type GymCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewGymCache(client *redis.Client, ttl time.Duration) *GymCache {
	return &GymCache{
		client: client,
		ttl:    ttl,
	}
}

func cacheKey(location string) string {
	return "search:gyms:" + strings.ToLower(strings.TrimSpace(location))
}

func (c *GymCache) Get(ctx context.Context, location string) ([]gym.Gym, bool) {
	data, err := c.client.Get(ctx, cacheKey(location)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warnf("Search cache read failed: %v", err)
		}
		return nil, false
	}

	var gyms []gym.Gym
	if err := json.Unmarshal(data, &gyms); err != nil {
		logger.Warnf("Search cache entry corrupt, dropping: %v", err)
		c.client.Del(ctx, cacheKey(location))
		return nil, false
	}

	return gyms, true
}

func (c *GymCache) Set(ctx context.Context, location string, gyms []gym.Gym) {
	data, err := json.Marshal(gyms)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, cacheKey(location), data, c.ttl).Err(); err != nil {
		logger.Warnf("Search cache write failed: %v", err)
	}
}
