package announcement

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisGuard claims a trigger minute with SETNX.
type RedisGuard struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisGuard(client *redis.Client) *RedisGuard {
	return &RedisGuard{client: client, prefix: "rental:announcement:", ttl: 2 * time.Minute}
}

func (g *RedisGuard) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.prefix+key, time.Now().Unix(), g.ttl).Result()

	if err != nil {
		return false, fmt.Errorf("failed to claim announcement minute %v: %w", key, err)
	}

	return ok, nil
}

type LocalGuard struct{}

func (LocalGuard) Acquire(context.Context, string) (bool, error) {
	return true, nil
}
