package redisclient

import (
	"context"
	"fmt"

	"github.com/bsm/redislock"
	"github.com/muhammadheryan/fulfillment/cmd/config"
	"github.com/redis/go-redis/v9"
)

// New dials Redis and pings it within the configured dial timeout.
func New(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	c := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		PoolSize:    cfg.PoolSize,
		DialTimeout: cfg.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	if err := c.Ping(pingCtx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}
	return c, nil
}

// NewLocker returns a distributed lock client sharing c's pool, or nil without a client.
func NewLocker(c *redis.Client) *redislock.Client {
	if c == nil {
		return nil
	}
	return redislock.New(c)
}
