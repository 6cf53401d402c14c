package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Repository holds short-lived dedupe keys.
type Repository interface {
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}

type redisRepo struct {
	client *goredis.Client
	prefix string
}

// NewRepository namespaces every key with prefix. A nil client treats every key as new.
func NewRepository(client *goredis.Client, prefix string) Repository {
	return &redisRepo{client: client, prefix: prefix}
}

func (r *redisRepo) key(k string) string {
	return r.prefix + k
}

// SetNX reports whether key was absent and is now claimed for ttl.
func (r *redisRepo) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	if r.client == nil {
		return true, nil
	}
	return r.client.SetNX(ctx, r.key(key), value, ttl).Result()
}

func (r *redisRepo) Delete(ctx context.Context, key string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, r.key(key)).Err()
}
