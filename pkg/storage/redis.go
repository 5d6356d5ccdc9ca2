package storage

import (
	"context"
	stderrors "errors"

	"github.com/redis/go-redis/v9"
)

// RedisConfig configures a Redis store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string // prepended to every key, e.g. "cardgraph:"
}

// Redis is a [Storage] backed by a Redis server.
type Redis struct {
	client *redis.Client
	prefix string
}

// OpenRedis connects to Redis and verifies the connection with PING,
// retrying transient failures.
func OpenRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	err := retryWithBackoff(ctx, func() error {
		return retryable(client.Ping(ctx).Err())
	})
	if err != nil {
		_ = client.Close()
		return nil, storageErr(err, "connect redis %s", cfg.Addr)
	}
	return &Redis{client: client, prefix: cfg.Prefix}, nil
}

// Get retrieves a value.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, storageErr(err, "redis get %q", key)
	}
	return data, true, nil
}

// Set stores a value without expiry.
func (r *Redis) Set(ctx context.Context, key string, data []byte) error {
	if err := r.client.Set(ctx, r.prefix+key, data, 0).Err(); err != nil {
		return storageErr(err, "redis set %q", key)
	}
	return nil
}

// Delete removes a value.
func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return storageErr(err, "redis delete %q", key)
	}
	return nil
}

// Close closes the client.
func (r *Redis) Close() error { return r.client.Close() }

var _ Storage = (*Redis)(nil)
