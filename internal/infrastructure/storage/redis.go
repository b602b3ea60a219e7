package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopstream/storefront/internal/core/ports"
)

const redisConnectTimeout = 5 * time.Second

// RedisConfig captures the settings for establishing a Redis connection.
type RedisConfig struct {
	Addr   string
	DB     int
	Prefix string
}

// Redis stores each state key under "<prefix>:<key>". Values never
// expire; logout and cart clears delete them explicitly.
type Redis struct {
	client *redis.Client
	prefix string
}

var _ ports.Storage = (*Redis)(nil)

// NewRedis initialises a Redis client and validates connectivity with a
// ping before returning the storage.
func NewRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Redis{client: client, prefix: cfg.Prefix}, nil
}

func (r *Redis) Get(key string) ([]byte, error) {
	raw, err := r.client.Get(context.Background(), r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ports.ErrKeyNotFound
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return raw, nil
}

func (r *Redis) Set(key string, value []byte) error {
	if err := r.client.Set(context.Background(), r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *Redis) Delete(key string) error {
	if err := r.client.Del(context.Background(), r.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Close releases the underlying connection.
func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) key(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + ":" + key
}
