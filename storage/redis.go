package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisKV stores values in a Redis server, without expiration.
type RedisKV struct {
	client *redis.Client
}

// OpenRedis connects to the server at url (redis://[:password@]host:port/db) and pings it.
func OpenRedis(ctx context.Context, url string) (*RedisKV, error) {
	if url == "" {
		return nil, fmt.Errorf("redis storage requires a url")
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("could not reach redis at %s: %w", opt.Addr, err)
	}
	return &RedisKV{client: client}, nil
}

func (kv *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := kv.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return v, err
}

func (kv *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	return kv.client.Set(ctx, key, value, 0).Err()
}

func (kv *RedisKV) Close() error { return kv.client.Close() }
