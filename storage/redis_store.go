package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists values in Redis. Values never expire; freshness is
// tracked by the callers themselves (the product cache keeps its own
// timestamp key).
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(key string) (string, error) {
	val, err := s.client.Get(context.Background(), key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return val, nil
}

func (s *RedisStore) Set(key, value string) error {
	return s.client.Set(context.Background(), key, value, 0).Err()
}

func (s *RedisStore) Remove(key string) error {
	return s.client.Del(context.Background(), key).Err()
}
