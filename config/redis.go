package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis wires the shared Redis client from REDIS_URL. Unlike the
// stores it backs, a missing or unreachable Redis is not fatal: the caller
// falls back to the file store, so this returns an error instead of
// panicking.
func ConnectRedis() error {
	// read Redis URL
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		// Default to local Redis for development
		redisURL = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, trying local Redis:", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)

	// test connection; don't hang startup on an unreachable Redis
	ctx, cancel := WithCustomTimeout(5 * time.Second)
	defer cancel()
	res, err := client.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	RedisClient = client
	log.Println("✅ Connected to Redis:", res)
	return nil
}
