package config

import (
	"context"
	"os"
	"strconv"
	"time"
)

// GetEnv returns the value of key, or defaultValue when unset or empty.
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return fallback
}

// WithTimeout returns a context with a 10s timeout for request-scoped work.
func WithTimeout() (context.Context, context.CancelFunc) {
	return WithCustomTimeout(10 * time.Second)
}

// WithCustomTimeout is for work that needs a different bound than the
// request default, like the startup Redis ping.
func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}
