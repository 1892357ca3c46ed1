// Package cache provides Redis caching utilities for the application.
package cache

import (
	"context"
	"time"

	"nutriplan/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// Client is the global Redis client; nil when Redis is unavailable.
var Client *redis.Client

// InitRedis connects to Redis at addr. The application runs without a
// cache (and with fail-open rate limiting) if the connection fails.
func InitRedis(addr string) {
	Client = redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn("Redis connection failed, continuing without cache", "error", err.Error())
		Client = nil
	} else {
		middleware.Logger.Info("Redis connected successfully")
	}
}

// GetClient returns the global Redis client (nil when unavailable).
func GetClient() *redis.Client {
	return Client
}
