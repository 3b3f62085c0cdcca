// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"rootsdental/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the Redis client used for availability response caching.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client. Unlike the calendar
// connection, Redis is not required for correct operation: on failure the
// client is left nil and handlers fall back to uncached upstream queries.
func InitCache() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("Failed to connect to Redis (Cache), continuing without cache: %v", err)
		return
	}
	CacheClient = client
}

// GetCacheClient returns the cache client, or nil when caching is disabled.
func GetCacheClient() *redis.Client {
	return CacheClient
}
