package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"bookwell/config"
)

var (
	// SuggestionCacheClient holds short-lived suggestion sessions so a
	// confirm call can reference a previously proposed candidate.
	SuggestionCacheClient *redis.Client
	// AuthCacheClient is the dedicated client for revoked-token caching.
	AuthCacheClient *redis.Client
)

// InitSuggestionCache initializes the Redis client for suggestion sessions.
func InitSuggestionCache() {
	SuggestionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SuggestionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (suggestion cache): %v", err)
	}
}

// GetSuggestionCacheClient returns the suggestion-session cache client.
func GetSuggestionCacheClient() *redis.Client {
	if SuggestionCacheClient == nil {
		InitSuggestionCache()
	}
	return SuggestionCacheClient
}

// InitAuthCache initializes the Redis client for revoked-token caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (auth cache): %v", err)
	}
}

// GetAuthCacheClient returns the revoked-token cache client.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}
