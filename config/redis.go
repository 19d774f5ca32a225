package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// NewRedisClient builds a client from REDIS_URL, falling back to REDIS_ADDR.
func NewRedisClient(cfg *Config) (*redis.Client, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return redis.NewClient(opt), nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	}), nil
}

// ConnectRedis sets RedisClient. The server keeps running without cache when
// redis is unreachable.
func ConnectRedis() {
	client, err := NewRedisClient(AppConfig)
	if err != nil {
		log.Println("Failed to parse Redis URL:", err)
		log.Println("Running without cache")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running without cache")
		client.Close()
		return
	}

	RedisClient = client
	log.Println("Redis connected")
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}
