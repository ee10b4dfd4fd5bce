package configuration

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	MaxRetries = 5
	RetryDelay = 5 * time.Second
)

// InitRedis connects to redis, retrying while the server comes up.
func InitRedis(ctx context.Context, cfg Config) (*redis.Client, error) {
	var err error
	for i := 0; i < MaxRetries; i++ {
		client := redis.NewClient(&redis.Options{
			Network:  "tcp",
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		_, err = client.Ping(ctx).Result()
		if err == nil {
			return client, nil
		}
		_ = client.Close()

		log.Printf("Failed to connect to Redis (Attempt %d/%d): %s\n", i+1, MaxRetries, err.Error())
		if i == MaxRetries-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(RetryDelay):
		}
	}
	return nil, fmt.Errorf("failed to connect to redis after %d attempts: %w", MaxRetries, err)
}
