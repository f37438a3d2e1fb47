package db

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/TerraRicaResort/resort-booking/internal/config"
)

// NewRedis connects the per-day reservation counter backend. Redis is an
// optimization here, not a requirement: callers fall back to Postgres
// scans when it is unreachable, so a failed ping only warns.
func NewRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable at %s, formal-id counter will fall back to database scans: %v", cfg.RedisURL, err)
	}

	return client
}
