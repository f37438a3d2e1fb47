package sequence

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Per-day keys only need to outlive the day they count.
const counterTTL = 48 * time.Hour

type RedisCounter struct {
	client *redis.Client
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

func (r *RedisCounter) Incr(ctx context.Context, key string) (int64, error) {
	n, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}

	if n == 1 {
		r.client.Expire(ctx, key, counterTTL)
	}

	return n, nil
}

var _ CounterStore = (*RedisCounter)(nil)
