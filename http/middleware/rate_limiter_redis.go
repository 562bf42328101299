package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisLimiterPrefix = "waypoint:ratelimit:"

// A RedisLimiter counts requests per key in fixed windows stored in Redis,
// sharing limits across every process using the same Redis.
type RedisLimiter struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
}

var _ Limiter = new(RedisLimiter)

// NewRedisLimiter constructs a RedisLimiter allowing limit requests per window.
func NewRedisLimiter(client redis.Cmdable, limit int64, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: limit, window: window}
}

// Allow implements Limiter.
func (rl *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := time.Now().UnixNano() / int64(rl.window)
	k := fmt.Sprintf("%s%s:%d", redisLimiterPrefix, key, bucket)

	pipe := rl.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, rl.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("can't count request for %s: %w", key, err)
	}

	return incr.Val() <= rl.limit, nil
}
