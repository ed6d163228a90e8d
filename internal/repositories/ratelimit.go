package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-formation-admin/internal/logger"
)

// RateLimitRepository keeps fixed-window request counters in Redis.
type RateLimitRepository struct {
	client *redis.Client
	window time.Duration // counter lifetime
}

// NewRateLimitRepository creates a repository whose counters expire after window.
func NewRateLimitRepository(client *redis.Client, window time.Duration) *RateLimitRepository {
	return &RateLimitRepository{
		client: client,
		window: window,
	}
}

// Increment bumps the counter for key in the current window and returns its new value.
// The expiry is set only when the counter is created so the window does not slide.
func (r *RateLimitRepository) Increment(ctx context.Context, key string) (int64, error) {
	key = fmt.Sprintf("rate_limit:%s", key)

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, r.window)
		return nil
	})

	var count int64
	if err == nil {
		count = incr.Val()
	}

	logger.Log.Infow(
		"key", key,
		"result", count,
		"error", err,
	)

	return count, err
}
