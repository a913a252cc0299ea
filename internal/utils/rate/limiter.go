package rate

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type Limit struct {
	Window    time.Duration // e.g., 1 minute, 1 hour
	MaxEvents int           // max events per window
}

type Config struct {
	Name  string
	Limit Limit
}

// Limiter is a sliding-window rate limiter backed by a redis sorted set,
// shared across all server instances.
type Limiter struct {
	redis  *redis.Client
	config Config
}

func NewLimiter(redis *redis.Client, config Config) *Limiter {
	return &Limiter{
		redis:  redis,
		config: config,
	}
}

func (l *Limiter) Allow(ctx context.Context, identifier string) (bool, error) {
	key := fmt.Sprintf("rate_limit:%s:%s", l.config.Name, identifier)

	pipe := l.redis.Pipeline()
	now := time.Now().Unix()
	windowStart := now - int64(l.config.Limit.Window.Seconds())

	// Remove old entries
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))

	// Count current window
	pipe.ZCard(ctx, key)

	// Add new entry
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})

	// Set expiration
	pipe.Expire(ctx, key, l.config.Limit.Window*2)

	results, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("redis pipeline error: %w", err)
	}

	count := results[1].(*redis.IntCmd).Val()
	return count <= int64(l.config.Limit.MaxEvents), nil
}
