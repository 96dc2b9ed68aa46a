// Package ratelimit implements a redis-backed fixed-window counter for
// comment submission. The counter lives in redis so the limit holds across
// instances and restarts, unlike a process-local map.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// Limiter counts requests per identity within a fixed window
type Limiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	log    zerolog.Logger
}

// New creates a limiter. A nil redis client disables limiting entirely
// (every request is allowed), which is the local-development mode.
func New(rdb *redis.Client, limit int, window time.Duration, log zerolog.Logger) *Limiter {
	return &Limiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		log:    log.With().Str("component", "ratelimit").Logger(),
	}
}

// Allow reports whether the identity may submit another comment in the
// current window. Redis failures fail open: a broken limiter must not take
// comments down with it.
func (l *Limiter) Allow(ctx context.Context, identity string) (bool, error) {
	if l.rdb == nil {
		return true, nil
	}

	key := fmt.Sprintf("comment_window:%s", identity)

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		l.log.Warn().Err(err).Msg("Rate limit counter unavailable, allowing request")
		return true, err
	}

	// First hit in the window sets the expiry
	if count == 1 {
		if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
			l.log.Warn().Err(err).Msg("Failed to set rate limit window expiry")
		}
	}

	return count <= int64(l.limit), nil
}
