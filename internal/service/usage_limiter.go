package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// UsageLimiter caps how many queries one user may send per day. Redis
// being down fails open: rate limiting is protection, not a feature the
// assistant can refuse to work without.
type UsageLimiter struct {
	rdb   *redis.Client
	limit int
}

func NewUsageLimiter(rdb *redis.Client, limit int) *UsageLimiter {
	return &UsageLimiter{rdb: rdb, limit: limit}
}

// Allow increments today's counter for the user and reports whether the
// query may proceed. The first hit of the day sets a 24h expiry on the key.
func (ul *UsageLimiter) Allow(ctx context.Context, userId uuid.UUID) (bool, int, error) {
	if ul.limit <= 0 || ul.rdb == nil {
		return true, 0, nil
	}

	key := fmt.Sprintf("chat_usage:%s:%s", userId, time.Now().Format("2006-01-02"))
	used, err := ul.rdb.Incr(ctx, key).Result()
	if err != nil {
		return true, 0, err
	}
	if used == 1 {
		ul.rdb.Expire(ctx, key, 24*time.Hour)
	}

	return used <= int64(ul.limit), int(used), nil
}
