package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const statsKeyPrefix = "funnel:stats:"

// DayKey formats the UTC day a counter hash belongs to.
func DayKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// CounterField is the hash field of a behavior type and action.
func CounterField(behaviorType, action string) string {
	return behaviorType + ":" + action
}

// FunnelCounter keeps one Redis hash per day, counting events per
// behaviorType:action.
type FunnelCounter struct {
	rdb       *redis.Client
	retention time.Duration
}

func NewFunnelCounter(rdb *redis.Client, retention time.Duration) *FunnelCounter {
	return &FunnelCounter{rdb: rdb, retention: retention}
}

func statsKey(day string) string {
	return statsKeyPrefix + day
}

// Increment bumps field in the hash of day and refreshes its expiry.
func (c *FunnelCounter) Increment(ctx context.Context, day, field string) error {
	key := statsKey(day)
	pipe := c.rdb.TxPipeline()
	pipe.HIncrBy(ctx, key, field, 1)
	pipe.Expire(ctx, key, c.retention)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("increment %s %s: %w", key, field, err)
	}
	return nil
}

// Snapshot returns every counter of day. A day with no events is empty, not an error.
func (c *FunnelCounter) Snapshot(ctx context.Context, day string) (map[string]int64, error) {
	raw, err := c.rdb.HGetAll(ctx, statsKey(day)).Result()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", statsKey(day), err)
	}
	out := make(map[string]int64, len(raw))
	for field, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			continue
		}
		out[field] = n
	}
	return out, nil
}

// NewRedisClient parses url, falling back to treating it as a plain address.
func NewRedisClient(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		opt = &redis.Options{Addr: url}
	}
	return redis.NewClient(opt)
}
