// Package cache provides an optional Redis-backed cache of rendered day
// grids. Entries carry a short TTL because the past/available split of a
// grid moves with the wall clock.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"fairway/internal/schedule"
)

// ScheduleCache caches day grids in Redis keyed by date. A cache miss or
// Redis failure is never fatal; callers fall back to recomputing.
type ScheduleCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zerolog.Logger
}

// New creates a schedule cache over an existing Redis client.
func New(client *redis.Client, ttl time.Duration, logger *zerolog.Logger) *ScheduleCache {
	return &ScheduleCache{client: client, ttl: ttl, logger: logger}
}

func key(date string) string {
	return "schedule:" + date
}

// GetGrid returns the cached grid for a date, if present.
func (c *ScheduleCache) GetGrid(ctx context.Context, date string) (*schedule.DayGrid, bool) {
	data, err := c.client.Get(ctx, key(date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Str("date", date).Msg("schedule cache get")
		}
		return nil, false
	}

	var grid schedule.DayGrid
	if err := json.Unmarshal(data, &grid); err != nil {
		c.logger.Warn().Err(err).Str("date", date).Msg("decode cached grid")
		return nil, false
	}
	return &grid, true
}

// SetGrid stores a rendered grid under its date.
func (c *ScheduleCache) SetGrid(ctx context.Context, grid *schedule.DayGrid) {
	data, err := json.Marshal(grid)
	if err != nil {
		c.logger.Warn().Err(err).Str("date", grid.Date).Msg("encode grid")
		return
	}
	if err := c.client.Set(ctx, key(grid.Date), data, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("date", grid.Date).Msg("schedule cache set")
	}
}

// Invalidate drops the cached grid for a date after a booking lands.
func (c *ScheduleCache) Invalidate(ctx context.Context, date string) {
	if err := c.client.Del(ctx, key(date)).Err(); err != nil {
		c.logger.Warn().Err(err).Str("date", date).Msg("schedule cache invalidate")
	}
}
