package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/salonops/salon-manager/internal/domain/appointment"
)

const (
	scheduleKey = "salon:working_hours"
	scheduleTTL = 5 * time.Minute
)

// ScheduleCache keeps the working-hours snapshot in redis so every booking
// request does not re-read the settings table. Misses and redis failures
// fall through to the store.
type ScheduleCache struct {
	rdb *redis.Client
}

func NewScheduleCache(rdb *redis.Client) *ScheduleCache {
	return &ScheduleCache{rdb: rdb}
}

func (c *ScheduleCache) Get(ctx context.Context) (domain.WeekSchedule, bool) {
	var week domain.WeekSchedule
	if c == nil || c.rdb == nil {
		return week, false
	}

	raw, err := c.rdb.Get(ctx, scheduleKey).Bytes()
	if err != nil {
		return week, false
	}

	if err := json.Unmarshal(raw, &week); err != nil {
		return week, false
	}
	return week, true
}

func (c *ScheduleCache) Set(ctx context.Context, week domain.WeekSchedule) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(week)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, scheduleKey, raw, scheduleTTL)
}

// Invalidate is called whenever the settings UI rewrites the week.
func (c *ScheduleCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, scheduleKey)
}
