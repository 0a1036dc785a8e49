package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flexkitapp/flexgate/internal/timetable/usecase"
)

const filtersKey = "timetable:filters"

// Cache stores assembled timetable filters in redis. Failures degrade to a
// cache miss; the caller rebuilds from upstream.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) GetFilters(ctx context.Context) (*usecase.FiltersOutput, bool) {
	raw, err := c.client.Get(ctx, filtersKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.WarnContext(ctx, "failed to read timetable filters cache", "error", err)
		}
		return nil, false
	}

	var out usecase.FiltersOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		slog.WarnContext(ctx, "corrupt timetable filters cache entry", "error", err)
		return nil, false
	}

	return &out, true
}

func (c *Cache) SetFilters(ctx context.Context, out *usecase.FiltersOutput) {
	raw, err := json.Marshal(out)
	if err != nil {
		slog.WarnContext(ctx, "failed to encode timetable filters", "error", err)
		return
	}

	if err := c.client.Set(ctx, filtersKey, raw, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "failed to write timetable filters cache", "error", err)
	}
}
