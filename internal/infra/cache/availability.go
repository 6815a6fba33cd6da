package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"reservation-engine/internal/pkg/metrics"
	"reservation-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	itemKeyPrefix     = "availability:item:"
	activityKeyPrefix = "availability:activity:"
)

func ItemKey(id uuid.UUID) string     { return itemKeyPrefix + id.String() }
func ActivityKey(id uuid.UUID) string { return activityKeyPrefix + id.String() }

// GenerationKey holds the counter that invalidation bumps. Counters never expire;
// there is one per item or activity that was ever invalidated.
func GenerationKey(key string) string { return key + ":gen" }

// EntryKey is where the view for key is cached under generation gen.
func EntryKey(key string, gen int64) string { return key + ":v" + strconv.FormatInt(gen, 10) }

// AvailabilityCache is a read-through cache in front of the availability read store.
// Entries are stored under the current generation of their key. A committed stock
// or capacity change bumps the generation, so a fill that loaded before the bump
// lands under a key no reader will ask for again and just expires after ttl.
// A nil client turns it into a pass-through.
type AvailabilityCache struct {
	next    queries.AvailabilityReadStore
	client  *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics
}

func NewAvailabilityCache(next queries.AvailabilityReadStore, client *redis.Client, ttl time.Duration, m *metrics.Metrics) *AvailabilityCache {
	return &AvailabilityCache{
		next:    next,
		client:  client,
		ttl:     ttl,
		metrics: m,
	}
}

func (c *AvailabilityCache) ItemAvailability(ctx context.Context, itemID uuid.UUID) (*queries.ItemAvailability, error) {
	return readThrough(ctx, c, ItemKey(itemID), func() (*queries.ItemAvailability, error) {
		return c.next.ItemAvailability(ctx, itemID)
	})
}

func (c *AvailabilityCache) ActivityAvailability(ctx context.Context, activityID uuid.UUID) (*queries.ActivityAvailability, error) {
	return readThrough(ctx, c, ActivityKey(activityID), func() (*queries.ActivityAvailability, error) {
		return c.next.ActivityAvailability(ctx, activityID)
	})
}

func (c *AvailabilityCache) InvalidateItems(ctx context.Context, itemIDs ...uuid.UUID) {
	if c.client == nil {
		return
	}
	for _, id := range itemIDs {
		c.bump(ctx, ItemKey(id))
	}
}

func (c *AvailabilityCache) InvalidateActivity(ctx context.Context, activityID uuid.UUID) {
	if c.client == nil {
		return
	}
	c.bump(ctx, ActivityKey(activityID))
}

func (c *AvailabilityCache) bump(ctx context.Context, key string) {
	if err := c.client.Incr(ctx, GenerationKey(key)).Err(); err != nil {
		slog.WarnContext(ctx, "failed to invalidate availability", "key", key, "error", err.Error())
	}
}

func (c *AvailabilityCache) generation(ctx context.Context, key string) (int64, error) {
	gen, err := c.client.Get(ctx, GenerationKey(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// readThrough never fails because of Redis: any cache error falls back to the store.
// Without a readable generation nothing is written back.
func readThrough[T any](ctx context.Context, c *AvailabilityCache, key string, load func() (*T, error)) (*T, error) {
	if c.client == nil {
		return load()
	}

	gen, err := c.generation(ctx, key)
	if err != nil {
		c.metrics.CacheLookup("error")
		slog.WarnContext(ctx, "availability cache read failed", "key", key, "error", err.Error())
		return load()
	}
	entryKey := EntryKey(key, gen)

	raw, err := c.client.Get(ctx, entryKey).Bytes()
	switch {
	case err == nil:
		var cached T
		if jerr := json.Unmarshal(raw, &cached); jerr == nil {
			c.metrics.CacheLookup("hit")
			return &cached, nil
		}
		c.metrics.CacheLookup("corrupt")
	case errors.Is(err, redis.Nil):
		c.metrics.CacheLookup("miss")
	default:
		c.metrics.CacheLookup("error")
		slog.WarnContext(ctx, "availability cache read failed", "key", entryKey, "error", err.Error())
	}

	value, err := load()
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return value, nil
	}
	if err := c.client.Set(ctx, entryKey, data, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "availability cache write failed", "key", entryKey, "error", err.Error())
	}
	return value, nil
}
