// Package cache implements the read-through aggregate cache: the category list
// of each taggable entity and the usage counts of each category.
// Failures are logged and reported as misses; they never fail a request.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/ecoponto-backend/internal/config"
	"github.com/heartmarshall/ecoponto-backend/internal/domain"
	"github.com/heartmarshall/ecoponto-backend/internal/metrics"
)

const (
	familyCategories = "categories"
	familyUsage      = "usage"

	// generationTTL outlives any category list TTL in practice. An expired
	// generation reads as 0 and only rejects writes from older loads.
	generationTTL = 24 * time.Hour
)

// Redis is the go-redis backed cache.
type Redis struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
	log    *slog.Logger
}

// NewRedis wraps an existing client.
func NewRedis(log *slog.Logger, rdb *redis.Client, prefix string, ttl time.Duration) *Redis {
	return &Redis{
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
		log:    log.With("component", "cache"),
	}
}

// Open connects to Redis using cfg and pings it.
func Open(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

func (c *Redis) categoriesKey(kind domain.EntityType, entityID uuid.UUID) string {
	return fmt.Sprintf("%s:cats:%s:%s", c.prefix, kind, entityID)
}

func (c *Redis) generationKey(kind domain.EntityType, entityID uuid.UUID) string {
	return fmt.Sprintf("%s:gen:%s:%s", c.prefix, kind, entityID)
}

func (c *Redis) usageKey(categoryID uuid.UUID) string {
	return fmt.Sprintf("%s:usage:%s", c.prefix, categoryID)
}

type categoryEntry struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type usageEntry struct {
	CollectionPoints int `json:"collection_points"`
	Events           int `json:"events"`
}

// ---------------------------------------------------------------------------
// Entity categories
// ---------------------------------------------------------------------------

// GetCategories returns the cached category list of an entity. On a miss it
// returns the entity's current generation, which SetCategories needs to store
// a freshly loaded list. A negative generation means it could not be read.
func (c *Redis) GetCategories(ctx context.Context, kind domain.EntityType, entityID uuid.UUID) ([]domain.Category, int64, bool) {
	values, err := c.rdb.MGet(ctx, c.categoriesKey(kind, entityID), c.generationKey(kind, entityID)).Result()
	if err != nil {
		c.fail(ctx, "get", err)
		metrics.CacheMissesTotal.WithLabelValues(familyCategories).Inc()
		return nil, -1, false
	}

	generation, err := parseGeneration(values[1])
	if err != nil {
		c.fail(ctx, "decode_generation", err)
		generation = -1
	}

	raw, ok := values[0].(string)
	if !ok {
		metrics.CacheMissesTotal.WithLabelValues(familyCategories).Inc()
		return nil, generation, false
	}

	var entries []categoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		c.fail(ctx, "decode", err)
		metrics.CacheMissesTotal.WithLabelValues(familyCategories).Inc()
		return nil, generation, false
	}

	categories := make([]domain.Category, len(entries))
	for i, e := range entries {
		categories[i] = domain.Category{ID: e.ID, Name: e.Name, CreatedAt: e.CreatedAt}
	}
	metrics.CacheHitsTotal.WithLabelValues(familyCategories).Inc()
	return categories, generation, true
}

// setIfGeneration writes KEYS[1] only while the generation in KEYS[2] still
// equals ARGV[1]. A missing generation counts as 0. ARGV[3] is the TTL in
// milliseconds; 0 keeps the key without expiry.
var setIfGeneration = redis.NewScript(`
local current = tonumber(redis.call("GET", KEYS[2]) or "0")
if current ~= tonumber(ARGV[1]) then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
else
	redis.call("SET", KEYS[1], ARGV[2])
end
return 1
`)

// SetCategories stores the category list of an entity loaded under the given
// generation. The write is dropped when the entity was invalidated since, so
// a slow reader cannot put back a list that a committed mutation replaced.
func (c *Redis) SetCategories(ctx context.Context, kind domain.EntityType, entityID uuid.UUID, generation int64, categories []domain.Category) {
	if generation < 0 {
		return
	}

	entries := make([]categoryEntry, len(categories))
	for i, cat := range categories {
		entries[i] = categoryEntry{ID: cat.ID, Name: cat.Name, CreatedAt: cat.CreatedAt}
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		c.fail(ctx, "encode", err)
		return
	}

	keys := []string{c.categoriesKey(kind, entityID), c.generationKey(kind, entityID)}
	if err := setIfGeneration.Run(ctx, c.rdb, keys, generation, raw, c.ttl.Milliseconds()).Err(); err != nil {
		c.fail(ctx, "set", err)
	}
}

// InvalidateEntity drops the cached category list of an entity and bumps its
// generation so in-flight loads started before the mutation are not stored.
func (c *Redis) InvalidateEntity(ctx context.Context, kind domain.EntityType, entityID uuid.UUID) {
	genKey := c.generationKey(kind, entityID)
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		pipe.Expire(ctx, genKey, generationTTL)
		pipe.Del(ctx, c.categoriesKey(kind, entityID))
		return nil
	})
	if err != nil {
		c.fail(ctx, "del", err)
	}
}

func parseGeneration(v any) (int64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

// ---------------------------------------------------------------------------
// Category usage
// ---------------------------------------------------------------------------

// GetUsage returns the cached usage of the requested categories and the ids
// that were not cached.
func (c *Redis) GetUsage(ctx context.Context, categoryIDs []uuid.UUID) (map[uuid.UUID]domain.CategoryUsage, []uuid.UUID) {
	found := make(map[uuid.UUID]domain.CategoryUsage, len(categoryIDs))
	if len(categoryIDs) == 0 {
		return found, nil
	}

	keys := make([]string, len(categoryIDs))
	for i, id := range categoryIDs {
		keys[i] = c.usageKey(id)
	}

	values, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		c.fail(ctx, "mget", err)
		metrics.CacheMissesTotal.WithLabelValues(familyUsage).Add(float64(len(categoryIDs)))
		return found, categoryIDs
	}

	var missing []uuid.UUID
	for i, v := range values {
		s, ok := v.(string)
		var entry usageEntry
		if !ok || json.Unmarshal([]byte(s), &entry) != nil {
			missing = append(missing, categoryIDs[i])
			continue
		}
		found[categoryIDs[i]] = domain.CategoryUsage{CollectionPoints: entry.CollectionPoints, Events: entry.Events}
	}

	metrics.CacheHitsTotal.WithLabelValues(familyUsage).Add(float64(len(found)))
	metrics.CacheMissesTotal.WithLabelValues(familyUsage).Add(float64(len(missing)))
	return found, missing
}

// SetUsage stores usage counts in one pipeline.
func (c *Redis) SetUsage(ctx context.Context, usage map[uuid.UUID]domain.CategoryUsage) {
	if len(usage) == 0 {
		return
	}

	_, err := c.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for id, u := range usage {
			raw, err := json.Marshal(usageEntry{CollectionPoints: u.CollectionPoints, Events: u.Events})
			if err != nil {
				return err
			}
			pipe.Set(ctx, c.usageKey(id), raw, c.ttl)
		}
		return nil
	})
	if err != nil {
		c.fail(ctx, "set_usage", err)
	}
}

// InvalidateUsage drops the cached usage of the given categories.
func (c *Redis) InvalidateUsage(ctx context.Context, categoryIDs ...uuid.UUID) {
	if len(categoryIDs) == 0 {
		return
	}

	keys := make([]string, len(categoryIDs))
	for i, id := range categoryIDs {
		keys[i] = c.usageKey(id)
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.fail(ctx, "del_usage", err)
	}
}

// Ping reports whether Redis is reachable. Used by the readiness check.
func (c *Redis) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Redis) fail(ctx context.Context, op string, err error) {
	metrics.CacheErrorsTotal.WithLabelValues(op).Inc()
	c.log.WarnContext(ctx, "cache operation failed", slog.String("op", op), slog.String("error", err.Error()))
}
