package cache

import (
	"context"
	"log/slog"
	"time"

	"rental-marketplace/internal/domain/review"
	"rental-marketplace/internal/pkg/config"
	"rental-marketplace/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

const ratingKeyPrefix = "rating_summary:"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ratingEntry struct {
	Histogram    map[int]int `json:"histogram"`
	TotalReviews int         `json:"total_reviews"`
	Average      *float64    `json:"average,omitempty"`
}

// RedisRatingCache stores rating summaries as JSON under one key per property.
type RedisRatingCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisRatingCache(client redis.UniversalClient, ttl time.Duration) *RedisRatingCache {
	return &RedisRatingCache{client: client, ttl: ttl}
}

// NewRatingCache falls back to a no-op cache when Redis is not configured.
// The returned cleanup closes the Redis client and is safe to call in either case.
func NewRatingCache(cfg config.RedisConfig) (shared.RatingCache, func()) {
	if cfg.Addr == "" {
		slog.Info("Redis address not set, rating summary cache disabled")
		return NoopRatingCache{}, func() {}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	slog.Info("Rating summary cache enabled", "addr", cfg.Addr, "ttl", cfg.TTL.String())
	c := NewRedisRatingCache(client, cfg.TTL)
	return c, c.Close
}

func (c *RedisRatingCache) Close() {
	if err := c.client.Close(); err != nil {
		slog.Warn("rating cache close failed", "error", err.Error())
	}
}

func (c *RedisRatingCache) Get(ctx context.Context, propertyID uuid.UUID) (*review.Summary, bool) {
	raw, err := c.client.Get(ctx, ratingKey(propertyID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("rating cache read failed", "property_id", propertyID.String(), "error", err.Error())
		}
		return nil, false
	}

	var entry ratingEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		slog.Warn("rating cache entry corrupted", "property_id", propertyID.String(), "error", err.Error())
		return nil, false
	}

	summary := review.FromHistogram(entry.Histogram)
	return &summary, true
}

func (c *RedisRatingCache) Set(ctx context.Context, propertyID uuid.UUID, summary review.Summary) {
	raw, err := json.Marshal(ratingEntry{
		Histogram:    summary.Histogram,
		TotalReviews: summary.TotalReviews,
		Average:      summary.Average,
	})
	if err != nil {
		slog.Warn("rating cache encode failed", "property_id", propertyID.String(), "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, ratingKey(propertyID), raw, c.ttl).Err(); err != nil {
		slog.Warn("rating cache write failed", "property_id", propertyID.String(), "error", err.Error())
	}
}

func (c *RedisRatingCache) Invalidate(ctx context.Context, propertyID uuid.UUID) {
	if err := c.client.Del(ctx, ratingKey(propertyID)).Err(); err != nil {
		slog.Warn("rating cache invalidation failed", "property_id", propertyID.String(), "error", err.Error())
	}
}

func ratingKey(propertyID uuid.UUID) string {
	return ratingKeyPrefix + propertyID.String()
}

type NoopRatingCache struct{}

func (NoopRatingCache) Get(context.Context, uuid.UUID) (*review.Summary, bool) { return nil, false }

func (NoopRatingCache) Set(context.Context, uuid.UUID, review.Summary) {}

func (NoopRatingCache) Invalidate(context.Context, uuid.UUID) {}
