//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"rental-marketplace/internal/domain/review"
	"rental-marketplace/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopRatingCache(t *testing.T) {
	c := NoopRatingCache{}
	id := uuid.New()

	c.Set(context.Background(), id, review.Summarize([]int{5, 4}))
	got, ok := c.Get(context.Background(), id)

	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestNewRatingCache(t *testing.T) {
	t.Run("no address gives the no-op cache", func(t *testing.T) {
		c, cleanup := NewRatingCache(config.RedisConfig{})
		require.NotNil(t, cleanup)

		assert.IsType(t, NoopRatingCache{}, c)
		cleanup()
	})

	t.Run("cleanup closes the redis client", func(t *testing.T) {
		c, cleanup := NewRatingCache(config.RedisConfig{Addr: "127.0.0.1:1", TTL: time.Minute})
		redisCache, ok := c.(*RedisRatingCache)
		require.True(t, ok)

		cleanup()

		require.Error(t, redisCache.client.Ping(context.Background()).Err())
		got, hit := c.Get(context.Background(), uuid.New())
		assert.False(t, hit)
		assert.Nil(t, got)
	})
}

func TestRatingEntryEncoding(t *testing.T) {
	summary := review.Summarize([]int{5, 5, 4, 1})

	raw, err := json.Marshal(ratingEntry{
		Histogram:    summary.Histogram,
		TotalReviews: summary.TotalReviews,
		Average:      summary.Average,
	})
	require.NoError(t, err)

	var entry ratingEntry
	require.NoError(t, json.Unmarshal(raw, &entry))

	decoded := review.FromHistogram(entry.Histogram)
	assert.Equal(t, summary.TotalReviews, decoded.TotalReviews)
	assert.Equal(t, summary.Histogram, decoded.Histogram)
	require.NotNil(t, decoded.Average)
	assert.InDelta(t, 3.8, *decoded.Average, 0.001)
}

func TestRatingKey(t *testing.T) {
	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	assert.Equal(t, "rating_summary:11111111-1111-1111-1111-111111111111", ratingKey(id))
}
