//go:build unit

package queries_test

import (
	"context"
	"testing"

	"rental-marketplace/internal/domain/review"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/tests/common/builder"
	queriesmock "rental-marketplace/tests/mock/queries"
	sharedmock "rental-marketplace/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReviewQueries_ListByProperty(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()
	page := queries.NewPage(1, 10)
	reviews := []*queries.PropertyReview{builder.NewReviewBuilder().WithProperty(propertyID).BuildPropertyReview()}

	t.Run("cache miss: summary computed from the histogram and stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReviewReadStore(ctrl)
		cache := sharedmock.NewMockRatingCache(ctrl)

		cache.EXPECT().Get(ctx, propertyID).Return(nil, false)
		store.EXPECT().RatingHistogram(ctx, propertyID).Return(map[int]int{5: 2, 4: 1}, nil)
		cache.EXPECT().Set(ctx, propertyID, gomock.Any()).Do(func(_ context.Context, _ uuid.UUID, s review.Summary) {
			assert.Equal(t, 3, s.TotalReviews)
		})
		store.EXPECT().ListByProperty(ctx, propertyID, page).Return(reviews, nil)

		got, err := queries.NewReviewQueries(store, cache).ListByProperty(ctx, propertyID, page)

		require.NoError(t, err)
		assert.Equal(t, 3, got.Summary.TotalReviews)
		require.NotNil(t, got.Summary.AvgRating)
		assert.Equal(t, 4.7, *got.Summary.AvgRating)
		assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 1, 5: 2}, got.Summary.Histogram)
		assert.Equal(t, 3, got.Pagination.TotalItems)
		assert.Len(t, got.Reviews, 1)
	})

	t.Run("cache hit: histogram query skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReviewReadStore(ctrl)
		cache := sharedmock.NewMockRatingCache(ctrl)
		cached := review.Summarize([]int{3, 4})

		cache.EXPECT().Get(ctx, propertyID).Return(&cached, true)
		store.EXPECT().ListByProperty(ctx, propertyID, page).Return(reviews, nil)

		got, err := queries.NewReviewQueries(store, cache).ListByProperty(ctx, propertyID, page)

		require.NoError(t, err)
		assert.Equal(t, 2, got.Summary.TotalReviews)
		assert.Equal(t, 3.5, *got.Summary.AvgRating)
	})

	t.Run("no reviews: average absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReviewReadStore(ctrl)
		cache := sharedmock.NewMockRatingCache(ctrl)

		cache.EXPECT().Get(ctx, propertyID).Return(nil, false)
		store.EXPECT().RatingHistogram(ctx, propertyID).Return(map[int]int{}, nil)
		cache.EXPECT().Set(ctx, propertyID, gomock.Any())
		store.EXPECT().ListByProperty(ctx, propertyID, page).Return([]*queries.PropertyReview{}, nil)

		got, err := queries.NewReviewQueries(store, cache).ListByProperty(ctx, propertyID, page)

		require.NoError(t, err)
		assert.Nil(t, got.Summary.AvgRating)
		assert.Equal(t, 0, got.Pagination.TotalPages)
	})
}
