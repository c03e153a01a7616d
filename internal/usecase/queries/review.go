package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"

	"rental-marketplace/internal/domain/review"
	"rental-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	ListByProperty(ctx context.Context, propertyID uuid.UUID, page Page) ([]*PropertyReview, error)
	RatingHistogram(ctx context.Context, propertyID uuid.UUID) (map[int]int, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page Page) ([]*UserReview, int64, error)
}

type ReviewQueries interface {
	ListByProperty(ctx context.Context, propertyID uuid.UUID, page Page) (*PropertyReviewsView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page Page) (*PageResult[*UserReview], error)
}

type reviewQueriesImpl struct {
	readStore ReviewReadStore
	cache     shared.RatingCache
}

func NewReviewQueries(readStore ReviewReadStore, cache shared.RatingCache) ReviewQueries {
	return &reviewQueriesImpl{readStore: readStore, cache: cache}
}

func (q *reviewQueriesImpl) ListByProperty(ctx context.Context, propertyID uuid.UUID, page Page) (*PropertyReviewsView, error) {
	summary, err := q.summary(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	reviews, err := q.readStore.ListByProperty(ctx, propertyID, page)
	if err != nil {
		return nil, err
	}

	return &PropertyReviewsView{
		Reviews: reviews,
		Summary: RatingSummaryView{
			Histogram:    summary.Histogram,
			AvgRating:    summary.Average,
			TotalReviews: summary.TotalReviews,
		},
		Pagination: NewPagination(page, int64(summary.TotalReviews)),
	}, nil
}

func (q *reviewQueriesImpl) summary(ctx context.Context, propertyID uuid.UUID) (review.Summary, error) {
	if cached, ok := q.cache.Get(ctx, propertyID); ok {
		return *cached, nil
	}
	counts, err := q.readStore.RatingHistogram(ctx, propertyID)
	if err != nil {
		return review.Summary{}, err
	}
	summary := review.FromHistogram(counts)
	q.cache.Set(ctx, propertyID, summary)
	return summary, nil
}

func (q *reviewQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, page Page) (*PageResult[*UserReview], error) {
	items, total, err := q.readStore.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	return &PageResult[*UserReview]{Items: items, Pagination: NewPagination(page, total)}, nil
}
