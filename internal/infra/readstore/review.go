package readstore

import (
	"context"

	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"
	"rental-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewReadQueries interface {
	ListReviewsByProperty(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByPropertyParams) ([]sqlc.ListReviewsByPropertyRow, error)
	GetRatingHistogram(ctx context.Context, db sqlc.DBTX, propertyID uuid.UUID) ([]sqlc.GetRatingHistogramRow, error)
	ListReviewsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByUserParams) ([]sqlc.ListReviewsByUserRow, error)
	CountReviewsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
	ReviewExists(ctx context.Context, db sqlc.DBTX, arg sqlc.ReviewExistsParams) (bool, error)
	FindCompletedBookingID(ctx context.Context, db sqlc.DBTX, arg sqlc.FindCompletedBookingIDParams) (uuid.UUID, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) ListByProperty(ctx context.Context, propertyID uuid.UUID, page queries.Page) ([]*queries.PropertyReview, error) {
	rows, err := r.queries.ListReviewsByProperty(ctx, r.db, sqlc.ListReviewsByPropertyParams{
		PropertyID: propertyID,
		Limit:      page.Limit(),
		Offset:     page.Offset(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by property", err)
	}
	return toPropertyReviews(rows), nil
}

func (r *ReviewReadStore) RatingHistogram(ctx context.Context, propertyID uuid.UUID) (map[int]int, error) {
	rows, err := r.queries.GetRatingHistogram(ctx, r.db, propertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get rating histogram", err)
	}
	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[int(row.Rating)] = int(row.Count)
	}
	return counts, nil
}

func (r *ReviewReadStore) ListByUser(ctx context.Context, userID uuid.UUID, page queries.Page) ([]*queries.UserReview, int64, error) {
	rows, err := r.queries.ListReviewsByUser(ctx, r.db, sqlc.ListReviewsByUserParams{
		UserID: userID,
		Limit:  page.Limit(),
		Offset: page.Offset(),
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list reviews by user", err)
	}
	total, err := r.queries.CountReviewsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count reviews by user", err)
	}

	items := make([]*queries.UserReview, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.UserReview{
			ID:             row.ID,
			PropertyID:     row.PropertyID,
			Rating:         int(row.Rating),
			Comment:        row.Comment,
			CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
			PropertyTitle:  row.PropertyTitle,
			PropertyCity:   row.PropertyCity,
			PropertyImages: nonNilStrings(row.PropertyImages),
		})
	}
	return items, total, nil
}

// CompletedBookingID returns the most recent completed booking of userID at propertyID, or nil.
func (r *ReviewReadStore) CompletedBookingID(ctx context.Context, userID, propertyID uuid.UUID) (*uuid.UUID, error) {
	id, err := r.queries.FindCompletedBookingID(ctx, r.db, sqlc.FindCompletedBookingIDParams{
		UserID:     userID,
		PropertyID: propertyID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find completed booking", err)
	}
	return &id, nil
}

func (r *ReviewReadStore) Exists(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	exists, err := r.queries.ReviewExists(ctx, r.db, sqlc.ReviewExistsParams{
		UserID:     userID,
		PropertyID: propertyID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check existing review", err)
	}
	return exists, nil
}

func toPropertyReviews(rows []sqlc.ListReviewsByPropertyRow) []*queries.PropertyReview {
	items := make([]*queries.PropertyReview, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.PropertyReview{
			ID:            row.ID,
			UserID:        row.UserID,
			Rating:        int(row.Rating),
			Comment:       row.Comment,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
			UserFirstName: row.UserFirstName,
			UserLastName:  row.UserLastName,
			UserAvatar:    pgconv.StringPtrFromPgtype(row.UserAvatar),
		})
	}
	return items
}
