package converter

import (
	"rental-marketplace/internal/domain/review"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		ID:         r.ID(),
		UserID:     r.UserID(),
		PropertyID: r.PropertyID(),
		BookingID:  pgconv.UUIDPtrToPgtype(r.BookingID()),
		Rating:     int32(r.Rating().Value()),
		Comment:    r.Comment().String(),
		CreatedAt:  pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ReviewToUpdateParams(r *review.Review) sqlc.UpdateReviewParams {
	return sqlc.UpdateReviewParams{
		ID:        r.ID(),
		Rating:    int32(r.Rating().Value()),
		Comment:   r.Comment().String(),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReviewFromRow(row sqlc.Reviews) (*review.Review, error) {
	rating, err := review.NewRating(int(row.Rating))
	if err != nil {
		return nil, errs.Wrap(err, "stored review rating")
	}
	comment, err := review.NewComment(row.Comment)
	if err != nil {
		return nil, errs.Wrap(err, "stored review comment")
	}
	return review.ReconstructReview(
		row.ID,
		row.UserID,
		row.PropertyID,
		pgconv.UUIDPtrFromPgtype(row.BookingID),
		rating,
		comment,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
