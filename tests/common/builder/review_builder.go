//go:build unit || e2e

package builder

import (
	"time"

	"rental-marketplace/internal/domain/review"
	reqdto "rental-marketplace/internal/handler/dto/request"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"
	"rental-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	PropertyID uuid.UUID
	BookingID  uuid.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now()
	return &ReviewBuilder{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		PropertyID: uuid.New(),
		BookingID:  uuid.New(),
		Rating:     5,
		Comment:    "Lovely stay, would come back again.",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) WithUser(userID uuid.UUID) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithProperty(propertyID uuid.UUID) *ReviewBuilder {
	r.PropertyID = propertyID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) BuildDomain() *review.Review {
	rating, err := review.NewRating(r.Rating)
	if err != nil {
		panic(err)
	}
	comment, err := review.NewComment(r.Comment)
	if err != nil {
		panic(err)
	}
	bookingID := r.BookingID
	return review.ReconstructReview(r.ID, r.UserID, r.PropertyID, &bookingID, rating, comment, r.CreatedAt, r.UpdatedAt)
}

func (r *ReviewBuilder) Eligible() review.Eligibility {
	bookingID := r.BookingID
	return review.Eligibility{CompletedBookingID: &bookingID}
}

func (r *ReviewBuilder) BuildInfra() sqlc.Reviews {
	return sqlc.Reviews{
		ID:         r.ID,
		UserID:     r.UserID,
		PropertyID: r.PropertyID,
		BookingID:  pgconv.UUIDToPgtype(r.BookingID),
		Rating:     int32(r.Rating),
		Comment:    r.Comment,
		CreatedAt:  pgconv.TimeToPgtype(r.CreatedAt),
		UpdatedAt:  pgconv.TimeToPgtype(r.UpdatedAt),
	}
}

func (r *ReviewBuilder) BuildPropertyReview() *queries.PropertyReview {
	return &queries.PropertyReview{
		ID:            r.ID,
		UserID:        r.UserID,
		Rating:        r.Rating,
		Comment:       r.Comment,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		UserFirstName: "Sita",
		UserLastName:  "Sharma",
	}
}

func (r *ReviewBuilder) BuildCreateDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		PropertyID: r.PropertyID,
		Rating:     r.Rating,
		Comment:    r.Comment,
	}
}
