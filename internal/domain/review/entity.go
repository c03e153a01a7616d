package review

import (
	"time"

	"rental-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotEligible         = errs.Domain(errs.ErrNotEligible, "You can only review properties you have stayed at")
	ErrReviewAlreadyExists = errs.Domain(errs.ErrDuplicate, "You have already reviewed this property")
	ErrReviewNotFound      = errs.Domain(errs.ErrNotFound, "Review not found or access denied")
)

type Review struct {
	id         uuid.UUID
	userID     uuid.UUID
	propertyID uuid.UUID
	bookingID  *uuid.UUID
	rating     Rating
	comment    Comment
	createdAt  time.Time
	updatedAt  time.Time
}

// Eligibility is what the store knows about a guest's history with a property.
type Eligibility struct {
	CompletedBookingID *uuid.UUID
	AlreadyReviewed    bool
}

func (e Eligibility) Check() error {
	if e.CompletedBookingID == nil {
		return ErrNotEligible
	}
	if e.AlreadyReviewed {
		return ErrReviewAlreadyExists
	}
	return nil
}

func NewReview(userID, propertyID uuid.UUID, eligibility Eligibility, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if err := eligibility.Check(); err != nil {
		return nil, err
	}

	return &Review{
		id:         uuid.New(),
		userID:     userID,
		propertyID: propertyID,
		bookingID:  eligibility.CompletedBookingID,
		rating:     rating,
		comment:    comment,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructReview(id, userID, propertyID uuid.UUID, bookingID *uuid.UUID, rating Rating, comment Comment, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:         id,
		userID:     userID,
		propertyID: propertyID,
		bookingID:  bookingID,
		rating:     rating,
		comment:    comment,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Edit changes rating and/or comment; only the author may call it.
func (r *Review) Edit(authorID uuid.UUID, rating *int, comment *string, now time.Time) error {
	if r.userID != authorID {
		return ErrReviewNotFound
	}
	nextRating, nextComment := r.rating, r.comment
	if rating != nil {
		v, err := NewRating(*rating)
		if err != nil {
			return err
		}
		nextRating = v
	}
	if comment != nil {
		c, err := NewComment(*comment)
		if err != nil {
			return err
		}
		nextComment = c
	}
	r.rating, r.comment, r.updatedAt = nextRating, nextComment, now
	return nil
}

func (r *Review) IsAuthoredBy(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Review) ID() uuid.UUID         { return r.id }
func (r *Review) UserID() uuid.UUID     { return r.userID }
func (r *Review) PropertyID() uuid.UUID { return r.propertyID }
func (r *Review) BookingID() *uuid.UUID { return r.bookingID }
func (r *Review) Rating() Rating        { return r.rating }
func (r *Review) Comment() Comment      { return r.comment }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
func (r *Review) UpdatedAt() time.Time  { return r.updatedAt }
