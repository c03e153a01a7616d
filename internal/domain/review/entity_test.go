//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"rental-marketplace/internal/domain/review"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/pkg/ptr"
	"rental-marketplace/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.NotNil(t, actual.BookingID())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Lovely stay, very clean and quiet.", actual.Comment().String())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(1) },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(5) },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum length comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MinCommentLength)) },
			},
			{
				name:   "maximum length comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength)) },
			},
			{
				name:   "too short comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("Nice") },
				errIs:  review.ErrCommentTooShort,
			},
			{
				name:   "whitespace padded short comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("   short    ") },
				errIs:  review.ErrCommentTooShort,
			},
			{
				name:   "comment exceeds maximum length",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength+1)) },
				errIs:  review.ErrCommentTooLong,
			},
		})
	})

	t.Run("eligibility", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "no completed stay",
				mutate: func(b *builder.ReviewBuilder) { b.AsIneligible() },
				errIs:  review.ErrNotEligible,
			},
			{
				name:   "already reviewed",
				mutate: func(b *builder.ReviewBuilder) { b.AsAlreadyReviewed() },
				errIs:  review.ErrReviewAlreadyExists,
			},
		})

		_, err := builder.NewReviewBuilder().AsIneligible().BuildDomain()
		assert.True(t, errs.Is(err, errs.ErrNotEligible))
		_, err = builder.NewReviewBuilder().AsAlreadyReviewed().BuildDomain()
		assert.True(t, errs.Is(err, errs.ErrDuplicate))
	})

	t.Run("edit", func(t *testing.T) {
		r, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		later := r.CreatedAt().Add(time.Hour)

		require.ErrorIs(t, r.Edit(uuid.New(), ptr.Of(3), nil, later), review.ErrReviewNotFound)

		require.NoError(t, r.Edit(r.UserID(), ptr.Of(3), nil, later))
		assert.Equal(t, 3, r.Rating().Value())
		assert.Equal(t, "Lovely stay, very clean and quiet.", r.Comment().String())
		assert.Equal(t, later, r.UpdatedAt())

		require.ErrorIs(t, r.Edit(r.UserID(), nil, ptr.Of("bad"), later), review.ErrCommentTooShort)
		assert.Equal(t, 3, r.Rating().Value())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
