//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/review"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/ptr"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/internal/usecase/shared"
	"rental-marketplace/tests/common/builder"
	sharedmock "rental-marketplace/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReviewCommands_Create(t *testing.T) {
	ctx := context.Background()
	guest := builder.GuestPrincipal()
	propertyID := uuid.New()
	bookingID := uuid.New()

	tests := []struct {
		name           string
		in             commands.CreateReviewInput
		setup          func(h *txHarness)
		wantErr        error
		wantInvalidate bool
	}{
		{
			name: "success: guest with a completed stay",
			in:   commands.CreateReviewInput{PropertyID: propertyID, Rating: 4, Comment: "Great view of the lake."},
			setup: func(h *txHarness) {
				h.reads.EXPECT().PropertyOwnership(ctx, propertyID).Return(&shared.PropertyOwnership{ID: propertyID}, nil)
				h.reads.EXPECT().ReviewEligibility(ctx, guest.UserID, propertyID).
					Return(review.Eligibility{CompletedBookingID: &bookingID}, nil)
				h.reviews.EXPECT().Create(ctx, nil, gomock.Any()).DoAndReturn(func(_ context.Context, _ any, r *review.Review) error {
					assert.Equal(t, bookingID, *r.BookingID())
					assert.Equal(t, 4, r.Rating().Value())
					return nil
				})
			},
			wantInvalidate: true,
		},
		{
			name: "error: property does not exist",
			in:   commands.CreateReviewInput{PropertyID: propertyID, Rating: 4, Comment: "Great view of the lake."},
			setup: func(h *txHarness) {
				h.reads.EXPECT().PropertyOwnership(ctx, propertyID).Return(nil, notFound("property"))
			},
			wantErr: commands.ErrReviewedPropertyNotFound,
		},
		{
			name: "error: no completed stay",
			in:   commands.CreateReviewInput{PropertyID: propertyID, Rating: 4, Comment: "Great view of the lake."},
			setup: func(h *txHarness) {
				h.reads.EXPECT().PropertyOwnership(ctx, propertyID).Return(&shared.PropertyOwnership{ID: propertyID}, nil)
				h.reads.EXPECT().ReviewEligibility(ctx, guest.UserID, propertyID).Return(review.Eligibility{}, nil)
			},
			wantErr: review.ErrNotEligible,
		},
		{
			name: "error: already reviewed",
			in:   commands.CreateReviewInput{PropertyID: propertyID, Rating: 4, Comment: "Great view of the lake."},
			setup: func(h *txHarness) {
				h.reads.EXPECT().PropertyOwnership(ctx, propertyID).Return(&shared.PropertyOwnership{ID: propertyID}, nil)
				h.reads.EXPECT().ReviewEligibility(ctx, guest.UserID, propertyID).
					Return(review.Eligibility{CompletedBookingID: &bookingID, AlreadyReviewed: true}, nil)
			},
			wantErr: review.ErrReviewAlreadyExists,
		},
		{
			name: "error: concurrent duplicate hits the unique constraint",
			in:   commands.CreateReviewInput{PropertyID: propertyID, Rating: 4, Comment: "Great view of the lake."},
			setup: func(h *txHarness) {
				h.reads.EXPECT().PropertyOwnership(ctx, propertyID).Return(&shared.PropertyOwnership{ID: propertyID}, nil)
				h.reads.EXPECT().ReviewEligibility(ctx, guest.UserID, propertyID).
					Return(review.Eligibility{CompletedBookingID: &bookingID}, nil)
				h.reviews.EXPECT().Create(ctx, nil, gomock.Any()).Return(repoErr(infra.KindDuplicateKey, "reviews_one_per_guest"))
			},
			wantErr: review.ErrReviewAlreadyExists,
		},
		{
			name: "error: comment too short",
			in:   commands.CreateReviewInput{PropertyID: propertyID, Rating: 4, Comment: "ok"},
			setup: func(h *txHarness) {
				h.reads.EXPECT().PropertyOwnership(ctx, propertyID).Return(&shared.PropertyOwnership{ID: propertyID}, nil)
				h.reads.EXPECT().ReviewEligibility(ctx, guest.UserID, propertyID).
					Return(review.Eligibility{CompletedBookingID: &bookingID}, nil)
			},
			wantErr: review.ErrCommentTooShort,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := newTxHarness(ctrl)
			cache := sharedmock.NewMockRatingCache(ctrl)
			tc.setup(h)
			if tc.wantInvalidate {
				cache.EXPECT().Invalidate(ctx, propertyID)
			}

			id, err := commands.NewReviewCommands(h.uow, cache, h.clock).Create(ctx, guest, tc.in)

			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				assert.Equal(t, uuid.Nil, id)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, id)
		})
	}
}

func TestReviewCommands_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	author := builder.GuestPrincipal()

	t.Run("success: author edits rating", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		cache := sharedmock.NewMockRatingCache(ctrl)
		rev := builder.NewReviewBuilder().WithUser(author.UserID).BuildDomain()
		h.reviews.EXPECT().FindByID(ctx, nil, rev.ID()).Return(rev, nil)
		h.reviews.EXPECT().Update(ctx, nil, rev).Return(nil)
		cache.EXPECT().Invalidate(ctx, rev.PropertyID())

		err := commands.NewReviewCommands(h.uow, cache, h.clock).
			Update(ctx, author, rev.ID(), commands.UpdateReviewInput{Rating: ptr.Of(2)})

		require.NoError(t, err)
		assert.Equal(t, 2, rev.Rating().Value())
	})

	t.Run("error: non-author edit looks like a missing review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		cache := sharedmock.NewMockRatingCache(ctrl)
		rev := builder.NewReviewBuilder().BuildDomain()
		h.reviews.EXPECT().FindByID(ctx, nil, rev.ID()).Return(rev, nil)

		err := commands.NewReviewCommands(h.uow, cache, h.clock).
			Update(ctx, author, rev.ID(), commands.UpdateReviewInput{Rating: ptr.Of(2)})

		assert.True(t, errors.Is(err, review.ErrReviewNotFound))
	})

	t.Run("success: author deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		cache := sharedmock.NewMockRatingCache(ctrl)
		rev := builder.NewReviewBuilder().WithUser(author.UserID).BuildDomain()
		h.reviews.EXPECT().FindByID(ctx, nil, rev.ID()).Return(rev, nil)
		h.reviews.EXPECT().Delete(ctx, nil, rev.ID()).Return(nil)
		cache.EXPECT().Invalidate(ctx, rev.PropertyID())

		err := commands.NewReviewCommands(h.uow, cache, h.clock).Delete(ctx, author, rev.ID())

		require.NoError(t, err)
	})

	t.Run("error: non-author delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		cache := sharedmock.NewMockRatingCache(ctrl)
		rev := builder.NewReviewBuilder().BuildDomain()
		h.reviews.EXPECT().FindByID(ctx, nil, rev.ID()).Return(rev, nil)

		err := commands.NewReviewCommands(h.uow, cache, h.clock).Delete(ctx, author, rev.ID())

		assert.True(t, errors.Is(err, review.ErrReviewNotFound))
	})

	t.Run("error: unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		err := commands.NewReviewCommands(h.uow, sharedmock.NewMockRatingCache(ctrl), h.clock).
			Delete(ctx, auth.Principal{}, uuid.New())
		assert.True(t, errors.Is(err, auth.ErrUnauthenticated))
	})
}
