package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/review"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrReviewedPropertyNotFound = errs.Domain(errs.ErrNotFound, "Property not found")

type CreateReviewInput struct {
	PropertyID uuid.UUID
	Rating     int
	Comment    string
}

type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

type ReviewCommands interface {
	Create(ctx context.Context, principal auth.Principal, in CreateReviewInput) (uuid.UUID, error)
	Update(ctx context.Context, principal auth.Principal, id uuid.UUID, in UpdateReviewInput) error
	Delete(ctx context.Context, principal auth.Principal, id uuid.UUID) error
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.RatingCache
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, cache shared.RatingCache, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, cache: cache, clock: clk}
}

func (uc *reviewCommandsImpl) Create(ctx context.Context, principal auth.Principal, in CreateReviewInput) (uuid.UUID, error) {
	if err := auth.Authorize(principal); err != nil {
		return uuid.Nil, err
	}

	var created *review.Review
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().PropertyOwnership(ctx, in.PropertyID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReviewedPropertyNotFound
			}
			return err
		}

		eligibility, err := tx.Reads().ReviewEligibility(ctx, principal.UserID, in.PropertyID)
		if err != nil {
			return err
		}

		created, err = review.NewReview(principal.UserID, in.PropertyID, eligibility, in.Rating, in.Comment, uc.clock.Now())
		if err != nil {
			return err
		}

		if err := tx.Reviews().Create(ctx, tx.DB(), created); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return review.ErrReviewAlreadyExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.cache.Invalidate(ctx, in.PropertyID)
	return created.ID(), nil
}

func (uc *reviewCommandsImpl) Update(ctx context.Context, principal auth.Principal, id uuid.UUID, in UpdateReviewInput) error {
	if err := auth.Authorize(principal); err != nil {
		return err
	}

	var propertyID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := findReview(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := rev.Edit(principal.UserID, in.Rating, in.Comment, uc.clock.Now()); err != nil {
			return err
		}
		propertyID = rev.PropertyID()
		return tx.Reviews().Update(ctx, tx.DB(), rev)
	})
	if err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, propertyID)
	return nil
}

func (uc *reviewCommandsImpl) Delete(ctx context.Context, principal auth.Principal, id uuid.UUID) error {
	if err := auth.Authorize(principal); err != nil {
		return err
	}

	var propertyID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := findReview(ctx, tx, id)
		if err != nil {
			return err
		}
		if !rev.IsAuthoredBy(principal.UserID) {
			return review.ErrReviewNotFound
		}
		propertyID = rev.PropertyID()
		return tx.Reviews().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, propertyID)
	return nil
}

func findReview(ctx context.Context, tx shared.Tx, id uuid.UUID) (*review.Review, error) {
	rev, err := tx.Reviews().FindByID(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, review.ErrReviewNotFound
		}
		return nil, err
	}
	return rev, nil
}
