package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"

	"rental-marketplace/internal/domain/review"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/infra/repository/converter"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) (sqlc.Reviews, error)
	GetReviewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reviews, error)
	UpdateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReviewParams) error
	DeleteReview(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type ReviewRepository struct {
	queries ReviewWriteQueries
}

func NewReviewRepository(queries ReviewWriteQueries) *ReviewRepository {
	return &ReviewRepository{queries: queries}
}

func (r *ReviewRepository) Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error {
	if _, err := r.queries.CreateReview(ctx, tx, converter.ReviewToCreateParams(rev)); err != nil {
		return infra.WrapRepoErr("failed to create review", err)
	}
	return nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*review.Review, error) {
	row, err := r.queries.GetReviewByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review by ID", err)
	}

	rev, err := converter.ReviewFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert review row", err)
	}
	return rev, nil
}

func (r *ReviewRepository) Update(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error {
	if err := r.queries.UpdateReview(ctx, tx, converter.ReviewToUpdateParams(rev)); err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.DeleteReview(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	return nil
}
