package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"

	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/infra/repository/converter"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	UpdateUserProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserProfileParams) error
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	if _, err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.FindUserByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert user row", err)
	}
	return u, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	if err := r.queries.UpdateUserProfile(ctx, tx, converter.UserToProfileParams(u)); err != nil {
		return infra.WrapRepoErr("failed to update user profile", err)
	}
	return nil
}
