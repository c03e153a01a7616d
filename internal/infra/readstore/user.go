package readstore

import (
	"context"

	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	ListUsers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUsersParams) ([]sqlc.Users, error)
	CountUsers(ctx context.Context, db sqlc.DBTX, role pgtype.Text) (int64, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserView(row), nil
}

// FindCredentials returns what login needs, including the password hash.
func (r *UserReadStore) FindCredentials(ctx context.Context, email string) (*shared.UserCredentials, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &shared.UserCredentials{
		ID:           row.ID,
		Email:        row.Email,
		Role:         row.Role,
		PasswordHash: row.PasswordHash,
		IsActive:     row.IsActive,
	}, nil
}

func (r *UserReadStore) List(ctx context.Context, role *string, page queries.Page) ([]*queries.UserView, int64, error) {
	roleFilter := pgconv.StringPtrToPgtype(role)
	rows, err := r.queries.ListUsers(ctx, r.db, sqlc.ListUsersParams{
		Limit:  page.Limit(),
		Offset: page.Offset(),
		Role:   roleFilter,
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list users", err)
	}
	total, err := r.queries.CountUsers(ctx, r.db, roleFilter)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count users", err)
	}

	views := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toUserView(row))
	}
	return views, total, nil
}

func toUserView(row sqlc.Users) *queries.UserView {
	return &queries.UserView{
		ID:         row.ID,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		Email:      row.Email,
		Phone:      pgconv.StringPtrFromPgtype(row.Phone),
		Role:       row.Role,
		Avatar:     pgconv.StringPtrFromPgtype(row.Avatar),
		IsVerified: row.IsVerified,
		IsActive:   row.IsActive,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
