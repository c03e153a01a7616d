package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.Domain(errs.ErrNotFound, "User not found")

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	List(ctx context.Context, role *string, page Page) ([]*UserView, int64, error)
}

type UserQueries interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserView, error)
	List(ctx context.Context, principal auth.Principal, role *string, page Page) (*PageResult[*UserView], error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (q *userQueriesImpl) List(ctx context.Context, principal auth.Principal, role *string, page Page) (*PageResult[*UserView], error) {
	if err := auth.Authorize(principal, user.RoleAdmin); err != nil {
		return nil, err
	}
	if role != nil {
		if _, err := user.NewRole(*role); err != nil {
			return nil, err
		}
	}
	items, total, err := q.readStore.List(ctx, role, page)
	if err != nil {
		return nil, err
	}
	return &PageResult[*UserView]{Items: items, Pagination: NewPagination(page, total)}, nil
}
