package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/usecase/shared"
)

var ErrUserNotFound = errs.Domain(errs.ErrNotFound, "User not found")

type UserCommands interface {
	UpdateProfile(ctx context.Context, principal auth.Principal, patch user.ProfilePatch) error
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, clock: clk}
}

func (uc *userCommandsImpl) UpdateProfile(ctx context.Context, principal auth.Principal, patch user.ProfilePatch) error {
	if err := auth.Authorize(principal); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, tx.DB(), principal.UserID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if err := u.UpdateProfile(patch, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Users().UpdateProfile(ctx, tx.DB(), u)
	})
}
