package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/property"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrPropertyNotFound = errs.Domain(errs.ErrNotFound, "Property not found or access denied")

type PropertyCommands interface {
	Create(ctx context.Context, principal auth.Principal, draft property.Draft) (uuid.UUID, error)
	Update(ctx context.Context, principal auth.Principal, id uuid.UUID, patch property.Patch) error
	Delete(ctx context.Context, principal auth.Principal, id uuid.UUID) error
}

type propertyCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPropertyCommands(uow shared.UnitOfWork, clk clock.Clock) PropertyCommands {
	return &propertyCommandsImpl{uow: uow, clock: clk}
}

func (uc *propertyCommandsImpl) Create(ctx context.Context, principal auth.Principal, draft property.Draft) (uuid.UUID, error) {
	if err := auth.Authorize(principal, user.RoleHost, user.RoleAdmin); err != nil {
		return uuid.Nil, err
	}

	p, err := property.NewProperty(draft, principal.UserID, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Properties().Create(ctx, tx.DB(), p)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return p.ID(), nil
}

func (uc *propertyCommandsImpl) Update(ctx context.Context, principal auth.Principal, id uuid.UUID, patch property.Patch) error {
	if err := auth.Authorize(principal, user.RoleHost, user.RoleAdmin); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := uc.loadOwned(ctx, tx, principal, id)
		if err != nil {
			return err
		}
		if err := p.Apply(patch, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Properties().Update(ctx, tx.DB(), p)
	})
}

// Delete is a soft delete: the listing disappears from search but its bookings and reviews stay readable.
func (uc *propertyCommandsImpl) Delete(ctx context.Context, principal auth.Principal, id uuid.UUID) error {
	if err := auth.Authorize(principal, user.RoleHost, user.RoleAdmin); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := uc.loadOwned(ctx, tx, principal, id)
		if err != nil {
			return err
		}
		p.Deactivate(uc.clock.Now())
		return tx.Properties().Deactivate(ctx, tx.DB(), p)
	})
}

func (uc *propertyCommandsImpl) loadOwned(ctx context.Context, tx shared.Tx, principal auth.Principal, id uuid.UUID) (*property.Property, error) {
	p, err := tx.Properties().FindByID(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	if !p.IsActive() {
		return nil, ErrPropertyNotFound
	}
	if err := auth.AuthorizeOwner(principal, p.HostID()); err != nil {
		return nil, err
	}
	return p, nil
}
