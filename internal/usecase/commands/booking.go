package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/domain/property"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.Domain(errs.ErrNotFound, "Booking not found")

type CreateBookingInput struct {
	PropertyID uuid.UUID
	CheckIn    string
	CheckOut   string
	Guests     int
	TotalPrice *float64
	Notes      string
}

type BookingCommands interface {
	Create(ctx context.Context, principal auth.Principal, in CreateBookingInput) (uuid.UUID, error)
	Cancel(ctx context.Context, principal auth.Principal, id uuid.UUID) error
	Complete(ctx context.Context, principal auth.Principal, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk}
}

// Create records a pending booking. Pending bookings never block the calendar; only payment confirmation does.
func (uc *bookingCommandsImpl) Create(ctx context.Context, principal auth.Principal, in CreateBookingInput) (uuid.UUID, error) {
	if err := auth.Authorize(principal); err != nil {
		return uuid.Nil, err
	}

	stay, err := booking.ParseStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return uuid.Nil, err
	}
	guests, err := booking.NewGuests(in.Guests)
	if err != nil {
		return uuid.Nil, err
	}
	notes, err := booking.NewNotes(in.Notes)
	if err != nil {
		return uuid.Nil, err
	}

	var created *booking.Booking
	err = uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := loadBookable(ctx, tx, in.PropertyID, guests)
		if err != nil {
			return err
		}
		if err := ensureAvailable(ctx, tx, p.ID(), stay); err != nil {
			return err
		}

		total, err := booking.ResolveTotal(p.Price(), stay, in.TotalPrice)
		if err != nil {
			return err
		}

		created = booking.NewPending(principal.UserID, p.ID(), stay, guests, total, notes, uc.clock.Now())
		return tx.Bookings().Create(ctx, tx.DB(), created)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return created.ID(), nil
}

func (uc *bookingCommandsImpl) Cancel(ctx context.Context, principal auth.Principal, id uuid.UUID) error {
	if err := auth.Authorize(principal); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := findBooking(ctx, tx, id)
		if err != nil {
			return err
		}
		// other guests' bookings are indistinguishable from missing ones
		if !b.IsOwnedBy(principal.UserID) {
			return ErrBookingNotFound
		}
		now := uc.clock.Now()
		if err := b.Cancel(clock.DateOf(now), now); err != nil {
			return err
		}
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), b)
	})
}

// Complete closes a confirmed stay after check-out. Only the property's host or an admin may do it.
func (uc *bookingCommandsImpl) Complete(ctx context.Context, principal auth.Principal, id uuid.UUID) error {
	if err := auth.Authorize(principal, user.RoleHost, user.RoleAdmin); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := findBooking(ctx, tx, id)
		if err != nil {
			return err
		}
		owner, err := tx.Reads().PropertyOwnership(ctx, b.PropertyID())
		if err != nil {
			return err
		}
		if err := auth.AuthorizeOwner(principal, owner.HostID); err != nil {
			return err
		}
		now := uc.clock.Now()
		if err := b.Complete(clock.DateOf(now), now); err != nil {
			return err
		}
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), b)
	})
}

func findBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// loadBookable returns the property only if it is listed, available and large enough for guests.
func loadBookable(ctx context.Context, tx shared.Tx, propertyID uuid.UUID, guests booking.Guests) (*property.Property, error) {
	p, err := tx.Properties().FindByID(ctx, tx.DB(), propertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, property.ErrNotBookable
		}
		return nil, err
	}
	if err := p.CheckBookable(guests.Int()); err != nil {
		return nil, err
	}
	return p, nil
}

func ensureAvailable(ctx context.Context, tx shared.Tx, propertyID uuid.UUID, stay booking.Stay) error {
	conflict, err := tx.Bookings().HasConflict(ctx, tx.DB(), propertyID, stay)
	if err != nil {
		return err
	}
	if conflict {
		return booking.ErrDatesUnavailable
	}
	return nil
}
