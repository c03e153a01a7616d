package booking

import (
	"time"

	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled   = errs.Domain(errs.ErrInvalidState, "Booking is already cancelled")
	ErrCancelCompleted    = errs.Domain(errs.ErrInvalidState, "Cannot cancel completed booking")
	ErrStayStarted        = errs.Domain(errs.ErrInvalidState, "Cannot cancel a stay that has already started")
	ErrNotConfirmed       = errs.Domain(errs.ErrInvalidState, "Only confirmed bookings can be completed")
	ErrStayNotOver        = errs.Domain(errs.ErrInvalidState, "Booking cannot be completed before the check-out date")
	ErrMissingPaymentLink = errs.Domain(errs.ErrValidation, "payment intent id is required")
)

// PaymentLink records the payment that produced a confirmed booking.
type PaymentLink struct {
	IntentID    string
	Method      string
	CompletedAt time.Time
}

type Booking struct {
	id         uuid.UUID
	userID     uuid.UUID
	propertyID uuid.UUID
	stay       Stay
	guests     Guests
	totalPrice money.Money
	notes      Notes
	status     Status
	payment    *PaymentLink
	createdAt  time.Time
	updatedAt  time.Time
}

// NewPending is the direct-booking path; the result never blocks other bookings until confirmed.
func NewPending(userID, propertyID uuid.UUID, stay Stay, guests Guests, total money.Money, notes Notes, now time.Time) *Booking {
	return &Booking{
		id:         uuid.New(),
		userID:     userID,
		propertyID: propertyID,
		stay:       stay,
		guests:     guests,
		totalPrice: total,
		notes:      notes,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}
}

// NewConfirmed is the only way to create a booking already in the confirmed state.
func NewConfirmed(userID, propertyID uuid.UUID, stay Stay, guests Guests, total money.Money, notes Notes, link PaymentLink, now time.Time) (*Booking, error) {
	if link.IntentID == "" {
		return nil, ErrMissingPaymentLink
	}
	b := NewPending(userID, propertyID, stay, guests, total, notes, now)
	b.status = StatusConfirmed
	b.payment = &link
	return b, nil
}

func ReconstructBooking(
	id, userID, propertyID uuid.UUID,
	stay Stay,
	guests Guests,
	totalPrice money.Money,
	notes Notes,
	status Status,
	payment *PaymentLink,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		userID:     userID,
		propertyID: propertyID,
		stay:       stay,
		guests:     guests,
		totalPrice: totalPrice,
		notes:      notes,
		status:     status,
		payment:    payment,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Cancel moves pending or confirmed bookings to cancelled. A confirmed stay can only be cancelled before check-in.
func (b *Booking) Cancel(today, now time.Time) error {
	switch b.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrCancelCompleted
	case StatusConfirmed:
		if b.stay.HasStarted(today) {
			return ErrStayStarted
		}
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

func (b *Booking) Complete(today, now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	if !b.stay.HasEnded(today) {
		return ErrStayNotOver
	}
	b.status = StatusCompleted
	b.updatedAt = now
	return nil
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) UserID() uuid.UUID       { return b.userID }
func (b *Booking) PropertyID() uuid.UUID   { return b.propertyID }
func (b *Booking) Stay() Stay              { return b.stay }
func (b *Booking) Guests() Guests          { return b.guests }
func (b *Booking) TotalPrice() money.Money { return b.totalPrice }
func (b *Booking) Notes() Notes            { return b.notes }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) Payment() *PaymentLink   { return b.payment }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
