package payment

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidMethod    = errs.Domain(errs.ErrValidation, "payment method must be one of card, esewa, khalti")
	ErrInvalidProvider  = errs.Domain(errs.ErrValidation, "payment provider must be one of stripe, esewa, khalti")
	ErrAlreadyConfirmed = errs.Domain(errs.ErrDuplicate, "Payment has already been confirmed")
	ErrIntentFailed     = errs.Domain(errs.ErrPaymentFailed, "Payment failed")
	ErrIntentNotFound   = errs.Domain(errs.ErrNotFound, "Payment intent not found")
	ErrAmountMismatch   = errs.Domain(errs.ErrValidation, "total amount does not match the nightly price for the selected dates")
	ErrCurrencyMismatch = errs.Domain(errs.ErrValidation, "currency does not match the property currency")
)

// Metadata is the prospective booking captured when the intent is created.
type Metadata struct {
	PropertyID uuid.UUID `json:"propertyId"`
	UserID     uuid.UUID `json:"userId"`
	CheckIn    string    `json:"checkIn"`
	CheckOut   string    `json:"checkOut"`
	Guests     int       `json:"guests"`
	Notes      string    `json:"notes,omitempty"`
}

func NewMetadata(propertyID, userID uuid.UUID, stay booking.Stay, guests booking.Guests, notes booking.Notes) Metadata {
	return Metadata{
		PropertyID: propertyID,
		UserID:     userID,
		CheckIn:    stay.CheckIn().Format(booking.DateLayout),
		CheckOut:   stay.CheckOut().Format(booking.DateLayout),
		Guests:     guests.Int(),
		Notes:      notes.String(),
	}
}

func (m Metadata) Stay() (booking.Stay, error) {
	return booking.ParseStay(m.CheckIn, m.CheckOut)
}

type Intent struct {
	id           string
	clientSecret string
	userID       uuid.UUID
	amount       money.Money
	method       Method
	status       IntentStatus
	metadata     Metadata
	bookingID    *uuid.UUID
	createdAt    time.Time
	updatedAt    time.Time
}

func NewIntent(userID uuid.UUID, amount money.Money, method Method, metadata Metadata, now time.Time) (*Intent, error) {
	suffix, err := randomToken(9)
	if err != nil {
		return nil, errs.Wrap(err, "generate intent id")
	}
	secret, err := randomToken(12)
	if err != nil {
		return nil, errs.Wrap(err, "generate client secret")
	}
	id := fmt.Sprintf("pi_%d_%s", now.UnixMilli(), suffix)
	return &Intent{
		id:           id,
		clientSecret: fmt.Sprintf("%s_secret_%s", id, secret),
		userID:       userID,
		amount:       amount,
		method:       method,
		status:       IntentRequiresPaymentMethod,
		metadata:     metadata,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructIntent(
	id, clientSecret string,
	userID uuid.UUID,
	amount money.Money,
	method Method,
	status IntentStatus,
	metadata Metadata,
	bookingID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Intent {
	return &Intent{
		id:           id,
		clientSecret: clientSecret,
		userID:       userID,
		amount:       amount,
		method:       method,
		status:       status,
		metadata:     metadata,
		bookingID:    bookingID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// CheckConfirmable guards against a second confirmation of the same intent.
func (i *Intent) CheckConfirmable() error {
	switch i.status {
	case IntentSucceeded:
		return ErrAlreadyConfirmed
	case IntentFailed:
		return ErrIntentFailed
	}
	return nil
}

func (i *Intent) MarkSucceeded(bookingID uuid.UUID, now time.Time) error {
	if err := i.CheckConfirmable(); err != nil {
		return err
	}
	i.status = IntentSucceeded
	i.bookingID = &bookingID
	i.updatedAt = now
	return nil
}

func (i *Intent) MarkFailed(now time.Time) {
	i.status = IntentFailed
	i.updatedAt = now
}

func (i *Intent) ID() string            { return i.id }
func (i *Intent) ClientSecret() string  { return i.clientSecret }
func (i *Intent) UserID() uuid.UUID     { return i.userID }
func (i *Intent) Amount() money.Money   { return i.amount }
func (i *Intent) Method() Method        { return i.method }
func (i *Intent) Status() IntentStatus  { return i.status }
func (i *Intent) Metadata() Metadata    { return i.metadata }
func (i *Intent) BookingID() *uuid.UUID { return i.bookingID }
func (i *Intent) CreatedAt() time.Time  { return i.createdAt }
func (i *Intent) UpdatedAt() time.Time  { return i.updatedAt }

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
