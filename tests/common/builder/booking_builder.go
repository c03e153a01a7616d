//go:build unit || e2e

package builder

import (
	"time"

	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/domain/money"
	reqdto "rental-marketplace/internal/handler/dto/request"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"
	"rental-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	PropertyID      uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	TotalMinor      int64
	Currency        string
	Notes           string
	Status          booking.Status
	PaymentIntentID string
	PaymentMethod   string
}

// NewBookingBuilder starts with a two night confirmed stay a month out at 5000.00 per night.
func NewBookingBuilder() *BookingBuilder {
	checkIn := time.Now().UTC().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	return &BookingBuilder{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		PropertyID: uuid.New(),
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, 2),
		Guests:     2,
		TotalMinor: 1000000,
		Currency:   money.DefaultCurrency,
		Status:     booking.StatusConfirmed,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithUser(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithProperty(propertyID uuid.UUID) *BookingBuilder {
	b.PropertyID = propertyID
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

// WithStay sets dates relative to today, e.g. WithStay(-5, -2) for a past stay.
func (b *BookingBuilder) WithStay(checkInOffsetDays, checkOutOffsetDays int) *BookingBuilder {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	b.CheckIn = today.AddDate(0, 0, checkInOffsetDays)
	b.CheckOut = today.AddDate(0, 0, checkOutOffsetDays)
	return b
}

func (b *BookingBuilder) WithPayment(intentID, method string) *BookingBuilder {
	b.PaymentIntentID = intentID
	b.PaymentMethod = method
	return b
}

func (b *BookingBuilder) Stay() booking.Stay {
	stay, err := booking.NewStay(b.CheckIn, b.CheckOut)
	if err != nil {
		panic(err)
	}
	return stay
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	notes, err := booking.NewNotes(b.Notes)
	if err != nil {
		panic(err)
	}
	var link *booking.PaymentLink
	if b.PaymentIntentID != "" {
		link = &booking.PaymentLink{IntentID: b.PaymentIntentID, Method: b.PaymentMethod, CompletedAt: time.Now()}
	}
	now := time.Now()
	return booking.ReconstructBooking(
		b.ID, b.UserID, b.PropertyID, b.Stay(), booking.Guests(b.Guests),
		money.Reconstruct(b.TotalMinor, b.Currency), notes, b.Status, link, now, now,
	)
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	now := time.Now()
	row := sqlc.Bookings{
		ID:         b.ID,
		UserID:     b.UserID,
		PropertyID: b.PropertyID,
		CheckIn:    pgconv.DateToPgtype(b.CheckIn),
		CheckOut:   pgconv.DateToPgtype(b.CheckOut),
		Guests:     int32(b.Guests),
		TotalPrice: pgconv.MinorUnitsToNumeric(b.TotalMinor),
		Status:     string(b.Status),
		CreatedAt:  pgconv.TimeToPgtype(now),
		UpdatedAt:  pgconv.TimeToPgtype(now),
	}
	if b.Notes != "" {
		row.Notes = pgconv.StringToPgtype(b.Notes)
	}
	if b.PaymentIntentID != "" {
		row.PaymentIntentID = pgconv.StringToPgtype(b.PaymentIntentID)
		row.PaymentMethod = pgconv.StringToPgtype(b.PaymentMethod)
		row.PaymentCompletedAt = pgconv.TimeToPgtype(now)
	}
	return row
}

func (b *BookingBuilder) BuildDetailView() *queries.BookingDetailView {
	now := time.Now()
	return &queries.BookingDetailView{
		ID:              b.ID,
		UserID:          b.UserID,
		PropertyID:      b.PropertyID,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Guests:          b.Guests,
		TotalPrice:      money.Reconstruct(b.TotalMinor, b.Currency).Major(),
		Currency:        b.Currency,
		Status:          string(b.Status),
		CreatedAt:       now,
		UpdatedAt:       now,
		PropertyTitle:   "Lakeside cottage",
		PropertyAddress: "Lakeside Road 12",
		PropertyCity:    "Pokhara",
		PropertyState:   "Gandaki",
		PropertyCountry: "Nepal",
		PropertyImages:  []string{},
		HostFirstName:   "Ram",
		HostLastName:    "Thapa",
		HostEmail:       "host@example.com",
	}
}

func (b *BookingBuilder) BuildCreateDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		PropertyID: b.PropertyID,
		CheckIn:    b.CheckIn.Format(booking.DateLayout),
		CheckOut:   b.CheckOut.Format(booking.DateLayout),
		Guests:     b.Guests,
		Notes:      b.Notes,
	}
}
