package converter

import (
	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/domain/money"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	params := sqlc.CreateBookingParams{
		ID:         b.ID(),
		UserID:     b.UserID(),
		PropertyID: b.PropertyID(),
		CheckIn:    pgconv.DateToPgtype(b.Stay().CheckIn()),
		CheckOut:   pgconv.DateToPgtype(b.Stay().CheckOut()),
		Guests:     int32(b.Guests().Int()),
		TotalPrice: pgconv.MinorUnitsToNumeric(b.TotalPrice().Minor()),
		Notes:      pgconv.StringPtrToPgtype(b.Notes().Ptr()),
		Status:     b.Status().String(),
		CreatedAt:  pgconv.TimeToPgtype(b.CreatedAt()),
	}

	if link := b.Payment(); link != nil {
		params.PaymentIntentID = pgconv.StringToPgtype(link.IntentID)
		params.PaymentMethod = pgconv.StringToPgtype(link.Method)
		params.PaymentCompletedAt = pgconv.TimeToPgtype(link.CompletedAt)
	} else {
		params.PaymentIntentID = pgtype.Text{Valid: false}
		params.PaymentMethod = pgtype.Text{Valid: false}
		params.PaymentCompletedAt = pgtype.Timestamptz{Valid: false}
	}

	return params
}

// BookingFromRow rebuilds a booking; currency is not stored per booking and comes from the property.
func BookingFromRow(row sqlc.Bookings, currency string) (*booking.Booking, error) {
	stay, err := booking.NewStay(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut))
	if err != nil {
		return nil, errs.Wrap(err, "stored booking stay")
	}
	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrap(err, "stored booking status")
	}
	minor, err := pgconv.MinorUnitsFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, errs.Wrap(err, "stored booking total")
	}
	notes, err := booking.NewNotes(row.Notes.String)
	if err != nil {
		return nil, errs.Wrap(err, "stored booking notes")
	}

	var link *booking.PaymentLink
	if row.PaymentIntentID.Valid {
		link = &booking.PaymentLink{
			IntentID:    row.PaymentIntentID.String,
			Method:      row.PaymentMethod.String,
			CompletedAt: pgconv.TimeFromPgtype(row.PaymentCompletedAt),
		}
	}

	return booking.ReconstructBooking(
		row.ID,
		row.UserID,
		row.PropertyID,
		stay,
		booking.Guests(row.Guests),
		money.Reconstruct(minor, currency),
		notes,
		status,
		link,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
