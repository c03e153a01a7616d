package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"

	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/infra/repository/converter"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetPropertyByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Properties, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) error
	HasConfirmedOverlap(ctx context.Context, db sqlc.DBTX, arg sqlc.HasConfirmedOverlapParams) (bool, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

// Create maps the overlap exclusion constraint to KindExclusionViolated so callers can
// report a date conflict even when two transactions raced past HasConflict.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if _, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	prop, err := r.queries.GetPropertyByID(ctx, tx, row.PropertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking property", err)
	}

	b, err := converter.BookingFromRow(row, prop.Currency)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking row", err)
	}
	return b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	params := sqlc.UpdateBookingStatusParams{
		ID:        b.ID(),
		Status:    b.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	}
	if err := r.queries.UpdateBookingStatus(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	return nil
}

// HasConflict reports whether a confirmed booking of the property overlaps stay.
func (r *BookingRepository) HasConflict(ctx context.Context, tx sqlc.DBTX, propertyID uuid.UUID, stay booking.Stay) (bool, error) {
	conflict, err := r.queries.HasConfirmedOverlap(ctx, tx, sqlc.HasConfirmedOverlapParams{
		PropertyID: propertyID,
		CheckIn:    pgconv.DateToPgtype(stay.CheckIn()),
		CheckOut:   pgconv.DateToPgtype(stay.CheckOut()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return conflict, nil
}
