package readstore

import (
	"context"

	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"
	"rental-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	ListBookingsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserParams) ([]sqlc.ListBookingsByUserRow, error)
	CountBookingsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CountBookingsByUserParams) (int64, error)
	GetBookingDetail(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingDetailParams) (sqlc.GetBookingDetailRow, error)
	ListBookingsByProperty(ctx context.Context, db sqlc.DBTX, propertyID uuid.UUID) ([]sqlc.ListBookingsByPropertyRow, error)
	GetPropertyByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Properties, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID, status *string, page queries.Page) ([]*queries.BookingListItem, int64, error) {
	statusFilter := pgconv.StringPtrToPgtype(status)
	rows, err := r.queries.ListBookingsByUser(ctx, r.db, sqlc.ListBookingsByUserParams{
		UserID: userID,
		Limit:  page.Limit(),
		Offset: page.Offset(),
		Status: statusFilter,
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list bookings", err)
	}
	total, err := r.queries.CountBookingsByUser(ctx, r.db, sqlc.CountBookingsByUserParams{
		UserID: userID,
		Status: statusFilter,
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count bookings", err)
	}

	items := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.BookingListItem{
			ID:              row.ID,
			PropertyID:      row.PropertyID,
			CheckIn:         pgconv.DateFromPgtype(row.CheckIn),
			CheckOut:        pgconv.DateFromPgtype(row.CheckOut),
			Guests:          int(row.Guests),
			TotalPrice:      amount(row.TotalPrice),
			Currency:        row.PropertyCurrency,
			Status:          row.Status,
			PaymentMethod:   pgconv.StringPtrFromPgtype(row.PaymentMethod),
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
			PropertyTitle:   row.PropertyTitle,
			PropertyCity:    row.PropertyCity,
			PropertyCountry: row.PropertyCountry,
			PropertyImages:  nonNilStrings(row.PropertyImages),
			HostFirstName:   row.HostFirstName,
			HostLastName:    row.HostLastName,
		})
	}
	return items, total, nil
}

func (r *BookingReadStore) FindDetail(ctx context.Context, id, userID uuid.UUID) (*queries.BookingDetailView, error) {
	row, err := r.queries.GetBookingDetail(ctx, r.db, sqlc.GetBookingDetailParams{ID: id, UserID: userID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking detail", err)
	}
	return &queries.BookingDetailView{
		ID:                 row.ID,
		UserID:             row.UserID,
		PropertyID:         row.PropertyID,
		CheckIn:            pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:           pgconv.DateFromPgtype(row.CheckOut),
		Guests:             int(row.Guests),
		TotalPrice:         amount(row.TotalPrice),
		Currency:           row.PropertyCurrency,
		Notes:              pgconv.StringPtrFromPgtype(row.Notes),
		Status:             row.Status,
		PaymentIntentID:    pgconv.StringPtrFromPgtype(row.PaymentIntentID),
		PaymentMethod:      pgconv.StringPtrFromPgtype(row.PaymentMethod),
		PaymentCompletedAt: pgconv.TimePtrFromPgtype(row.PaymentCompletedAt),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
		PropertyTitle:      row.PropertyTitle,
		PropertyAddress:    row.PropertyAddress,
		PropertyCity:       row.PropertyCity,
		PropertyState:      row.PropertyState,
		PropertyCountry:    row.PropertyCountry,
		PropertyImages:     nonNilStrings(row.PropertyImages),
		HostFirstName:      row.HostFirstName,
		HostLastName:       row.HostLastName,
		HostEmail:          row.HostEmail,
		HostPhone:          pgconv.StringPtrFromPgtype(row.HostPhone),
	}, nil
}

func (r *BookingReadStore) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*queries.HostBookingRow, error) {
	rows, err := r.queries.ListBookingsByProperty(ctx, r.db, propertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by property", err)
	}
	items := make([]*queries.HostBookingRow, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.HostBookingRow{
			ID:                 row.ID,
			GuestName:          row.GuestFirstName + " " + row.GuestLastName,
			GuestEmail:         row.GuestEmail,
			CheckIn:            pgconv.DateFromPgtype(row.CheckIn),
			CheckOut:           pgconv.DateFromPgtype(row.CheckOut),
			Guests:             int(row.Guests),
			TotalPrice:         amount(row.TotalPrice),
			Status:             row.Status,
			PaymentMethod:      pgconv.StringPtrFromPgtype(row.PaymentMethod),
			PaymentCompletedAt: pgconv.TimePtrFromPgtype(row.PaymentCompletedAt),
			CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items, nil
}

// FindPropertyOwner ignores is_active so hosts keep access to bookings of delisted properties.
func (r *BookingReadStore) FindPropertyOwner(ctx context.Context, propertyID uuid.UUID) (*queries.PropertyOwner, error) {
	row, err := r.queries.GetPropertyByID(ctx, r.db, propertyID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property owner", err)
	}
	return &queries.PropertyOwner{ID: row.ID, HostID: row.HostID, Title: row.Title}, nil
}
