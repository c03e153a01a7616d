package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"fmt"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.Domain(errs.ErrNotFound, "Booking not found")

type PropertyOwner struct {
	ID     uuid.UUID
	HostID uuid.UUID
	Title  string
}

type BookingExport struct {
	FileName    string
	ContentType string
	Content     []byte
}

type BookingReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, status *string, page Page) ([]*BookingListItem, int64, error)
	FindDetail(ctx context.Context, id, userID uuid.UUID) (*BookingDetailView, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*HostBookingRow, error)
	FindPropertyOwner(ctx context.Context, propertyID uuid.UUID) (*PropertyOwner, error)
}

// BookingExporter renders a host's booking rows into a downloadable document.
type BookingExporter interface {
	ContentType() string
	Extension() string
	Export(title string, rows []*HostBookingRow) ([]byte, error)
}

type BookingQueries interface {
	List(ctx context.Context, userID uuid.UUID, status *string, page Page) (*PageResult[*BookingListItem], error)
	Get(ctx context.Context, userID, bookingID uuid.UUID) (*BookingDetailView, error)
	ExportForProperty(ctx context.Context, principal auth.Principal, propertyID uuid.UUID) (*BookingExport, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
	exporter  BookingExporter
}

func NewBookingQueries(readStore BookingReadStore, exporter BookingExporter) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore, exporter: exporter}
}

func (q *bookingQueriesImpl) List(ctx context.Context, userID uuid.UUID, status *string, page Page) (*PageResult[*BookingListItem], error) {
	if status != nil {
		if _, err := booking.NewStatus(*status); err != nil {
			return nil, err
		}
	}
	items, total, err := q.readStore.ListByUser(ctx, userID, status, page)
	if err != nil {
		return nil, err
	}
	return &PageResult[*BookingListItem]{Items: items, Pagination: NewPagination(page, total)}, nil
}

// Get only returns bookings owned by userID; anything else looks like a missing booking.
func (q *bookingQueriesImpl) Get(ctx context.Context, userID, bookingID uuid.UUID) (*BookingDetailView, error) {
	view, err := q.readStore.FindDetail(ctx, bookingID, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ExportForProperty(ctx context.Context, principal auth.Principal, propertyID uuid.UUID) (*BookingExport, error) {
	if err := auth.Authorize(principal, user.RoleHost, user.RoleAdmin); err != nil {
		return nil, err
	}

	owner, err := q.readStore.FindPropertyOwner(ctx, propertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	if err := auth.AuthorizeOwner(principal, owner.HostID); err != nil {
		return nil, err
	}

	rows, err := q.readStore.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	content, err := q.exporter.Export(owner.Title, rows)
	if err != nil {
		return nil, errs.Wrap(err, "export bookings")
	}
	return &BookingExport{
		FileName:    fmt.Sprintf("bookings-%s.%s", propertyID, q.exporter.Extension()),
		ContentType: q.exporter.ContentType(),
		Content:     content,
	}, nil
}
