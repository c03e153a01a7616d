package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"strings"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPropertyNotFound = errs.Domain(errs.ErrNotFound, "Property not found")

const (
	SortByCreatedAt = "created_at"
	SortByPrice     = "price"
	SortByTitle     = "title"
	SortByAvgRating = "avg_rating"

	SortAsc  = "asc"
	SortDesc = "desc"
)

type PropertyFilter struct {
	City      *string
	Type      *string
	MinPrice  *float64
	MaxPrice  *float64
	Bedrooms  *int
	Guests    *int
	Amenities []string
	SortBy    string
	SortOrder string
}

// Normalized falls back to newest first for unknown sort keys.
func (f PropertyFilter) Normalized() PropertyFilter {
	switch f.SortBy {
	case SortByCreatedAt, SortByPrice, SortByTitle, SortByAvgRating:
	default:
		f.SortBy = SortByCreatedAt
	}
	f.SortOrder = strings.ToLower(f.SortOrder)
	if f.SortOrder != SortAsc {
		f.SortOrder = SortDesc
	}
	if f.City != nil && strings.TrimSpace(*f.City) == "" {
		f.City = nil
	}
	amenities := make([]string, 0, len(f.Amenities))
	for _, a := range f.Amenities {
		if a = strings.TrimSpace(a); a != "" {
			amenities = append(amenities, a)
		}
	}
	f.Amenities = amenities
	return f
}

type PropertyReadStore interface {
	Search(ctx context.Context, filter PropertyFilter, page Page) ([]*PropertyListItem, int64, error)
	FindDetail(ctx context.Context, id uuid.UUID) (*PropertyDetailView, error)
	ListByHost(ctx context.Context, hostID uuid.UUID, page Page) ([]*HostPropertyItem, int64, error)
}

type PropertyQueries interface {
	Search(ctx context.Context, filter PropertyFilter, page Page) (*PageResult[*PropertyListItem], error)
	GetByID(ctx context.Context, id uuid.UUID) (*PropertyDetailView, error)
	ListMine(ctx context.Context, principal auth.Principal, page Page) (*PageResult[*HostPropertyItem], error)
}

type propertyQueriesImpl struct {
	readStore PropertyReadStore
}

func NewPropertyQueries(readStore PropertyReadStore) PropertyQueries {
	return &propertyQueriesImpl{readStore: readStore}
}

func (q *propertyQueriesImpl) Search(ctx context.Context, filter PropertyFilter, page Page) (*PageResult[*PropertyListItem], error) {
	items, total, err := q.readStore.Search(ctx, filter.Normalized(), page)
	if err != nil {
		return nil, err
	}
	return &PageResult[*PropertyListItem]{Items: items, Pagination: NewPagination(page, total)}, nil
}

func (q *propertyQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PropertyDetailView, error) {
	view, err := q.readStore.FindDetail(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *propertyQueriesImpl) ListMine(ctx context.Context, principal auth.Principal, page Page) (*PageResult[*HostPropertyItem], error) {
	if err := auth.Authorize(principal, user.RoleHost, user.RoleAdmin); err != nil {
		return nil, err
	}
	items, total, err := q.readStore.ListByHost(ctx, principal.UserID, page)
	if err != nil {
		return nil, err
	}
	return &PageResult[*HostPropertyItem]{Items: items, Pagination: NewPagination(page, total)}, nil
}
