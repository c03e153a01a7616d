package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"

	"github.com/google/uuid"
)

type PaymentReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, page Page) ([]*PaymentView, int64, error)
}

type PaymentQueries interface {
	History(ctx context.Context, userID uuid.UUID, page Page) (*PageResult[*PaymentView], error)
}

type paymentQueriesImpl struct {
	readStore PaymentReadStore
}

func NewPaymentQueries(readStore PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{readStore: readStore}
}

// History lists the guest's bookings that went through payment, newest first.
func (q *paymentQueriesImpl) History(ctx context.Context, userID uuid.UUID, page Page) (*PageResult[*PaymentView], error) {
	items, total, err := q.readStore.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	return &PageResult[*PaymentView]{Items: items, Pagination: NewPagination(page, total)}, nil
}
