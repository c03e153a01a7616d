package readstore

import (
	"context"

	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"
	"rental-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentReadQueries interface {
	ListPaymentsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPaymentsByUserParams) ([]sqlc.ListPaymentsByUserRow, error)
	CountPaymentsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type PaymentReadStore struct {
	queries PaymentReadQueries
	db      sqlc.DBTX
}

func NewPaymentReadStore(queries PaymentReadQueries, db sqlc.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) ListByUser(ctx context.Context, userID uuid.UUID, page queries.Page) ([]*queries.PaymentView, int64, error) {
	rows, err := r.queries.ListPaymentsByUser(ctx, r.db, sqlc.ListPaymentsByUserParams{
		UserID: userID,
		Limit:  page.Limit(),
		Offset: page.Offset(),
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list payments", err)
	}
	total, err := r.queries.CountPaymentsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count payments", err)
	}

	items := make([]*queries.PaymentView, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.PaymentView{
			BookingID:          row.BookingID,
			Amount:             amount(row.TotalPrice),
			Currency:           row.Currency,
			Status:             row.Status,
			PaymentIntentID:    pgconv.StringPtrFromPgtype(row.PaymentIntentID),
			PaymentMethod:      pgconv.StringPtrFromPgtype(row.PaymentMethod),
			PaymentCompletedAt: pgconv.TimePtrFromPgtype(row.PaymentCompletedAt),
			CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
			PropertyTitle:      row.PropertyTitle,
		})
	}
	return items, total, nil
}
