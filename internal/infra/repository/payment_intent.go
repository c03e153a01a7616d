package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"

	"rental-marketplace/internal/domain/payment"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/infra/repository/converter"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"
)

type PaymentIntentWriteQueries interface {
	CreatePaymentIntent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentIntentParams) (sqlc.PaymentIntents, error)
	GetPaymentIntentForUpdate(ctx context.Context, db sqlc.DBTX, id string) (sqlc.PaymentIntents, error)
	UpdatePaymentIntentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePaymentIntentStatusParams) error
}

type PaymentIntentRepository struct {
	queries PaymentIntentWriteQueries
}

func NewPaymentIntentRepository(queries PaymentIntentWriteQueries) *PaymentIntentRepository {
	return &PaymentIntentRepository{queries: queries}
}

func (r *PaymentIntentRepository) Create(ctx context.Context, tx sqlc.DBTX, intent *payment.Intent) error {
	params, err := converter.PaymentIntentToCreateParams(intent)
	if err != nil {
		return infra.WrapRepoErr("failed to encode payment intent", err)
	}
	if _, err := r.queries.CreatePaymentIntent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create payment intent", err)
	}
	return nil
}

// FindForUpdate locks the intent row until the surrounding transaction ends.
func (r *PaymentIntentRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id string) (*payment.Intent, error) {
	row, err := r.queries.GetPaymentIntentForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment intent not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock payment intent", err)
	}

	intent, err := converter.PaymentIntentFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert payment intent row", err)
	}
	return intent, nil
}

func (r *PaymentIntentRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, intent *payment.Intent) error {
	if err := r.queries.UpdatePaymentIntentStatus(ctx, tx, converter.PaymentIntentToStatusParams(intent)); err != nil {
		return infra.WrapRepoErr("failed to update payment intent status", err)
	}
	return nil
}
