package converter

import (
	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/domain/payment"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/pkg/pgconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func PaymentIntentToCreateParams(i *payment.Intent) (sqlc.CreatePaymentIntentParams, error) {
	metadata, err := json.Marshal(i.Metadata())
	if err != nil {
		return sqlc.CreatePaymentIntentParams{}, errs.Wrap(err, "encode intent metadata")
	}
	return sqlc.CreatePaymentIntentParams{
		ID:           i.ID(),
		ClientSecret: i.ClientSecret(),
		UserID:       i.UserID(),
		Amount:       pgconv.MinorUnitsToNumeric(i.Amount().Minor()),
		Currency:     i.Amount().Currency(),
		Method:       i.Method().String(),
		Status:       i.Status().String(),
		Metadata:     metadata,
		CreatedAt:    pgconv.TimeToPgtype(i.CreatedAt()),
	}, nil
}

func PaymentIntentToStatusParams(i *payment.Intent) sqlc.UpdatePaymentIntentStatusParams {
	return sqlc.UpdatePaymentIntentStatusParams{
		ID:        i.ID(),
		Status:    i.Status().String(),
		BookingID: pgconv.UUIDPtrToPgtype(i.BookingID()),
		UpdatedAt: pgconv.TimeToPgtype(i.UpdatedAt()),
	}
}

func PaymentIntentFromRow(row sqlc.PaymentIntents) (*payment.Intent, error) {
	var metadata payment.Metadata
	if err := json.Unmarshal(row.Metadata, &metadata); err != nil {
		return nil, errs.Wrap(err, "decode intent metadata")
	}
	minor, err := pgconv.MinorUnitsFromNumeric(row.Amount)
	if err != nil {
		return nil, errs.Wrap(err, "stored intent amount")
	}
	method, err := payment.NewMethod(row.Method)
	if err != nil {
		return nil, errs.Wrap(err, "stored intent method")
	}

	return payment.ReconstructIntent(
		row.ID,
		row.ClientSecret,
		row.UserID,
		money.Reconstruct(minor, row.Currency),
		method,
		payment.IntentStatus(row.Status),
		metadata,
		pgconv.UUIDPtrFromPgtype(row.BookingID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
