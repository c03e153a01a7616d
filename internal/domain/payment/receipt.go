package payment

import (
	"time"

	"github.com/google/uuid"
)

const ReceiptStatusCompleted = "completed"

type Receipt struct {
	BookingID       uuid.UUID
	UserID          uuid.UUID
	Amount          float64
	Currency        string
	PaymentIntentID string
	PaymentMethod   string
	Status          string
	ProcessedAt     time.Time
}

func NewReceipt(intent *Intent, bookingID uuid.UUID, provider Provider, processedAt time.Time) Receipt {
	return Receipt{
		BookingID:       bookingID,
		UserID:          intent.UserID(),
		Amount:          intent.Amount().Major(),
		Currency:        intent.Amount().Currency(),
		PaymentIntentID: intent.ID(),
		PaymentMethod:   provider.String(),
		Status:          ReceiptStatusCompleted,
		ProcessedAt:     processedAt,
	}
}
