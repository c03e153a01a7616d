package response

import (
	"time"

	"rental-marketplace/internal/domain/payment"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentIntentResponse struct {
	ID            string           `json:"id"`
	ClientSecret  string           `json:"clientSecret"`
	Amount        int64            `json:"amount"`
	Currency      string           `json:"currency"`
	Status        string           `json:"status"`
	PaymentMethod string           `json:"paymentMethod"`
	Created       time.Time        `json:"created"`
	Metadata      payment.Metadata `json:"metadata"`
}

// FromIntent reports the amount in minor units, as card processors do.
func FromIntent(i *payment.Intent) *PaymentIntentResponse {
	return &PaymentIntentResponse{
		ID:            i.ID(),
		ClientSecret:  i.ClientSecret(),
		Amount:        i.Amount().Minor(),
		Currency:      i.Amount().Currency(),
		Status:        i.Status().String(),
		PaymentMethod: i.Method().String(),
		Created:       i.CreatedAt(),
		Metadata:      i.Metadata(),
	}
}

type PaymentIntentEnvelope struct {
	PaymentIntent *PaymentIntentResponse `json:"paymentIntent"`
}

type ReceiptResponse struct {
	BookingID       uuid.UUID `json:"bookingId"`
	UserID          uuid.UUID `json:"userId"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	PaymentIntentID string    `json:"paymentIntentId"`
	PaymentMethod   string    `json:"paymentMethod"`
	Status          string    `json:"status"`
	ProcessedAt     time.Time `json:"processedAt"`
}

type PaymentConfirmationResponse struct {
	Booking *BookingResponse `json:"booking"`
	Payment *ReceiptResponse `json:"payment"`
}

func FromConfirmation(c *commands.PaymentConfirmation) (*PaymentConfirmationResponse, error) {
	receipt, err := mapOne[ReceiptResponse](c.Receipt)
	if err != nil {
		return nil, err
	}
	return &PaymentConfirmationResponse{Booking: FromBooking(c.Booking), Payment: receipt}, nil
}

type PaymentHistoryItemResponse struct {
	BookingID          uuid.UUID  `json:"bookingId"`
	Amount             float64    `json:"amount"`
	Currency           string     `json:"currency"`
	Status             string     `json:"status"`
	PaymentIntentID    *string    `json:"paymentIntentId,omitempty"`
	PaymentMethod      *string    `json:"paymentMethod,omitempty"`
	PaymentCompletedAt *time.Time `json:"paymentCompletedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	PropertyTitle      string     `json:"propertyTitle"`
}

type PaymentHistoryResponse struct {
	Payments   []*PaymentHistoryItemResponse `json:"payments"`
	Pagination PaginationResponse            `json:"pagination"`
}

func FromPaymentPage(p *queries.PageResult[*queries.PaymentView]) (*PaymentHistoryResponse, error) {
	items, err := mapAll[PaymentHistoryItemResponse](p.Items)
	if err != nil {
		return nil, err
	}
	return &PaymentHistoryResponse{Payments: items, Pagination: FromPagination(p.Pagination)}, nil
}
