package request

import (
	"rental-marketplace/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatePaymentIntentRequest struct {
	PropertyID    uuid.UUID `json:"propertyId" binding:"required"`
	CheckIn       string    `json:"checkIn" binding:"required,date"`
	CheckOut      string    `json:"checkOut" binding:"required,date"`
	Guests        int       `json:"guests" binding:"required,min=1"`
	TotalAmount   float64   `json:"totalAmount" binding:"required,gt=0"`
	Currency      string    `json:"currency" binding:"omitempty,len=3"`
	PaymentMethod string    `json:"paymentMethod" binding:"required,payment_method"`
	Notes         string    `json:"notes" binding:"omitempty,max=500"`
}

func (r *CreatePaymentIntentRequest) ToInput() commands.CreateIntentInput {
	return commands.CreateIntentInput{
		PropertyID:    r.PropertyID,
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		Guests:        r.Guests,
		TotalAmount:   r.TotalAmount,
		Currency:      r.Currency,
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
	}
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
	PaymentMethodID string `json:"paymentMethodId" binding:"omitempty"`
	PaymentProvider string `json:"paymentProvider" binding:"required,payment_provider"`
}

func (r *ConfirmPaymentRequest) ToInput() commands.ConfirmPaymentInput {
	return commands.ConfirmPaymentInput{
		PaymentIntentID: r.PaymentIntentID,
		PaymentMethodID: r.PaymentMethodID,
		Provider:        r.PaymentProvider,
	}
}
