package request

import (
	"rental-marketplace/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	PropertyID uuid.UUID `json:"propertyId" binding:"required"`
	CheckIn    string    `json:"checkIn" binding:"required,date"`
	CheckOut   string    `json:"checkOut" binding:"required,date"`
	Guests     int       `json:"guests" binding:"required,min=1"`
	TotalPrice *float64  `json:"totalPrice" binding:"omitempty,gt=0"`
	Notes      string    `json:"notes" binding:"omitempty,max=500"`
}

func (r *CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		PropertyID: r.PropertyID,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		Guests:     r.Guests,
		TotalPrice: r.TotalPrice,
		Notes:      r.Notes,
	}
}

type ListBookingsQuery struct {
	PageQuery
	Status *string `form:"status" binding:"omitempty,booking_status"`
}
