package response

import (
	"time"

	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingListItemResponse struct {
	ID              uuid.UUID `json:"id"`
	PropertyID      uuid.UUID `json:"propertyId"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	Guests          int       `json:"guests"`
	TotalPrice      float64   `json:"totalPrice"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	PaymentMethod   *string   `json:"paymentMethod,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	PropertyTitle   string    `json:"propertyTitle"`
	PropertyCity    string    `json:"propertyCity"`
	PropertyCountry string    `json:"propertyCountry"`
	PropertyImages  []string  `json:"propertyImages"`
	HostFirstName   string    `json:"hostFirstName"`
	HostLastName    string    `json:"hostLastName"`
}

type BookingListResponse struct {
	Bookings   []*BookingListItemResponse `json:"bookings"`
	Pagination PaginationResponse         `json:"pagination"`
}

func FromBookingPage(p *queries.PageResult[*queries.BookingListItem]) (*BookingListResponse, error) {
	items, err := mapAll[BookingListItemResponse](p.Items)
	if err != nil {
		return nil, err
	}
	return &BookingListResponse{Bookings: items, Pagination: FromPagination(p.Pagination)}, nil
}

type BookingDetailResponse struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"userId"`
	PropertyID         uuid.UUID  `json:"propertyId"`
	CheckIn            time.Time  `json:"checkIn"`
	CheckOut           time.Time  `json:"checkOut"`
	Guests             int        `json:"guests"`
	TotalPrice         float64    `json:"totalPrice"`
	Currency           string     `json:"currency"`
	Notes              *string    `json:"notes,omitempty"`
	Status             string     `json:"status"`
	PaymentIntentID    *string    `json:"paymentIntentId,omitempty"`
	PaymentMethod      *string    `json:"paymentMethod,omitempty"`
	PaymentCompletedAt *time.Time `json:"paymentCompletedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
	PropertyTitle      string     `json:"propertyTitle"`
	PropertyAddress    string     `json:"propertyAddress"`
	PropertyCity       string     `json:"propertyCity"`
	PropertyState      string     `json:"propertyState"`
	PropertyCountry    string     `json:"propertyCountry"`
	PropertyImages     []string   `json:"propertyImages"`
	HostFirstName      string     `json:"hostFirstName"`
	HostLastName       string     `json:"hostLastName"`
	HostEmail          string     `json:"hostEmail"`
	HostPhone          *string    `json:"hostPhone,omitempty"`
}

func FromBookingDetail(v *queries.BookingDetailView) (*BookingDetailResponse, error) {
	return mapOne[BookingDetailResponse](v)
}

// BookingResponse is the bare booking record produced by a write.
type BookingResponse struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"userId"`
	PropertyID         uuid.UUID  `json:"propertyId"`
	CheckIn            string     `json:"checkIn"`
	CheckOut           string     `json:"checkOut"`
	Guests             int        `json:"guests"`
	TotalPrice         float64    `json:"totalPrice"`
	Currency           string     `json:"currency"`
	Notes              *string    `json:"notes,omitempty"`
	Status             string     `json:"status"`
	PaymentIntentID    *string    `json:"paymentIntentId,omitempty"`
	PaymentMethod      *string    `json:"paymentMethod,omitempty"`
	PaymentCompletedAt *time.Time `json:"paymentCompletedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	res := &BookingResponse{
		ID:         b.ID(),
		UserID:     b.UserID(),
		PropertyID: b.PropertyID(),
		CheckIn:    b.Stay().CheckIn().Format(booking.DateLayout),
		CheckOut:   b.Stay().CheckOut().Format(booking.DateLayout),
		Guests:     b.Guests().Int(),
		TotalPrice: b.TotalPrice().Major(),
		Currency:   b.TotalPrice().Currency(),
		Notes:      b.Notes().Ptr(),
		Status:     b.Status().String(),
		CreatedAt:  b.CreatedAt(),
		UpdatedAt:  b.UpdatedAt(),
	}
	if link := b.Payment(); link != nil {
		res.PaymentIntentID = &link.IntentID
		res.PaymentMethod = &link.Method
		res.PaymentCompletedAt = &link.CompletedAt
	}
	return res
}
