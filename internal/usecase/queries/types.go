package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type UserView struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone,omitempty"`
	Role       string    `json:"role"`
	Avatar     *string   `json:"avatar,omitempty"`
	IsVerified bool      `json:"is_verified"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type PropertyListItem struct {
	ID            uuid.UUID `json:"id"`
	HostID        uuid.UUID `json:"host_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Type          string    `json:"type"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	Country       string    `json:"country"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	MaxGuests     int       `json:"max_guests"`
	Amenities     []string  `json:"amenities"`
	Images        []string  `json:"images"`
	Availability  bool      `json:"availability"`
	CreatedAt     time.Time `json:"created_at"`
	HostFirstName string    `json:"host_first_name"`
	HostLastName  string    `json:"host_last_name"`
	HostAvatar    *string   `json:"host_avatar,omitempty"`
	AvgRating     *float64  `json:"avg_rating,omitempty"`
	ReviewCount   int       `json:"review_count"`
}

type HostContact struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
}

type PropertyDetailView struct {
	ID           uuid.UUID         `json:"id"`
	HostID       uuid.UUID         `json:"host_id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Type         string            `json:"type"`
	Address      string            `json:"address"`
	City         string            `json:"city"`
	State        string            `json:"state"`
	Country      string            `json:"country"`
	ZipCode      string            `json:"zip_code"`
	Latitude     *float64          `json:"latitude,omitempty"`
	Longitude    *float64          `json:"longitude,omitempty"`
	Price        float64           `json:"price"`
	Currency     string            `json:"currency"`
	Bedrooms     int               `json:"bedrooms"`
	Bathrooms    int               `json:"bathrooms"`
	MaxGuests    int               `json:"max_guests"`
	Amenities    []string          `json:"amenities"`
	Images       []string          `json:"images"`
	Availability bool              `json:"availability"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	Host         HostContact       `json:"host"`
	AvgRating    *float64          `json:"avg_rating,omitempty"`
	ReviewCount  int               `json:"review_count"`
	Reviews      []*PropertyReview `json:"reviews"`
}

type HostPropertyItem struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	Price        float64   `json:"price"`
	Currency     string    `json:"currency"`
	MaxGuests    int       `json:"max_guests"`
	Images       []string  `json:"images"`
	Availability bool      `json:"availability"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	AvgRating    *float64  `json:"avg_rating,omitempty"`
	ReviewCount  int       `json:"review_count"`
}

type BookingListItem struct {
	ID              uuid.UUID `json:"id"`
	PropertyID      uuid.UUID `json:"property_id"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	Guests          int       `json:"guests"`
	TotalPrice      float64   `json:"total_price"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	PaymentMethod   *string   `json:"payment_method,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	PropertyTitle   string    `json:"property_title"`
	PropertyCity    string    `json:"property_city"`
	PropertyCountry string    `json:"property_country"`
	PropertyImages  []string  `json:"property_images"`
	HostFirstName   string    `json:"host_first_name"`
	HostLastName    string    `json:"host_last_name"`
}

type BookingDetailView struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"user_id"`
	PropertyID         uuid.UUID  `json:"property_id"`
	CheckIn            time.Time  `json:"check_in"`
	CheckOut           time.Time  `json:"check_out"`
	Guests             int        `json:"guests"`
	TotalPrice         float64    `json:"total_price"`
	Currency           string     `json:"currency"`
	Notes              *string    `json:"notes,omitempty"`
	Status             string     `json:"status"`
	PaymentIntentID    *string    `json:"payment_intent_id,omitempty"`
	PaymentMethod      *string    `json:"payment_method,omitempty"`
	PaymentCompletedAt *time.Time `json:"payment_completed_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	PropertyTitle      string     `json:"property_title"`
	PropertyAddress    string     `json:"property_address"`
	PropertyCity       string     `json:"property_city"`
	PropertyState      string     `json:"property_state"`
	PropertyCountry    string     `json:"property_country"`
	PropertyImages     []string   `json:"property_images"`
	HostFirstName      string     `json:"host_first_name"`
	HostLastName       string     `json:"host_last_name"`
	HostEmail          string     `json:"host_email"`
	HostPhone          *string    `json:"host_phone,omitempty"`
}

// HostBookingRow is one line of a host's booking export.
type HostBookingRow struct {
	ID                 uuid.UUID  `json:"id"`
	GuestName          string     `json:"guest_name"`
	GuestEmail         string     `json:"guest_email"`
	CheckIn            time.Time  `json:"check_in"`
	CheckOut           time.Time  `json:"check_out"`
	Guests             int        `json:"guests"`
	TotalPrice         float64    `json:"total_price"`
	Status             string     `json:"status"`
	PaymentMethod      *string    `json:"payment_method,omitempty"`
	PaymentCompletedAt *time.Time `json:"payment_completed_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type PaymentView struct {
	BookingID          uuid.UUID  `json:"booking_id"`
	Amount             float64    `json:"amount"`
	Currency           string     `json:"currency"`
	Status             string     `json:"status"`
	PaymentIntentID    *string    `json:"payment_intent_id,omitempty"`
	PaymentMethod      *string    `json:"payment_method,omitempty"`
	PaymentCompletedAt *time.Time `json:"payment_completed_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	PropertyTitle      string     `json:"property_title"`
}

type PropertyReview struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	UserFirstName string    `json:"user_first_name"`
	UserLastName  string    `json:"user_last_name"`
	UserAvatar    *string   `json:"user_avatar,omitempty"`
}

type UserReview struct {
	ID             uuid.UUID `json:"id"`
	PropertyID     uuid.UUID `json:"property_id"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	PropertyTitle  string    `json:"property_title"`
	PropertyCity   string    `json:"property_city"`
	PropertyImages []string  `json:"property_images"`
}

type RatingSummaryView struct {
	Histogram    map[int]int `json:"histogram"`
	AvgRating    *float64    `json:"avg_rating,omitempty"`
	TotalReviews int         `json:"total_reviews"`
}

type PropertyReviewsView struct {
	Reviews    []*PropertyReview
	Summary    RatingSummaryView
	Pagination Pagination
}
