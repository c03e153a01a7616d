package response

import (
	"time"

	"rental-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type PropertyListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	HostID        uuid.UUID `json:"hostId"`
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
	MaxGuests     int       `json:"maxGuests"`
	Amenities     []string  `json:"amenities"`
	Images        []string  `json:"images"`
	Availability  bool      `json:"availability"`
	CreatedAt     time.Time `json:"createdAt"`
	HostFirstName string    `json:"hostFirstName"`
	HostLastName  string    `json:"hostLastName"`
	HostAvatar    *string   `json:"hostAvatar,omitempty"`
	AvgRating     *float64  `json:"avgRating"`
	ReviewCount   int       `json:"reviewCount"`
}

type PropertyListResponse struct {
	Properties []*PropertyListItemResponse `json:"properties"`
	Pagination PaginationResponse          `json:"pagination"`
}

func FromPropertyPage(p *queries.PageResult[*queries.PropertyListItem]) (*PropertyListResponse, error) {
	items, err := mapAll[PropertyListItemResponse](p.Items)
	if err != nil {
		return nil, err
	}
	return &PropertyListResponse{Properties: items, Pagination: FromPagination(p.Pagination)}, nil
}

type HostContactResponse struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
}

type PropertyDetailResponse struct {
	ID           uuid.UUID                 `json:"id"`
	HostID       uuid.UUID                 `json:"hostId"`
	Title        string                    `json:"title"`
	Description  string                    `json:"description"`
	Type         string                    `json:"type"`
	Address      string                    `json:"address"`
	City         string                    `json:"city"`
	State        string                    `json:"state"`
	Country      string                    `json:"country"`
	ZipCode      string                    `json:"zipCode"`
	Latitude     *float64                  `json:"latitude,omitempty"`
	Longitude    *float64                  `json:"longitude,omitempty"`
	Price        float64                   `json:"price"`
	Currency     string                    `json:"currency"`
	Bedrooms     int                       `json:"bedrooms"`
	Bathrooms    int                       `json:"bathrooms"`
	MaxGuests    int                       `json:"maxGuests"`
	Amenities    []string                  `json:"amenities"`
	Images       []string                  `json:"images"`
	Availability bool                      `json:"availability"`
	CreatedAt    time.Time                 `json:"createdAt"`
	UpdatedAt    time.Time                 `json:"updatedAt"`
	Host         HostContactResponse       `json:"host"`
	AvgRating    *float64                  `json:"avgRating"`
	ReviewCount  int                       `json:"reviewCount"`
	Reviews      []*PropertyReviewResponse `json:"reviews"`
}

func FromPropertyDetail(v *queries.PropertyDetailView) (*PropertyDetailResponse, error) {
	return mapOne[PropertyDetailResponse](v)
}

type HostPropertyResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	Price        float64   `json:"price"`
	Currency     string    `json:"currency"`
	MaxGuests    int       `json:"maxGuests"`
	Images       []string  `json:"images"`
	Availability bool      `json:"availability"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	AvgRating    *float64  `json:"avgRating"`
	ReviewCount  int       `json:"reviewCount"`
}

type HostPropertyListResponse struct {
	Properties []*HostPropertyResponse `json:"properties"`
	Pagination PaginationResponse      `json:"pagination"`
}

func FromHostPropertyPage(p *queries.PageResult[*queries.HostPropertyItem]) (*HostPropertyListResponse, error) {
	items, err := mapAll[HostPropertyResponse](p.Items)
	if err != nil {
		return nil, err
	}
	return &HostPropertyListResponse{Properties: items, Pagination: FromPagination(p.Pagination)}, nil
}

// CreatedResponse carries the id of a newly created resource.
type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
