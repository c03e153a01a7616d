package request

import (
	"strings"

	"rental-marketplace/internal/domain/property"
	"rental-marketplace/internal/usecase/queries"
)

type CreatePropertyRequest struct {
	Title        string   `json:"title" binding:"required,min=5,max=100"`
	Description  string   `json:"description" binding:"required,min=20,max=1000"`
	Type         string   `json:"type" binding:"required,property_type"`
	Address      string   `json:"address" binding:"required"`
	City         string   `json:"city" binding:"required"`
	State        string   `json:"state" binding:"required"`
	Country      string   `json:"country" binding:"required"`
	ZipCode      string   `json:"zipCode" binding:"required"`
	Latitude     *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude    *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Price        float64  `json:"price" binding:"required,gt=0"`
	Currency     string   `json:"currency" binding:"omitempty,len=3"`
	Bedrooms     int      `json:"bedrooms" binding:"min=0"`
	Bathrooms    int      `json:"bathrooms" binding:"min=0"`
	MaxGuests    int      `json:"maxGuests" binding:"required,min=1"`
	Amenities    []string `json:"amenities"`
	Images       []string `json:"images" binding:"omitempty,dive,url"`
	Availability *bool    `json:"availability"`
}

func (r *CreatePropertyRequest) ToDraft() property.Draft {
	return property.Draft{
		Title:        r.Title,
		Description:  r.Description,
		Type:         r.Type,
		Street:       r.Address,
		City:         r.City,
		State:        r.State,
		Country:      r.Country,
		ZipCode:      r.ZipCode,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		Price:        r.Price,
		Currency:     r.Currency,
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
		MaxGuests:    r.MaxGuests,
		Amenities:    r.Amenities,
		Images:       r.Images,
		Availability: r.Availability,
	}
}

type UpdatePropertyRequest struct {
	Title        *string  `json:"title" binding:"omitempty,min=5,max=100"`
	Description  *string  `json:"description" binding:"omitempty,min=20,max=1000"`
	Type         *string  `json:"type" binding:"omitempty,property_type"`
	Address      *string  `json:"address" binding:"omitempty,min=1"`
	City         *string  `json:"city" binding:"omitempty,min=1"`
	State        *string  `json:"state" binding:"omitempty,min=1"`
	Country      *string  `json:"country" binding:"omitempty,min=1"`
	ZipCode      *string  `json:"zipCode" binding:"omitempty,min=1"`
	Latitude     *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude    *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Price        *float64 `json:"price" binding:"omitempty,gt=0"`
	Currency     *string  `json:"currency" binding:"omitempty,len=3"`
	Bedrooms     *int     `json:"bedrooms" binding:"omitempty,min=0"`
	Bathrooms    *int     `json:"bathrooms" binding:"omitempty,min=0"`
	MaxGuests    *int     `json:"maxGuests" binding:"omitempty,min=1"`
	Amenities    []string `json:"amenities"`
	Images       []string `json:"images" binding:"omitempty,dive,url"`
	Availability *bool    `json:"availability"`
}

func (r *UpdatePropertyRequest) ToPatch() property.Patch {
	return property.Patch{
		Title:        r.Title,
		Description:  r.Description,
		Type:         r.Type,
		Street:       r.Address,
		City:         r.City,
		State:        r.State,
		Country:      r.Country,
		ZipCode:      r.ZipCode,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		Price:        r.Price,
		Currency:     r.Currency,
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
		MaxGuests:    r.MaxGuests,
		Amenities:    r.Amenities,
		Images:       r.Images,
		Availability: r.Availability,
	}
}

type SearchPropertiesQuery struct {
	PageQuery
	City      *string  `form:"city"`
	Type      *string  `form:"type" binding:"omitempty,property_type"`
	MinPrice  *float64 `form:"minPrice" binding:"omitempty,min=0"`
	MaxPrice  *float64 `form:"maxPrice" binding:"omitempty,min=0"`
	Bedrooms  *int     `form:"bedrooms" binding:"omitempty,min=0"`
	MaxGuests *int     `form:"maxGuests" binding:"omitempty,min=1"`
	Guests    *int     `form:"guests" binding:"omitempty,min=1"`
	Amenities string   `form:"amenities"`
	SortBy    string   `form:"sortBy"`
	SortOrder string   `form:"sortOrder"`
}

func (q *SearchPropertiesQuery) ToFilter() queries.PropertyFilter {
	guests := q.MaxGuests
	if guests == nil {
		guests = q.Guests
	}
	var amenities []string
	if q.Amenities != "" {
		amenities = strings.Split(q.Amenities, ",")
	}
	return queries.PropertyFilter{
		City:      q.City,
		Type:      q.Type,
		MinPrice:  q.MinPrice,
		MaxPrice:  q.MaxPrice,
		Bedrooms:  q.Bedrooms,
		Guests:    guests,
		Amenities: amenities,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
	}
}
