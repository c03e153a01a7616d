//go:build unit || e2e

package builder

import (
	"time"

	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/domain/property"
	reqdto "rental-marketplace/internal/handler/dto/request"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type PropertyBuilder struct {
	ID           uuid.UUID
	HostID       uuid.UUID
	Title        string
	Description  string
	Type         string
	Street       string
	City         string
	State        string
	Country      string
	ZipCode      string
	PriceMinor   int64
	Currency     string
	Bedrooms     int
	Bathrooms    int
	MaxGuests    int
	Amenities    []string
	Images       []string
	Availability bool
	IsActive     bool
}

func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		ID:           uuid.New(),
		HostID:       uuid.New(),
		Title:        "Lakeside cottage",
		Description:  "Quiet two bedroom cottage a short walk from the lake.",
		Type:         string(property.TypeHouse),
		Street:       "Lakeside Road 12",
		City:         "Pokhara",
		State:        "Gandaki",
		Country:      "Nepal",
		ZipCode:      "33700",
		PriceMinor:   500000,
		Currency:     money.DefaultCurrency,
		Bedrooms:     2,
		Bathrooms:    1,
		MaxGuests:    4,
		Amenities:    []string{"wifi", "parking"},
		Images:       []string{"https://example.com/cottage.jpg"},
		Availability: true,
		IsActive:     true,
	}
}

func (p *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(p)
	return p
}

func (p *PropertyBuilder) WithHost(hostID uuid.UUID) *PropertyBuilder {
	p.HostID = hostID
	return p
}

func (p *PropertyBuilder) WithMaxGuests(n int) *PropertyBuilder {
	p.MaxGuests = n
	return p
}

func (p *PropertyBuilder) AsInactive() *PropertyBuilder {
	p.IsActive = false
	return p
}

func (p *PropertyBuilder) AsUnavailable() *PropertyBuilder {
	p.Availability = false
	return p
}

func (p *PropertyBuilder) Price() money.Money {
	return money.Reconstruct(p.PriceMinor, p.Currency)
}

func (p *PropertyBuilder) BuildDraft() property.Draft {
	availability := p.Availability
	return property.Draft{
		Title:        p.Title,
		Description:  p.Description,
		Type:         p.Type,
		Street:       p.Street,
		City:         p.City,
		State:        p.State,
		Country:      p.Country,
		ZipCode:      p.ZipCode,
		Price:        p.Price().Major(),
		Currency:     p.Currency,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		MaxGuests:    p.MaxGuests,
		Amenities:    p.Amenities,
		Images:       p.Images,
		Availability: &availability,
	}
}

// BuildDomain panics on an invalid builder; tests construct valid listings only.
func (p *PropertyBuilder) BuildDomain() *property.Property {
	draft, err := property.NewProperty(p.BuildDraft(), p.HostID, time.Now())
	if err != nil {
		panic(err)
	}
	return property.ReconstructProperty(
		p.ID, p.HostID, draft.Title(), draft.Description(), draft.Type(), draft.Address(), nil,
		p.Price(), draft.Capacity(), p.Amenities, p.Images, p.Availability, p.IsActive,
		draft.CreatedAt(), draft.UpdatedAt(),
	)
}

func (p *PropertyBuilder) BuildInfra() sqlc.Properties {
	now := time.Now()
	return sqlc.Properties{
		ID:           p.ID,
		HostID:       p.HostID,
		Title:        p.Title,
		Description:  p.Description,
		Type:         p.Type,
		Address:      p.Street,
		City:         p.City,
		State:        p.State,
		Country:      p.Country,
		ZipCode:      p.ZipCode,
		Price:        pgconv.MinorUnitsToNumeric(p.PriceMinor),
		Currency:     p.Currency,
		Bedrooms:     int32(p.Bedrooms),
		Bathrooms:    int32(p.Bathrooms),
		MaxGuests:    int32(p.MaxGuests),
		Amenities:    p.Amenities,
		Images:       p.Images,
		Availability: p.Availability,
		IsActive:     p.IsActive,
		CreatedAt:    pgconv.TimeToPgtype(now),
		UpdatedAt:    pgconv.TimeToPgtype(now),
	}
}

func (p *PropertyBuilder) BuildOwnership() *shared.PropertyOwnership {
	return &shared.PropertyOwnership{
		ID:       p.ID,
		HostID:   p.HostID,
		Title:    p.Title,
		IsActive: p.IsActive,
	}
}

func (p *PropertyBuilder) BuildDetailView() *queries.PropertyDetailView {
	now := time.Now()
	return &queries.PropertyDetailView{
		ID:           p.ID,
		HostID:       p.HostID,
		Title:        p.Title,
		Description:  p.Description,
		Type:         p.Type,
		Address:      p.Street,
		City:         p.City,
		State:        p.State,
		Country:      p.Country,
		ZipCode:      p.ZipCode,
		Price:        p.Price().Major(),
		Currency:     p.Currency,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		MaxGuests:    p.MaxGuests,
		Amenities:    p.Amenities,
		Images:       p.Images,
		Availability: p.Availability,
		CreatedAt:    now,
		UpdatedAt:    now,
		Host:         queries.HostContact{FirstName: "Ram", LastName: "Thapa", Email: "host@example.com"},
		Reviews:      []*queries.PropertyReview{},
	}
}

func (p *PropertyBuilder) BuildListItem() *queries.PropertyListItem {
	return &queries.PropertyListItem{
		ID:            p.ID,
		HostID:        p.HostID,
		Title:         p.Title,
		Description:   p.Description,
		Type:          p.Type,
		City:          p.City,
		State:         p.State,
		Country:       p.Country,
		Price:         p.Price().Major(),
		Currency:      p.Currency,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		MaxGuests:     p.MaxGuests,
		Amenities:     p.Amenities,
		Images:        p.Images,
		Availability:  p.Availability,
		CreatedAt:     time.Now(),
		HostFirstName: "Ram",
		HostLastName:  "Thapa",
	}
}

func (p *PropertyBuilder) BuildCreateDTO() reqdto.CreatePropertyRequest {
	return reqdto.CreatePropertyRequest{
		Title:       p.Title,
		Description: p.Description,
		Type:        p.Type,
		Address:     p.Street,
		City:        p.City,
		State:       p.State,
		Country:     p.Country,
		ZipCode:     p.ZipCode,
		Price:       p.Price().Major(),
		Currency:    p.Currency,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		MaxGuests:   p.MaxGuests,
		Amenities:   p.Amenities,
		Images:      p.Images,
	}
}
