package property

import (
	"fmt"
	"time"

	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/pkg/patch"

	"github.com/google/uuid"
)

var ErrNotBookable = errs.Domain(errs.ErrNotFound, "Property not found or not available")

type Property struct {
	id           uuid.UUID
	hostID       uuid.UUID
	title        string
	description  string
	propertyType Type
	address      Address
	coordinates  *Coordinates
	price        money.Money
	capacity     Capacity
	amenities    Amenities
	images       Images
	availability bool
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

// Draft holds the raw listing fields submitted by a host.
type Draft struct {
	Title        string
	Description  string
	Type         string
	Street       string
	City         string
	State        string
	Country      string
	ZipCode      string
	Latitude     *float64
	Longitude    *float64
	Price        float64
	Currency     string
	Bedrooms     int
	Bathrooms    int
	MaxGuests    int
	Amenities    []string
	Images       []string
	Availability *bool
}

func NewProperty(d Draft, hostID uuid.UUID, now time.Time) (*Property, error) {
	p := &Property{
		id:           uuid.New(),
		hostID:       hostID,
		availability: patch.Coalesce(d.Availability, true),
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
	if err := p.assign(d); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Property) assign(d Draft) error {
	title, err := validateTitle(d.Title)
	if err != nil {
		return err
	}
	description, err := validateDescription(d.Description)
	if err != nil {
		return err
	}
	t, err := NewType(d.Type)
	if err != nil {
		return err
	}
	address, err := NewAddress(d.Street, d.City, d.State, d.Country, d.ZipCode)
	if err != nil {
		return err
	}
	coords, err := NewCoordinates(d.Latitude, d.Longitude)
	if err != nil {
		return err
	}
	price, err := money.FromMajor(d.Price, d.Currency)
	if err != nil {
		return err
	}
	capacity, err := NewCapacity(d.Bedrooms, d.Bathrooms, d.MaxGuests)
	if err != nil {
		return err
	}
	amenities, err := NewAmenities(d.Amenities)
	if err != nil {
		return err
	}
	images, err := NewImages(d.Images)
	if err != nil {
		return err
	}

	p.title = title
	p.description = description
	p.propertyType = t
	p.address = address
	p.coordinates = coords
	p.price = price
	p.capacity = capacity
	p.amenities = amenities
	p.images = images
	return nil
}

func ReconstructProperty(
	id, hostID uuid.UUID,
	title, description string,
	propertyType Type,
	address Address,
	coordinates *Coordinates,
	price money.Money,
	capacity Capacity,
	amenities, images []string,
	availability, isActive bool,
	createdAt, updatedAt time.Time,
) *Property {
	return &Property{
		id:           id,
		hostID:       hostID,
		title:        title,
		description:  description,
		propertyType: propertyType,
		address:      address,
		coordinates:  coordinates,
		price:        price,
		capacity:     capacity,
		amenities:    Amenities{labels: amenities},
		images:       Images{urls: images},
		availability: availability,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Patch is a partial update; nil fields keep their current value.
type Patch struct {
	Title        *string
	Description  *string
	Type         *string
	Street       *string
	City         *string
	State        *string
	Country      *string
	ZipCode      *string
	Latitude     *float64
	Longitude    *float64
	Price        *float64
	Currency     *string
	Bedrooms     *int
	Bathrooms    *int
	MaxGuests    *int
	Amenities    []string
	Images       []string
	Availability *bool
}

// Apply validates the merged listing as a whole, leaving p untouched on error.
func (p *Property) Apply(pt Patch, now time.Time) error {
	cur := p.draft()
	next := Draft{
		Title:       patch.Coalesce(pt.Title, cur.Title),
		Description: patch.Coalesce(pt.Description, cur.Description),
		Type:        patch.Coalesce(pt.Type, cur.Type),
		Street:      patch.Coalesce(pt.Street, cur.Street),
		City:        patch.Coalesce(pt.City, cur.City),
		State:       patch.Coalesce(pt.State, cur.State),
		Country:     patch.Coalesce(pt.Country, cur.Country),
		ZipCode:     patch.Coalesce(pt.ZipCode, cur.ZipCode),
		Latitude:    cur.Latitude,
		Longitude:   cur.Longitude,
		Price:       patch.Coalesce(pt.Price, cur.Price),
		Currency:    patch.Coalesce(pt.Currency, cur.Currency),
		Bedrooms:    patch.Coalesce(pt.Bedrooms, cur.Bedrooms),
		Bathrooms:   patch.Coalesce(pt.Bathrooms, cur.Bathrooms),
		MaxGuests:   patch.Coalesce(pt.MaxGuests, cur.MaxGuests),
		Amenities:   patch.CoalesceSlice(pt.Amenities, cur.Amenities),
		Images:      patch.CoalesceSlice(pt.Images, cur.Images),
	}
	if pt.Latitude != nil || pt.Longitude != nil {
		next.Latitude = pt.Latitude
		next.Longitude = pt.Longitude
	}

	staged := *p
	if err := staged.assign(next); err != nil {
		return err
	}
	staged.availability = patch.Coalesce(pt.Availability, p.availability)
	staged.updatedAt = now
	*p = staged
	return nil
}

func (p *Property) draft() Draft {
	d := Draft{
		Title:       p.title,
		Description: p.description,
		Type:        p.propertyType.String(),
		Street:      p.address.Street,
		City:        p.address.City,
		State:       p.address.State,
		Country:     p.address.Country,
		ZipCode:     p.address.ZipCode,
		Price:       p.price.Major(),
		Currency:    p.price.Currency(),
		Bedrooms:    p.capacity.Bedrooms,
		Bathrooms:   p.capacity.Bathrooms,
		MaxGuests:   p.capacity.MaxGuests,
		Amenities:   p.amenities.Labels(),
		Images:      p.images.URLs(),
	}
	if p.coordinates != nil {
		lat, lng := p.coordinates.Latitude, p.coordinates.Longitude
		d.Latitude, d.Longitude = &lat, &lng
	}
	return d
}

// Deactivate is the soft delete; bookings and reviews keep referencing the row.
func (p *Property) Deactivate(now time.Time) {
	p.isActive = false
	p.updatedAt = now
}

func (p *Property) IsBookable() bool {
	return p.isActive && p.availability
}

// CheckBookable reports why guests cannot book this property, if they cannot.
func (p *Property) CheckBookable(guests int) error {
	if !p.IsBookable() {
		return ErrNotBookable
	}
	if !p.capacity.Fits(guests) {
		return CapacityExceeded(p.capacity.MaxGuests)
	}
	return nil
}

func CapacityExceeded(maxGuests int) error {
	return errs.Domain(errs.ErrCapacity, fmt.Sprintf("Property can accommodate maximum %d guests", maxGuests))
}

func (p *Property) ID() uuid.UUID             { return p.id }
func (p *Property) HostID() uuid.UUID         { return p.hostID }
func (p *Property) Title() string             { return p.title }
func (p *Property) Description() string       { return p.description }
func (p *Property) Type() Type                { return p.propertyType }
func (p *Property) Address() Address          { return p.address }
func (p *Property) Coordinates() *Coordinates { return p.coordinates }
func (p *Property) Price() money.Money        { return p.price }
func (p *Property) Capacity() Capacity        { return p.capacity }
func (p *Property) Amenities() Amenities      { return p.amenities }
func (p *Property) Images() Images            { return p.images }
func (p *Property) Availability() bool        { return p.availability }
func (p *Property) IsActive() bool            { return p.isActive }
func (p *Property) CreatedAt() time.Time      { return p.createdAt }
func (p *Property) UpdatedAt() time.Time      { return p.updatedAt }
