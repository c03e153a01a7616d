package converter

import (
	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/domain/property"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func PropertyToCreateParams(p *property.Property) sqlc.CreatePropertyParams {
	lat, lng := coordinatesToPgtype(p.Coordinates())
	addr := p.Address()
	capacity := p.Capacity()
	return sqlc.CreatePropertyParams{
		ID:           p.ID(),
		HostID:       p.HostID(),
		Title:        p.Title(),
		Description:  p.Description(),
		Type:         p.Type().String(),
		Address:      addr.Street,
		City:         addr.City,
		State:        addr.State,
		Country:      addr.Country,
		ZipCode:      addr.ZipCode,
		Latitude:     lat,
		Longitude:    lng,
		Price:        pgconv.MinorUnitsToNumeric(p.Price().Minor()),
		Currency:     p.Price().Currency(),
		Bedrooms:     int32(capacity.Bedrooms),
		Bathrooms:    int32(capacity.Bathrooms),
		MaxGuests:    int32(capacity.MaxGuests),
		Amenities:    nonNil(p.Amenities().Labels()),
		Images:       nonNil(p.Images().URLs()),
		Availability: p.Availability(),
		CreatedAt:    pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

func PropertyToUpdateParams(p *property.Property) sqlc.UpdatePropertyParams {
	c := PropertyToCreateParams(p)
	return sqlc.UpdatePropertyParams{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		Type:         c.Type,
		Address:      c.Address,
		City:         c.City,
		State:        c.State,
		Country:      c.Country,
		ZipCode:      c.ZipCode,
		Latitude:     c.Latitude,
		Longitude:    c.Longitude,
		Price:        c.Price,
		Currency:     c.Currency,
		Bedrooms:     c.Bedrooms,
		Bathrooms:    c.Bathrooms,
		MaxGuests:    c.MaxGuests,
		Amenities:    c.Amenities,
		Images:       c.Images,
		Availability: c.Availability,
		UpdatedAt:    pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PropertyFromRow(row sqlc.Properties) (*property.Property, error) {
	propertyType, err := property.NewType(row.Type)
	if err != nil {
		return nil, errs.Wrap(err, "stored property type")
	}
	minor, err := pgconv.MinorUnitsFromNumeric(row.Price)
	if err != nil {
		return nil, errs.Wrap(err, "stored property price")
	}
	lat, err := pgconv.Float64PtrFromPgtype(row.Latitude)
	if err != nil {
		return nil, errs.Wrap(err, "stored property latitude")
	}
	lng, err := pgconv.Float64PtrFromPgtype(row.Longitude)
	if err != nil {
		return nil, errs.Wrap(err, "stored property longitude")
	}
	var coords *property.Coordinates
	if lat != nil && lng != nil {
		coords = &property.Coordinates{Latitude: *lat, Longitude: *lng}
	}

	return property.ReconstructProperty(
		row.ID,
		row.HostID,
		row.Title,
		row.Description,
		propertyType,
		property.Address{
			Street:  row.Address,
			City:    row.City,
			State:   row.State,
			Country: row.Country,
			ZipCode: row.ZipCode,
		},
		coords,
		money.Reconstruct(minor, row.Currency),
		property.Capacity{
			Bedrooms:  int(row.Bedrooms),
			Bathrooms: int(row.Bathrooms),
			MaxGuests: int(row.MaxGuests),
		},
		row.Amenities,
		row.Images,
		row.Availability,
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func coordinatesToPgtype(c *property.Coordinates) (pgtype.Float8, pgtype.Float8) {
	if c == nil {
		return pgtype.Float8{}, pgtype.Float8{}
	}
	return pgtype.Float8{Float64: c.Latitude, Valid: true}, pgtype.Float8{Float64: c.Longitude, Valid: true}
}

// text[] columns are NOT NULL; pgx encodes a nil slice as NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
