package property

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"rental-marketplace/internal/pkg/errs"
)

const (
	MinTitleLength       = 5
	MaxTitleLength       = 100
	MinDescriptionLength = 20
	MaxDescriptionLength = 1000
	MaxAmenityLength     = 100
	MaxImages            = 20
)

var (
	ErrInvalidType        = errs.Domain(errs.ErrValidation, "property type must be one of apartment, house, villa, cabin, hotel")
	ErrInvalidTitle       = errs.Domain(errs.ErrValidation, "title must be between 5 and 100 characters")
	ErrInvalidDescription = errs.Domain(errs.ErrValidation, "description must be between 20 and 1000 characters")
	ErrIncompleteAddress  = errs.Domain(errs.ErrValidation, "address, city, state, country and zip code are required")
	ErrInvalidCoordinates = errs.Domain(errs.ErrValidation, "latitude must be within [-90, 90] and longitude within [-180, 180]")
	ErrInvalidCapacity    = errs.Domain(errs.ErrValidation, "bedrooms and bathrooms cannot be negative and max guests must be at least 1")
	ErrInvalidAmenity     = errs.Domain(errs.ErrValidation, "amenities must be non-empty labels of at most 100 characters")
	ErrInvalidImage       = errs.Domain(errs.ErrValidation, "images must be absolute http(s) URLs")
	ErrTooManyImages      = errs.Domain(errs.ErrValidation, "a property can have at most 20 images")
)

type Address struct {
	Street  string
	City    string
	State   string
	Country string
	ZipCode string
}

func NewAddress(street, city, state, country, zip string) (Address, error) {
	a := Address{
		Street:  strings.TrimSpace(street),
		City:    strings.TrimSpace(city),
		State:   strings.TrimSpace(state),
		Country: strings.TrimSpace(country),
		ZipCode: strings.TrimSpace(zip),
	}
	if a.Street == "" || a.City == "" || a.State == "" || a.Country == "" || a.ZipCode == "" {
		return Address{}, ErrIncompleteAddress
	}
	return a, nil
}

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// NewCoordinates returns nil when either component is missing.
func NewCoordinates(lat, lng *float64) (*Coordinates, error) {
	if lat == nil || lng == nil {
		return nil, nil
	}
	if *lat < -90 || *lat > 90 || *lng < -180 || *lng > 180 {
		return nil, ErrInvalidCoordinates
	}
	return &Coordinates{Latitude: *lat, Longitude: *lng}, nil
}

type Capacity struct {
	Bedrooms  int
	Bathrooms int
	MaxGuests int
}

func NewCapacity(bedrooms, bathrooms, maxGuests int) (Capacity, error) {
	if bedrooms < 0 || bathrooms < 0 || maxGuests < 1 {
		return Capacity{}, ErrInvalidCapacity
	}
	return Capacity{Bedrooms: bedrooms, Bathrooms: bathrooms, MaxGuests: maxGuests}, nil
}

func (c Capacity) Fits(guests int) bool {
	return guests >= 1 && guests <= c.MaxGuests
}

// Amenities is an insertion-ordered set of labels, compared case-insensitively.
type Amenities struct {
	labels []string
}

func NewAmenities(labels []string) (Amenities, error) {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" || utf8.RuneCountInString(l) > MaxAmenityLength {
			return Amenities{}, ErrInvalidAmenity
		}
		key := strings.ToLower(l)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, l)
	}
	return Amenities{labels: out}, nil
}

func (a Amenities) Labels() []string {
	return append([]string(nil), a.labels...)
}

func (a Amenities) Has(label string) bool {
	for _, l := range a.labels {
		if strings.EqualFold(l, label) {
			return true
		}
	}
	return false
}

type Images struct {
	urls []string
}

func NewImages(urls []string) (Images, error) {
	if len(urls) > MaxImages {
		return Images{}, ErrTooManyImages
	}
	out := make([]string, 0, len(urls))
	for _, raw := range urls {
		raw = strings.TrimSpace(raw)
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return Images{}, ErrInvalidImage
		}
		out = append(out, raw)
	}
	return Images{urls: out}, nil
}

func (i Images) URLs() []string {
	return append([]string(nil), i.urls...)
}

func (i Images) Cover() string {
	if len(i.urls) == 0 {
		return ""
	}
	return i.urls[0]
}

func validateTitle(s string) (string, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < MinTitleLength || n > MaxTitleLength {
		return "", ErrInvalidTitle
	}
	return s, nil
}

func validateDescription(s string) (string, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < MinDescriptionLength || n > MaxDescriptionLength {
		return "", ErrInvalidDescription
	}
	return s, nil
}
