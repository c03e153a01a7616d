package booking

import (
	"strings"
	"time"
	"unicode/utf8"

	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/pkg/errs"
)

const (
	MaxNotesLength = 500
	MaxNights      = 365
	DateLayout     = "2006-01-02"
)

var (
	ErrInvalidStay   = errs.Domain(errs.ErrValidation, "check-out date must be after check-in date")
	ErrStayTooLong   = errs.Domain(errs.ErrValidation, "a stay cannot be longer than 365 nights")
	ErrInvalidDate   = errs.Domain(errs.ErrValidation, "dates must be formatted as YYYY-MM-DD")
	ErrInvalidGuests = errs.Domain(errs.ErrValidation, "guests must be at least 1")
	ErrNotesTooLong  = errs.Domain(errs.ErrValidation, "notes cannot exceed 500 characters")
	ErrInvalidStatus = errs.Domain(errs.ErrValidation, "invalid booking status")
	ErrPriceMismatch = errs.Domain(errs.ErrValidation, "total price does not match the nightly price for the selected dates")
)

// Stay is the half-open date range [CheckIn, CheckOut) at day granularity.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	in, out := clock.DateOf(checkIn), clock.DateOf(checkOut)
	if !out.After(in) {
		return Stay{}, ErrInvalidStay
	}
	stay := Stay{checkIn: in, checkOut: out}
	if stay.Nights() > MaxNights {
		return Stay{}, ErrStayTooLong
	}
	return stay, nil
}

func ParseStay(checkIn, checkOut string) (Stay, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return Stay{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return Stay{}, err
	}
	return NewStay(in, out)
}

// ParseDate accepts YYYY-MM-DD and RFC 3339 timestamps, keeping only the calendar date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return clock.DateOf(t), nil
	}
	return time.Time{}, ErrInvalidDate
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }

func (s Stay) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Overlaps is the half-open test: a stay ending on the day another begins does not overlap it.
func (s Stay) Overlaps(o Stay) bool {
	return o.checkIn.Before(s.checkOut) && o.checkOut.After(s.checkIn)
}

func (s Stay) HasStarted(today time.Time) bool {
	return !s.checkIn.After(clock.DateOf(today))
}

func (s Stay) HasEnded(today time.Time) bool {
	return !s.checkOut.After(clock.DateOf(today))
}

type Guests int

func NewGuests(n int) (Guests, error) {
	if n < 1 {
		return 0, ErrInvalidGuests
	}
	return Guests(n), nil
}

func (g Guests) Int() int { return int(g) }

type Notes struct {
	text string
}

func NewNotes(s string) (Notes, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxNotesLength {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{text: s}, nil
}

func (n Notes) String() string { return n.text }

func (n Notes) Ptr() *string {
	if n.text == "" {
		return nil
	}
	v := n.text
	return &v
}
