package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"rental-marketplace/internal/pkg/errs"
)

const (
	MinPasswordLength = 6
	MinNameLength     = 2
	MaxNameLength     = 50
	MaxPhoneLength    = 20
)

var (
	ErrInvalidEmail    = errs.Domain(errs.ErrValidation, "invalid email format")
	ErrInvalidRole     = errs.Domain(errs.ErrValidation, "invalid role")
	ErrPasswordTooWeak = errs.Domain(errs.ErrValidation, "password must be at least 6 characters long")
	ErrInvalidName     = errs.Domain(errs.ErrValidation, "first and last name must be between 2 and 50 characters")
	ErrInvalidPhone    = errs.Domain(errs.ErrValidation, "invalid phone number")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9 \-]{6,20}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < MinPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Name struct {
	first string
	last  string
}

func NewName(first, last string) (Name, error) {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)
	if !validNamePart(first) || !validNamePart(last) {
		return Name{}, ErrInvalidName
	}
	return Name{first: first, last: last}, nil
}

func validNamePart(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= MinNameLength && n <= MaxNameLength
}

func (n Name) First() string { return n.first }
func (n Name) Last() string  { return n.last }
func (n Name) Full() string  { return n.first + " " + n.last }

// Phone is optional; the zero value means "not provided".
type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Phone{}, nil
	}
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string { return p.value }

func (p Phone) Ptr() *string {
	if p.value == "" {
		return nil
	}
	v := p.value
	return &v
}
