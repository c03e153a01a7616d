package money

import (
	"fmt"
	"strings"

	"rental-marketplace/internal/pkg/errs"
)

const (
	DefaultCurrency = "NPR"
	// MaxMinor is the largest amount a NUMERIC(10,2) column holds.
	MaxMinor int64 = 9_999_999_999
)

var (
	ErrInvalidAmount   = errs.Domain(errs.ErrValidation, "amount must be greater than zero")
	ErrAmountTooLarge  = errs.Domain(errs.ErrValidation, "amount cannot exceed 99999999.99")
	ErrInvalidCurrency = errs.Domain(errs.ErrValidation, "currency must be a three letter code")
)

// Money is an amount in minor units (1/100) of its currency.
type Money struct {
	minor    int64
	currency string
}

func New(minor int64, currency string) (Money, error) {
	if minor <= 0 {
		return Money{}, ErrInvalidAmount
	}
	if minor > MaxMinor {
		return Money{}, ErrAmountTooLarge
	}
	cur, err := normalizeCurrency(currency)
	if err != nil {
		return Money{}, err
	}
	return Money{minor: minor, currency: cur}, nil
}

// FromMajor converts a decimal amount such as 3500.50 into minor units, rounding half away from zero.
func FromMajor(major float64, currency string) (Money, error) {
	if major > float64(MaxMinor)/100 {
		return Money{}, ErrAmountTooLarge
	}
	minor := int64(major*100 + 0.5)
	if major < 0 {
		minor = int64(major*100 - 0.5)
	}
	return New(minor, currency)
}

// Reconstruct skips validation for values already persisted.
func Reconstruct(minor int64, currency string) Money {
	return Money{minor: minor, currency: currency}
}

func normalizeCurrency(c string) (string, error) {
	c = strings.ToUpper(strings.TrimSpace(c))
	if c == "" {
		return DefaultCurrency, nil
	}
	if len(c) != 3 {
		return "", ErrInvalidCurrency
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return "", ErrInvalidCurrency
		}
	}
	return c, nil
}

func (m Money) Minor() int64       { return m.minor }
func (m Money) Currency() string   { return m.currency }
func (m Money) Major() float64     { return float64(m.minor) / 100 }
func (m Money) IsZero() bool       { return m.minor == 0 }
func (m Money) Equal(o Money) bool { return m.minor == o.minor && m.currency == o.currency }

func (m Money) Times(n int) Money {
	return Money{minor: m.minor * int64(n), currency: m.currency}
}

// TimesBounded is Times that refuses results beyond MaxMinor.
func (m Money) TimesBounded(n int) (Money, error) {
	if n > 0 && m.minor > MaxMinor/int64(n) {
		return Money{}, ErrAmountTooLarge
	}
	return m.Times(n), nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d %s", m.minor/100, m.minor%100, m.currency)
}
