package booking

import "rental-marketplace/internal/domain/money"

// Quote is nightly × nights in the property's currency.
func Quote(nightly money.Money, stay Stay) (money.Money, error) {
	return nightly.TimesBounded(stay.Nights())
}

// ResolveTotal returns the quote, rejecting a client-supplied total that disagrees with it.
func ResolveTotal(nightly money.Money, stay Stay, supplied *float64) (money.Money, error) {
	quote, err := Quote(nightly, stay)
	if err != nil {
		return money.Money{}, err
	}
	if supplied == nil {
		return quote, nil
	}
	got, err := money.FromMajor(*supplied, quote.Currency())
	if err != nil {
		return money.Money{}, err
	}
	if !got.Equal(quote) {
		return money.Money{}, ErrPriceMismatch
	}
	return quote, nil
}
