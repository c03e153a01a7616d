package ptr

func Of[T any](v T) *T {
	return &v
}

// Deref returns the pointed-to value, or the zero value for nil.
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// NonZero returns nil for the zero value of T.
func NonZero[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
