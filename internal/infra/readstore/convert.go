package readstore

import (
	"rental-marketplace/internal/domain/review"
	"rental-marketplace/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// amount renders a numeric(10,2) column as a float for the read side.
func amount(n pgtype.Numeric) float64 {
	v, err := pgconv.Float64PtrFromNumeric(n)
	if err != nil || v == nil {
		return 0
	}
	return *v
}

func rating(f pgtype.Float8) *float64 {
	v, err := pgconv.Float64PtrFromPgtype(f)
	if err != nil || v == nil {
		return nil
	}
	rounded := review.RoundRating(*v)
	return &rounded
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
