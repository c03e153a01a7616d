//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"

	"rental-marketplace/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinorUnitsFromNumeric(t *testing.T) {
	tests := []struct {
		name    string
		in      pgtype.Numeric
		want    int64
		wantErr bool
	}{
		{name: "two decimals", in: pgtype.Numeric{Int: big.NewInt(1500050), Exp: -2, Valid: true}, want: 1500050},
		{name: "integer scale", in: pgtype.Numeric{Int: big.NewInt(15000), Exp: 0, Valid: true}, want: 1500000},
		{name: "positive exponent", in: pgtype.Numeric{Int: big.NewInt(15), Exp: 3, Valid: true}, want: 1500000},
		{name: "extra precision truncated", in: pgtype.Numeric{Int: big.NewInt(123456), Exp: -4, Valid: true}, want: 1234},
		{name: "null", in: pgtype.Numeric{}, wantErr: true},
		{name: "nan", in: pgtype.Numeric{NaN: true, Valid: true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pgconv.MinorUnitsFromNumeric(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, pgconv.ErrInvalidNumeric)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinorUnitsRoundTrip(t *testing.T) {
	for _, minor := range []int64{1, 99, 500000, 123456789} {
		got, err := pgconv.MinorUnitsFromNumeric(pgconv.MinorUnitsToNumeric(minor))
		require.NoError(t, err)
		assert.Equal(t, minor, got)
	}
}

func TestFloat64PtrToPgtype(t *testing.T) {
	assert.False(t, pgconv.Float64PtrToPgtype(nil).Valid)

	v := 27.7172
	got := pgconv.Float64PtrToPgtype(&v)
	assert.True(t, got.Valid)
	assert.InDelta(t, v, got.Float64, 1e-9)

	back, err := pgconv.Float64PtrFromPgtype(got)
	require.NoError(t, err)
	assert.InDelta(t, v, *back, 1e-9)
}
