package pgconv

import (
	"database/sql"
	"errors"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var (
	ErrInvalidFloat64Value = errors.New("invalid float64 value in pgtype.Float8")
	ErrInvalidNumeric      = errors.New("invalid numeric value")
)

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	return &pt.Time
}

func DateFromPgtype(pd pgtype.Date) time.Time {
	return pd.Time
}

func Float64PtrFromPgtype(pf pgtype.Float8) (*float64, error) {
	if !pf.Valid {
		return nil, nil
	}

	value, err := pf.Float64Value()
	if err != nil {
		return nil, ErrInvalidFloat64Value
	}

	return &value.Float64, nil
}

func Float64PtrFromNumeric(pn pgtype.Numeric) (*float64, error) {
	if !pn.Valid {
		return nil, nil
	}

	value, err := pn.Float64Value()
	if err != nil {
		return nil, ErrInvalidFloat64Value
	}

	return &value.Float64, nil
}

// MinorUnitsFromNumeric converts a numeric(…,2) amount into integer minor units (paisa).
func MinorUnitsFromNumeric(pn pgtype.Numeric) (int64, error) {
	if !pn.Valid || pn.NaN || pn.Int == nil {
		return 0, ErrInvalidNumeric
	}

	v := new(big.Int).Set(pn.Int)
	shift := int(pn.Exp) + 2
	ten := big.NewInt(10)
	switch {
	case shift > 0:
		v.Mul(v, new(big.Int).Exp(ten, big.NewInt(int64(shift)), nil))
	case shift < 0:
		v.Quo(v, new(big.Int).Exp(ten, big.NewInt(int64(-shift)), nil))
	}

	if !v.IsInt64() {
		return 0, ErrInvalidNumeric
	}
	return v.Int64(), nil
}

func MinorUnitsToNumeric(minor int64) pgtype.Numeric {
	return pgtype.Numeric{Int: big.NewInt(minor), Exp: -2, Valid: true}
}

func Float64PtrToPgtype(f *float64) pgtype.Float8 {
	if f == nil {
		return pgtype.Float8{Valid: false}
	}
	return pgtype.Float8{Float64: *f, Valid: true}
}

func Int32PtrFromPgtype(pi pgtype.Int4) *int32 {
	if !pi.Valid {
		return nil
	}
	return &pi.Int32
}

func Int32PtrToPgtype(v *int32) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{Valid: false}
	}
	return pgtype.Int4{Int32: *v, Valid: true}
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TimePtrToPgtype(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func DateToPgtype(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
