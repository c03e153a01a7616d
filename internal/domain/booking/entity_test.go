//go:build unit

package booking_test

import (
	"testing"
	"time"

	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

func newBooking(t *testing.T, status booking.Status, in, out string) *booking.Booking {
	t.Helper()
	total, err := money.FromMajor(7000, "NPR")
	require.NoError(t, err)
	return booking.ReconstructBooking(
		uuid.New(), uuid.New(), uuid.New(),
		mustStay(t, in, out),
		booking.Guests(2),
		total,
		booking.Notes{},
		status,
		nil,
		now, now,
	)
}

func TestNewPending(t *testing.T) {
	nightly, err := money.FromMajor(3500, "NPR")
	require.NoError(t, err)
	stay := mustStay(t, "2024-07-01", "2024-07-03")
	guests, err := booking.NewGuests(2)
	require.NoError(t, err)

	quote, err := booking.Quote(nightly, stay)
	require.NoError(t, err)
	b := booking.NewPending(uuid.New(), uuid.New(), stay, guests, quote, booking.Notes{}, now)

	assert.Equal(t, booking.StatusPending, b.Status())
	assert.Equal(t, 7000.0, b.TotalPrice().Major())
	assert.Nil(t, b.Payment())
	assert.NotEqual(t, uuid.Nil, b.ID())
}

func TestNewConfirmed(t *testing.T) {
	stay := mustStay(t, "2024-07-01", "2024-07-03")
	total, err := money.FromMajor(5000, "NPR")
	require.NoError(t, err)

	t.Run("stamps payment linkage", func(t *testing.T) {
		link := booking.PaymentLink{IntentID: "pi_1_abc", Method: "esewa", CompletedAt: now}
		b, err := booking.NewConfirmed(uuid.New(), uuid.New(), stay, 2, total, booking.Notes{}, link, now)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusConfirmed, b.Status())
		require.NotNil(t, b.Payment())
		assert.Equal(t, "pi_1_abc", b.Payment().IntentID)
		assert.Equal(t, "esewa", b.Payment().Method)
		assert.Equal(t, now, b.Payment().CompletedAt)
	})

	t.Run("requires an intent id", func(t *testing.T) {
		_, err := booking.NewConfirmed(uuid.New(), uuid.New(), stay, 2, total, booking.Notes{}, booking.PaymentLink{}, now)
		require.ErrorIs(t, err, booking.ErrMissingPaymentLink)
	})
}

func TestCancel(t *testing.T) {
	today := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		status booking.Status
		in     string
		out    string
		errIs  error
	}{
		{name: "pending succeeds", status: booking.StatusPending, in: "2024-07-01", out: "2024-07-03"},
		{name: "pending in the past still succeeds", status: booking.StatusPending, in: "2024-06-01", out: "2024-06-03"},
		{name: "future confirmed succeeds", status: booking.StatusConfirmed, in: "2024-07-01", out: "2024-07-03"},
		{name: "confirmed starting today fails", status: booking.StatusConfirmed, in: "2024-06-20", out: "2024-06-22", errIs: booking.ErrStayStarted},
		{name: "already cancelled fails", status: booking.StatusCancelled, in: "2024-07-01", out: "2024-07-03", errIs: booking.ErrAlreadyCancelled},
		{name: "completed fails", status: booking.StatusCompleted, in: "2024-06-01", out: "2024-06-03", errIs: booking.ErrCancelCompleted},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := newBooking(t, c.status, c.in, c.out)
			later := now.Add(time.Hour)

			err := b.Cancel(today, later)

			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, booking.StatusCancelled, b.Status())
				assert.Equal(t, later, b.UpdatedAt())
				return
			}
			require.ErrorIs(t, err, c.errIs)
			assert.True(t, errs.Is(err, errs.ErrInvalidState))
			assert.Equal(t, c.status, b.Status())
		})
	}

	t.Run("second cancel fails", func(t *testing.T) {
		b := newBooking(t, booking.StatusPending, "2024-07-01", "2024-07-03")
		require.NoError(t, b.Cancel(today, now))
		require.ErrorIs(t, b.Cancel(today, now), booking.ErrAlreadyCancelled)
	})
}

func TestComplete(t *testing.T) {
	t.Run("confirmed after check-out", func(t *testing.T) {
		b := newBooking(t, booking.StatusConfirmed, "2024-06-01", "2024-06-03")
		require.NoError(t, b.Complete(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), now))
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("confirmed before check-out", func(t *testing.T) {
		b := newBooking(t, booking.StatusConfirmed, "2024-06-01", "2024-06-03")
		require.ErrorIs(t, b.Complete(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), now), booking.ErrStayNotOver)
	})

	t.Run("pending cannot complete", func(t *testing.T) {
		b := newBooking(t, booking.StatusPending, "2024-06-01", "2024-06-03")
		require.ErrorIs(t, b.Complete(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), now), booking.ErrNotConfirmed)
	})
}

func TestResolveTotal(t *testing.T) {
	nightly, err := money.FromMajor(3500, "NPR")
	require.NoError(t, err)
	stay := mustStay(t, "2024-07-01", "2024-07-03")

	t.Run("computed when omitted", func(t *testing.T) {
		total, err := booking.ResolveTotal(nightly, stay, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(700000), total.Minor())
	})

	t.Run("matching client total", func(t *testing.T) {
		total, err := booking.ResolveTotal(nightly, stay, ptr.Of(7000.0))
		require.NoError(t, err)
		assert.Equal(t, "NPR", total.Currency())
	})

	t.Run("mismatched client total", func(t *testing.T) {
		_, err := booking.ResolveTotal(nightly, stay, ptr.Of(6999.0))
		require.ErrorIs(t, err, booking.ErrPriceMismatch)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("total beyond the storable range", func(t *testing.T) {
		pricey, err := money.FromMajor(9_999_999, "NPR")
		require.NoError(t, err)

		_, err = booking.ResolveTotal(pricey, mustStay(t, "2024-07-01", "2024-07-31"), nil)
		require.ErrorIs(t, err, money.ErrAmountTooLarge)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
