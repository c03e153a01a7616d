//go:build e2e

package booking_test

import (
	"bytes"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/handler/dto/request"
	resdto "rental-marketplace/internal/handler/dto/response"
	"rental-marketplace/internal/pkg/ptr"
	"rental-marketplace/tests/common/authtest"
	"rental-marketplace/tests/common/dbtest"
	"rental-marketplace/tests/common/httptest"
	"rental-marketplace/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

const bookingsURL = "/api/bookings"

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

type fixture struct {
	hostID     uuid.UUID
	hostToken  string
	propertyID uuid.UUID
	guestID    uuid.UUID
	guestToken string
}

func (s *bookingSuite) listing() fixture {
	t := s.T()
	hostID, hostToken := authtest.CreateAndLogin(t, s.DB, s.Router, "host@example.com", string(user.RoleHost))
	guestID, guestToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))
	return fixture{
		hostID:     hostID,
		hostToken:  hostToken,
		propertyID: dbtest.CreateTestProperty(t, s.DB, hostID, 5000, 4),
		guestID:    guestID,
		guestToken: guestToken,
	}
}

func day(offset int) time.Time {
	return time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, offset)
}

func dateParam(offset int) string {
	return day(offset).Format(booking.DateLayout)
}

func (s *bookingSuite) TestCreateBooking() {
	s.Run("pending booking priced from the nightly rate", func() {
		t := s.T()
		f := s.listing()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, request.CreateBookingRequest{
			PropertyID: f.propertyID, CheckIn: dateParam(10), CheckOut: dateParam(13), Guests: 2, Notes: "Late arrival",
		}, f.guestToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res resdto.BookingDetailResponse
		httptest.DecodeData(t, w, &res)
		require.Equal(t, "pending", res.Status)
		require.InDelta(t, 15000, res.TotalPrice, 0.001)
		require.Equal(t, "NPR", res.Currency)
		require.Equal(t, "Lakeside cottage", res.PropertyTitle)
		require.Equal(t, f.guestID, res.UserID)
	})

	s.Run("client total must match", func() {
		t := s.T()
		f := s.listing()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, request.CreateBookingRequest{
			PropertyID: f.propertyID, CheckIn: dateParam(10), CheckOut: dateParam(13), Guests: 2, TotalPrice: ptr.Of(100.0),
		}, f.guestToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, booking.ErrPriceMismatch.Error())
	})

	s.Run("over capacity", func() {
		t := s.T()
		f := s.listing()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, request.CreateBookingRequest{
			PropertyID: f.propertyID, CheckIn: dateParam(10), CheckOut: dateParam(12), Guests: 5,
		}, f.guestToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Property can accommodate maximum 4 guests")
	})

	s.Run("check-out before check-in", func() {
		t := s.T()
		f := s.listing()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, request.CreateBookingRequest{
			PropertyID: f.propertyID, CheckIn: dateParam(12), CheckOut: dateParam(10), Guests: 1,
		}, f.guestToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, booking.ErrInvalidStay.Error())
	})

	s.Run("overlapping a confirmed stay", func() {
		t := s.T()
		f := s.listing()
		dbtest.CreateTestBooking(t, s.DB, f.guestID, f.propertyID, day(10), day(14), 20000, "confirmed")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, request.CreateBookingRequest{
			PropertyID: f.propertyID, CheckIn: dateParam(13), CheckOut: dateParam(15), Guests: 1,
		}, f.guestToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, booking.ErrDatesUnavailable.Error())
	})

	s.Run("back to back stays do not overlap", func() {
		t := s.T()
		f := s.listing()
		dbtest.CreateTestBooking(t, s.DB, f.guestID, f.propertyID, day(10), day(14), 20000, "confirmed")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, request.CreateBookingRequest{
			PropertyID: f.propertyID, CheckIn: dateParam(14), CheckOut: dateParam(16), Guests: 1,
		}, f.guestToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("pending and cancelled stays do not block", func() {
		t := s.T()
		f := s.listing()
		dbtest.CreateTestBooking(t, s.DB, f.guestID, f.propertyID, day(10), day(14), 20000, "pending")
		dbtest.CreateTestBooking(t, s.DB, f.guestID, f.propertyID, day(10), day(14), 20000, "cancelled")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, request.CreateBookingRequest{
			PropertyID: f.propertyID, CheckIn: dateParam(11), CheckOut: dateParam(12), Guests: 1,
		}, f.guestToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("inactive property", func() {
		t := s.T()
		f := s.listing()
		_, err := s.DB.Exec(t.Context(), "UPDATE properties SET is_active = false WHERE id = $1", f.propertyID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, request.CreateBookingRequest{
			PropertyID: f.propertyID, CheckIn: dateParam(10), CheckOut: dateParam(12), Guests: 1,
		}, f.guestToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Property not found or not available")
	})
}

// The exclusion constraint backs the availability check when requests race.
func (s *bookingSuite) TestConcurrentConfirmedOverlap() {
	s.Run("only one confirmed booking survives", func() {
		t := s.T()
		f := s.listing()

		const writers = 5
		var wg sync.WaitGroup
		errs := make(chan error, writers)
		for range writers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.DB.Exec(t.Context(), `INSERT INTO bookings
					(id, user_id, property_id, check_in, check_out, guests, total_price, status)
					VALUES ($1, $2, $3, $4, $5, 1, 10000, 'confirmed')`,
					uuid.New(), f.guestID, f.propertyID, day(20), day(22))
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		var ok int
		for err := range errs {
			if err == nil {
				ok++
			}
		}
		require.Equal(t, 1, ok)
	})
}

func (s *bookingSuite) TestListAndGet() {
	s.Run("guests only see their own bookings", func() {
		t := s.T()
		f := s.listing()
		mine := dbtest.CreateTestBooking(t, s.DB, f.guestID, f.propertyID, day(10), day(12), 10000, "confirmed")
		dbtest.CreateTestBooking(t, s.DB, f.guestID, f.propertyID, day(20), day(22), 10000, "cancelled")
		otherID, otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleGuest))
		dbtest.CreateTestBooking(t, s.DB, otherID, f.propertyID, day(30), day(32), 10000, "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?status=confirmed", nil, f.guestToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var list resdto.BookingListResponse
		httptest.DecodeData(t, w, &list)
		require.Len(t, list.Bookings, 1)
		require.Equal(t, mine, list.Bookings[0].ID)
		require.Equal(t, 1, list.Pagination.TotalItems)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("%s/%s", bookingsURL, mine), nil, otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})

	s.Run("unknown status filter", func() {
		f := s.listing()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"?status=paid", nil, f.guestToken)
		require.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}

func (s *bookingSuite) TestCancel() {
	tests := []struct {
		name       string
		checkIn    int
		status     string
		wantStatus int
		wantMsg    string
	}{
		{name: "pending future stay", checkIn: 10, status: "pending", wantStatus: http.StatusOK},
		{name: "confirmed future stay", checkIn: 10, status: "confirmed", wantStatus: http.StatusOK},
		{name: "confirmed stay already started", checkIn: -1, status: "confirmed", wantStatus: http.StatusBadRequest, wantMsg: booking.ErrStayStarted.Error()},
		{name: "already cancelled", checkIn: 10, status: "cancelled", wantStatus: http.StatusBadRequest, wantMsg: booking.ErrAlreadyCancelled.Error()},
		{name: "completed", checkIn: -10, status: "completed", wantStatus: http.StatusBadRequest, wantMsg: booking.ErrCancelCompleted.Error()},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			f := s.listing()
			id := dbtest.CreateTestBooking(t, s.DB, f.guestID, f.propertyID, day(tt.checkIn), day(tt.checkIn+3), 15000, tt.status)

			w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf("%s/%s/cancel", bookingsURL, id), nil, f.guestToken)
			if tt.wantMsg != "" {
				httptest.AssertErrorResponse(t, w, tt.wantStatus, tt.wantMsg)
				return
			}
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			var status string
			require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT status FROM bookings WHERE id = $1", id).Scan(&status))
			require.Equal(t, "cancelled", status)
		})
	}

	s.Run("someone else's booking", func() {
		t := s.T()
		f := s.listing()
		id := dbtest.CreateTestBooking(t, s.DB, f.guestID, f.propertyID, day(10), day(12), 10000, "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf("%s/%s/cancel", bookingsURL, id), nil, f.hostToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})
}

func (s *bookingSuite) TestComplete() {
	s.Run("host completes a finished stay", func() {
		t := s.T()
		f := s.listing()
		id := dbtest.CreateTestBooking(t, s.DB, f.guestID, f.propertyID, day(-5), day(-2), 15000, "confirmed")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf("%s/%s/complete", bookingsURL, id), nil, f.hostToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("stay not over yet", func() {
		t := s.T()
		f := s.listing()
		id := dbtest.CreateTestBooking(t, s.DB, f.guestID, f.propertyID, day(-1), day(2), 15000, "confirmed")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf("%s/%s/complete", bookingsURL, id), nil, f.hostToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, booking.ErrStayNotOver.Error())
	})

	s.Run("another host's listing", func() {
		t := s.T()
		f := s.listing()
		id := dbtest.CreateTestBooking(t, s.DB, f.guestID, f.propertyID, day(-5), day(-2), 15000, "confirmed")
		_, otherHost := authtest.CreateAndLogin(t, s.DB, s.Router, "rival@example.com", string(user.RoleHost))

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf("%s/%s/complete", bookingsURL, id), nil, otherHost)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("guests cannot complete", func() {
		t := s.T()
		f := s.listing()
		id := dbtest.CreateTestBooking(t, s.DB, f.guestID, f.propertyID, day(-5), day(-2), 15000, "confirmed")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf("%s/%s/complete", bookingsURL, id), nil, f.guestToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *bookingSuite) TestExport() {
	s.Run("host downloads a workbook of the listing's bookings", func() {
		t := s.T()
		f := s.listing()
		id := dbtest.CreateTestBooking(t, s.DB, f.guestID, f.propertyID, day(10), day(13), 15000, "confirmed")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/api/properties/%s/bookings/export", f.propertyID), nil, f.hostToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))

		book, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
		require.NoError(t, err)
		defer book.Close()

		rows, err := book.GetRows("Bookings")
		require.NoError(t, err)
		require.Len(t, rows, 3, "title, header and one booking")
		require.Equal(t, "Booking ID", rows[1][0])
		require.Equal(t, id.String(), rows[2][0])
		require.Equal(t, "confirmed", rows[2][8])
	})

	s.Run("guests cannot export", func() {
		f := s.listing()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/properties/%s/bookings/export", f.propertyID), nil, f.guestToken)
		require.Equal(s.T(), http.StatusForbidden, w.Code)
	})
}
