//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/handler/api"
	resdto "rental-marketplace/internal/handler/dto/response"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/tests/common/builder"
	"rental-marketplace/tests/common/httptest"
	"rental-marketplace/tests/common/testutil"
	commandsmock "rental-marketplace/tests/mock/commands"
	queriesmock "rental-marketplace/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	principals   testPrincipals
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)

	router, authMw, principals := newTestEngine(s.T(), s.mockCtrl)
	s.router, s.principals = router, principals
	handler := api.NewBookingHandler(s.mockCommands, s.mockQueries)
	hostOnly := authMw.RequireRoles(user.RoleHost, user.RoleAdmin)

	bookings := s.router.Group("/api/bookings", authMw.RequireAuth())
	bookings.POST("", handler.Create)
	bookings.GET("", handler.List)
	bookings.GET("/:id", handler.Get)
	bookings.PUT("/:id/cancel", handler.Cancel)
	bookings.PUT("/:id/complete", hostOnly, handler.Complete)
	s.router.GET("/api/properties/:id/bookings/export", authMw.RequireAuth(), hostOnly, handler.ExportForProperty)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type bookingCase struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
	expectMsg  string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/api/bookings"
	b := builder.NewBookingBuilder().WithUser(s.principals.guest.UserID)
	reqBody := b.BuildCreateDTO()
	detail := b.BuildDetailView()

	s.Run("success: 201 with the booking detail", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.principals.guest, reqBody.ToInput()).Return(detail.ID, nil)
		s.mockQueries.EXPECT().Get(gomock.Any(), s.principals.guest.UserID, detail.ID).Return(detail, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guestToken)

		var body resdto.BookingDetailResponse
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
		httptest.DecodeData(s.T(), rec, &body)
		s.Equal(detail.ID, body.ID)
		s.Equal(detail.Status, body.Status)
	})

	s.Run("error: 400 on binding failures", func() {
		cases := []bookingCase{
			{name: "missing propertyId", mutate: testutil.Field("propertyId", nil), expectMsg: "propertyId is required"},
			{name: "malformed propertyId", mutate: testutil.Field("propertyId", "not-a-uuid")},
			{name: "missing checkIn", mutate: testutil.Field("checkIn", nil), expectMsg: "checkIn is required"},
			{name: "unparseable checkOut", mutate: testutil.Field("checkOut", "31/12/2025"), expectMsg: booking.ErrInvalidDate.Error()},
			{name: "zero guests", mutate: testutil.Field("guests", 0), expectMsg: "guests is required"},
			{name: "non-positive totalPrice", mutate: testutil.Field("totalPrice", -10), expectMsg: "totalPrice must be greater than 0"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), guestToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectMsg)
			})
		}
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token is required")
	})

	s.Run("error: 401 with an invalid token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "forged")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: maps usecase errors to statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "dates taken", err: booking.ErrDatesUnavailable, expectCode: http.StatusBadRequest, expectMsg: booking.ErrDatesUnavailable.Error()},
			{name: "unknown property", err: queries.ErrPropertyNotFound, expectCode: http.StatusNotFound, expectMsg: "Property not found"},
			{name: "unclassified failure", err: errors.New("connection reset"), expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guestToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: status filter and paging forwarded", func() {
		page := &queries.PageResult[*queries.BookingListItem]{
			Items:      []*queries.BookingListItem{{ID: uuid.New(), Status: "confirmed"}},
			Pagination: queries.NewPagination(queries.NewPage(2, 5), 6),
		}
		s.mockQueries.EXPECT().
			List(gomock.Any(), s.principals.guest.UserID, gomock.Any(), queries.NewPage(2, 5)).
			DoAndReturn(func(_ any, _ uuid.UUID, status *string, _ queries.Page) (*queries.PageResult[*queries.BookingListItem], error) {
				s.Require().NotNil(status)
				s.Equal("confirmed", *status)
				return page, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings?status=confirmed&page=2&limit=5", nil, guestToken)

		var body resdto.BookingListResponse
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
		httptest.DecodeData(s.T(), rec, &body)
		s.Len(body.Bookings, 1)
		s.Equal(2, body.Pagination.CurrentPage)
		s.True(body.Pagination.HasPrev)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings?status=archived", nil, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, booking.ErrInvalidStatus.Error())
	})
}

// ================================================================================
// TestGet / TestCancel / TestComplete
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/42", nil, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 for someone else's booking", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().Get(gomock.Any(), s.principals.guest.UserID, id).Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+id.String(), nil, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	b := builder.NewBookingBuilder().WithUser(s.principals.guest.UserID).WithStatus(booking.StatusCancelled)
	detail := b.BuildDetailView()
	url := "/api/bookings/" + detail.ID.String() + "/cancel"

	s.Run("success: returns the cancelled booking", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.principals.guest, detail.ID).Return(nil)
		s.mockQueries.EXPECT().Get(gomock.Any(), s.principals.guest.UserID, detail.ID).Return(detail, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, guestToken)

		var body resdto.BookingDetailResponse
		httptest.DecodeData(s.T(), rec, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("error: 400 when already cancelled", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.principals.guest, detail.ID).Return(booking.ErrAlreadyCancelled)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, booking.ErrAlreadyCancelled.Error())
	})

	s.Run("error: 403 for another guest", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.principals.guest, detail.ID).Return(auth.ErrNotResourceOwner)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *BookingHandlerTestSuite) TestComplete() {
	id := uuid.New()
	url := "/api/bookings/" + id.String() + "/complete"

	s.Run("success: host completes a finished stay", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), s.principals.host, id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, hostToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 for guests before reaching the command", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 400 before check-out", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), s.principals.admin, id).Return(booking.ErrStayNotOver)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, booking.ErrStayNotOver.Error())
	})
}

// ================================================================================
// TestExportForProperty
// ================================================================================

func (s *BookingHandlerTestSuite) TestExportForProperty() {
	propertyID := uuid.New()
	url := "/api/properties/" + propertyID.String() + "/bookings/export"

	s.Run("success: spreadsheet served as an attachment", func() {
		export := &queries.BookingExport{
			FileName:    "bookings-" + propertyID.String() + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     []byte("PK\x03\x04"),
		}
		s.mockQueries.EXPECT().ExportForProperty(gomock.Any(), s.principals.host, propertyID).Return(export, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, hostToken)

		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Type":        export.ContentType,
			"Content-Disposition": `attachment; filename="` + export.FileName + `"`,
		})
		s.Equal(export.Content, rec.Body.Bytes())
	})

	s.Run("error: 403 for a host who does not own the property", func() {
		s.mockQueries.EXPECT().ExportForProperty(gomock.Any(), s.principals.host, propertyID).Return(nil, auth.ErrNotResourceOwner)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, hostToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}
