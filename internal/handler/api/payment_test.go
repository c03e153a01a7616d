//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/domain/payment"
	"rental-marketplace/internal/handler/api"
	reqdto "rental-marketplace/internal/handler/dto/request"
	resdto "rental-marketplace/internal/handler/dto/response"
	"rental-marketplace/internal/usecase/commands"
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

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	mockQueries  *queriesmock.MockPaymentQueries
	principals   testPrincipals
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)

	router, authMw, principals := newTestEngine(s.T(), s.mockCtrl)
	s.router, s.principals = router, principals
	handler := api.NewPaymentHandler(s.mockCommands, s.mockQueries)

	payments := s.router.Group("/api/payments", authMw.RequireAuth())
	payments.POST("/create-intent", handler.CreateIntent)
	payments.POST("/confirm", handler.Confirm)
	payments.GET("/history", handler.History)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) intentRequest() reqdto.CreatePaymentIntentRequest {
	b := builder.NewBookingBuilder()
	return reqdto.CreatePaymentIntentRequest{
		PropertyID:    b.PropertyID,
		CheckIn:       b.CheckIn.Format(booking.DateLayout),
		CheckOut:      b.CheckOut.Format(booking.DateLayout),
		Guests:        2,
		TotalAmount:   10000,
		PaymentMethod: "esewa",
	}
}

// ================================================================================
// TestCreateIntent
// ================================================================================

func (s *PaymentHandlerTestSuite) TestCreateIntent() {
	url := "/api/payments/create-intent"
	reqBody := s.intentRequest()

	s.Run("success: 201 with amount in minor units", func() {
		b := builder.NewBookingBuilder().WithProperty(reqBody.PropertyID)
		now := time.Now()
		intent := payment.ReconstructIntent(
			"pi_1700000000000_abc", "pi_1700000000000_abc_secret_xyz",
			s.principals.guest.UserID,
			money.Reconstruct(1000000, money.DefaultCurrency),
			payment.MethodEsewa,
			payment.IntentRequiresPaymentMethod,
			payment.NewMetadata(reqBody.PropertyID, s.principals.guest.UserID, b.Stay(), booking.Guests(2), booking.Notes{}),
			nil, now, now,
		)
		s.mockCommands.EXPECT().CreateIntent(gomock.Any(), s.principals.guest, reqBody.ToInput()).Return(intent, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guestToken)

		var body resdto.PaymentIntentEnvelope
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
		httptest.DecodeData(s.T(), rec, &body)
		s.Require().NotNil(body.PaymentIntent)
		s.Equal(int64(1000000), body.PaymentIntent.Amount)
		s.Equal("requires_payment_method", body.PaymentIntent.Status)
		s.Equal(reqBody.CheckIn, body.PaymentIntent.Metadata.CheckIn)
	})

	s.Run("error: 400 on binding failures", func() {
		cases := []struct {
			name      string
			mutate    func(map[string]any)
			expectMsg string
		}{
			{name: "unknown method", mutate: testutil.Field("paymentMethod", "paypal"), expectMsg: payment.ErrInvalidMethod.Error()},
			{name: "zero amount", mutate: testutil.Field("totalAmount", 0), expectMsg: "totalAmount is required"},
			{name: "currency not ISO length", mutate: testutil.Field("currency", "RUPEE")},
			{name: "missing checkOut", mutate: testutil.Field("checkOut", nil), expectMsg: "checkOut is required"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), guestToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectMsg)
			})
		}
	})

	s.Run("error: 400 when the amount does not match the stay", func() {
		s.mockCommands.EXPECT().CreateIntent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, payment.ErrAmountMismatch)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, payment.ErrAmountMismatch.Error())
	})
}

// ================================================================================
// TestConfirm
// ================================================================================

func (s *PaymentHandlerTestSuite) TestConfirm() {
	url := "/api/payments/confirm"
	reqBody := reqdto.ConfirmPaymentRequest{
		PaymentIntentID: "pi_1700000000000_abc",
		PaymentMethodID: "pm_card_visa",
		PaymentProvider: "stripe",
	}

	s.Run("success: booking and receipt returned", func() {
		b := builder.NewBookingBuilder().
			WithUser(s.principals.guest.UserID).
			WithPayment(reqBody.PaymentIntentID, "card").
			BuildDomain()
		confirmation := &commands.PaymentConfirmation{
			Booking: b,
			Receipt: payment.Receipt{
				BookingID:       b.ID(),
				UserID:          b.UserID(),
				Amount:          10000,
				Currency:        money.DefaultCurrency,
				PaymentIntentID: reqBody.PaymentIntentID,
				PaymentMethod:   "stripe",
				Status:          payment.ReceiptStatusCompleted,
				ProcessedAt:     time.Now(),
			},
		}
		s.mockCommands.EXPECT().Confirm(gomock.Any(), s.principals.guest, reqBody.ToInput()).Return(confirmation, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guestToken)

		var body resdto.PaymentConfirmationResponse
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
		httptest.DecodeData(s.T(), rec, &body)
		s.Require().NotNil(body.Booking)
		s.Require().NotNil(body.Payment)
		s.Equal(b.ID(), body.Booking.ID)
		s.Equal("confirmed", body.Booking.Status)
		s.Equal(b.ID(), body.Payment.BookingID)
		s.Equal(10000.0, body.Payment.Amount)
	})

	s.Run("success: payment method id may be omitted", func() {
		b := builder.NewBookingBuilder().
			WithUser(s.principals.guest.UserID).
			WithPayment(reqBody.PaymentIntentID, "esewa").
			BuildDomain()
		body := map[string]any{
			"paymentIntentId": reqBody.PaymentIntentID,
			"paymentProvider": "esewa",
		}
		want := commands.ConfirmPaymentInput{PaymentIntentID: reqBody.PaymentIntentID, Provider: "esewa"}
		s.mockCommands.EXPECT().Confirm(gomock.Any(), s.principals.guest, want).
			Return(&commands.PaymentConfirmation{Booking: b, Receipt: payment.Receipt{BookingID: b.ID()}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, guestToken)

		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 on unknown provider", func() {
		bad := testutil.DtoMap(s.T(), reqBody, testutil.Field("paymentProvider", "paypal"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, payment.ErrInvalidProvider.Error())
	})

	s.Run("error: maps usecase errors to statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "declined by the gateway", err: payment.ErrIntentFailed, expectCode: http.StatusBadRequest},
			{name: "already confirmed", err: payment.ErrAlreadyConfirmed, expectCode: http.StatusBadRequest},
			{name: "unknown intent", err: payment.ErrIntentNotFound, expectCode: http.StatusNotFound},
			{name: "dates taken meanwhile", err: booking.ErrDatesUnavailable, expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Confirm(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guestToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.err.Error())
			})
		}
	})
}

// ================================================================================
// TestHistory
// ================================================================================

func (s *PaymentHandlerTestSuite) TestHistory() {
	intentID := "pi_1700000000000_abc"
	s.mockQueries.EXPECT().History(gomock.Any(), s.principals.guest.UserID, queries.NewPage(1, 10)).Return(
		&queries.PageResult[*queries.PaymentView]{
			Items:      []*queries.PaymentView{{BookingID: uuid.New(), Amount: 10000, Status: "confirmed", PaymentIntentID: &intentID}},
			Pagination: queries.NewPagination(queries.NewPage(1, 10), 1),
		}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/payments/history", nil, guestToken)

	var body resdto.PaymentHistoryResponse
	httptest.DecodeData(s.T(), rec, &body)
	s.Require().Len(body.Payments, 1)
	s.Require().NotNil(body.Payments[0].PaymentIntentID)
	s.Equal(intentID, *body.Payments[0].PaymentIntentID)
}
