//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"coliving-payments/internal/domain/user"
	reqdto "coliving-payments/internal/handler/dto/request"
	resdto "coliving-payments/internal/handler/dto/response"
	"coliving-payments/internal/handler/api"
	"coliving-payments/internal/handler/middleware"
	commandsmock "coliving-payments/internal/mock/commands"
	usecasemock "coliving-payments/internal/mock/usecase"
	"coliving-payments/internal/pkg/errs"
	"coliving-payments/internal/testutil"
	"coliving-payments/internal/testutil/httptest"
	"coliving-payments/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockOrders    *commandsmock.MockOrderCommands
	mockPayments  *commandsmock.MockPaymentCommands
	mockValidator *usecasemock.MockTokenValidator
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockOrders = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockPayments = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)

	auth := middleware.NewAuthMiddleware(s.mockValidator)
	s.router.POST("/orders", auth.OptionalAuth(), api.NewOrderHandler(s.mockOrders).Create)
	s.router.POST("/payments/verify", auth.OptionalAuth(), api.NewPaymentHandler(s.mockPayments).Verify)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

type testCasePayment struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateOrder
// ================================================================================

func (s *PaymentHandlerTestSuite) TestCreateOrder() {
	url := "/orders"
	propertyID := uuid.New()
	reqBody := reqdto.CreateOrderRequest{
		PropertyID: propertyID,
		Amount:     2000,
		Name:       "Asha Rao",
		Email:      "asha@example.com",
		Phone:      "+91 98765 43210",
	}
	result := &commands.IssueOrderResult{OrderID: "order_A", AmountMinor: 200_000, Currency: "INR"}

	s.Run("success: returns 201 with the gateway order", func() {
		s.mockOrders.EXPECT().IssueOrder(gomock.Any(), reqBody.ToInput(nil)).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("order_A", body.OrderID)
		s.Equal(int64(200_000), body.AmountMinor)
		s.Equal("INR", body.Currency)
	})

	s.Run("success: signed-in guest is attached to the order", func() {
		guestID := uuid.New()
		s.mockValidator.EXPECT().ValidateToken("guest-token").Return(guestID, user.RoleGuest, nil)
		s.mockOrders.EXPECT().IssueOrder(gomock.Any(), reqBody.ToInput(&guestID)).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "guest-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	validation := []testCasePayment{
		{name: "missing field: property_id", mutate: testutil.Field("property_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: amount", mutate: testutil.Field("amount", nil), expectCode: http.StatusBadRequest},
		{name: "negative amount", mutate: testutil.Field("amount", -10), expectCode: http.StatusBadRequest},
		{name: "invalid email", mutate: testutil.Field("email", "asha"), expectCode: http.StatusBadRequest},
		{name: "invalid phone", mutate: testutil.Field("phone", "12ab"), expectCode: http.StatusBadRequest},
		{name: "name too long", mutate: testutil.Field("name", strings.Repeat("a", 101)), expectCode: http.StatusBadRequest},
		{name: "malformed room_id", mutate: testutil.Field("room_id", "room-1"), expectCode: http.StatusBadRequest},
	}

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"amount above price", errs.Wrapf(commands.ErrInvalidArgument, "too much"), http.StatusBadRequest, "Invalid request"},
			{"unknown property", commands.ErrPropertyNotFound, http.StatusNotFound, "Property not found"},
			{"full room", commands.ErrOutOfStock, http.StatusConflict, "no available beds"},
			{"gateway down", errs.Mark(errors.New("timeout"), commands.ErrUpstreamUnavailable), http.StatusServiceUnavailable, "gateway unavailable"},
			{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockOrders.EXPECT().IssueOrder(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestVerifyPayment
// ================================================================================

func (s *PaymentHandlerTestSuite) TestVerifyPayment() {
	url := "/payments/verify"
	roomID := uuid.New()
	reqBody := reqdto.VerifyPaymentRequest{
		OrderID:    "order_A",
		PaymentID:  "pay_A",
		Signature:  strings.Repeat("ab", 32),
		PropertyID: uuid.New(),
		RoomID:     &roomID,
		Name:       "Asha Rao",
		Email:      "asha@example.com",
		Phone:      "+91 98765 43210",
	}
	bookingID := uuid.New()

	outcomes := []struct {
		name       string
		result     *commands.VerifyPaymentResult
		expectCode int
	}{
		{"booked", &commands.VerifyPaymentResult{BookingID: &bookingID, PaymentID: "pay_A", Outcome: commands.OutcomeBooked}, http.StatusCreated},
		{"already booked", &commands.VerifyPaymentResult{BookingID: &bookingID, PaymentID: "pay_A", Outcome: commands.OutcomeAlreadyBooked}, http.StatusOK},
		{"requires support", &commands.VerifyPaymentResult{BookingID: &bookingID, PaymentID: "pay_A", Outcome: commands.OutcomeRequiresSupport}, http.StatusConflict},
		{"booking pending", &commands.VerifyPaymentResult{PaymentID: "pay_A", Outcome: commands.OutcomeBookingPending}, http.StatusAccepted},
	}
	for _, tc := range outcomes {
		s.Run("success: outcome "+tc.name, func() {
			s.mockPayments.EXPECT().VerifyPayment(gomock.Any(), reqBody.ToInput(nil)).Return(tc.result, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

			var body resdto.VerifyPaymentResponse
			httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, &body)
			s.Equal(string(tc.result.Outcome), body.Outcome)
			s.Equal("pay_A", body.PaymentID)
			if tc.result.BookingID != nil {
				s.Require().NotNil(body.BookingID)
				s.Equal(bookingID.String(), *body.BookingID)
			} else {
				s.Nil(body.BookingID)
			}
		})
	}

	validation := []testCasePayment{
		{name: "missing field: razorpay_signature", mutate: testutil.Field("razorpay_signature", nil), expectCode: http.StatusBadRequest},
		{name: "short signature", mutate: testutil.Field("razorpay_signature", "abcd"), expectCode: http.StatusBadRequest},
		{name: "non-hex signature", mutate: testutil.Field("razorpay_signature", strings.Repeat("zz", 32)), expectCode: http.StatusBadRequest},
		{name: "missing field: razorpay_payment_id", mutate: testutil.Field("razorpay_payment_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: razorpay_order_id", mutate: testutil.Field("razorpay_order_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
	}
	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 400 on signature mismatch", func() {
		s.mockPayments.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).Return(nil, commands.ErrUnauthenticated).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Signature verification failed")
	})

	s.Run("error: 404 on unknown room", func() {
		s.mockPayments.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).Return(nil, commands.ErrRoomNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}
