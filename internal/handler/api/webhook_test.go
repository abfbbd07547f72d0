//go:build unit

package api_test

import (
	"net/http"
	"testing"

	resdto "coliving-payments/internal/handler/dto/response"
	"coliving-payments/internal/handler/api"
	commandsmock "coliving-payments/internal/mock/commands"
	"coliving-payments/internal/pkg/errs"
	"coliving-payments/internal/testutil/httptest"
	"coliving-payments/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWebhookCommands
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWebhookCommands(s.mockCtrl)
	s.router.POST("/webhooks/payments", api.NewWebhookHandler(s.mockCommands).Receive)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) TestReceive() {
	url := "/webhooks/payments"
	// whitespace is deliberate: the body must reach the use case unchanged
	body := []byte("{\"event\": \"payment.failed\",\n \"payload\": {}}")
	headers := map[string]string{
		"X-Gateway-Signature": "c0ffee",
		"X-Gateway-Event-Id":  "evt_1",
	}

	for _, outcome := range []commands.ReconcileOutcome{
		commands.ReconcileApplied, commands.ReconcileNoOp, commands.ReconcileStale,
		commands.ReconcileDropped, commands.ReconcileIgnored, commands.ReconcileDuplicate,
	} {
		s.Run("success: 200 for outcome "+string(outcome), func() {
			s.mockCommands.EXPECT().HandleWebhook(gomock.Any(), commands.WebhookInput{
				Body:      body,
				Signature: "c0ffee",
				EventID:   "evt_1",
			}).Return(&commands.WebhookResult{Event: "payment.failed", Outcome: outcome}, nil).Times(1)

			rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body, headers)

			var res resdto.WebhookResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
			s.Equal(string(outcome), res.Status)
			s.Equal("payment.failed", res.Event)
		})
	}

	errCases := []struct {
		name   string
		err    error
		status int
	}{
		{"bad signature", errs.Mark(errs.New("mismatch"), commands.ErrUnauthenticated), http.StatusBadRequest},
		{"malformed body", errs.Mark(errs.New("malformed"), commands.ErrInvalidArgument), http.StatusBadRequest},
		{"store down", errs.Mark(errs.New("conn reset"), commands.ErrStoreUnavailable), http.StatusServiceUnavailable},
	}
	for _, tc := range errCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().HandleWebhook(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
			rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body, headers)
			httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
		})
	}
}
