package api

import (
	"io"
	"net/http"

	resdto "coliving-payments/internal/handler/dto/response"
	"coliving-payments/internal/handler/httperr"
	"coliving-payments/internal/handler/middleware"
	"coliving-payments/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 1 << 20

type WebhookHandler struct {
	cmds commands.WebhookCommands
}

func NewWebhookHandler(cmds commands.WebhookCommands) *WebhookHandler {
	return &WebhookHandler{cmds: cmds}
}

// @Summary Payment gateway webhook
// @Description Receives signed payment events. The signature covers the raw body.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Gateway-Signature header string true "hex HMAC-SHA256 of the body"
// @Param X-Gateway-Event-Id header string false "gateway delivery id"
// @Success 200 {object} resdto.WebhookResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /webhooks/payments [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	// the exact bytes are needed for the signature; never bind before this
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable body", nil)
		return
	}

	result, err := h.cmds.HandleWebhook(c.Request.Context(), commands.WebhookInput{
		Body:      body,
		Signature: c.GetHeader(middleware.HeaderGatewaySignature),
		EventID:   c.GetHeader(middleware.HeaderGatewayEventID),
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWebhookResult(result))
}
