package api

import (
	"net/http"

	reqdto "coliving-payments/internal/handler/dto/request"
	resdto "coliving-payments/internal/handler/dto/response"
	"coliving-payments/internal/handler/httperr"
	"coliving-payments/internal/handler/middleware"
	"coliving-payments/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Verify payment
// @Description Verify the checkout proof and book the room
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyPaymentRequest true "Checkout proof"
// @Success 201 {object} resdto.VerifyPaymentResponse "booked"
// @Success 200 {object} resdto.VerifyPaymentResponse "already booked"
// @Success 202 {object} resdto.VerifyPaymentResponse "payment captured, booking pending"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} resdto.VerifyPaymentResponse "payment captured, support required"
// @Router /payments/verify [post]
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req reqdto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.VerifyPayment(c.Request.Context(), req.ToInput(middleware.OptionalUserID(c)))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(verifyStatus(result.Outcome), resdto.FromVerifyPaymentResult(result))
}

func verifyStatus(o commands.MaterializeOutcome) int {
	switch o {
	case commands.OutcomeBooked:
		return http.StatusCreated
	case commands.OutcomeRequiresSupport:
		return http.StatusConflict
	case commands.OutcomeBookingPending:
		return http.StatusAccepted
	default:
		return http.StatusOK
	}
}
