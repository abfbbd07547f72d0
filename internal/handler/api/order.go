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

type OrderHandler struct {
	cmds commands.OrderCommands
}

func NewOrderHandler(cmds commands.OrderCommands) *OrderHandler {
	return &OrderHandler{cmds: cmds}
}

// @Summary Create payment order
// @Description Open a gateway order for a property or room booking
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.IssueOrder(c.Request.Context(), req.ToInput(middleware.OptionalUserID(c)))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromIssueOrderResult(result))
}
