package api

import (
	"net/http"

	resdto "coliving-payments/internal/handler/dto/response"
	"coliving-payments/internal/handler/httperr"
	"coliving-payments/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	sweep commands.SweepCommands
}

func NewAdminHandler(sweep commands.SweepCommands) *AdminHandler {
	return &AdminHandler{sweep: sweep}
}

// @Summary Run reconciliation sweep
// @Description Return beds still held by cancelled bookings
// @Tags admin
// @Produce json
// @Param X-Ops-Key header string true "Operator key"
// @Success 200 {object} resdto.SweepResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /admin/reconciliation/sweep [post]
func (h *AdminHandler) Sweep(c *gin.Context) {
	result, err := h.sweep.Sweep(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSweepResult(result))
}
