package httperr

import (
	"errors"
	"net/http"

	"coliving-payments/internal/pkg/errs"
	"coliving-payments/internal/usecase/commands"
	"coliving-payments/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target error
	status int
	msg    string
}

// Order matters: the first matching category wins.
var mappings = []mapping{
	{commands.ErrUnauthenticated, http.StatusBadRequest, "Signature verification failed"},
	{commands.ErrInvalidArgument, http.StatusBadRequest, "Invalid request"},
	{commands.ErrPropertyNotFound, http.StatusNotFound, "Property not found"},
	{commands.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{queries.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{queries.ErrBookingAccess, http.StatusForbidden, "Forbidden"},
	{commands.ErrOutOfStock, http.StatusConflict, "Room has no available beds"},
	{commands.ErrUpstreamUnavailable, http.StatusServiceUnavailable, "Payment gateway unavailable"},
	{commands.ErrStoreUnavailable, http.StatusServiceUnavailable, "Service temporarily unavailable"},
	{errs.ErrValidation, http.StatusBadRequest, "Invalid request"},
	{errs.ErrNotFound, http.StatusNotFound, "Not found"},
	{errs.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
	{errs.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{errs.ErrConflict, http.StatusConflict, "Conflict"},
}

// Status resolves err to an HTTP status and a client-safe message.
func Status(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m.status, m.msg
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// Abort maps a use-case error onto the response.
func Abort(c *gin.Context, err error) {
	status, msg := Status(err)
	AbortWithError(c, status, err, msg, nil)
}
