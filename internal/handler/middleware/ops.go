package middleware

import (
	"log/slog"
	"net/http"

	"coliving-payments/internal/handler/httperr"
	"coliving-payments/internal/pkg/config"
	"coliving-payments/internal/pkg/secret"

	"github.com/gin-gonic/gin"
)

const HeaderOpsKey = "X-Ops-Key"

// RequireOpsKey guards operator endpoints with a bcrypt-hashed shared key.
// With no hash configured every request is refused.
func RequireOpsKey(cfg config.OpsConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.APIKeyHash == "" {
			httperr.AbortWithError(c, http.StatusForbidden, nil, "Operator endpoints disabled", nil)
			return
		}
		if err := secret.CompareKey(cfg.APIKeyHash, c.GetHeader(HeaderOpsKey)); err != nil {
			slog.Warn("ops key rejected", "path", c.Request.URL.Path, "client_ip", c.ClientIP())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid ops key", nil)
			return
		}
		c.Next()
	}
}
