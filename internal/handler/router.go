package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	reqdto "coliving-payments/internal/handler/dto/request"
	"coliving-payments/internal/handler/api"
	"coliving-payments/internal/handler/middleware"
	"coliving-payments/internal/pkg/config"
	"coliving-payments/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Orders   *api.OrderHandler
	Payments *api.PaymentHandler
	Webhooks *api.WebhookHandler
	Bookings *api.BookingHandler
	Admin    *api.AdminHandler
}

func NewHandlers(
	orders *api.OrderHandler,
	payments *api.PaymentHandler,
	webhooks *api.WebhookHandler,
	bookings *api.BookingHandler,
	admin *api.AdminHandler,
) Handlers {
	return Handlers{Orders: orders, Payments: payments, Webhooks: webhooks, Bookings: bookings, Admin: admin}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	if err := reqdto.RegisterValidators(); err != nil {
		slog.Error("failed to register request validators", "error", err)
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger, cfg.Log))
	engine.Use(metrics.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", metrics.Handler())

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// guest checkout: identity is attached when a token is sent
	checkout := engine.Group("")
	checkout.Use(authMiddleware.OptionalAuth())
	addRoutes(checkout, []route{
		{Method: http.MethodPost, Path: "/orders", Handler: h.Orders.Create},
		{Method: http.MethodPost, Path: "/payments/verify", Handler: h.Payments.Verify},
	})

	// authenticated by body signature, not by token
	addRoutes(engine.Group("/webhooks"), []route{
		{Method: http.MethodPost, Path: "/payments", Handler: h.Webhooks.Receive},
	})

	bookings := engine.Group("/bookings")
	bookings.Use(authMiddleware.RequireAuth())
	addRoutes(bookings, []route{
		{Method: http.MethodGet, Path: "/:id", Handler: h.Bookings.Get},
	})

	addRoutes(engine.Group("/admin"), []route{
		{Method: http.MethodPost, Path: "/reconciliation/sweep", Handler: h.Admin.Sweep, Mw: []gin.HandlerFunc{middleware.RequireOpsKey(cfg.Ops)}},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
