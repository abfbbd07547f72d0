package components

import (
	"coliving-payments/internal/handler"
	"coliving-payments/internal/handler/api"
	"coliving-payments/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderHandler,
		api.NewPaymentHandler,
		api.NewWebhookHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
