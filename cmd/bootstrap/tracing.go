package bootstrap

import (
	"context"
	"log/slog"

	"coliving-payments/internal/pkg/config"
	"coliving-payments/internal/pkg/tracing"

	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(StartTracing),
)

func StartTracing(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) error {
	shutdown, err := tracing.Init(context.Background(), cfg.Tracing.Endpoint, cfg.Tracing.ServiceName, logger)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStop: shutdown,
	})
	return nil
}
