package components

import (
	"context"
	"log/slog"

	"coliving-payments/internal/pkg/config"
	"coliving-payments/internal/usecase/commands"
	"coliving-payments/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(StartWorkers),
)

// StartWorkers runs the reconciliation sweep and the outbox relay for the
// lifetime of the app.
func StartWorkers(lc fx.Lifecycle, cfg config.Config, sweep commands.SweepCommands, outbox commands.OutboxCommands, logger *slog.Logger) {
	timers := []*worker.Timer{
		worker.NewSweepTimer(cfg.Reconciliation, sweep, logger),
		worker.NewOutboxRelay(cfg.Outbox, outbox, logger),
	}

	runCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			for _, t := range timers {
				logger.Info("starting worker", "worker", t.Name())
				go t.Start(runCtx)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			defer cancel()
			for _, t := range timers {
				if err := t.Stop(ctx); err != nil {
					logger.Warn("worker did not stop in time", "worker", t.Name(), "error", err)
				}
			}
			return nil
		},
	})
}
