package bootstrap

import (
	"context"
	"time"

	"coliving-payments/internal/infra/db"
	"coliving-payments/internal/pkg/config"
	"coliving-payments/internal/pkg/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const poolStatsInterval = 15 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	statsCtx, stopStats := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go metrics.StartPoolStatsCollector(statsCtx, pool, poolStatsInterval)
			return nil
		},
		OnStop: func(_ context.Context) error {
			stopStats()
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
