package bootstrap

import (
	"context"
	"log/slog"

	"coliving-payments/internal/infra/gateway"
	"coliving-payments/internal/infra/messaging"
	"coliving-payments/internal/pkg/config"
	"coliving-payments/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewPaymentGateway,
		NewEventPublisher,
	),
)

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) commands.PaymentGateway {
	if !cfg.Gateway.HasCredentials() {
		logger.Warn("payment gateway credentials missing; order creation will fail")
	}
	return gateway.NewRazorpayGateway(cfg.Gateway)
}

// NewEventPublisher picks Kafka when brokers are configured and falls back to
// logging events otherwise.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.EventPublisher, error) {
	if len(cfg.Outbox.Brokers) == 0 {
		logger.Info("no KAFKA_BROKERS set; booking events are logged only")
		return messaging.NewLogPublisher(), nil
	}

	pub, err := messaging.NewKafkaPublisher(cfg.Outbox)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	logger.Info("publishing booking events to kafka", "brokers", cfg.Outbox.Brokers, "topic", cfg.Outbox.Topic)
	return pub, nil
}
