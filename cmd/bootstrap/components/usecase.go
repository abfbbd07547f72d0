package components

import (
	"coliving-payments/internal/domain/payment"
	"coliving-payments/internal/pkg/clock"
	"coliving-payments/internal/pkg/config"
	"coliving-payments/internal/usecase"
	"coliving-payments/internal/usecase/commands"
	"coliving-payments/internal/usecase/queries"
	"coliving-payments/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	commands.NewInventoryAdjuster,
	commands.NewBookingMaterializer,
	commands.NewReconciler,
	func(cfg config.Config) *payment.ProofVerifier {
		return payment.NewProofVerifier(cfg.Gateway.KeySecret)
	},
	func(cfg config.Config) *payment.WebhookAuthenticator {
		return payment.NewWebhookAuthenticator(cfg.Gateway.WebhookSecret)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(uow shared.UnitOfWork, gw commands.PaymentGateway, cfg config.Config) commands.OrderCommands {
			return commands.NewOrderUseCase(uow, gw, cfg.Gateway.Currency)
		},
		commands.NewPaymentUseCase,
		commands.NewWebhookUseCase,
		func(uow shared.UnitOfWork, inv *commands.InventoryAdjuster, clk clock.Clock, cfg config.Config) commands.SweepCommands {
			return commands.NewSweepUseCase(uow, inv, clk, cfg.Reconciliation.BatchSize)
		},
		func(uow shared.UnitOfWork, pub commands.EventPublisher, clk clock.Clock, cfg config.Config) commands.OutboxCommands {
			return commands.NewOutboxUseCase(uow, pub, clk, cfg.Outbox.BatchSize)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
