package commands

import (
	"context"

	"coliving-payments/internal/usecase/shared"
)

type GatewayOrderRequest struct {
	AmountMinor int64
	Currency    string
	Receipt     string
	Notes       map[string]string
}

type GatewayOrder struct {
	ID          string
	AmountMinor int64
	Currency    string
}

// PaymentGateway opens payment intents. Implementations must bound the call
// and mark unreachable or unconfigured gateways with ErrUpstreamUnavailable.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, req GatewayOrderRequest) (*GatewayOrder, error)
}

// EventPublisher delivers outbox rows to the message broker. Publish must
// return an error unless every event was accepted.
type EventPublisher interface {
	Publish(ctx context.Context, events []shared.BookingEvent) error
}
