package commands

import (
	"context"
	"log/slog"
	"strings"

	"coliving-payments/internal/domain/booking"
	"coliving-payments/internal/pkg/errs"
	"coliving-payments/internal/pkg/metrics"
	"coliving-payments/internal/pkg/tracing"
	"coliving-payments/internal/usecase/shared"

	"github.com/google/uuid"
)

type IssueOrderInput struct {
	PropertyID uuid.UUID
	RoomID     *uuid.UUID
	// Amount in major currency units, as entered at checkout.
	Amount float64
	Name   string
	Email  string
	Phone  string
	UserID *uuid.UUID
}

type IssueOrderResult struct {
	OrderID     string
	AmountMinor int64
	Currency    string
}

type OrderCommands interface {
	IssueOrder(ctx context.Context, in IssueOrderInput) (*IssueOrderResult, error)
}

type orderUseCaseImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	currency string
}

func NewOrderUseCase(uow shared.UnitOfWork, gateway PaymentGateway, currency string) OrderCommands {
	return &orderUseCaseImpl{uow: uow, gateway: gateway, currency: currency}
}

// IssueOrder opens a gateway order after validating the requester, the
// amount and the listing. Nothing is persisted locally; retries simply open
// another order.
func (uc *orderUseCaseImpl) IssueOrder(ctx context.Context, in IssueOrderInput) (res *IssueOrderResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "orders.issue")
	defer func() {
		tracing.End(span, err)
		metrics.OrdersIssuedTotal.WithLabelValues(orderResult(err)).Inc()
	}()

	requester, err := booking.NewRequester(in.Name, in.Email, in.Phone, in.UserID)
	if err != nil {
		return nil, invalid(err)
	}
	amount, err := booking.MoneyFromMajor(in.Amount)
	if err != nil {
		return nil, invalid(err)
	}

	l, err := resolveListing(ctx, uc.uow.CommandReads(), in.PropertyID, in.RoomID)
	if err != nil {
		return nil, err
	}
	if amount.Minor() > l.price.Minor() {
		return nil, errs.Wrapf(ErrInvalidArgument, "amount %d exceeds listing price %d", amount.Minor(), l.price.Minor())
	}
	if inv, ok := l.inventory(); ok && !inv.HasVacancy() {
		return nil, errs.Wrapf(ErrOutOfStock, "room %s is full", l.room.ID)
	}

	notes := map[string]string{
		"property_id": in.PropertyID.String(),
		"name":        requester.Name(),
		"email":       requester.Email(),
		"phone":       requester.Phone(),
	}
	if in.RoomID != nil {
		notes["room_id"] = in.RoomID.String()
	}

	order, err := uc.gateway.CreateOrder(ctx, GatewayOrderRequest{
		AmountMinor: amount.Minor(),
		Currency:    uc.currency,
		Receipt:     newReceipt(),
		Notes:       notes,
	})
	if err != nil {
		slog.Warn("gateway order creation failed", "property_id", in.PropertyID.String(), "error", err.Error())
		return nil, errs.Mark(err, ErrUpstreamUnavailable)
	}

	slog.Info("gateway order issued", "order_id", order.ID, "amount_minor", order.AmountMinor)
	return &IssueOrderResult{
		OrderID:     order.ID,
		AmountMinor: order.AmountMinor,
		Currency:    order.Currency,
	}, nil
}

// newReceipt fits the gateway's 40 character receipt limit.
func newReceipt() string {
	return "rcpt_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:24]
}

func orderResult(err error) string {
	switch {
	case err == nil:
		return "issued"
	case errs.Is(err, ErrInvalidArgument):
		return "invalid"
	case errs.Is(err, ErrPropertyNotFound), errs.Is(err, ErrRoomNotFound):
		return "not_found"
	case errs.Is(err, ErrOutOfStock):
		return "out_of_stock"
	case errs.Is(err, ErrUpstreamUnavailable):
		return "upstream_unavailable"
	default:
		return "error"
	}
}
