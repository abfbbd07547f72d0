package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"coliving-payments/internal/pkg/config"
	"coliving-payments/internal/pkg/errs"
	"coliving-payments/internal/usecase/commands"

	"github.com/razorpay/razorpay-go"
)

// orderCreator is the slice of the Razorpay client this adapter uses.
type orderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type RazorpayGateway struct {
	orders  orderCreator
	timeout time.Duration
}

// NewRazorpayGateway returns a gateway that refuses every call when the key
// pair is not configured, so the service can still boot for webhook-only use.
func NewRazorpayGateway(cfg config.GatewayConfig) commands.PaymentGateway {
	if !cfg.HasCredentials() {
		slog.Warn("payment gateway credentials missing; order creation disabled")
		return &RazorpayGateway{timeout: cfg.Timeout}
	}
	client := razorpay.NewClient(cfg.KeyID, cfg.KeySecret)
	return newRazorpayGateway(client.Order, cfg.Timeout)
}

func newRazorpayGateway(orders orderCreator, timeout time.Duration) *RazorpayGateway {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RazorpayGateway{orders: orders, timeout: timeout}
}

type createResult struct {
	body map[string]interface{}
	err  error
}

// CreateOrder calls the gateway synchronously. The SDK takes no context, so
// the call runs in a goroutine and is abandoned on timeout or cancellation.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, req commands.GatewayOrderRequest) (*commands.GatewayOrder, error) {
	if g.orders == nil {
		return nil, errs.Wrap(errs.ErrUpstreamUnavailable, "payment gateway not configured")
	}

	notes := make(map[string]interface{}, len(req.Notes))
	for k, v := range req.Notes {
		notes[k] = v
	}
	data := map[string]interface{}{
		"amount":   req.AmountMinor,
		"currency": req.Currency,
		"receipt":  req.Receipt,
		"notes":    notes,
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	done := make(chan createResult, 1)
	go func() {
		body, err := g.orders.Create(data, nil)
		done <- createResult{body: body, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, errs.Mark(errs.Wrap(ctx.Err(), "payment gateway timed out"), errs.ErrUpstreamUnavailable)
	case r := <-done:
		if r.err != nil {
			return nil, errs.Mark(errs.Wrap(r.err, "payment gateway rejected order"), errs.ErrUpstreamUnavailable)
		}
		return parseOrder(r.body, req)
	}
}

func parseOrder(body map[string]interface{}, req commands.GatewayOrderRequest) (*commands.GatewayOrder, error) {
	id, _ := body["id"].(string)
	if id == "" {
		return nil, errs.Mark(fmt.Errorf("payment gateway returned order without id: %v", body), errs.ErrUpstreamUnavailable)
	}

	order := &commands.GatewayOrder{ID: id, AmountMinor: req.AmountMinor, Currency: req.Currency}
	switch amt := body["amount"].(type) {
	case float64:
		order.AmountMinor = int64(amt)
	case int64:
		order.AmountMinor = amt
	case int:
		order.AmountMinor = int64(amt)
	}
	if cur, ok := body["currency"].(string); ok && cur != "" {
		order.Currency = cur
	}
	return order, nil
}
