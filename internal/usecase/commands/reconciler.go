package commands

import (
	"context"
	"log/slog"

	"coliving-payments/internal/domain/booking"
	"coliving-payments/internal/domain/payment"
	"coliving-payments/internal/pkg/clock"
	"coliving-payments/internal/usecase/shared"
)

type ReconcileOutcome string

const (
	ReconcileApplied ReconcileOutcome = "applied"
	ReconcileNoOp    ReconcileOutcome = "noop"
	ReconcileStale   ReconcileOutcome = "stale"
	// ReconcileDropped: no booking exists for the event; only the verify
	// path carries the requester details needed to create one.
	ReconcileDropped ReconcileOutcome = "dropped"
	// ReconcileIgnored: an event name this service does not act on.
	ReconcileIgnored ReconcileOutcome = "ignored"
)

// Reconciler applies authenticated gateway events to existing bookings.
// A transition, its inventory restore and its outbox event commit together.
type Reconciler struct {
	inventory *InventoryAdjuster
	clock     clock.Clock
}

func NewReconciler(inventory *InventoryAdjuster, clk clock.Clock) *Reconciler {
	return &Reconciler{inventory: inventory, clock: clk}
}

// ApplyInTx applies ev using tx. The booking row is locked for the rest of
// the transaction.
func (r *Reconciler) ApplyInTx(ctx context.Context, tx shared.Tx, ev payment.AuthenticatedEvent) (ReconcileOutcome, error) {
	var (
		bev    booking.Event
		lookup func() (*booking.Booking, error)
	)

	switch e := ev.Event().(type) {
	case payment.PaymentAuthorized:
		bev = booking.EventAuthorized
		lookup = func() (*booking.Booking, error) { return tx.Bookings().FindByPaymentIDForUpdate(ctx, e.PaymentID) }
	case payment.PaymentCaptured:
		bev = booking.EventCaptured
		lookup = func() (*booking.Booking, error) { return tx.Bookings().FindByPaymentIDForUpdate(ctx, e.PaymentID) }
	case payment.OrderPaid:
		bev = booking.EventCaptured
		lookup = func() (*booking.Booking, error) { return tx.Bookings().FindByOrderIDForUpdate(ctx, e.OrderID) }
	case payment.PaymentFailed:
		bev = booking.EventFailed
		lookup = func() (*booking.Booking, error) { return tx.Bookings().FindByPaymentIDForUpdate(ctx, e.PaymentID) }
	default:
		slog.Info("webhook event ignored", "event", string(ev.Event().Name()))
		return ReconcileIgnored, nil
	}

	b, err := lookup()
	if err != nil {
		if isNotFound(err) {
			slog.Info("webhook event dropped: no booking yet", "event", string(ev.Event().Name()))
			return ReconcileDropped, nil
		}
		return "", err
	}

	now := r.clock.Now()
	tr, err := b.Apply(bev, now)
	if err != nil {
		return "", err
	}

	switch tr.Outcome {
	case booking.OutcomeNoOp:
		return ReconcileNoOp, nil
	case booking.OutcomeStale:
		slog.Info("stale webhook event ignored",
			"event", string(ev.Event().Name()),
			"booking_id", b.ID().String(),
			"payment_status", b.PaymentStatus().String())
		return ReconcileStale, nil
	}

	if err := tx.Bookings().UpdateState(ctx, b); err != nil {
		return "", err
	}
	if tr.ReleaseInventory {
		if err := r.inventory.Restore(ctx, tx, *b.RoomID()); err != nil {
			return "", err
		}
	}

	reason := ""
	if f, ok := ev.Event().(payment.PaymentFailed); ok {
		reason = f.Reason
	}
	out, err := newBookingEvent(b, kindForTransition(tr), reason, now)
	if err != nil {
		return "", err
	}
	if err := tx.Events().Append(ctx, out); err != nil {
		return "", err
	}

	slog.Info("booking transitioned",
		"booking_id", b.ID().String(),
		"from", tr.From.String(),
		"to", tr.To.String())
	return ReconcileApplied, nil
}
