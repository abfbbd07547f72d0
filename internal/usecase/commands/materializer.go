package commands

import (
	"context"
	"log/slog"

	"coliving-payments/internal/domain/booking"
	"coliving-payments/internal/domain/payment"
	"coliving-payments/internal/infra"
	"coliving-payments/internal/pkg/clock"
	"coliving-payments/internal/pkg/errs"
	"coliving-payments/internal/pkg/metrics"
	"coliving-payments/internal/usecase/shared"

	"github.com/google/uuid"
)

type MaterializeOutcome string

const (
	OutcomeBooked          MaterializeOutcome = "booked"
	OutcomeAlreadyBooked   MaterializeOutcome = "already_booked"
	OutcomeRequiresSupport MaterializeOutcome = "payment_captured_requires_support"
	OutcomeBookingPending  MaterializeOutcome = "payment_captured_booking_pending"
)

type MaterializeInput struct {
	Proof      payment.VerifiedProof
	PropertyID uuid.UUID
	RoomID     *uuid.UUID
	Requester  booking.Requester
}

type MaterializeResult struct {
	BookingID uuid.UUID
	Outcome   MaterializeOutcome
}

// BookingMaterializer turns one verified payment into exactly one booking.
// The unique gateway_payment_id column decides races: a loser rolls back
// and returns the winner's booking.
type BookingMaterializer struct {
	uow       shared.UnitOfWork
	inventory *InventoryAdjuster
	clock     clock.Clock
}

func NewBookingMaterializer(uow shared.UnitOfWork, inventory *InventoryAdjuster, clk clock.Clock) *BookingMaterializer {
	return &BookingMaterializer{uow: uow, inventory: inventory, clock: clk}
}

func (m *BookingMaterializer) Materialize(ctx context.Context, in MaterializeInput) (*MaterializeResult, error) {
	paymentID := in.Proof.PaymentID()

	if res, err := m.existing(ctx, paymentID); res != nil || err != nil {
		return res, err
	}

	l, err := resolveListing(ctx, m.uow.CommandReads(), in.PropertyID, in.RoomID)
	if err != nil {
		return nil, err
	}

	now := m.clock.Now()
	params := booking.NewBookingParams{
		GatewayPaymentID: paymentID,
		GatewayOrderID:   in.Proof.OrderID(),
		PropertyID:       l.property.ID,
		RoomID:           in.RoomID,
		Requester:        in.Requester,
		Price:            l.price,
		Now:              now,
	}

	var b *booking.Booking
	outOfStock := false
	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// rebuilt per attempt so a retried transaction starts clean
		var derr error
		if b, derr = booking.NewBooking(params); derr != nil {
			return invalid(derr)
		}
		outOfStock = false
		if roomID := b.RoomID(); roomID != nil {
			derr = m.inventory.Decrement(ctx, tx, *roomID)
			switch {
			case derr == nil:
				b.HoldInventory()
			case errs.Is(derr, ErrOutOfStock):
				outOfStock = true
			default:
				return derr
			}
		}

		if derr = tx.Bookings().Create(ctx, b); derr != nil {
			return derr
		}

		kind, reason := shared.BookingCreated, ""
		if outOfStock {
			kind, reason = shared.BookingSupportRequired, "room had no available bed after payment capture"
		}
		ev, derr := newBookingEvent(b, kind, reason, now)
		if derr != nil {
			return derr
		}
		return tx.Events().Append(ctx, ev)
	})

	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Another caller booked this payment first; its booking is the answer.
			res, lerr := m.existing(ctx, paymentID)
			if res != nil || lerr != nil {
				return res, lerr
			}
		}
		metrics.BookingsMaterializedTotal.WithLabelValues("failed").Inc()
		return nil, storeFailure(err)
	}

	if outOfStock {
		metrics.OutOfStockTotal.Inc()
		metrics.BookingsMaterializedTotal.WithLabelValues("support_required").Inc()
		slog.Error("payment captured but room is out of stock",
			"booking_id", b.ID().String(),
			"payment_id", paymentID,
			"room_id", b.RoomID().String())
		return &MaterializeResult{BookingID: b.ID(), Outcome: OutcomeRequiresSupport}, nil
	}

	metrics.BookingsMaterializedTotal.WithLabelValues("created").Inc()
	slog.Info("booking materialized", "booking_id", b.ID().String(), "payment_id", paymentID)
	return &MaterializeResult{BookingID: b.ID(), Outcome: OutcomeBooked}, nil
}

// existing reports the booking already recorded for paymentID, or nil when
// there is none.
func (m *BookingMaterializer) existing(ctx context.Context, paymentID string) (*MaterializeResult, error) {
	snap, err := m.uow.CommandReads().BookingByPaymentID(ctx, paymentID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, storeFailure(err)
	}
	metrics.BookingsMaterializedTotal.WithLabelValues("replayed").Inc()
	if snap.AwaitsSupport() {
		return &MaterializeResult{BookingID: snap.ID, Outcome: OutcomeRequiresSupport}, nil
	}
	return &MaterializeResult{BookingID: snap.ID, Outcome: OutcomeAlreadyBooked}, nil
}
