package commands

import (
	"context"
	"log/slog"

	"coliving-payments/internal/pkg/clock"
	"coliving-payments/internal/pkg/metrics"
	"coliving-payments/internal/pkg/tracing"
	"coliving-payments/internal/usecase/shared"

	"github.com/google/uuid"
)

type SweepResult struct {
	Scanned  int `json:"scanned"`
	Restored int `json:"restored"`
	Failed   int `json:"failed"`
}

type SweepCommands interface {
	Sweep(ctx context.Context) (*SweepResult, error)
}

type sweepUseCaseImpl struct {
	uow       shared.UnitOfWork
	inventory *InventoryAdjuster
	clock     clock.Clock
	batchSize int32
}

func NewSweepUseCase(uow shared.UnitOfWork, inventory *InventoryAdjuster, clk clock.Clock, batchSize int32) SweepCommands {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &sweepUseCaseImpl{uow: uow, inventory: inventory, clock: clk, batchSize: batchSize}
}

// Sweep returns beds still held by cancelled bookings. Each booking is
// released in its own transaction, so one failure does not block the rest.
func (uc *sweepUseCaseImpl) Sweep(ctx context.Context) (res *SweepResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "reconciliation.sweep")
	defer func() { tracing.End(span, err) }()

	ids, err := uc.uow.CommandReads().BookingsPendingRelease(ctx, uc.batchSize)
	if err != nil {
		return nil, storeFailure(err)
	}

	res = &SweepResult{Scanned: len(ids)}
	for _, id := range ids {
		restored, rerr := uc.release(ctx, id)
		if rerr != nil {
			res.Failed++
			slog.Error("sweep failed to release bed", "booking_id", id.String(), "error", rerr.Error())
			continue
		}
		if restored {
			res.Restored++
			metrics.SweepRestoredTotal.Inc()
		}
	}

	if res.Scanned > 0 {
		slog.Info("reconciliation sweep finished",
			"scanned", res.Scanned,
			"restored", res.Restored,
			"failed", res.Failed)
	}
	return res, nil
}

func (uc *sweepUseCaseImpl) release(ctx context.Context, id uuid.UUID) (bool, error) {
	restored := false
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		restored = false
		b, err := tx.Bookings().FindByIDForUpdate(ctx, id)
		if err != nil {
			if isNotFound(err) {
				return nil
			}
			return err
		}

		now := uc.clock.Now()
		if !b.ReleaseInventory(now) {
			// released concurrently since the scan
			return nil
		}
		if err := tx.Bookings().UpdateState(ctx, b); err != nil {
			return err
		}
		if err := uc.inventory.Restore(ctx, tx, *b.RoomID()); err != nil {
			return err
		}

		ev, err := newBookingEvent(b, shared.BookingInventoryRestored, "reconciliation sweep", now)
		if err != nil {
			return err
		}
		if err := tx.Events().Append(ctx, ev); err != nil {
			return err
		}
		restored = true
		return nil
	})
	return restored, err
}
