package commands

import (
	"context"
	"log/slog"

	"coliving-payments/internal/pkg/errs"
	"coliving-payments/internal/usecase/shared"

	"github.com/google/uuid"
)

// InventoryAdjuster moves one bed at a time. It does not deduplicate: callers
// pair each call with a booking change in the same transaction.
type InventoryAdjuster struct{}

func NewInventoryAdjuster() *InventoryAdjuster {
	return &InventoryAdjuster{}
}

// Decrement takes a bed, failing with ErrOutOfStock when none is left.
func (a *InventoryAdjuster) Decrement(ctx context.Context, tx shared.Tx, roomID uuid.UUID) error {
	left, err := tx.Rooms().DecrementAvailableBeds(ctx, roomID)
	if err != nil {
		if isNotFound(err) {
			return errs.Mark(err, ErrOutOfStock)
		}
		return err
	}
	slog.Debug("bed taken", "room_id", roomID.String(), "available_beds", left)
	return nil
}

// Restore returns a bed, never beyond the room's total. A room that no
// longer exists has nothing to restore.
func (a *InventoryAdjuster) Restore(ctx context.Context, tx shared.Tx, roomID uuid.UUID) error {
	left, err := tx.Rooms().RestoreAvailableBeds(ctx, roomID)
	if err != nil {
		if isNotFound(err) {
			slog.Warn("room vanished before bed restore", "room_id", roomID.String())
			return nil
		}
		return err
	}
	slog.Info("bed restored", "room_id", roomID.String(), "available_beds", left)
	return nil
}
