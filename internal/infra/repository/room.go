package repository

import (
	"context"

	"coliving-payments/internal/infra"
	sqlc "coliving-payments/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RoomInventoryQueries interface {
	DecrementRoomAvailableBeds(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int32, error)
	RestoreRoomAvailableBeds(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int32, error)
}

type RoomInventoryRepository struct {
	queries RoomInventoryQueries
	db      sqlc.DBTX
}

func NewRoomInventoryRepository(queries RoomInventoryQueries, db sqlc.DBTX) *RoomInventoryRepository {
	return &RoomInventoryRepository{
		queries: queries,
		db:      db,
	}
}

// DecrementAvailableBeds takes one bed. The guarded UPDATE matches no row
// when the room is full or missing, which surfaces as NOT_FOUND.
func (r *RoomInventoryRepository) DecrementAvailableBeds(ctx context.Context, roomID uuid.UUID) (int32, error) {
	left, err := r.queries.DecrementRoomAvailableBeds(ctx, r.db, roomID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to decrement available beds", err)
	}
	return left, nil
}

// RestoreAvailableBeds returns one bed, never beyond the room's total.
func (r *RoomInventoryRepository) RestoreAvailableBeds(ctx context.Context, roomID uuid.UUID) (int32, error) {
	left, err := r.queries.RestoreRoomAvailableBeds(ctx, r.db, roomID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to restore available beds", err)
	}
	return left, nil
}
