package readstore

import (
	"context"

	"coliving-payments/internal/infra"
	sqlc "coliving-payments/internal/infra/sqlc/generated"
	"coliving-payments/internal/pkg/pgconv"
	"coliving-payments/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingByPaymentID(ctx context.Context, db sqlc.DBTX, gatewayPaymentID string) (sqlc.Bookings, error)
	ListBookingsPendingRelease(ctx context.Context, db sqlc.DBTX, limit int32) ([]uuid.UUID, error)
	WebhookDeliveryExists(ctx context.Context, db sqlc.DBTX, eventID string) (bool, error)
}

// BookingReadStore serves the lock-free lookups the write side makes
// before opening a transaction.
type BookingReadStore struct {
	queries BookingReadQueries
}

func NewBookingReadStore(queries BookingReadQueries) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
	}
}

func (r *BookingReadStore) FindByPaymentID(ctx context.Context, db sqlc.DBTX, gatewayPaymentID string) (*shared.BookingSnapshot, error) {
	row, err := r.queries.GetBookingByPaymentID(ctx, db, gatewayPaymentID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by payment id", err)
	}

	return &shared.BookingSnapshot{
		ID:               row.ID,
		GatewayPaymentID: row.GatewayPaymentID,
		PaymentStatus:    row.PaymentStatus,
		BookingStatus:    row.BookingStatus,
		RoomID:           pgconv.UUIDPtrFromPgtype(row.RoomID),
		InventoryHeld:    row.InventoryHeld,
	}, nil
}

func (r *BookingReadStore) ListPendingRelease(ctx context.Context, db sqlc.DBTX, limit int32) ([]uuid.UUID, error) {
	ids, err := r.queries.ListBookingsPendingRelease(ctx, db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings pending release", err)
	}
	return ids, nil
}

func (r *BookingReadStore) WebhookDeliveryExists(ctx context.Context, db sqlc.DBTX, eventID string) (bool, error) {
	ok, err := r.queries.WebhookDeliveryExists(ctx, db, eventID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check webhook delivery", err)
	}
	return ok, nil
}
