package shared

import (
	"context"
	"time"

	"coliving-payments/internal/domain/booking"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx exposes repositories bound to one transaction. Everything written
// through a Tx commits or rolls back together.
type Tx interface {
	Bookings() BookingRepository
	Rooms() RoomInventoryRepository
	Events() BookingEventRepository
	WebhookDeliveries() WebhookDeliveryRepository
	Reads() CommandReads
}

type CommandReads interface {
	PropertyByID(ctx context.Context, id uuid.UUID) (*PropertySnapshot, error)
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	BookingByPaymentID(ctx context.Context, gatewayPaymentID string) (*BookingSnapshot, error)
	BookingsPendingRelease(ctx context.Context, limit int32) ([]uuid.UUID, error)
	WebhookDeliveryExists(ctx context.Context, eventID string) (bool, error)
}

type BookingRepository interface {
	// Create fails with a DUPLICATE_KEY repository error when the gateway
	// payment id is already booked.
	Create(ctx context.Context, b *booking.Booking) error
	FindByPaymentIDForUpdate(ctx context.Context, gatewayPaymentID string) (*booking.Booking, error)
	FindByOrderIDForUpdate(ctx context.Context, gatewayOrderID string) (*booking.Booking, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateState(ctx context.Context, b *booking.Booking) error
}

type RoomInventoryRepository interface {
	// DecrementAvailableBeds returns the remaining count, or a NOT_FOUND
	// repository error when the room has no bed left.
	DecrementAvailableBeds(ctx context.Context, roomID uuid.UUID) (int32, error)
	RestoreAvailableBeds(ctx context.Context, roomID uuid.UUID) (int32, error)
}

type BookingEventRepository interface {
	Append(ctx context.Context, ev BookingEvent) error
	// ClaimUnpublished locks up to limit unpublished events for this transaction.
	ClaimUnpublished(ctx context.Context, limit int32) ([]BookingEvent, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error
}

type WebhookDeliveryRepository interface {
	// Record reports false when the event id was already recorded.
	Record(ctx context.Context, d WebhookDelivery) (bool, error)
}
