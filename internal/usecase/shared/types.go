package shared

import (
	"time"

	"coliving-payments/internal/domain/booking"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type PropertySnapshot struct {
	ID                   uuid.UUID
	Name                 string
	PriceMinor           int64
	SecurityDepositMinor int64
}

type RoomSnapshot struct {
	ID                   uuid.UUID
	PropertyID           uuid.UUID
	Name                 string
	PriceMinor           int64
	SecurityDepositMinor int64
	TotalBeds            int32
	AvailableBeds        int32
}

type BookingSnapshot struct {
	ID               uuid.UUID
	GatewayPaymentID string
	PaymentStatus    string
	BookingStatus    string
	RoomID           *uuid.UUID
	InventoryHeld    bool
}

// AwaitsSupport reports a room booking that never got its bed and has not
// been cancelled since.
func (s BookingSnapshot) AwaitsSupport() bool {
	return s.RoomID != nil && !s.InventoryHeld && s.BookingStatus != booking.StatusCancelled.String()
}

type BookingEventKind string

const (
	BookingCreated           BookingEventKind = "booking.created"
	BookingAuthorized        BookingEventKind = "booking.authorized"
	BookingConfirmed         BookingEventKind = "booking.confirmed"
	BookingCancelled         BookingEventKind = "booking.cancelled"
	BookingSupportRequired   BookingEventKind = "booking.support_required"
	BookingInventoryRestored BookingEventKind = "booking.inventory_restored"
)

// BookingEvent is an outbox row written in the same transaction as the
// booking change it describes.
type BookingEvent struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Kind      BookingEventKind
	Payload   []byte
	CreatedAt time.Time
}

type WebhookDelivery struct {
	EventID   string
	EventType string
	Outcome   string
}
