package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus       = errors.New("invalid booking status")
	ErrMissingPaymentID    = errors.New("gateway payment id is required")
	ErrMissingOrderID      = errors.New("gateway order id is required")
	ErrMissingProperty     = errors.New("property id is required")
	ErrAmountsInconsistent = errors.New("amount paid and amount due do not add up to total")
)

type Booking struct {
	id               uuid.UUID
	gatewayPaymentID string
	gatewayOrderID   string
	propertyID       uuid.UUID
	roomID           *uuid.UUID
	requester        Requester
	paymentStatus    PaymentStatus
	status           Status
	total            Money
	paid             Money
	due              Money
	inventoryHeld    bool
	bookedAt         time.Time
	paidAt           *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

type NewBookingParams struct {
	GatewayPaymentID string
	GatewayOrderID   string
	PropertyID       uuid.UUID
	RoomID           *uuid.UUID
	Requester        Requester
	Price            Money
	Now              time.Time
}

// NewBooking builds a booking for a payment whose proof has been verified.
// It starts completed/booked with the deposit split applied.
func NewBooking(p NewBookingParams) (*Booking, error) {
	if p.GatewayPaymentID == "" {
		return nil, ErrMissingPaymentID
	}
	if p.GatewayOrderID == "" {
		return nil, ErrMissingOrderID
	}
	if p.PropertyID == uuid.Nil {
		return nil, ErrMissingProperty
	}

	paid, due := SplitDeposit(p.Price)
	now := p.Now
	paidAt := now

	return &Booking{
		id:               uuid.New(),
		gatewayPaymentID: p.GatewayPaymentID,
		gatewayOrderID:   p.GatewayOrderID,
		propertyID:       p.PropertyID,
		roomID:           p.RoomID,
		requester:        p.Requester,
		paymentStatus:    PaymentCompleted,
		status:           StatusBooked,
		total:            p.Price,
		paid:             paid,
		due:              due,
		bookedAt:         now,
		paidAt:           &paidAt,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

type ReconstructParams struct {
	ID               uuid.UUID
	GatewayPaymentID string
	GatewayOrderID   string
	PropertyID       uuid.UUID
	RoomID           *uuid.UUID
	Requester        Requester
	PaymentStatus    PaymentStatus
	Status           Status
	Total            Money
	Paid             Money
	Due              Money
	InventoryHeld    bool
	BookedAt         time.Time
	PaidAt           *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func Reconstruct(p ReconstructParams) (*Booking, error) {
	if !p.PaymentStatus.IsValid() || !p.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if p.Paid.Minor()+p.Due.Minor() != p.Total.Minor() {
		return nil, ErrAmountsInconsistent
	}
	return &Booking{
		id:               p.ID,
		gatewayPaymentID: p.GatewayPaymentID,
		gatewayOrderID:   p.GatewayOrderID,
		propertyID:       p.PropertyID,
		roomID:           p.RoomID,
		requester:        p.Requester,
		paymentStatus:    p.PaymentStatus,
		status:           p.Status,
		total:            p.Total,
		paid:             p.Paid,
		due:              p.Due,
		inventoryHeld:    p.InventoryHeld,
		bookedAt:         p.BookedAt,
		paidAt:           p.PaidAt,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
	}, nil
}

// HoldInventory records that a bed was taken from the booking's room.
func (b *Booking) HoldInventory() {
	if b.roomID != nil {
		b.inventoryHeld = true
	}
}

// NeedsInventoryRelease reports whether a cancelled booking still holds a bed.
func (b *Booking) NeedsInventoryRelease() bool {
	return b.status == StatusCancelled && b.inventoryHeld && b.roomID != nil
}

// ReleaseInventory clears the hold and reports whether a bed must be returned.
func (b *Booking) ReleaseInventory(at time.Time) bool {
	if !b.NeedsInventoryRelease() {
		return false
	}
	b.inventoryHeld = false
	b.updatedAt = at
	return true
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) GatewayPaymentID() string     { return b.gatewayPaymentID }
func (b *Booking) GatewayOrderID() string       { return b.gatewayOrderID }
func (b *Booking) PropertyID() uuid.UUID        { return b.propertyID }
func (b *Booking) RoomID() *uuid.UUID           { return b.roomID }
func (b *Booking) Requester() Requester         { return b.requester }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) Total() Money                 { return b.total }
func (b *Booking) Paid() Money                  { return b.paid }
func (b *Booking) Due() Money                   { return b.due }
func (b *Booking) InventoryHeld() bool          { return b.inventoryHeld }
func (b *Booking) BookedAt() time.Time          { return b.bookedAt }
func (b *Booking) PaidAt() *time.Time           { return b.paidAt }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
