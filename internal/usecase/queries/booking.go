package queries

import (
	"context"
	"errors"
	"time"

	"coliving-payments/internal/domain/user"
	"coliving-payments/internal/infra"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrBookingAccess   = errors.New("booking access denied")
)

// BookingView is the read model behind GET /bookings/:id. Amounts are in
// minor units.
type BookingView struct {
	ID               uuid.UUID  `json:"id"`
	GatewayPaymentID string     `json:"gateway_payment_id"`
	GatewayOrderID   string     `json:"gateway_order_id"`
	PropertyID       uuid.UUID  `json:"property_id"`
	PropertyName     string     `json:"property_name"`
	RoomID           *uuid.UUID `json:"room_id,omitempty"`
	RoomName         *string    `json:"room_name,omitempty"`
	UserID           *uuid.UUID `json:"user_id,omitempty"`
	GuestName        string     `json:"guest_name"`
	GuestEmail       string     `json:"guest_email"`
	GuestPhone       string     `json:"guest_phone"`
	PaymentStatus    string     `json:"payment_status"`
	BookingStatus    string     `json:"booking_status"`
	TotalAmount      int64      `json:"total_amount"`
	AmountPaid       int64      `json:"amount_paid"`
	AmountDue        int64      `json:"amount_due"`
	InventoryHeld    bool       `json:"inventory_held"`
	BookingDate      time.Time  `json:"booking_date"`
	PaymentDate      *time.Time `json:"payment_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) (*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

// GetByID returns the booking to its owner or an admin. Guest bookings made
// without a token are visible to admins only.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) (*BookingView, error) {
	bv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	switch actorRole {
	case user.RoleAdmin:
	case user.RoleGuest:
		if bv.UserID == nil || *bv.UserID != actorID {
			return nil, ErrBookingAccess
		}
	default:
		return nil, ErrBookingAccess
	}
	return bv, nil
}
