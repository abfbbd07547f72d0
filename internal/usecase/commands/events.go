package commands

import (
	"encoding/json"
	"time"

	"coliving-payments/internal/domain/booking"
	"coliving-payments/internal/usecase/shared"

	"github.com/google/uuid"
)

type bookingEventPayload struct {
	BookingID        uuid.UUID  `json:"booking_id"`
	GatewayPaymentID string     `json:"gateway_payment_id"`
	GatewayOrderID   string     `json:"gateway_order_id"`
	PropertyID       uuid.UUID  `json:"property_id"`
	RoomID           *uuid.UUID `json:"room_id,omitempty"`
	GuestEmail       string     `json:"guest_email"`
	PaymentStatus    string     `json:"payment_status"`
	BookingStatus    string     `json:"booking_status"`
	TotalAmount      int64      `json:"total_amount"`
	AmountPaid       int64      `json:"amount_paid"`
	AmountDue        int64      `json:"amount_due"`
	Reason           string     `json:"reason,omitempty"`
	OccurredAt       time.Time  `json:"occurred_at"`
}

func newBookingEvent(b *booking.Booking, kind shared.BookingEventKind, reason string, at time.Time) (shared.BookingEvent, error) {
	payload, err := json.Marshal(bookingEventPayload{
		BookingID:        b.ID(),
		GatewayPaymentID: b.GatewayPaymentID(),
		GatewayOrderID:   b.GatewayOrderID(),
		PropertyID:       b.PropertyID(),
		RoomID:           b.RoomID(),
		GuestEmail:       b.Requester().Email(),
		PaymentStatus:    b.PaymentStatus().String(),
		BookingStatus:    b.Status().String(),
		TotalAmount:      b.Total().Minor(),
		AmountPaid:       b.Paid().Minor(),
		AmountDue:        b.Due().Minor(),
		Reason:           reason,
		OccurredAt:       at,
	})
	if err != nil {
		return shared.BookingEvent{}, err
	}
	return shared.BookingEvent{
		ID:        uuid.New(),
		BookingID: b.ID(),
		Kind:      kind,
		Payload:   payload,
		CreatedAt: at,
	}, nil
}

// kindForTransition names the outbox event for an applied transition.
func kindForTransition(tr booking.Transition) shared.BookingEventKind {
	switch tr.To {
	case booking.PaymentAuthorized:
		return shared.BookingAuthorized
	case booking.PaymentFailed:
		return shared.BookingCancelled
	default:
		return shared.BookingConfirmed
	}
}
