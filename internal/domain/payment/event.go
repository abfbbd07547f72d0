package payment

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMalformedEvent = errors.New("malformed webhook event")

type EventName string

const (
	EventPaymentAuthorized EventName = "payment.authorized"
	EventPaymentCaptured   EventName = "payment.captured"
	EventPaymentFailed     EventName = "payment.failed"
	EventOrderPaid         EventName = "order.paid"
)

// Event is one of PaymentAuthorized, PaymentCaptured, PaymentFailed,
// OrderPaid or Unmatched.
type Event interface {
	Name() EventName
	isEvent()
}

type PaymentAuthorized struct {
	PaymentID string
	OrderID   string
}

type PaymentCaptured struct {
	PaymentID string
	OrderID   string
	Amount    int64
}

type PaymentFailed struct {
	PaymentID string
	OrderID   string
	Reason    string
}

type OrderPaid struct {
	OrderID   string
	PaymentID string
}

// Unmatched is any event name this service does not act on.
type Unmatched struct {
	EventName EventName
}

func (PaymentAuthorized) Name() EventName { return EventPaymentAuthorized }
func (PaymentCaptured) Name() EventName   { return EventPaymentCaptured }
func (PaymentFailed) Name() EventName     { return EventPaymentFailed }
func (OrderPaid) Name() EventName         { return EventOrderPaid }
func (u Unmatched) Name() EventName       { return u.EventName }

func (PaymentAuthorized) isEvent() {}
func (PaymentCaptured) isEvent()   {}
func (PaymentFailed) isEvent()     {}
func (OrderPaid) isEvent()         {}
func (Unmatched) isEvent()         {}

// AuthenticatedEvent is an Event decoded from an AuthenticatedPayload.
type AuthenticatedEvent struct {
	event Event
}

func (e AuthenticatedEvent) Event() Event {
	return e.event
}

type envelope struct {
	Event   string `json:"event"`
	Payload struct {
		Payment *struct {
			Entity paymentEntity `json:"entity"`
		} `json:"payment"`
		Order *struct {
			Entity orderEntity `json:"entity"`
		} `json:"order"`
	} `json:"payload"`
}

type paymentEntity struct {
	ID               string `json:"id"`
	OrderID          string `json:"order_id"`
	Amount           int64  `json:"amount"`
	ErrorDescription string `json:"error_description"`
}

type orderEntity struct {
	ID string `json:"id"`
}

func ParseEvent(p AuthenticatedPayload) (AuthenticatedEvent, error) {
	var env envelope
	if err := json.Unmarshal(p.body, &env); err != nil {
		return AuthenticatedEvent{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if env.Event == "" {
		return AuthenticatedEvent{}, fmt.Errorf("%w: event name missing", ErrMalformedEvent)
	}

	name := EventName(env.Event)
	var pay paymentEntity
	if env.Payload.Payment != nil {
		pay = env.Payload.Payment.Entity
	}

	var ev Event
	switch name {
	case EventPaymentAuthorized:
		ev = PaymentAuthorized{PaymentID: pay.ID, OrderID: pay.OrderID}
	case EventPaymentCaptured:
		ev = PaymentCaptured{PaymentID: pay.ID, OrderID: pay.OrderID, Amount: pay.Amount}
	case EventPaymentFailed:
		ev = PaymentFailed{PaymentID: pay.ID, OrderID: pay.OrderID, Reason: pay.ErrorDescription}
	case EventOrderPaid:
		orderID := pay.OrderID
		if env.Payload.Order != nil && env.Payload.Order.Entity.ID != "" {
			orderID = env.Payload.Order.Entity.ID
		}
		if orderID == "" {
			return AuthenticatedEvent{}, fmt.Errorf("%w: %s without order id", ErrMalformedEvent, name)
		}
		return AuthenticatedEvent{event: OrderPaid{OrderID: orderID, PaymentID: pay.ID}}, nil
	default:
		return AuthenticatedEvent{event: Unmatched{EventName: name}}, nil
	}

	if pay.ID == "" {
		return AuthenticatedEvent{}, fmt.Errorf("%w: %s without payment id", ErrMalformedEvent, name)
	}
	return AuthenticatedEvent{event: ev}, nil
}
