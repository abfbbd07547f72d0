package booking

import (
	"errors"
	"time"
)

var ErrUnknownEvent = errors.New("unknown payment event")

// Event is a payment lifecycle signal, independent of which path delivered it.
type Event string

const (
	EventAuthorized Event = "authorized"
	EventCaptured   Event = "captured"
	EventFailed     Event = "failed"
)

type Outcome string

const (
	// OutcomeApplied means the booking changed and must be persisted.
	OutcomeApplied Outcome = "applied"
	// OutcomeNoOp means the booking was already in the target state.
	OutcomeNoOp Outcome = "noop"
	// OutcomeStale means the event arrived after a state it may not override.
	OutcomeStale Outcome = "stale"
)

type Transition struct {
	Event            Event
	From             PaymentStatus
	To               PaymentStatus
	Outcome          Outcome
	ReleaseInventory bool
}

// Apply moves the booking through pending → authorized → completed, or to
// failed. completed and failed are terminal; an event that would leave
// either is reported stale and the booking is left untouched.
func (b *Booking) Apply(ev Event, at time.Time) (Transition, error) {
	tr := Transition{Event: ev, From: b.paymentStatus, To: b.paymentStatus}

	switch ev {
	case EventAuthorized:
		switch b.paymentStatus {
		case PaymentPending:
			b.paymentStatus = PaymentAuthorized
			b.status = StatusConfirmed
		case PaymentAuthorized:
			tr.Outcome = OutcomeNoOp
			return tr, nil
		default:
			tr.Outcome = OutcomeStale
			return tr, nil
		}

	case EventCaptured:
		switch b.paymentStatus {
		case PaymentPending, PaymentAuthorized:
			b.paymentStatus = PaymentCompleted
			b.status = StatusConfirmed
			paidAt := at
			b.paidAt = &paidAt
		case PaymentCompleted:
			tr.Outcome = OutcomeNoOp
			return tr, nil
		default:
			tr.Outcome = OutcomeStale
			return tr, nil
		}

	case EventFailed:
		switch b.paymentStatus {
		case PaymentPending, PaymentAuthorized:
			b.paymentStatus = PaymentFailed
			b.status = StatusCancelled
			tr.ReleaseInventory = b.inventoryHeld && b.roomID != nil
			b.inventoryHeld = false
		case PaymentFailed:
			tr.Outcome = OutcomeNoOp
			return tr, nil
		default:
			tr.Outcome = OutcomeStale
			return tr, nil
		}

	default:
		return tr, ErrUnknownEvent
	}

	b.updatedAt = at
	tr.To = b.paymentStatus
	tr.Outcome = OutcomeApplied
	return tr, nil
}
