//go:build unit

package commands_test

import (
	"testing"
	"time"

	"coliving-payments/internal/domain/booking"
	"coliving-payments/internal/domain/payment"
	"coliving-payments/internal/pkg/clock"
	"coliving-payments/internal/testutil/memstore"
	"coliving-payments/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	keySecret     = "rzp_test_key_secret"
	webhookSecret = "rzp_test_webhook_secret"
)

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// fixture is a property with one room seeded into an in-memory store, with
// the use cases wired the way bootstrap wires them.
type fixture struct {
	store      *memstore.Store
	clock      *clock.MockClock
	propertyID uuid.UUID
	roomID     uuid.UUID

	inventory    *commands.InventoryAdjuster
	materializer *commands.BookingMaterializer
	payments     commands.PaymentCommands
	webhooks     commands.WebhookCommands
	sweep        commands.SweepCommands
}

// newFixture seeds a ₹10,000 room with the given bed counts.
func newFixture(t *testing.T, totalBeds, availableBeds int32) *fixture {
	t.Helper()
	store := memstore.New()
	clk := clock.NewMockClock(fixedNow)
	propertyID := store.SeedProperty("Indiranagar House", 1_000_000)
	roomID := store.SeedRoom(propertyID, 1_000_000, totalBeds, availableBeds)

	inv := commands.NewInventoryAdjuster()
	m := commands.NewBookingMaterializer(store, inv, clk)
	return &fixture{
		store:        store,
		clock:        clk,
		propertyID:   propertyID,
		roomID:       roomID,
		inventory:    inv,
		materializer: m,
		payments:     commands.NewPaymentUseCase(payment.NewProofVerifier(keySecret), m),
		webhooks: commands.NewWebhookUseCase(store,
			payment.NewWebhookAuthenticator(webhookSecret),
			commands.NewReconciler(inv, clk)),
		sweep: commands.NewSweepUseCase(store, inv, clk, 10),
	}
}

func (f *fixture) verifyInput(orderID, paymentID string) commands.VerifyPaymentInput {
	roomID := f.roomID
	return commands.VerifyPaymentInput{
		OrderID:    orderID,
		PaymentID:  paymentID,
		Signature:  payment.SignProof(keySecret, orderID, paymentID),
		PropertyID: f.propertyID,
		RoomID:     &roomID,
		Name:       "Asha Rao",
		Email:      "asha@example.com",
		Phone:      "+91 98765 43210",
	}
}

// seedBooking stores a booking for the fixture room in the given payment
// state, holding a bed when held is true.
func (f *fixture) seedBooking(t *testing.T, paymentID, orderID string, ps booking.PaymentStatus, st booking.Status, held bool) *booking.Booking {
	t.Helper()
	total, err := booking.NewMoney(1_000_000)
	require.NoError(t, err)
	paid, due := booking.SplitDeposit(total)
	roomID := f.roomID
	b, err := booking.Reconstruct(booking.ReconstructParams{
		ID:               uuid.New(),
		GatewayPaymentID: paymentID,
		GatewayOrderID:   orderID,
		PropertyID:       f.propertyID,
		RoomID:           &roomID,
		Requester:        booking.RestoreRequester("Asha Rao", "asha@example.com", "+919876543210", nil),
		PaymentStatus:    ps,
		Status:           st,
		Total:            total,
		Paid:             paid,
		Due:              due,
		InventoryHeld:    held,
		BookedAt:         fixedNow.Add(-time.Hour),
		CreatedAt:        fixedNow.Add(-time.Hour),
		UpdatedAt:        fixedNow.Add(-time.Hour),
	})
	require.NoError(t, err)
	f.store.SeedBooking(b)
	return b
}

func webhookBody(event, paymentID, orderID string) []byte {
	return []byte(`{"entity":"event","event":"` + event + `","payload":{"payment":{"entity":{"id":"` +
		paymentID + `","order_id":"` + orderID + `","amount":1000000,"error_description":"card declined"}}}}`)
}

func (f *fixture) webhookInput(body []byte, eventID string) commands.WebhookInput {
	return commands.WebhookInput{
		Body:      body,
		Signature: payment.SignWebhook(webhookSecret, body),
		EventID:   eventID,
	}
}
