//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"coliving-payments/internal/domain/booking"
	"coliving-payments/internal/infra"
	"coliving-payments/internal/pkg/errs"
	"coliving-payments/internal/testutil/memstore"
	"coliving-payments/internal/usecase/commands"
	"coliving-payments/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleWebhook(t *testing.T) {
	ctx := context.Background()

	t.Run("success: payment.failed cancels and returns the bed", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		b := f.seedBooking(t, "pay_F", "order_F", booking.PaymentAuthorized, booking.StatusConfirmed, true)
		f.clock.Add(time.Minute)

		res, err := f.webhooks.HandleWebhook(ctx, f.webhookInput(webhookBody("payment.failed", "pay_F", "order_F"), "evt_1"))
		require.NoError(t, err)
		assert.Equal(t, commands.ReconcileApplied, res.Outcome)
		assert.Equal(t, "payment.failed", res.Event)

		got, _ := f.store.Booking(b.ID())
		assert.Equal(t, booking.PaymentFailed, got.PaymentStatus())
		assert.Equal(t, booking.StatusCancelled, got.Status())
		assert.False(t, got.InventoryHeld())
		assert.Equal(t, fixedNow.Add(time.Minute), got.UpdatedAt())
		assert.Equal(t, int32(4), f.store.AvailableBeds(f.roomID))

		events := f.store.Events()
		require.Len(t, events, 1)
		assert.Equal(t, shared.BookingCancelled, events[0].Kind)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(events[0].Payload, &payload))
		assert.Equal(t, "card declined", payload["reason"])

		d, ok := f.store.Delivery("evt_1")
		require.True(t, ok)
		assert.Equal(t, "applied", d.Outcome)
	})

	t.Run("success: payment.authorized confirms a pending booking", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		b := f.seedBooking(t, "pay_P", "order_P", booking.PaymentPending, booking.StatusPending, true)

		res, err := f.webhooks.HandleWebhook(ctx, f.webhookInput(webhookBody("payment.authorized", "pay_P", "order_P"), ""))
		require.NoError(t, err)
		assert.Equal(t, commands.ReconcileApplied, res.Outcome)

		got, _ := f.store.Booking(b.ID())
		assert.Equal(t, booking.PaymentAuthorized, got.PaymentStatus())
		assert.Equal(t, booking.StatusConfirmed, got.Status())
		assert.Equal(t, shared.BookingAuthorized, f.store.Events()[0].Kind)
	})

	t.Run("success: order.paid captures by order id", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		b := f.seedBooking(t, "pay_O", "order_O", booking.PaymentAuthorized, booking.StatusConfirmed, true)
		body := []byte(`{"event":"order.paid","payload":{"order":{"entity":{"id":"order_O"}},"payment":{"entity":{"id":"pay_O"}}}}`)

		res, err := f.webhooks.HandleWebhook(ctx, f.webhookInput(body, ""))
		require.NoError(t, err)
		assert.Equal(t, commands.ReconcileApplied, res.Outcome)

		got, _ := f.store.Booking(b.ID())
		assert.Equal(t, booking.PaymentCompleted, got.PaymentStatus())
		require.NotNil(t, got.PaidAt())
		assert.Equal(t, fixedNow, *got.PaidAt())
		assert.Equal(t, shared.BookingConfirmed, f.store.Events()[0].Kind)
	})

	t.Run("success: completed booking ignores a later failure", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		b := f.seedBooking(t, "pay_C", "order_C", booking.PaymentCompleted, booking.StatusBooked, true)

		res, err := f.webhooks.HandleWebhook(ctx, f.webhookInput(webhookBody("payment.failed", "pay_C", "order_C"), ""))
		require.NoError(t, err)
		assert.Equal(t, commands.ReconcileStale, res.Outcome)

		got, _ := f.store.Booking(b.ID())
		assert.Equal(t, booking.PaymentCompleted, got.PaymentStatus())
		assert.Equal(t, booking.StatusBooked, got.Status())
		assert.Equal(t, int32(3), f.store.AvailableBeds(f.roomID))
		assert.Empty(t, f.store.Events())
	})

	t.Run("success: repeated capture is a no-op", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		f.seedBooking(t, "pay_C", "order_C", booking.PaymentCompleted, booking.StatusBooked, true)

		res, err := f.webhooks.HandleWebhook(ctx, f.webhookInput(webhookBody("payment.captured", "pay_C", "order_C"), ""))
		require.NoError(t, err)
		assert.Equal(t, commands.ReconcileNoOp, res.Outcome)
		assert.Empty(t, f.store.Events())
	})

	t.Run("success: failed twice restores one bed", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		f.seedBooking(t, "pay_F", "order_F", booking.PaymentAuthorized, booking.StatusConfirmed, true)
		body := webhookBody("payment.failed", "pay_F", "order_F")

		_, err := f.webhooks.HandleWebhook(ctx, f.webhookInput(body, "evt_1"))
		require.NoError(t, err)
		res, err := f.webhooks.HandleWebhook(ctx, f.webhookInput(body, "evt_2"))
		require.NoError(t, err)

		assert.Equal(t, commands.ReconcileNoOp, res.Outcome)
		assert.Equal(t, int32(4), f.store.AvailableBeds(f.roomID))
	})

	t.Run("success: redelivered event id is acknowledged without reapplying", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		f.seedBooking(t, "pay_F", "order_F", booking.PaymentAuthorized, booking.StatusConfirmed, true)
		in := f.webhookInput(webhookBody("payment.failed", "pay_F", "order_F"), "evt_1")

		_, err := f.webhooks.HandleWebhook(ctx, in)
		require.NoError(t, err)
		res, err := f.webhooks.HandleWebhook(ctx, in)
		require.NoError(t, err)

		assert.Equal(t, commands.ReconcileDuplicate, res.Outcome)
		assert.Len(t, f.store.Events(), 1)
	})

	t.Run("success: losing a concurrent redelivery rolls back and reports duplicate", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		f.seedBooking(t, "pay_F", "order_F", booking.PaymentAuthorized, booking.StatusConfirmed, true)
		f.store.RaceDelivery(shared.WebhookDelivery{EventID: "evt_1", EventType: "payment.failed", Outcome: "applied"})

		res, err := f.webhooks.HandleWebhook(ctx, f.webhookInput(webhookBody("payment.failed", "pay_F", "order_F"), "evt_1"))
		require.NoError(t, err)

		assert.Equal(t, commands.ReconcileDuplicate, res.Outcome)
		assert.Equal(t, int32(3), f.store.AvailableBeds(f.roomID))
		assert.Empty(t, f.store.Events())
	})

	t.Run("success: event for an unknown payment is dropped", func(t *testing.T) {
		f := newFixture(t, 4, 3)

		res, err := f.webhooks.HandleWebhook(ctx, f.webhookInput(webhookBody("payment.captured", "pay_X", "order_X"), "evt_1"))
		require.NoError(t, err)
		assert.Equal(t, commands.ReconcileDropped, res.Outcome)
		assert.Equal(t, 0, f.store.BookingCount())

		d, ok := f.store.Delivery("evt_1")
		require.True(t, ok)
		assert.Equal(t, "dropped", d.Outcome)
	})

	t.Run("success: unmatched event name is ignored", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		body := []byte(`{"event":"refund.processed","payload":{}}`)

		res, err := f.webhooks.HandleWebhook(ctx, f.webhookInput(body, ""))
		require.NoError(t, err)
		assert.Equal(t, commands.ReconcileIgnored, res.Outcome)
		assert.Equal(t, "refund.processed", res.Event)
	})

	t.Run("error: bad signature mutates nothing", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		b := f.seedBooking(t, "pay_F", "order_F", booking.PaymentAuthorized, booking.StatusConfirmed, true)
		body := webhookBody("payment.failed", "pay_F", "order_F")
		in := commands.WebhookInput{Body: body, Signature: "deadbeef", EventID: "evt_1"}

		_, err := f.webhooks.HandleWebhook(ctx, in)
		assert.True(t, errs.Is(err, commands.ErrUnauthenticated))

		got, _ := f.store.Booking(b.ID())
		assert.Equal(t, booking.PaymentAuthorized, got.PaymentStatus())
		assert.Equal(t, int32(3), f.store.AvailableBeds(f.roomID))
		assert.Zero(t, f.store.Commits)
		_, recorded := f.store.Delivery("evt_1")
		assert.False(t, recorded)
	})

	t.Run("error: missing signature", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		_, err := f.webhooks.HandleWebhook(ctx, commands.WebhookInput{Body: webhookBody("payment.failed", "p", "o")})
		assert.True(t, errs.Is(err, commands.ErrUnauthenticated))
	})

	t.Run("error: authentic but malformed body", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		_, err := f.webhooks.HandleWebhook(ctx, f.webhookInput([]byte(`{"event":`), ""))
		assert.True(t, errs.Is(err, commands.ErrInvalidArgument))
	})

	t.Run("error: store failure rolls back transition and bed", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		b := f.seedBooking(t, "pay_F", "order_F", booking.PaymentAuthorized, booking.StatusConfirmed, true)
		f.store.FailNext(memstore.OpAppendEvent,
			infra.WrapRepoErr("failed to append booking event", errors.New("connection reset by peer")))

		_, err := f.webhooks.HandleWebhook(ctx, f.webhookInput(webhookBody("payment.failed", "pay_F", "order_F"), "evt_1"))
		assert.True(t, errs.Is(err, commands.ErrStoreUnavailable))

		got, _ := f.store.Booking(b.ID())
		assert.Equal(t, booking.PaymentAuthorized, got.PaymentStatus())
		assert.True(t, got.InventoryHeld())
		assert.Equal(t, int32(3), f.store.AvailableBeds(f.roomID))
		_, recorded := f.store.Delivery("evt_1")
		assert.False(t, recorded, "a failed delivery must stay retryable")
	})
}
