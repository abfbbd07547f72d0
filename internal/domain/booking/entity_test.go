//go:build unit

package booking_test

import (
	"testing"
	"time"

	"coliving-payments/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func mustRequester(t *testing.T) booking.Requester {
	t.Helper()
	r, err := booking.NewRequester("Asha Rao", "asha@example.com", "+919876543210", nil)
	require.NoError(t, err)
	return r
}

func mustMoney(t *testing.T, minor int64) booking.Money {
	t.Helper()
	m, err := booking.NewMoney(minor)
	require.NoError(t, err)
	return m
}

// withStatus rebuilds a booking in the given state, holding a bed in a room.
func withStatus(t *testing.T, ps booking.PaymentStatus, st booking.Status, held bool) *booking.Booking {
	t.Helper()
	roomID := uuid.New()
	total := mustMoney(t, 1_000_000)
	paid, due := booking.SplitDeposit(total)
	b, err := booking.Reconstruct(booking.ReconstructParams{
		ID:               uuid.New(),
		GatewayPaymentID: "pay_" + uuid.NewString()[:8],
		GatewayOrderID:   "order_" + uuid.NewString()[:8],
		PropertyID:       uuid.New(),
		RoomID:           &roomID,
		Requester:        mustRequester(t),
		PaymentStatus:    ps,
		Status:           st,
		Total:            total,
		Paid:             paid,
		Due:              due,
		InventoryHeld:    held,
		BookedAt:         now.Add(-time.Hour),
		CreatedAt:        now.Add(-time.Hour),
		UpdatedAt:        now.Add(-time.Hour),
	})
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	roomID := uuid.New()
	params := func() booking.NewBookingParams {
		return booking.NewBookingParams{
			GatewayPaymentID: "pay_29QQoUBi66xm2f",
			GatewayOrderID:   "order_9A33XWu170gUtm",
			PropertyID:       uuid.New(),
			RoomID:           &roomID,
			Requester:        mustRequester(t),
			Price:            mustMoney(t, 1_000_000),
			Now:              now,
		}
	}

	t.Run("基本成功ケース", func(t *testing.T) {
		b, err := booking.NewBooking(params())
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.PaymentCompleted, b.PaymentStatus())
		assert.Equal(t, booking.StatusBooked, b.Status())
		assert.Equal(t, int64(200_000), b.Paid().Minor())
		assert.Equal(t, int64(800_000), b.Due().Minor())
		assert.Equal(t, b.Total().Minor(), b.Paid().Minor()+b.Due().Minor())
		require.NotNil(t, b.PaidAt())
		assert.Equal(t, now, *b.PaidAt())
		assert.False(t, b.InventoryHeld())
	})

	t.Run("必須項目の欠落", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*booking.NewBookingParams)
			errIs  error
		}{
			{name: "payment id なし", mutate: func(p *booking.NewBookingParams) { p.GatewayPaymentID = "" }, errIs: booking.ErrMissingPaymentID},
			{name: "order id なし", mutate: func(p *booking.NewBookingParams) { p.GatewayOrderID = "" }, errIs: booking.ErrMissingOrderID},
			{name: "property id なし", mutate: func(p *booking.NewBookingParams) { p.PropertyID = uuid.Nil }, errIs: booking.ErrMissingProperty},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				p := params()
				tc.mutate(&p)
				_, err := booking.NewBooking(p)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})

	t.Run("HoldInventory はルームありの場合のみ", func(t *testing.T) {
		b, err := booking.NewBooking(params())
		require.NoError(t, err)
		b.HoldInventory()
		assert.True(t, b.InventoryHeld())

		p := params()
		p.RoomID = nil
		propertyOnly, err := booking.NewBooking(p)
		require.NoError(t, err)
		propertyOnly.HoldInventory()
		assert.False(t, propertyOnly.InventoryHeld())
	})
}

func TestReconstruct_RejectsBrokenInvariants(t *testing.T) {
	total := mustMoney(t, 1000)
	_, err := booking.Reconstruct(booking.ReconstructParams{
		ID:            uuid.New(),
		PaymentStatus: booking.PaymentCompleted,
		Status:        booking.StatusBooked,
		Total:         total,
		Paid:          mustMoney(t, 200),
		Due:           mustMoney(t, 700),
	})
	assert.ErrorIs(t, err, booking.ErrAmountsInconsistent)

	_, err = booking.Reconstruct(booking.ReconstructParams{
		PaymentStatus: "refunded",
		Status:        booking.StatusBooked,
	})
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}

func TestReleaseInventory(t *testing.T) {
	b := withStatus(t, booking.PaymentFailed, booking.StatusCancelled, true)
	require.True(t, b.NeedsInventoryRelease())

	assert.True(t, b.ReleaseInventory(now))
	assert.False(t, b.InventoryHeld())
	assert.False(t, b.ReleaseInventory(now), "second release must not return another bed")

	active := withStatus(t, booking.PaymentCompleted, booking.StatusBooked, true)
	assert.False(t, active.ReleaseInventory(now))
	assert.True(t, active.InventoryHeld())
}

func TestRequesterCarriesNormalizedFields(t *testing.T) {
	uid := uuid.New()
	r, err := booking.NewRequester(" Asha ", "asha@example.com ", "98765 43210", &uid)
	require.NoError(t, err)

	got := []string{r.Name(), r.Email(), r.Phone()}
	if diff := cmp.Diff([]string{"Asha", "asha@example.com", "98765 43210"}, got); diff != "" {
		t.Errorf("requester mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, &uid, r.UserID())
}
