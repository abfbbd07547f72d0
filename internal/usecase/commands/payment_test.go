//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"coliving-payments/internal/domain/booking"
	"coliving-payments/internal/infra"
	"coliving-payments/internal/pkg/errs"
	"coliving-payments/internal/testutil/memstore"
	"coliving-payments/internal/usecase/commands"
	"coliving-payments/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("success: verified payment books the room with a 20/80 split", func(t *testing.T) {
		f := newFixture(t, 4, 3)

		res, err := f.payments.VerifyPayment(ctx, f.verifyInput("order_A", "pay_A"))
		require.NoError(t, err)
		require.NotNil(t, res.BookingID)
		assert.Equal(t, commands.OutcomeBooked, res.Outcome)
		assert.Equal(t, "pay_A", res.PaymentID)

		b, ok := f.store.Booking(*res.BookingID)
		require.True(t, ok)
		assert.Equal(t, int64(1_000_000), b.Total().Minor())
		assert.Equal(t, int64(200_000), b.Paid().Minor())
		assert.Equal(t, int64(800_000), b.Due().Minor())
		assert.Equal(t, booking.PaymentCompleted, b.PaymentStatus())
		assert.Equal(t, booking.StatusBooked, b.Status())
		assert.True(t, b.InventoryHeld())
		assert.Equal(t, "order_A", b.GatewayOrderID())
		assert.Equal(t, fixedNow, b.BookedAt())

		assert.Equal(t, int32(2), f.store.AvailableBeds(f.roomID))
		events := f.store.Events()
		require.Len(t, events, 1)
		assert.Equal(t, shared.BookingCreated, events[0].Kind)
		assert.Equal(t, b.ID(), events[0].BookingID)
	})

	t.Run("success: replayed proof returns the same booking without a second bed", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		in := f.verifyInput("order_A", "pay_A")

		first, err := f.payments.VerifyPayment(ctx, in)
		require.NoError(t, err)
		second, err := f.payments.VerifyPayment(ctx, in)
		require.NoError(t, err)

		assert.Equal(t, commands.OutcomeAlreadyBooked, second.Outcome)
		assert.Equal(t, *first.BookingID, *second.BookingID)
		assert.Equal(t, 1, f.store.BookingCount())
		assert.Equal(t, int32(2), f.store.AvailableBeds(f.roomID))
		assert.Len(t, f.store.Events(), 1)
	})

	t.Run("success: concurrent submissions of one proof create one booking", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		in := f.verifyInput("order_A", "pay_A")

		const callers = 8
		ids := make([]uuid.UUID, callers)
		errList := make([]error, callers)
		var wg sync.WaitGroup
		for i := range callers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				res, err := f.payments.VerifyPayment(ctx, in)
				errList[i] = err
				if err == nil && res.BookingID != nil {
					ids[i] = *res.BookingID
				}
			}(i)
		}
		wg.Wait()

		for i := range callers {
			require.NoError(t, errList[i])
			assert.Equal(t, ids[0], ids[i])
		}
		assert.Equal(t, 1, f.store.BookingCount())
		assert.Equal(t, int32(2), f.store.AvailableBeds(f.roomID))
	})

	t.Run("success: booking without a room leaves inventory alone", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		in := f.verifyInput("order_A", "pay_A")
		in.RoomID = nil

		res, err := f.payments.VerifyPayment(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, commands.OutcomeBooked, res.Outcome)

		b, _ := f.store.Booking(*res.BookingID)
		assert.False(t, b.InventoryHeld())
		assert.Equal(t, int64(200_000), b.Paid().Minor())
		assert.Equal(t, int32(3), f.store.AvailableBeds(f.roomID))
	})

	t.Run("success: full room still records the captured payment for support", func(t *testing.T) {
		f := newFixture(t, 4, 0)

		res, err := f.payments.VerifyPayment(ctx, f.verifyInput("order_A", "pay_A"))
		require.NoError(t, err)
		assert.Equal(t, commands.OutcomeRequiresSupport, res.Outcome)

		b, ok := f.store.Booking(*res.BookingID)
		require.True(t, ok)
		assert.False(t, b.InventoryHeld())
		assert.Equal(t, int32(0), f.store.AvailableBeds(f.roomID))

		events := f.store.Events()
		require.Len(t, events, 1)
		assert.Equal(t, shared.BookingSupportRequired, events[0].Kind)
	})

	t.Run("success: replay after out of stock keeps reporting support", func(t *testing.T) {
		f := newFixture(t, 4, 0)
		in := f.verifyInput("order_A", "pay_A")

		first, err := f.payments.VerifyPayment(ctx, in)
		require.NoError(t, err)
		second, err := f.payments.VerifyPayment(ctx, in)
		require.NoError(t, err)

		assert.Equal(t, commands.OutcomeRequiresSupport, first.Outcome)
		assert.Equal(t, commands.OutcomeRequiresSupport, second.Outcome)
		assert.Equal(t, *first.BookingID, *second.BookingID)
		assert.Equal(t, int32(0), f.store.AvailableBeds(f.roomID))
		assert.Len(t, f.store.Events(), 1)
	})

	t.Run("success: replay of a cancelled booking without a bed is already booked", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		seeded := f.seedBooking(t, "pay_A", "order_A", booking.PaymentFailed, booking.StatusCancelled, false)

		res, err := f.payments.VerifyPayment(ctx, f.verifyInput("order_A", "pay_A"))
		require.NoError(t, err)
		assert.Equal(t, commands.OutcomeAlreadyBooked, res.Outcome)
		assert.Equal(t, seeded.ID(), *res.BookingID)
	})

	t.Run("success: store failure after capture reports booking pending", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		f.store.FailNext(memstore.OpCreateBooking,
			infra.WrapRepoErr("failed to create booking", errors.New("connection reset by peer")))
		in := f.verifyInput("order_A", "pay_A")

		res, err := f.payments.VerifyPayment(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, commands.OutcomeBookingPending, res.Outcome)
		assert.Nil(t, res.BookingID)
		assert.Equal(t, 0, f.store.BookingCount())
		assert.Equal(t, int32(3), f.store.AvailableBeds(f.roomID), "decrement must roll back")

		retry, err := f.payments.VerifyPayment(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, commands.OutcomeBooked, retry.Outcome)
		assert.Equal(t, int32(2), f.store.AvailableBeds(f.roomID))
	})

	t.Run("error: tampered signature creates nothing", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		in := f.verifyInput("order_A", "pay_A")
		in.PaymentID = "pay_B"

		_, err := f.payments.VerifyPayment(ctx, in)
		assert.True(t, errs.Is(err, commands.ErrUnauthenticated))
		assert.Equal(t, 0, f.store.BookingCount())
		assert.Equal(t, int32(3), f.store.AvailableBeds(f.roomID))
		assert.Empty(t, f.store.Events())
	})

	t.Run("error: invalid requester details", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		in := f.verifyInput("order_A", "pay_A")
		in.Email = "not-an-email"

		_, err := f.payments.VerifyPayment(ctx, in)
		assert.True(t, errs.Is(err, commands.ErrInvalidArgument))
		assert.Equal(t, 0, f.store.BookingCount())
	})

	t.Run("error: unknown property", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		in := f.verifyInput("order_A", "pay_A")
		in.PropertyID = uuid.New()

		_, err := f.payments.VerifyPayment(ctx, in)
		assert.True(t, errs.Is(err, commands.ErrPropertyNotFound))
	})

	t.Run("error: room of another property", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		otherProperty := f.store.SeedProperty("Koramangala House", 900_000)
		otherRoom := f.store.SeedRoom(otherProperty, 900_000, 2, 2)
		in := f.verifyInput("order_A", "pay_A")
		in.RoomID = &otherRoom

		_, err := f.payments.VerifyPayment(ctx, in)
		assert.True(t, errs.Is(err, commands.ErrRoomNotFound))
		assert.Equal(t, int32(2), f.store.AvailableBeds(otherRoom))
	})
}

func TestInventoryAdjuster_ConcurrentDecrement(t *testing.T) {
	f := newFixture(t, 4, 1)
	ctx := context.Background()

	const callers = 6
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		outOfStk  int
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := f.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				return f.inventory.Decrement(ctx, tx, f.roomID)
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errs.Is(err, commands.ErrOutOfStock):
				outOfStk++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, callers-1, outOfStk)
	assert.Equal(t, int32(0), f.store.AvailableBeds(f.roomID))
}

func TestInventoryAdjuster_RestoreNeverExceedsTotal(t *testing.T) {
	f := newFixture(t, 4, 4)
	ctx := context.Background()

	err := f.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return f.inventory.Restore(ctx, tx, f.roomID)
	})
	require.NoError(t, err)
	assert.Equal(t, int32(4), f.store.AvailableBeds(f.roomID))

	err = f.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return f.inventory.Restore(ctx, tx, uuid.New())
	})
	assert.NoError(t, err, "a deleted room has nothing to restore")
}
