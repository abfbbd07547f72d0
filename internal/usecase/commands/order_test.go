//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"coliving-payments/internal/pkg/errs"
	"coliving-payments/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	calls []commands.GatewayOrderRequest
	err   error
}

func (g *fakeGateway) CreateOrder(_ context.Context, req commands.GatewayOrderRequest) (*commands.GatewayOrder, error) {
	g.calls = append(g.calls, req)
	if g.err != nil {
		return nil, g.err
	}
	return &commands.GatewayOrder{ID: "order_Test123", AmountMinor: req.AmountMinor, Currency: req.Currency}, nil
}

func TestIssueOrder(t *testing.T) {
	ctx := context.Background()

	input := func(f *fixture) commands.IssueOrderInput {
		roomID := f.roomID
		return commands.IssueOrderInput{
			PropertyID: f.propertyID,
			RoomID:     &roomID,
			Amount:     2000,
			Name:       "Asha Rao",
			Email:      "asha@example.com",
			Phone:      "+91 98765 43210",
		}
	}

	t.Run("success: opens a gateway order in minor units", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		gw := &fakeGateway{}
		uc := commands.NewOrderUseCase(f.store, gw, "INR")

		res, err := uc.IssueOrder(ctx, input(f))
		require.NoError(t, err)
		assert.Equal(t, &commands.IssueOrderResult{OrderID: "order_Test123", AmountMinor: 200_000, Currency: "INR"}, res)

		require.Len(t, gw.calls, 1)
		req := gw.calls[0]
		assert.Equal(t, int64(200_000), req.AmountMinor)
		assert.True(t, strings.HasPrefix(req.Receipt, "rcpt_"))
		assert.LessOrEqual(t, len(req.Receipt), 40)
		assert.Equal(t, f.roomID.String(), req.Notes["room_id"])
		assert.Equal(t, "asha@example.com", req.Notes["email"])
		assert.Equal(t, 0, f.store.BookingCount())
	})

	t.Run("success: full listing price is accepted", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		in := input(f)
		in.Amount = 10_000
		_, err := commands.NewOrderUseCase(f.store, &fakeGateway{}, "INR").IssueOrder(ctx, in)
		assert.NoError(t, err)
	})

	tests := []struct {
		name    string
		mutate  func(f *fixture, in *commands.IssueOrderInput)
		wantErr error
	}{
		{"zero amount", func(_ *fixture, in *commands.IssueOrderInput) { in.Amount = 0 }, commands.ErrInvalidArgument},
		{"negative amount", func(_ *fixture, in *commands.IssueOrderInput) { in.Amount = -5 }, commands.ErrInvalidArgument},
		{"fractional paisa", func(_ *fixture, in *commands.IssueOrderInput) { in.Amount = 100.555 }, commands.ErrInvalidArgument},
		{"amount above listing price", func(_ *fixture, in *commands.IssueOrderInput) { in.Amount = 10_000.01 }, commands.ErrInvalidArgument},
		{"invalid phone", func(_ *fixture, in *commands.IssueOrderInput) { in.Phone = "12" }, commands.ErrInvalidArgument},
		{"empty name", func(_ *fixture, in *commands.IssueOrderInput) { in.Name = "" }, commands.ErrInvalidArgument},
		{"unknown property", func(_ *fixture, in *commands.IssueOrderInput) { in.PropertyID = uuid.New() }, commands.ErrPropertyNotFound},
		{"unknown room", func(_ *fixture, in *commands.IssueOrderInput) { id := uuid.New(); in.RoomID = &id }, commands.ErrRoomNotFound},
		{"full room", func(f *fixture, in *commands.IssueOrderInput) {
			full := f.store.SeedRoom(f.propertyID, 1_000_000, 2, 0)
			in.RoomID = &full
		}, commands.ErrOutOfStock},
	}
	for _, tc := range tests {
		t.Run("error: "+tc.name, func(t *testing.T) {
			f := newFixture(t, 4, 3)
			gw := &fakeGateway{}
			in := input(f)
			tc.mutate(f, &in)

			_, err := commands.NewOrderUseCase(f.store, gw, "INR").IssueOrder(ctx, in)
			assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
			assert.Empty(t, gw.calls, "gateway must not be called")
		})
	}

	t.Run("error: gateway unavailable", func(t *testing.T) {
		f := newFixture(t, 4, 3)
		gw := &fakeGateway{err: errors.New("dial tcp: i/o timeout")}

		_, err := commands.NewOrderUseCase(f.store, gw, "INR").IssueOrder(ctx, input(f))
		assert.True(t, errs.Is(err, commands.ErrUpstreamUnavailable))
	})
}
