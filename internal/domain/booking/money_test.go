//go:build unit

package booking_test

import (
	"math"
	"testing"

	"coliving-payments/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromMajor(t *testing.T) {
	cases := []struct {
		name    string
		major   float64
		want    int64
		wantErr bool
	}{
		{name: "whole rupees", major: 10000, want: 1_000_000},
		{name: "paise are kept", major: 499.99, want: 49_999},
		{name: "float noise is rounded", major: 0.1 + 0.2, want: 30},
		{name: "zero is rejected", major: 0, wantErr: true},
		{name: "negative is rejected", major: -1, wantErr: true},
		{name: "float noise below a paisa is absorbed", major: 0.29, want: 29},
		{name: "large amount keeps paise", major: 12_345_678.91, want: 1_234_567_891},
		{name: "sub-paisa amount is rejected", major: 0.004, wantErr: true},
		{name: "fractional paisa is rejected", major: 100.555, wantErr: true},
		{name: "half paisa is rejected", major: 10.005, wantErr: true},
		{name: "NaN is rejected", major: math.NaN(), wantErr: true},
		{name: "Inf is rejected", major: math.Inf(1), wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := booking.MoneyFromMajor(tc.major)
			if tc.wantErr {
				assert.ErrorIs(t, err, booking.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.Minor())
		})
	}
}

func TestNewMoney_RejectsNegative(t *testing.T) {
	_, err := booking.NewMoney(-1)
	assert.ErrorIs(t, err, booking.ErrInvalidAmount)

	m, err := booking.NewMoney(0)
	require.NoError(t, err)
	assert.True(t, m.IsZero())
}

func TestSplitDeposit(t *testing.T) {
	t.Run("₹10,000 splits into 2,000 now and 8,000 due", func(t *testing.T) {
		total, err := booking.NewMoney(1_000_000)
		require.NoError(t, err)

		paid, due := booking.SplitDeposit(total)

		assert.InDelta(t, 2000.0, paid.Major(), 0.001)
		assert.InDelta(t, 8000.0, due.Major(), 0.001)
	})

	t.Run("paid plus due always equals total", func(t *testing.T) {
		for _, minor := range []int64{0, 1, 4, 5, 99, 101, 12_345, 999_999_999, math.MaxInt64 / 2} {
			total, err := booking.NewMoney(minor)
			require.NoError(t, err)

			paid, due := booking.SplitDeposit(total)

			assert.Equal(t, minor, paid.Minor()+due.Minor(), "total %d", minor)
			assert.LessOrEqual(t, paid.Minor(), due.Minor()+1, "total %d", minor)
		}
	})
}
