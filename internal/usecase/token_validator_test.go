//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"coliving-payments/internal/domain/user"
	"coliving-payments/internal/pkg/clock"
	"coliving-payments/internal/pkg/errs"
	"coliving-payments/internal/pkg/jwt"
	"coliving-payments/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC))
	svc := jwt.NewService("test-jwt-secret", time.Hour, clk)
	v := usecase.NewTokenValidator(svc)

	t.Run("success: valid token returns user and role", func(t *testing.T) {
		uid := uuid.New()
		token, err := svc.GenerateToken(uid, user.RoleAdmin)
		require.NoError(t, err)

		gotID, gotRole, err := v.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, uid, gotID)
		assert.Equal(t, user.RoleAdmin, gotRole)
	})

	t.Run("error: expired token", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), user.RoleGuest)
		require.NoError(t, err)
		clk.Add(2 * time.Hour)
		defer clk.Add(-2 * time.Hour)

		_, _, err = v.ValidateToken(token)
		assert.True(t, errs.Is(err, jwt.ErrExpiredToken))
		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
	})

	t.Run("error: token signed with another secret", func(t *testing.T) {
		other := jwt.NewService("another-secret", time.Hour, clk)
		token, err := other.GenerateToken(uuid.New(), user.RoleGuest)
		require.NoError(t, err)

		_, _, err = v.ValidateToken(token)
		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
	})

	t.Run("error: malformed token", func(t *testing.T) {
		_, _, err := v.ValidateToken("not-a-token")
		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
	})
}
