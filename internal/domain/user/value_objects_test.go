//go:build unit

package user_test

import (
	"strings"
	"testing"

	"coliving-payments/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		errIs error
	}{
		{name: "有効なメールアドレスOK", in: "guest@example.com"},
		{name: "前後の空白は除去される", in: "  guest@example.com "},
		{name: "空のメールアドレスNG", in: "", errIs: user.ErrInvalidEmail},
		{name: "ドメインなしNG", in: "guest@", errIs: user.ErrInvalidEmail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := user.NewEmail(tc.in)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "guest@example.com", e.Value())
		})
	}
}

func TestNewPhone(t *testing.T) {
	valid := []string{"+919876543210", "98765 43210", "022-2345-6789", "1234567"}
	for _, in := range valid {
		t.Run("OK: "+in, func(t *testing.T) {
			p, err := user.NewPhone(in)
			require.NoError(t, err)
			assert.Equal(t, in, p.Value())
		})
	}

	invalid := []string{"", "12345", "phone", "+91 98765 43210 12345", "98--76543210"}
	for _, in := range invalid {
		t.Run("NG: "+in, func(t *testing.T) {
			_, err := user.NewPhone(in)
			assert.ErrorIs(t, err, user.ErrInvalidPhone)
		})
	}
}

func TestNewName(t *testing.T) {
	n, err := user.NewName(" Asha Rao ")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", n.Value())

	_, err = user.NewName("   ")
	assert.ErrorIs(t, err, user.ErrInvalidName)

	_, err = user.NewName(strings.Repeat("あ", 201))
	assert.ErrorIs(t, err, user.ErrInvalidName)
}

func TestNewRole(t *testing.T) {
	r, err := user.NewRole("admin")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, r)

	_, err = user.NewRole("operator")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
