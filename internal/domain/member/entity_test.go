//go:build unit

package member_test

import (
	"strings"
	"testing"

	"roomescape/internal/domain/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		e, err := member.NewEmail("  Admin@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", e.Value())
	})

	for _, in := range []string{"", "no-at-sign", "a@b", "@example.com"} {
		t.Run("rejects "+in, func(t *testing.T) {
			_, err := member.NewEmail(in)
			assert.ErrorIs(t, err, member.ErrInvalidEmail)
		})
	}
}

func TestNewName(t *testing.T) {
	_, err := member.NewName(strings.Repeat("가", member.MaxNameLength))
	require.NoError(t, err)

	_, err = member.NewName(strings.Repeat("가", member.MaxNameLength+1))
	assert.ErrorIs(t, err, member.ErrInvalidName)

	_, err = member.NewName("   ")
	assert.ErrorIs(t, err, member.ErrInvalidName)
}

func TestNewPassword(t *testing.T) {
	_, err := member.NewPassword("abc")
	assert.ErrorIs(t, err, member.ErrInvalidPassword)

	_, err = member.NewPassword(strings.Repeat("a", member.MaxPasswordLength+1))
	assert.ErrorIs(t, err, member.ErrInvalidPassword)

	p, err := member.NewPassword("1234")
	require.NoError(t, err)
	assert.Equal(t, "1234", p.Value())
}

func TestNewMember(t *testing.T) {
	email, _ := member.NewEmail("user@example.com")
	name, _ := member.NewName("brown")

	m := member.NewMember(email, name, "hash")

	assert.Equal(t, member.RoleUser, m.Role())
	assert.Zero(t, m.ID())
	assert.False(t, m.Role().IsAdmin())

	_, err := member.NewRole("ROOT")
	assert.ErrorIs(t, err, member.ErrInvalidRole)
}
