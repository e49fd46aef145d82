//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"roomescape/internal/domain/member"
	"roomescape/internal/pkg/clock"
	"roomescape/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMember(t *testing.T) *member.Member {
	t.Helper()
	email, err := member.NewEmail("admin@example.com")
	require.NoError(t, err)
	name, err := member.NewName("admin")
	require.NoError(t, err)
	return member.ReconstructMember(1, email, name, "hash", member.RoleAdmin, time.Now())
}

func TestService_GenerateAndValidate(t *testing.T) {
	now := time.Date(2100, 8, 5, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	service := jwt.NewService("secret", time.Hour, clk)

	token, err := service.GenerateToken(newMember(t))
	require.NoError(t, err)

	t.Run("success: claims carry the member identity", func(t *testing.T) {
		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.MemberID)
		assert.Equal(t, "admin", claims.Name)
		assert.Equal(t, "admin@example.com", claims.Email)
		assert.Equal(t, "ADMIN", claims.Role)
		assert.Equal(t, "1", claims.Subject)
		assert.NotEmpty(t, claims.ID)
		assert.True(t, now.Add(time.Hour).Equal(claims.ExpiresAt.Time), "expires at %v", claims.ExpiresAt.Time)
		assert.True(t, now.Equal(claims.IssuedAt.Time), "issued at %v", claims.IssuedAt.Time)
	})

	t.Run("error: wrong secret", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour, clk)
		_, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: malformed token", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: expired token", func(t *testing.T) {
		later := jwt.NewService("secret", time.Hour, clock.NewMockClock(now.Add(2*time.Hour)))
		_, err := later.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}

func TestService_GenerateToken_UniqueID(t *testing.T) {
	service := jwt.NewService("secret", time.Hour, clock.NewMockClock(time.Now()))
	m := newMember(t)

	first, err := service.GenerateToken(m)
	require.NoError(t, err)
	second, err := service.GenerateToken(m)
	require.NoError(t, err)

	c1, err := service.ValidateToken(first)
	require.NoError(t, err)
	c2, err := service.ValidateToken(second)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}
