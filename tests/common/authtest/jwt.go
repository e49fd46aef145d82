//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"roomescape/internal/domain/member"
	"roomescape/internal/pkg/clock"
	"roomescape/internal/pkg/config"
	"roomescape/internal/pkg/jwt"
	"roomescape/tests/common/builder"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, memberID int64, role member.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration, clock.NewSystemClock(time.UTC))
	token, err := service.GenerateToken(h.member(memberID, role))
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token whose lifetime ended an hour ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, memberID int64, role member.Role) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-time.Hour - h.cfg.Duration))
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration, past)
	token, err := service.GenerateToken(h.member(memberID, role))
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) member(memberID int64, role member.Role) *member.Member {
	return builder.NewMemberBuilder().With(func(b *builder.MemberBuilder) {
		b.ID = memberID
		b.Role = role
	}).BuildDomain()
}
