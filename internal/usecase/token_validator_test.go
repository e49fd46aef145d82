//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"roomescape/internal/domain/member"
	"roomescape/internal/pkg/clock"
	"roomescape/internal/pkg/jwt"
	"roomescape/internal/usecase"
	sharedmock "roomescape/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTokenValidator_ValidateToken(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	jwtService := jwt.NewService("secret", time.Hour, clock.NewMockClock(now))

	email, err := member.NewEmail("user@example.com")
	require.NoError(t, err)
	name, err := member.NewName("user")
	require.NoError(t, err)
	token, err := jwtService.GenerateToken(member.ReconstructMember(3, email, name, "hash", member.RoleUser, now))
	require.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		setupMock func(r *sharedmock.MockTokenRevoker)
		wantErr   error
		anyErr    bool
	}{
		{
			name:  "success: active token yields principal",
			token: token,
			setupMock: func(r *sharedmock.MockTokenRevoker) {
				r.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(false, nil)
			},
		},
		{
			name:  "error: revoked token",
			token: token,
			setupMock: func(r *sharedmock.MockTokenRevoker) {
				r.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: usecase.ErrTokenRevoked,
		},
		{
			name:  "error: revocation store failure",
			token: token,
			setupMock: func(r *sharedmock.MockTokenRevoker) {
				r.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
			},
			anyErr: true,
		},
		{
			name:      "error: invalid token skips revocation lookup",
			token:     "garbage",
			setupMock: func(r *sharedmock.MockTokenRevoker) {},
			wantErr:   jwt.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			revoker := sharedmock.NewMockTokenRevoker(ctrl)
			tt.setupMock(revoker)

			validator := usecase.NewTokenValidator(jwtService, revoker)
			principal, err := validator.ValidateToken(ctx, tt.token)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, int64(3), principal.MemberID)
				assert.Equal(t, member.RoleUser, principal.Role)
				assert.Equal(t, "user@example.com", principal.Email)
				assert.NotEmpty(t, principal.TokenID)
				assert.Equal(t, now.Add(time.Hour).Unix(), principal.ExpiresAt.Unix())
			}
		})
	}
}
