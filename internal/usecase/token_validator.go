package usecase

import (
	"context"

	"roomescape/internal/domain/auth"
	"roomescape/internal/domain/member"
	"roomescape/internal/pkg/errs"
	"roomescape/internal/pkg/jwt"
	"roomescape/internal/usecase/shared"
)

var ErrTokenRevoked = errs.New("token revoked")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (auth.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	revoker    shared.TokenRevoker
}

func NewTokenValidator(jwtService *jwt.Service, revoker shared.TokenRevoker) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		revoker:    revoker,
	}
}

func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (auth.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return auth.Principal{}, err
	}

	role, err := member.NewRole(claims.Role)
	if err != nil {
		return auth.Principal{}, err
	}

	revoked, err := t.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		return auth.Principal{}, errs.Wrap(err, "failed to check token revocation")
	}
	if revoked {
		return auth.Principal{}, ErrTokenRevoked
	}

	principal := auth.Principal{
		MemberID: claims.MemberID,
		Name:     claims.Name,
		Email:    claims.Email,
		Role:     role,
		TokenID:  claims.ID,
	}
	if claims.ExpiresAt != nil {
		principal.ExpiresAt = claims.ExpiresAt.Time
	}
	return principal, nil
}
