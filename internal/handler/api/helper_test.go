//go:build unit

package api_test

import (
	"context"

	"roomescape/internal/domain/auth"
	"roomescape/internal/domain/member"
	"roomescape/internal/handler/middleware"
	"roomescape/internal/pkg/errs"
	usecasemock "roomescape/tests/mock/usecase"

	"go.uber.org/mock/gomock"
)

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

var (
	userPrincipal  = auth.Principal{MemberID: 3, Name: "tester", Email: "test@example.com", Role: member.RoleUser, TokenID: "jti-user"}
	adminPrincipal = auth.Principal{MemberID: 1, Name: "admin", Email: "admin@example.com", Role: member.RoleAdmin, TokenID: "jti-admin"}
)

// newAuthMiddleware resolves userToken and adminToken; anything else is rejected.
func newAuthMiddleware(ctrl *gomock.Controller) *middleware.AuthMiddleware {
	validator := usecasemock.NewMockTokenValidator(ctrl)
	validator.EXPECT().ValidateToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, token string) (auth.Principal, error) {
			switch token {
			case userToken:
				return userPrincipal, nil
			case adminToken:
				return adminPrincipal, nil
			default:
				return auth.Principal{}, errs.New("invalid token")
			}
		}).AnyTimes()
	return middleware.NewAuthMiddleware(validator)
}
