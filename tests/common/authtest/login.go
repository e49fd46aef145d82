//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"roomescape/internal/handler/dto/request"
	"roomescape/internal/pkg/cookie"
	"roomescape/tests/common/dbtest"
	"roomescape/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginMember(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/members/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	tokenCookie := httptest.ExtractCookie(w, cookie.TokenCookieName)
	require.NotNil(t, tokenCookie, "token not found in cookies")
	require.NotEmpty(t, tokenCookie.Value, "token cookie is empty")

	return tokenCookie.Value
}

// CreateAndLogin inserts a member with dbtest.DefaultPassword and returns its token.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestMember(t, db, email, role)
	return LoginMember(t, router, email, dbtest.DefaultPassword)
}

func LogoutMember(t *testing.T, router *gin.Engine, token string) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/members/logout", nil, token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
