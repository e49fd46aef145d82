package api

import (
	"net/http"

	reqdto "roomescape/internal/handler/dto/request"
	resdto "roomescape/internal/handler/dto/response"
	"roomescape/internal/handler/httperr"
	"roomescape/internal/handler/middleware"
	"roomescape/internal/pkg/config"
	"roomescape/internal/pkg/cookie"
	"roomescape/internal/pkg/errs"
	"roomescape/internal/usecase/commands"
	"roomescape/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	cmds commands.AuthCommands
	q    queries.MemberQueries
	cfg  config.Config
}

func NewMemberHandler(cmds commands.AuthCommands, q queries.MemberQueries, cfg config.Config) *MemberHandler {
	return &MemberHandler{cmds: cmds, q: q, cfg: cfg}
}

// @Summary Sign up
// @Tags members
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 201 {object} resdto.MemberResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /members/signup [post]
func (h *MemberHandler) Signup(c *gin.Context) {
	var req reqdto.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.cmds.Signup(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusCreated, view, resdto.FromMemberView)
}

// @Summary Log in
// @Description Issues a token and stores it in the token cookie
// @Tags members
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /members/login [post]
func (h *MemberHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	memberRes, err := resdto.FromMemberViewWithRole(&result.Member)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	cookie.SetTokenCookie(c, h.cfg.Cookie, result.Token, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.Token,
		Member:      memberRes,
	})
}

// @Summary Current member
// @Tags members
// @Produce json
// @Success 200 {object} resdto.LoginCheckResponse
// @Failure 401 {object} httperr.Response
// @Router /members/login/check [get]
func (h *MemberHandler) LoginCheck(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}

	view, err := h.q.FindByID(c.Request.Context(), principal.MemberID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, view, resdto.FromMemberViewWithRole)
}

// @Summary Log out
// @Description Revokes the current token and clears the cookie
// @Tags members
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /members/logout [post]
func (h *MemberHandler) Logout(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}

	if err := h.cmds.Logout(c.Request.Context(), principal); err != nil {
		httperr.Abort(c, err)
		return
	}

	cookie.ClearTokenCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary List members
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.MemberResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/members [get]
func (h *MemberHandler) List(c *gin.Context) {
	views, err := h.q.FindAll(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, views, resdto.FromMemberViews)
}
