package api

import (
	"net/http"

	reqdto "roomescape/internal/handler/dto/request"
	resdto "roomescape/internal/handler/dto/response"
	"roomescape/internal/handler/httperr"
	"roomescape/internal/handler/middleware"
	"roomescape/internal/pkg/errs"
	"roomescape/internal/usecase/commands"
	"roomescape/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Books a theme and time slot on a date for the current member
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Create reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateReservationRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req, principal.MemberID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/reservations/"+itoa(view.ID))
	respond(c, http.StatusCreated, view, resdto.FromReservationView)
}

// @Summary Create reservation for a member
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminCreateReservationRequest true "Admin create reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/reservations [post]
func (h *ReservationHandler) AdminCreate(c *gin.Context) {
	var req reqdto.AdminCreateReservationRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.cmds.CreateForMember(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/reservations/"+itoa(view.ID))
	respond(c, http.StatusCreated, view, resdto.FromReservationView)
}

// @Summary Search reservations
// @Tags admin
// @Produce json
// @Param themeId query int false "Theme ID"
// @Param memberId query int false "Member ID"
// @Param dateFrom query string false "From date (yyyy-MM-dd)"
// @Param dateTo query string false "To date (yyyy-MM-dd)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) Search(c *gin.Context) {
	var query reqdto.ReservationSearchQuery
	if !bindQuery(c, &query) {
		return
	}

	from, to, err := query.Dates()
	if err != nil {
		invalid(c, err)
		return
	}

	views, err := h.q.Search(c.Request.Context(), queries.ReservationFilter{
		ThemeID:  query.ThemeID,
		MemberID: query.MemberID,
		DateFrom: from,
		DateTo:   to,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, views, resdto.FromReservationViews)
}

// @Summary My reservations
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Router /reservations/mine [get]
func (h *ReservationHandler) Mine(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}

	views, err := h.q.FindMine(c.Request.Context(), principal.MemberID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, views, resdto.FromReservationViews)
}

// @Summary Delete reservation
// @Tags admin
// @Param id path int true "Reservation ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
