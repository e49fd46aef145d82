package api

import (
	"net/http"

	"roomescape/internal/domain/reservation"
	reqdto "roomescape/internal/handler/dto/request"
	resdto "roomescape/internal/handler/dto/response"
	"roomescape/internal/handler/httperr"
	"roomescape/internal/usecase/commands"
	"roomescape/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationTimeHandler struct {
	cmds commands.TimeSlotCommands
	q    queries.TimeSlotQueries
}

func NewReservationTimeHandler(cmds commands.TimeSlotCommands, q queries.TimeSlotQueries) *ReservationTimeHandler {
	return &ReservationTimeHandler{cmds: cmds, q: q}
}

// @Summary List time slots
// @Tags times
// @Produce json
// @Success 200 {array} resdto.ReservationTimeResponse
// @Router /times [get]
func (h *ReservationTimeHandler) List(c *gin.Context) {
	views, err := h.q.FindAll(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, views, resdto.FromTimeSlotViews)
}

// @Summary Time slot availability
// @Description Every slot flagged with whether it is booked for the theme on the date
// @Tags times
// @Produce json
// @Param date query string true "Date (yyyy-MM-dd)"
// @Param theme-id query int true "Theme ID"
// @Success 200 {array} resdto.AvailableTimeResponse
// @Failure 400 {object} httperr.Response
// @Router /times/available [get]
func (h *ReservationTimeHandler) Available(c *gin.Context) {
	var query reqdto.AvailableTimesQuery
	if !bindQuery(c, &query) {
		return
	}

	date, err := reservation.ParseDate(query.Date)
	if err != nil {
		invalid(c, err)
		return
	}

	views, err := h.q.FindAvailable(c.Request.Context(), date, query.ThemeID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, views, resdto.FromAvailableTimeSlotViews)
}

// @Summary Create time slot
// @Tags times
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationTimeRequest true "Create time slot request"
// @Success 201 {object} resdto.ReservationTimeResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /times [post]
func (h *ReservationTimeHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationTimeRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/times/"+itoa(view.ID))
	respond(c, http.StatusCreated, view, resdto.FromTimeSlotView)
}

// @Summary Delete time slot
// @Description Fails with 409 while any reservation uses the slot
// @Tags times
// @Param id path int true "Time slot ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /times/{id} [delete]
func (h *ReservationTimeHandler) Delete(c *gin.Context) {
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
