package api

import (
	"net/http"

	reqdto "roomescape/internal/handler/dto/request"
	resdto "roomescape/internal/handler/dto/response"
	"roomescape/internal/handler/httperr"
	"roomescape/internal/usecase/commands"
	"roomescape/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ThemeHandler struct {
	cmds commands.ThemeCommands
	q    queries.ThemeQueries
}

func NewThemeHandler(cmds commands.ThemeCommands, q queries.ThemeQueries) *ThemeHandler {
	return &ThemeHandler{cmds: cmds, q: q}
}

// @Summary List themes
// @Tags themes
// @Produce json
// @Success 200 {array} resdto.ThemeResponse
// @Router /themes [get]
func (h *ThemeHandler) List(c *gin.Context) {
	views, err := h.q.FindAll(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, views, resdto.FromThemeViews)
}

// @Summary Popular themes
// @Tags themes
// @Produce json
// @Param startDate query string true "From date (yyyy-MM-dd)"
// @Param endDate query string true "To date (yyyy-MM-dd)"
// @Param count query int true "Maximum number of themes"
// @Success 200 {array} resdto.ThemeResponse
// @Failure 400 {object} httperr.Response
// @Router /themes/popular [get]
func (h *ThemeHandler) Popular(c *gin.Context) {
	var query reqdto.PopularThemesQuery
	if !bindQuery(c, &query) {
		return
	}

	from, to, err := query.Dates()
	if err != nil {
		invalid(c, err)
		return
	}

	views, err := h.q.FindPopular(c.Request.Context(), from, to, query.Count)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, views, resdto.FromThemeViews)
}

// @Summary Create theme
// @Tags themes
// @Accept json
// @Produce json
// @Param request body reqdto.CreateThemeRequest true "Create theme request"
// @Success 201 {object} resdto.ThemeResponse
// @Failure 400 {object} httperr.Response
// @Router /themes [post]
func (h *ThemeHandler) Create(c *gin.Context) {
	var req reqdto.CreateThemeRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/themes/"+itoa(view.ID))
	respond(c, http.StatusCreated, view, resdto.FromThemeView)
}

// @Summary Delete theme
// @Tags themes
// @Param id path int true "Theme ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /themes/{id} [delete]
func (h *ThemeHandler) Delete(c *gin.Context) {
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
