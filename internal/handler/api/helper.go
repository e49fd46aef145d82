package api

import (
	"net/http"
	"strconv"

	"roomescape/internal/handler/httperr"
	"roomescape/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), "Invalid request", nil)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), "Invalid query", nil)
		return false
	}
	return true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(errs.New("invalid id"), errs.ErrValidation), "Invalid id", nil)
		return 0, false
	}
	return id, true
}

func invalid(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), err.Error(), nil)
}

// respond maps v to its response body and writes it with status. A mapping failure is a 500.
func respond[V, R any](c *gin.Context, status int, v V, toResponse func(V) (R, error)) {
	res, err := toResponse(v)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, res)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
