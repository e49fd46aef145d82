package middleware

import (
	"log/slog"
	"net/http"

	"roomescape/internal/handler/httperr"
	"roomescape/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLines = 12

// ErrorHandler renders errors handlers attached with c.Error but did not write.
// Public errors carry their own response; anything else is mapped by its sentinel.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}

		last := c.Errors.Last()
		status, msg := httperr.StatusOf(last.Err)
		if status >= http.StatusInternalServerError {
			slog.Error("unhandled request error",
				"error", last.Err,
				"path", c.Request.URL.Path,
				"stack", errs.ExtractStackLines(last.Err, stackLines))
		}
		writeError(c, status, msg)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err := errs.Newf("panic: %v", rec)
				slog.Error("recovered from panic",
					"error", err,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", errs.ExtractStackLines(err, stackLines))
				writeError(c, http.StatusInternalServerError, "Internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}

func writeError(c *gin.Context, status int, msg string) {
	resp := httperr.Response{Status: status}
	resp.Error.Message = msg
	c.JSON(status, resp)
}
