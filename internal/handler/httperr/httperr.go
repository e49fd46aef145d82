package httperr

import (
	"net/http"

	"roomescape/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target error
	status int
}

// Checked in order; the first sentinel err is marked with wins.
var mappings = []mapping{
	{errs.ErrValidation, http.StatusBadRequest},
	{errs.ErrPastDateTime, http.StatusBadRequest},
	{errs.ErrReferenceNotFound, http.StatusNotFound},
	{errs.ErrNotFound, http.StatusNotFound},
	{errs.ErrDuplicateBooking, http.StatusConflict},
	{errs.ErrDuplicateTimeSlot, http.StatusConflict},
	{errs.ErrDuplicateEmail, http.StatusConflict},
	{errs.ErrInUse, http.StatusConflict},
	{errs.ErrMemberNotFound, http.StatusUnauthorized},
	{errs.ErrInvalidCredential, http.StatusUnauthorized},
	{errs.ErrUnauthorized, http.StatusUnauthorized},
	{errs.ErrForbidden, http.StatusForbidden},
}

// StatusOf returns the HTTP status and client message for err. Unknown errors are 500 with a generic message.
func StatusOf(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			if m.target == errs.ErrValidation {
				return m.status, err.Error()
			}
			return m.status, m.target.Error()
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// Abort renders a usecase error with the status its sentinel maps to.
func Abort(c *gin.Context, err error) {
	status, msg := StatusOf(err)
	AbortWithError(c, status, err, msg, nil)
}
