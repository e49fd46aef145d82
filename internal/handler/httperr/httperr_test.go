//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"roomescape/internal/handler/httperr"
	"roomescape/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	cause := errors.New("duplicate key")

	httperr.AbortWithError(c, http.StatusConflict, cause, "taken", nil)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":{"message":"taken"}}`, w.Body.String())

	require.Len(t, c.Errors, 1)
	recorded := c.Errors[0]
	assert.True(t, recorded.IsType(gin.ErrorTypePublic))
	assert.ErrorIs(t, recorded.Err, cause)
	resp, ok := recorded.Meta.(httperr.Response)
	require.True(t, ok, "meta should carry the rendered response")
	assert.Equal(t, http.StatusConflict, resp.Status)
	assert.Equal(t, "taken", resp.Error.Message)
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation keeps its own message", errs.Mark(errs.New("count must be between 1 and 100"), errs.ErrValidation), http.StatusBadRequest, "count must be between 1 and 100"},
		{"past date", errs.Mark(errs.New("2000-01-01 10:00 is in the past"), errs.ErrPastDateTime), http.StatusBadRequest, errs.ErrPastDateTime.Error()},
		{"missing reference", errs.Mark(errs.New("theme 9"), errs.ErrReferenceNotFound), http.StatusNotFound, errs.ErrReferenceNotFound.Error()},
		{"duplicate booking", errs.Wrap(errs.ErrDuplicateBooking, "insert"), http.StatusConflict, errs.ErrDuplicateBooking.Error()},
		{"in use", errs.ErrInUse, http.StatusConflict, errs.ErrInUse.Error()},
		{"unknown member at login", errs.ErrMemberNotFound, http.StatusUnauthorized, errs.ErrMemberNotFound.Error()},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := httperr.StatusOf(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
