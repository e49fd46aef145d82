//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"roomescape/internal/handler/httperr"
	"roomescape/internal/handler/middleware"
	"roomescape/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newEngine(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	engine.GET("/", handler)
	return engine
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
		wantBody   string
	}{
		{
			name:       "sentinel error is mapped",
			handler:    func(c *gin.Context) { _ = c.Error(errs.Mark(errors.New("no row"), errs.ErrNotFound)) },
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":{"message":"not found"}}`,
		},
		{
			name:       "unknown error is internal",
			handler:    func(c *gin.Context) { _ = c.Error(errors.New("boom")) },
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":{"message":"Internal server error"}}`,
		},
		{
			name: "public error keeps its response",
			handler: func(c *gin.Context) {
				resp := httperr.Response{Status: http.StatusConflict}
				resp.Error.Message = "taken"
				_ = c.Error(&gin.Error{Err: errors.New("dup"), Type: gin.ErrorTypePublic, Meta: resp})
			},
			wantStatus: http.StatusConflict,
			wantBody:   `{"error":{"message":"taken"}}`,
		},
		{
			name:       "panic is recovered",
			handler:    func(c *gin.Context) { panic("kaboom") },
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":{"message":"Internal server error"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newEngine(tt.handler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestErrorHandler_LogsStack(t *testing.T) {
	tests := []struct {
		name    string
		handler gin.HandlerFunc
		wantMsg string
		wantLog bool
	}{
		{
			name:    "internal error",
			handler: func(c *gin.Context) { _ = c.Error(errs.New("storage offline")) },
			wantMsg: "unhandled request error",
			wantLog: true,
		},
		{
			name:    "panic",
			handler: func(c *gin.Context) { panic("kaboom") },
			wantMsg: "recovered from panic",
			wantLog: true,
		},
		{
			name:    "client error is not logged",
			handler: func(c *gin.Context) { _ = c.Error(errs.Mark(errors.New("no row"), errs.ErrNotFound)) },
			wantLog: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)

			w := httptest.NewRecorder()
			newEngine(tt.handler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			if !tt.wantLog {
				assert.Empty(t, buf.String())
				return
			}

			var entry struct {
				Msg   string   `json:"msg"`
				Stack []string `json:"stack"`
			}
			assert.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
			assert.Equal(t, tt.wantMsg, entry.Msg)
			assert.NotEmpty(t, entry.Stack)
			assert.LessOrEqual(t, len(entry.Stack), 12)
		})
	}
}
