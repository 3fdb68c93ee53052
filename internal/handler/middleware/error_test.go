//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	"clinic-scheduler/internal/handler/httperr"
	"clinic-scheduler/internal/handler/middleware"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("server fault logs the stack and hides the cause", func(t *testing.T) {
		buf := captureLog(t)

		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/boom", func(c *gin.Context) {
			err := errs.Wrap(errs.New("pool exhausted"), "listing versions")
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		})

		w := httptest.PerformRequest(t, router, http.MethodGet, "/boom", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal error")

		assert.NotContains(t, w.Body.String(), "pool exhausted")
		assert.Contains(t, buf.String(), "request failed")
		assert.Contains(t, buf.String(), "stack")
	})

	t.Run("client fault is returned without stack logging", func(t *testing.T) {
		buf := captureLog(t)

		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/bad", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.New("bad input"), "Invalid request", nil)
		})

		w := httptest.PerformRequest(t, router, http.MethodGet, "/bad", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
		assert.NotContains(t, buf.String(), "request failed")
	})

	t.Run("attached error without a written body is rendered", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/deferred", func(c *gin.Context) {
			resp := httperr.Response{Status: http.StatusConflict}
			resp.Error.Message = "Version conflict"
			_ = c.Error(gin.Error{Err: errs.New("conflict"), Type: gin.ErrorTypePublic, Meta: resp})
		})

		w := httptest.PerformRequest(t, router, http.MethodGet, "/deferred", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Version conflict")
	})
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_ = captureLog(t)

	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.GET("/panic", func(*gin.Context) {
		panic("unexpected")
	})

	w := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
	httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
}
