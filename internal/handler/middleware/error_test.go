//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/handler/httperr"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())

	r.GET("/public", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusConflict}
		resp.Error.Message = "slug already in use"
		_ = c.Error(&gin.Error{Err: errs.New("dup"), Type: gin.ErrorTypePublic, Meta: resp})
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.Error(errs.New("disk full"))
	})
	r.GET("/empty", func(c *gin.Context) {})
	r.GET("/panic", func(c *gin.Context) { panic("nil map") })

	serve := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	t.Run("public error is written", func(t *testing.T) {
		w := serve("/public")
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "slug already in use")
	})

	t.Run("private error is hidden", func(t *testing.T) {
		w := serve("/private")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "disk full")
	})

	t.Run("no error leaves the response alone", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve("/empty").Code)
	})

	t.Run("panic becomes 500", func(t *testing.T) {
		w := serve("/panic")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal server error")
	})
}
