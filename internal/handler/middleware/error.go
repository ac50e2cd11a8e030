package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"storefront/internal/handler/httperr"
	"storefront/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the last public error for handlers that recorded one
// through c.Error without writing a response themselves.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		if public := c.Errors.ByType(gin.ErrorTypePublic).Last(); public != nil {
			if resp, ok := public.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		slog.Error("Unhandled request error",
			"error", c.Errors.Last().Error(),
			"path", c.FullPath(),
			"request_id", GetRequestID(c))
		if status := c.Writer.Status(); status >= http.StatusBadRequest {
			abortJSON(c, status, http.StatusText(status))
			return
		}
		abortJSON(c, http.StatusInternalServerError, "Internal server error")
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				metrics.PanicRecovered(c.FullPath())
				slog.Error("Recovered from panic",
					"error", rec,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
					"stack", string(debug.Stack()))

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(resp.Status, resp)
			}
		}()
		c.Next()
	}
}
