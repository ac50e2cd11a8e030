//go:build unit

package httperr_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/coupon"
	"storefront/internal/handler/httperr"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"credentials", commands.ErrInvalidCredentials, http.StatusUnauthorized},
		{"missing idempotency key", errs.ErrIdempotencyKeyRequired, http.StatusBadRequest},
		{"validation", coupon.ErrCouponExpired, http.StatusUnprocessableEntity},
		{"not found", commands.ErrOrderNotFound, http.StatusNotFound},
		{"conflict", commands.ErrSlugTaken, http.StatusConflict},
		{"wrapped conflict", errs.Wrap(commands.ErrInsufficientStock, "adjust"), http.StatusConflict},
		{"gateway", errs.Mark(errs.New("timeout"), commands.ErrPaymentGateway), http.StatusBadGateway},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusOf(tt.err))
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(err error) (*httptest.ResponseRecorder, map[string]any) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		httperr.Abort(c, err, "Something failed")

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return w, body
	}

	t.Run("client error exposes the cause and coupon code", func(t *testing.T) {
		w, body := run(errs.Wrap(coupon.ErrCouponLimitReached, "validate coupon"))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "coupon usage limit reached", body["error"].(map[string]any)["message"])
		assert.Equal(t, coupon.MsgUsageLimitReached, body["detail"].(map[string]any)["message_code"])
	})

	t.Run("server error hides the cause", func(t *testing.T) {
		w, body := run(errs.New("connection reset by peer"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", body["error"].(map[string]any)["message"])
		assert.NotContains(t, body, "detail")
	})

	t.Run("gateway failure hides the cause", func(t *testing.T) {
		w, body := run(errs.Mark(errs.New("dial tcp: i/o timeout"), commands.ErrPaymentGateway))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "Payment gateway unavailable", body["error"].(map[string]any)["message"])
	})

	t.Run("each conflict keeps its own message", func(t *testing.T) {
		for _, err := range []error{commands.ErrSlugTaken, commands.ErrIdempotencyKeyReuse, commands.ErrOutOfStock, commands.ErrCouponCodeTaken} {
			w, body := run(err)

			assert.Equal(t, http.StatusConflict, w.Code)
			assert.Equal(t, err.Error(), body["error"].(map[string]any)["message"])
		}
	})

	t.Run("foreign key violation hides the driver text", func(t *testing.T) {
		w, body := run(errs.WithCause(commands.ErrStillReferenced, errs.New(`violates foreign key constraint "products_category_id_fkey"`)))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "record is still referenced", body["error"].(map[string]any)["message"])
	})

	t.Run("recorded error is public and carries the response", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		httperr.Abort(c, commands.ErrSlugTaken, "Create product failed")

		public := c.Errors.ByType(gin.ErrorTypePublic)
		require.Len(t, public, 1)
		resp, ok := public.Last().Meta.(httperr.Response)
		require.True(t, ok)
		assert.Equal(t, http.StatusConflict, resp.Status)
		assert.Equal(t, "slug already in use", resp.Error.Message)
	})

	t.Run("bad credentials use a fixed message", func(t *testing.T) {
		w, body := run(commands.ErrInvalidCredentials)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid email or password", body["error"].(map[string]any)["message"])
	})
}
