package httperr

import (
	"log/slog"
	"net/http"

	"storefront/internal/domain/coupon"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// CouponDetail tells the client which toast to show for a coupon outcome.
type CouponDetail struct {
	MessageCode string `json:"message_code"`
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

// Abort maps a usecase error onto its HTTP status by category. Client errors
// expose the sentinel text. Server errors are logged under logMsg and answer
// with a generic message.
func Abort(c *gin.Context, err error, logMsg string) {
	status := StatusOf(err)

	var detail any
	if code := coupon.MessageCode(err); code != "" {
		detail = CouponDetail{MessageCode: code}
	}

	msg := publicMessage(err)
	if status >= http.StatusInternalServerError {
		slog.Error(logMsg, "error", err.Error(), "path", c.FullPath(), "stack", errs.ExtractStackLines(err, 12))
		msg = serverMessage(status)
	}
	AbortWithError(c, status, err, msg, detail)
}

func serverMessage(status int) string {
	if status == http.StatusBadGateway {
		return "Payment gateway unavailable"
	}
	return "Internal server error"
}

// BadRequest reports a binding or parsing failure.
func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

func StatusOf(err error) int {
	switch {
	case errs.Is(err, commands.ErrInvalidCredentials), errs.Is(err, commands.ErrTokenValidation):
		return http.StatusUnauthorized
	case errs.Is(err, errs.ErrIdempotencyKeyRequired):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrValidation):
		return http.StatusUnprocessableEntity
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errs.Is(err, commands.ErrPaymentGateway):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage is the outermost sentinel text without wrapping context.
func publicMessage(err error) string {
	if errs.Is(err, commands.ErrInvalidCredentials) {
		return "Invalid email or password"
	}
	return errs.UnwrapAll(err).Error()
}
