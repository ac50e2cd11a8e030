package request

import (
	"strings"

	"github.com/google/uuid"
)

type PlaceOrderRequest struct {
	AddressID  uuid.UUID `json:"address_id" binding:"required"`
	CouponCode *string   `json:"coupon_code,omitempty"`
}

func (r PlaceOrderRequest) GetCouponCode() string {
	if r.CouponCode == nil {
		return ""
	}
	return strings.TrimSpace(*r.CouponCode)
}

// VerifyPaymentRequest mirrors the payment widget's success callback.
type VerifyPaymentRequest struct {
	ProviderOrderID string `json:"razorpay_order_id" binding:"required"`
	PaymentID       string `json:"razorpay_payment_id" binding:"required"`
	Signature       string `json:"razorpay_signature" binding:"required"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=paid processing shipped delivered cancelled"`
}

type ListOrdersQuery struct {
	Cursor string  `form:"cursor"`
	Limit  int     `form:"limit" binding:"omitempty,min=1,max=100"`
	Status *string `form:"status" binding:"omitempty,oneof=pending paid processing shipped delivered cancelled payment_failed"`
}
