package request

import "github.com/google/uuid"

type AddCartItemRequest struct {
	ProductID uuid.UUID  `json:"product_id" binding:"required"`
	Quantity  int        `json:"quantity" binding:"required,min=1,max=99"`
	BundleID  *uuid.UUID `json:"bundle_id,omitempty"`
}

// SetCartQuantityRequest sets an absolute quantity; zero removes the line.
type SetCartQuantityRequest struct {
	Quantity int        `json:"quantity" binding:"min=0,max=99"`
	BundleID *uuid.UUID `json:"bundle_id,omitempty"`
}

type AddBundleRequest struct {
	Quantity int `json:"quantity" binding:"omitempty,min=1,max=99"`
}

func (r AddBundleRequest) QuantityOrDefault() int {
	if r.Quantity == 0 {
		return 1
	}
	return r.Quantity
}

type QuoteRequest struct {
	CouponCode string `json:"coupon_code" binding:"max=20"`
}

type ValidateCouponRequest struct {
	Code string `json:"code" binding:"required,max=20"`
}
