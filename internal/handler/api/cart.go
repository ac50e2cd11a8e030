package api

import (
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/handler/httperr"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartHandler serves the cart and the checkout previews built on it.
type CartHandler struct {
	cmds     commands.CartCommands
	checkout queries.CheckoutQueries
}

func NewCartHandler(cmds commands.CartCommands, checkout queries.CheckoutQueries) *CartHandler {
	return &CartHandler{cmds: cmds, checkout: checkout}
}

// @Summary Get cart
// @Description Cart lines priced without a coupon, plus lines that can no longer be bought
// @Tags cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.CartView
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	view, err := h.checkout.Quote(c.Request.Context(), a.ID, a.Email, "")
	if err != nil {
		httperr.Abort(c, err, "Failed to load cart")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Add item
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Item"
// @Success 200 {object} queries.CartView
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	if err := h.cmds.AddItem(c.Request.Context(), a.ID, req); err != nil {
		httperr.Abort(c, err, "Add to cart failed")
		return
	}
	h.Get(c)
}

// @Summary Set item quantity
// @Description Zero removes the line
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param request body reqdto.SetCartQuantityRequest true "Quantity"
// @Success 200 {object} queries.CartView
// @Router /cart/items/{productId} [put]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	productID, ok := uuidParam(c, "productId")
	if !ok {
		return
	}
	var req reqdto.SetCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	if err := h.cmds.SetQuantity(c.Request.Context(), a.ID, productID, req); err != nil {
		httperr.Abort(c, err, "Update cart failed")
		return
	}
	h.Get(c)
}

// @Summary Remove item
// @Tags cart
// @Security BearerAuth
// @Produce json
// @Param productId path string true "Product ID"
// @Param bundle_id query string false "Bundle the line belongs to"
// @Success 200 {object} queries.CartView
// @Router /cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	productID, ok := uuidParam(c, "productId")
	if !ok {
		return
	}
	var bundleID *uuid.UUID
	if raw := c.Query("bundle_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.BadRequest(c, err, "Invalid bundle_id")
			return
		}
		bundleID = &id
	}
	if err := h.cmds.RemoveItem(c.Request.Context(), a.ID, productID, bundleID); err != nil {
		httperr.Abort(c, err, "Remove from cart failed")
		return
	}
	h.Get(c)
}

// @Summary Add bundle
// @Description Adds every product of the bundle
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param bundleId path string true "Bundle ID"
// @Param request body reqdto.AddBundleRequest false "Quantity (default 1)"
// @Success 200 {object} queries.CartView
// @Router /cart/bundles/{bundleId} [post]
func (h *CartHandler) AddBundle(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	bundleID, ok := uuidParam(c, "bundleId")
	if !ok {
		return
	}
	var req reqdto.AddBundleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, err, "Invalid request format")
			return
		}
	}
	if err := h.cmds.AddBundle(c.Request.Context(), a.ID, bundleID, req.QuantityOrDefault()); err != nil {
		httperr.Abort(c, err, "Add bundle failed")
		return
	}
	h.Get(c)
}

// @Summary Remove bundle
// @Tags cart
// @Security BearerAuth
// @Produce json
// @Param bundleId path string true "Bundle ID"
// @Success 200 {object} queries.CartView
// @Router /cart/bundles/{bundleId} [delete]
func (h *CartHandler) RemoveBundle(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	bundleID, ok := uuidParam(c, "bundleId")
	if !ok {
		return
	}
	if err := h.cmds.RemoveBundle(c.Request.Context(), a.ID, bundleID); err != nil {
		httperr.Abort(c, err, "Remove bundle failed")
		return
	}
	h.Get(c)
}

// @Summary Clear cart
// @Tags cart
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	if err := h.cmds.Clear(c.Request.Context(), a.ID); err != nil {
		httperr.Abort(c, err, "Clear cart failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Checkout quote
// @Description Price the cart with an optional coupon. A rejected coupon is reported in the body.
// @Tags checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest false "Coupon"
// @Success 200 {object} queries.CartView
// @Router /checkout/quote [post]
func (h *CartHandler) Quote(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.QuoteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, err, "Invalid request format")
			return
		}
	}
	view, err := h.checkout.Quote(c.Request.Context(), a.ID, a.Email, req.CouponCode)
	if err != nil {
		httperr.Abort(c, err, "Quote failed")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Validate coupon
// @Description Check a coupon against the current cart. Rejections carry a message code in detail.
// @Tags checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateCouponRequest true "Coupon"
// @Success 200 {object} queries.CartView
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /coupons/validate [post]
func (h *CartHandler) ValidateCoupon(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	view, err := h.checkout.ValidateCoupon(c.Request.Context(), a.ID, a.Email, req.Code)
	if err != nil {
		httperr.Abort(c, err, "Coupon validation failed")
		return
	}
	c.JSON(http.StatusOK, view)
}
