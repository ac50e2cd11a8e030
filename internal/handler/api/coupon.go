package api

import (
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q}
}

// @Summary List coupons
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} resdto.PageResponse[queries.CouponView]
// @Router /admin/coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	var query reqdto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return
	}
	cursor, limit := pageArgs(query.Cursor, query.Limit)
	items, next, err := h.q.List(c.Request.Context(), cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "Failed to list coupons")
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(items, nextCursor(next)))
}

// @Summary Get coupon
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} queries.CouponView
// @Failure 404 {object} httperr.Response
// @Router /admin/coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load coupon")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create coupon
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CouponRequest true "Coupon"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 409 {object} httperr.Response "Code taken"
// @Failure 422 {object} httperr.Response
// @Router /admin/coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err, "Failed to create coupon")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update coupon
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Coupon ID"
// @Param request body reqdto.CouponRequest true "Coupon"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/coupons/{id} [put]
func (h *CouponHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req); err != nil {
		httperr.Abort(c, err, "Failed to update coupon")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Deactivate coupon
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 204 "No Content"
// @Router /admin/coupons/{id}/deactivate [post]
func (h *CouponHandler) Deactivate(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Deactivate(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err, "Failed to deactivate coupon")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete coupon
// @Description Coupons already redeemed on orders cannot be deleted; deactivate them instead
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /admin/coupons/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err, "Failed to delete coupon")
		return
	}
	c.Status(http.StatusNoContent)
}
