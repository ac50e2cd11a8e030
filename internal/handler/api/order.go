package api

import (
	"io"
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	webhookSignatureHeader = "X-Razorpay-Signature"
	replayedHeader         = "Idempotent-Replayed"
	maxWebhookBody         = 1 << 20
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Place order
// @Description Turn the cart into a pending order and open a payment intent. Retries with the same Idempotency-Key return the same order.
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "UUID identifying this checkout attempt"
// @Param request body reqdto.PlaceOrderRequest true "Order"
// @Success 201 {object} resdto.CheckoutResponse
// @Success 200 {object} resdto.CheckoutResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Place(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	key, err := idempotencyKey(c)
	if err != nil {
		httperr.Abort(c, err, "Idempotency-Key header required")
		return
	}
	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.cmds.PlaceOrder(c.Request.Context(), a, req, key)
	if err != nil {
		httperr.Abort(c, err, "Checkout failed")
		return
	}
	resp, err := resdto.FromPlaceOrderResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		c.Header(replayedHeader, "true")
		status = http.StatusOK
	}
	c.JSON(status, resp)
}

// @Summary List my orders
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} resdto.PageResponse[resdto.OrderSummaryResponse]
// @Router /orders [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var query reqdto.ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return
	}
	cursor, limit := pageArgs(query.Cursor, query.Limit)
	items, next, err := h.q.ListMine(c.Request.Context(), a, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(resdto.FromOrderList(items), nextCursor(next)))
}

// @Summary List all orders
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status filter"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} resdto.PageResponse[resdto.OrderSummaryResponse]
// @Router /admin/orders [get]
func (h *OrderHandler) ListAll(c *gin.Context) {
	var query reqdto.ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return
	}
	cursor, limit := pageArgs(query.Cursor, query.Limit)
	items, next, err := h.q.ListAll(c.Request.Context(), query.Status, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(resdto.FromOrderList(items), nextCursor(next)))
}

// @Summary Get order
// @Description Customers only see their own orders; staff see all
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} queries.OrderView
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), a, id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load order")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Invoice
// @Description Printable HTML invoice
// @Tags orders
// @Security BearerAuth
// @Produce html
// @Param id path string true "Order ID"
// @Success 200 {string} string "HTML"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/invoice [get]
func (h *OrderHandler) Invoice(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	doc, err := h.q.Invoice(c.Request.Context(), a, id)
	if err != nil {
		httperr.Abort(c, err, "Failed to render invoice")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
}

// @Summary Verify payment
// @Description Confirm a checkout with the payment widget's signed callback
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Param id path string true "Order ID"
// @Param request body reqdto.VerifyPaymentRequest true "Widget callback"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /orders/{id}/verify-payment [post]
func (h *OrderHandler) VerifyPayment(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	if err := h.cmds.ConfirmPayment(c.Request.Context(), a, id, req); err != nil {
		httperr.Abort(c, err, "Payment verification failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel order
// @Description Customers may cancel pending or paid orders; staff may also cancel later stages
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Param id path string true "Order ID"
// @Param request body reqdto.CancelOrderRequest false "Reason"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.CancelOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, err, "Invalid request format")
			return
		}
	}
	if err := h.cmds.Cancel(c.Request.Context(), a, id, req.Reason); err != nil {
		httperr.Abort(c, err, "Cancel failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update order status
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Status"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /admin/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	if err := h.cmds.UpdateStatus(c.Request.Context(), a, id, req.Status); err != nil {
		httperr.Abort(c, err, "Status update failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Payment webhook
// @Description Gateway callback signed with the webhook secret. Unknown orders and unrelated events are acknowledged.
// @Tags payments
// @Accept json
// @Param X-Razorpay-Signature header string true "HMAC-SHA256 of the body"
// @Success 200 "OK"
// @Failure 422 {object} httperr.Response
// @Router /payments/webhook [post]
func (h *OrderHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		httperr.BadRequest(c, err, "Unreadable body")
		return
	}
	if err := h.cmds.HandleWebhook(c.Request.Context(), body, c.GetHeader(webhookSignatureHeader)); err != nil {
		httperr.Abort(c, err, "Webhook processing failed")
		return
	}
	c.Status(http.StatusOK)
}
