//go:build e2e

package checkout_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"storefront/internal/domain/coupon"
	"storefront/internal/domain/payment"
	"storefront/internal/domain/user"
	"storefront/internal/handler/dto/request"
	"storefront/internal/handler/dto/response"
	"storefront/internal/usecase/queries"
	"storefront/tests/common/authtest"
	"storefront/tests/common/dbtest"
	"storefront/tests/common/httptest"
	"storefront/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const shopperEmail = "shopper@example.com"

type checkoutSuite struct {
	e2e.SharedSuite
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(checkoutSuite))
}

type fixture struct {
	token     string
	productID uuid.UUID
	addressID uuid.UUID
}

func (s *checkoutSuite) prepare(stock int32) fixture {
	t := s.T()

	token := authtest.CreateAndLogin(t, s.DB, s.Router, shopperEmail, string(user.RoleCustomer))
	productID := dbtest.CreateTestProduct(t, s.DB, "masala-chai", 45000, stock)

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/addresses", request.AddressRequest{
		FullName:  "Test Shopper",
		Phone:     "9876543210",
		Line1:     "12 MG Road",
		City:      "Bengaluru",
		State:     "Karnataka",
		Pincode:   "560001",
		IsDefault: true,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created response.CreatedResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

	return fixture{token: token, productID: productID, addressID: created.ID}
}

func (s *checkoutSuite) addToCart(f fixture, qty int) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/cart/items",
		request.AddCartItemRequest{ProductID: f.productID, Quantity: qty}, f.token)
}

func (s *checkoutSuite) placeOrder(f fixture, key string, coupon *string) *nethttptest.ResponseRecorder {
	body := request.PlaceOrderRequest{AddressID: f.addressID, CouponCode: coupon}
	headers := map[string]string{}
	if key != "" {
		headers["Idempotency-Key"] = key
	}
	return httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/orders", body, headers, f.token)
}

func (s *checkoutSuite) TestPlaceOrder() {
	s.Run("missing idempotency key is rejected", func() {
		t := s.T()
		f := s.prepare(10)
		require.Equal(t, http.StatusOK, s.addToCart(f, 1).Code)

		w := s.placeOrder(f, "", nil)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		require.Equal(t, int32(10), dbtest.ProductStock(t, s.DB, f.productID))
	})

	s.Run("empty cart cannot be ordered", func() {
		t := s.T()
		f := s.prepare(10)

		w := s.placeOrder(f, uuid.NewString(), nil)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("order reserves stock and clears the cart", func() {
		t := s.T()
		f := s.prepare(10)
		require.Equal(t, http.StatusOK, s.addToCart(f, 3).Code)

		w := s.placeOrder(f, uuid.NewString(), nil)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res response.CheckoutResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "pending", res.Status)
		require.NotEmpty(t, res.ProviderOrderID)
		require.Equal(t, s.Config.Payment.KeyID, res.KeyID)
		require.False(t, res.Replayed)
		require.Equal(t, int32(7), dbtest.ProductStock(t, s.DB, f.productID))

		cart := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/cart", nil, f.token)
		require.Equal(t, http.StatusOK, cart.Code)
		var view queries.CartView
		require.NoError(t, httptest.DecodeResponseBody(t, cart.Body, &view))
		require.Empty(t, view.Quote.Lines)
		require.Zero(t, view.Quote.TotalCents)
	})

	s.Run("same key replays the first order", func() {
		t := s.T()
		f := s.prepare(10)
		require.Equal(t, http.StatusOK, s.addToCart(f, 2).Code)
		key := uuid.NewString()

		first := s.placeOrder(f, key, nil)
		require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
		second := s.placeOrder(f, key, nil)
		require.Equal(t, http.StatusOK, second.Code, second.Body.String())
		require.Equal(t, "true", second.Header().Get("Idempotent-Replayed"))

		var a, b response.CheckoutResponse
		require.NoError(t, httptest.DecodeResponseBody(t, first.Body, &a))
		require.NoError(t, httptest.DecodeResponseBody(t, second.Body, &b))
		require.Equal(t, a.OrderID, b.OrderID)
		require.True(t, b.Replayed)
		require.Equal(t, int32(8), dbtest.ProductStock(t, s.DB, f.productID), "replay must not reserve stock twice")
	})

	s.Run("insufficient stock leaves the catalog untouched", func() {
		t := s.T()
		f := s.prepare(1)
		require.Equal(t, http.StatusOK, s.addToCart(f, 1).Code)
		_, err := s.DB.Exec(t.Context(), "UPDATE cart_items SET quantity = 5")
		require.NoError(t, err)

		w := s.placeOrder(f, uuid.NewString(), nil)
		require.Contains(t, []int{http.StatusConflict, http.StatusUnprocessableEntity}, w.Code, w.Body.String())
		require.Equal(t, int32(1), dbtest.ProductStock(t, s.DB, f.productID))
	})
}

func (s *checkoutSuite) TestCouponLifecycle() {
	s.Run("usage is reserved on order and released on cancel", func() {
		t := s.T()
		f := s.prepare(10)
		limit := int32(1)
		couponID := dbtest.CreateTestCoupon(t, s.DB, "SAVE10", 10, &limit)
		require.Equal(t, http.StatusOK, s.addToCart(f, 2).Code)

		quote := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/checkout/quote",
			request.QuoteRequest{CouponCode: "SAVE10"}, f.token)
		require.Equal(t, http.StatusOK, quote.Code, quote.Body.String())
		var view queries.CartView
		require.NoError(t, httptest.DecodeResponseBody(t, quote.Body, &view))
		require.Positive(t, view.Quote.DiscountCents)
		require.Equal(t, view.Quote.SubtotalCents+view.Quote.ShippingCents-view.Quote.DiscountCents, view.Quote.TotalCents)

		code := "SAVE10"
		w := s.placeOrder(f, uuid.NewString(), &code)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var res response.CheckoutResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, view.Quote.TotalCents, res.AmountCents)
		require.Equal(t, int32(1), dbtest.CouponUsedCount(t, s.DB, couponID))

		validate := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/coupons/validate",
			request.ValidateCouponRequest{Code: "SAVE10"}, f.token)
		httptest.AssertMessageCode(t, validate, http.StatusUnprocessableEntity, coupon.MsgUsageLimitReached)

		cancel := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/orders/%s/cancel", res.OrderID), request.CancelOrderRequest{Reason: "changed my mind"}, f.token)
		require.Equal(t, http.StatusNoContent, cancel.Code, cancel.Body.String())

		require.Equal(t, int32(0), dbtest.CouponUsedCount(t, s.DB, couponID))
		require.Equal(t, int32(10), dbtest.ProductStock(t, s.DB, f.productID))
	})
}

func (s *checkoutSuite) TestPayment() {
	s.Run("verified checkout marks the order paid", func() {
		t := s.T()
		f := s.prepare(5)
		require.Equal(t, http.StatusOK, s.addToCart(f, 1).Code)

		w := s.placeOrder(f, uuid.NewString(), nil)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var res response.CheckoutResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))

		paymentID := "pay_" + uuid.NewString()[:8]
		sig := payment.Sign(s.Config.Payment.KeySecret, payment.CheckoutMessage(res.ProviderOrderID, paymentID))
		verifyURL := fmt.Sprintf("/api/orders/%s/verify-payment", res.OrderID)

		bad := httptest.PerformRequest(t, s.Router, http.MethodPost, verifyURL, request.VerifyPaymentRequest{
			ProviderOrderID: res.ProviderOrderID, PaymentID: paymentID, Signature: "deadbeef",
		}, f.token)
		require.Equal(t, http.StatusUnprocessableEntity, bad.Code, bad.Body.String())

		ok := httptest.PerformRequest(t, s.Router, http.MethodPost, verifyURL, request.VerifyPaymentRequest{
			ProviderOrderID: res.ProviderOrderID, PaymentID: paymentID, Signature: sig,
		}, f.token)
		require.Equal(t, http.StatusNoContent, ok.Code, ok.Body.String())

		detail := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/orders/"+res.OrderID.String(), nil, f.token)
		require.Equal(t, http.StatusOK, detail.Code)
		var order queries.OrderView
		require.NoError(t, httptest.DecodeResponseBody(t, detail.Body, &order))
		require.Equal(t, "paid", order.Status)
		require.NotNil(t, order.PaidAt)

		cancel := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/orders/%s/cancel", res.OrderID), nil, f.token)
		require.Equal(t, http.StatusConflict, cancel.Code, "customers cannot cancel paid orders")

		invoice := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/api/orders/%s/invoice", res.OrderID), nil, f.token)
		require.Equal(t, http.StatusOK, invoice.Code)
		require.Contains(t, invoice.Body.String(), order.Number)
	})

	s.Run("failed payment webhook releases stock", func() {
		t := s.T()
		f := s.prepare(5)
		require.Equal(t, http.StatusOK, s.addToCart(f, 2).Code)

		w := s.placeOrder(f, uuid.NewString(), nil)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var res response.CheckoutResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, int32(3), dbtest.ProductStock(t, s.DB, f.productID))

		body := fmt.Sprintf(`{"event":"payment.failed","payload":{"payment":{"entity":{"id":"pay_x","order_id":%q,"amount":%d,"currency":"INR","error_description":"card declined"}}}}`,
			res.ProviderOrderID, res.AmountCents)

		unsigned := httptest.PerformRawRequest(t, s.Router, http.MethodPost, "/api/payments/webhook", []byte(body),
			map[string]string{"X-Razorpay-Signature": "nope"})
		require.Equal(t, http.StatusUnprocessableEntity, unsigned.Code)

		signed := httptest.PerformRawRequest(t, s.Router, http.MethodPost, "/api/payments/webhook", []byte(body),
			map[string]string{"X-Razorpay-Signature": payment.Sign(s.Config.Payment.WebhookSecret, []byte(body))})
		require.Equal(t, http.StatusOK, signed.Code, signed.Body.String())

		require.Equal(t, int32(5), dbtest.ProductStock(t, s.DB, f.productID))
	})
}

func (s *checkoutSuite) TestOwnership() {
	s.Run("other customers cannot see an order", func() {
		t := s.T()
		f := s.prepare(5)
		require.Equal(t, http.StatusOK, s.addToCart(f, 1).Code)
		w := s.placeOrder(f, uuid.NewString(), nil)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var res response.CheckoutResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))

		other := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleCustomer))
		got := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/orders/"+res.OrderID.String(), nil, other)
		require.Equal(t, http.StatusNotFound, got.Code)

		staff := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(user.RoleStaff))
		got = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/orders/"+res.OrderID.String(), nil, staff)
		require.Equal(t, http.StatusOK, got.Code)
	})
}
