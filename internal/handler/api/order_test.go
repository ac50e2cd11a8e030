//go:build unit

package api_test

import (
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain/order"
	"storefront/internal/domain/payment"
	"storefront/internal/domain/user"
	"storefront/internal/handler/api"
	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"
	"storefront/internal/usecase/shared"
	"storefront/tests/common/httptest"
	"storefront/tests/common/testutil"
	commandsmock "storefront/tests/mock/commands"
	queriesmock "storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
	shopper      shared.Actor
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)
	s.shopper = shared.Actor{ID: uuid.New(), Email: "shopper@example.com", Role: user.RoleCustomer}

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("actor", s.shopper)
		c.Next()
	}

	s.router.POST("/orders", authMiddleware, s.handler.Place)
	s.router.GET("/orders", authMiddleware, s.handler.ListMine)
	s.router.GET("/orders/:id", authMiddleware, s.handler.Get)
	s.router.GET("/orders/:id/invoice", authMiddleware, s.handler.Invoice)
	s.router.POST("/orders/:id/verify-payment", authMiddleware, s.handler.VerifyPayment)
	s.router.POST("/orders/:id/cancel", authMiddleware, s.handler.Cancel)
	s.router.POST("/payments/webhook", s.handler.Webhook)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) place(body any, key string) *nethttptest.ResponseRecorder {
	headers := map[string]string{}
	if key != "" {
		headers["Idempotency-Key"] = key
	}
	return httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/orders", body, headers, "bearer-token")
}

func (s *OrderHandlerTestSuite) TestPlace() {
	addressID := uuid.New()
	reqBody := reqdto.PlaceOrderRequest{AddressID: addressID}
	intent := &commands.PaymentIntent{
		OrderID:         uuid.New(),
		OrderNumber:     "SF-20261018-0001",
		Status:          order.StatusPending.String(),
		ProviderOrderID: "order_abc",
		AmountCents:     94900,
		Currency:        "INR",
		KeyID:           "rzp_test_key",
	}

	s.Run("success: returns 201 Created for a new order", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), s.shopper, reqBody, key).
			Return(&commands.PlaceOrderResult{Intent: intent}, nil).Times(1)

		rec := s.place(reqBody, key.String())

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(intent.OrderID, response.OrderID)
		s.Equal(intent.ProviderOrderID, response.ProviderOrderID)
		s.False(response.Replayed)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": ""})
	})

	s.Run("success: replay answers 200 with the replay header", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), s.shopper, reqBody, key).
			Return(&commands.PlaceOrderResult{Intent: intent, IsReplayed: true}, nil).Times(1)

		rec := s.place(reqBody, key.String())

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Replayed)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 Bad Request on header and body problems", func() {
		testCases := []struct {
			name string
			body any
			key  string
		}{
			{name: "missing Idempotency-Key", body: reqBody, key: ""},
			{name: "Idempotency-Key not a UUID", body: reqBody, key: "not-a-uuid"},
			{name: "missing field: address_id (required)", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("address_id", nil)), key: uuid.NewString()},
			{name: "address_id not a UUID", body: testutil.DtoMap(s.T(), reqBody, testutil.Field("address_id", "nope")), key: uuid.NewString()},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := s.place(tc.body, tc.key)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "empty cart", commandsError: commands.ErrCartEmpty, expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "cart is empty"},
			{name: "key reused", commandsError: commands.ErrIdempotencyKeyReuse, expectedStatus: http.StatusConflict, expectedMsg: "idempotency key reused with a different request"},
			{name: "out of stock", commandsError: commands.ErrOutOfStock, expectedStatus: http.StatusConflict, expectedMsg: "not enough stock"},
			{name: "gateway down", commandsError: commands.ErrPaymentGateway, expectedStatus: http.StatusBadGateway, expectedMsg: "Payment gateway unavailable"},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := s.place(reqBody, uuid.NewString())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 401 without credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *OrderHandlerTestSuite) TestListMine() {
	s.Run("success: returns a page with next cursor", func() {
		items := []*queries.OrderListItem{
			{ID: uuid.New(), Number: "SF-1", Status: "paid", TotalCents: 1000, Currency: "INR", CreatedAt: time.Now()},
		}
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.shopper, gomock.Nil(), 20).
			Return(items, &queries.Cursor{After: "next"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil, "bearer-token")

		var response resdto.PageResponse[resdto.OrderSummaryResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Equal("next", response.NextCursor)
	})

	s.Run("error: 400 on limit out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?limit=500", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *OrderHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("success: returns order detail", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), s.shopper, id).
			Return(&queries.OrderView{ID: id, Number: "SF-1", Status: "pending"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+id.String(), nil, "bearer-token")

		var response queries.OrderView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(id, response.ID)
	})

	s.Run("error: 404 for someone else's order", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), s.shopper, id).Return(nil, queries.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/123", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *OrderHandlerTestSuite) TestInvoice() {
	id := uuid.New()

	s.Run("success: serves html", func() {
		s.mockQueries.EXPECT().Invoice(gomock.Any(), s.shopper, id).
			Return([]byte("<html>SF-1</html>"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+id.String()+"/invoice", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertContentType(s.T(), rec, "text/html")
		s.Contains(rec.Body.String(), "SF-1")
	})
}

func (s *OrderHandlerTestSuite) TestVerifyPayment() {
	id := uuid.New()
	body := reqdto.VerifyPaymentRequest{ProviderOrderID: "order_abc", PaymentID: "pay_1", Signature: "sig"}

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().ConfirmPayment(gomock.Any(), s.shopper, id, body).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/"+id.String()+"/verify-payment", body, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 422 on signature mismatch", func() {
		s.mockCommands.EXPECT().ConfirmPayment(gomock.Any(), s.shopper, id, body).Return(payment.ErrInvalidSignature).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/"+id.String()+"/verify-payment", body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "payment signature mismatch")
	})

	s.Run("error: 400 when signature is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/"+id.String()+"/verify-payment",
			testutil.DtoMap(s.T(), body, testutil.Field("razorpay_signature", nil)), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *OrderHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/orders/" + id.String() + "/cancel"

	s.Run("success: body is optional", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.shopper, id, "").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: passes the reason through", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.shopper, id, "wrong size").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.CancelOrderRequest{Reason: "wrong size"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 once the order is paid", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.shopper, id, "").Return(order.ErrNotCancellable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "order can no longer be cancelled")
	})
}

func (s *OrderHandlerTestSuite) TestWebhook() {
	raw := []byte(`{"event":"payment.captured"}`)

	s.Run("success: forwards raw body and signature", func() {
		s.mockCommands.EXPECT().HandleWebhook(gomock.Any(), raw, "sig").Return(nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/payments/webhook", raw,
			map[string]string{"X-Razorpay-Signature": "sig"})
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 422 on bad signature", func() {
		s.mockCommands.EXPECT().HandleWebhook(gomock.Any(), raw, "").Return(payment.ErrInvalidSignature).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/payments/webhook", raw, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}
