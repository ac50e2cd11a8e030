//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain/user"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/cookie"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"
	usecasemock "storefront/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	validator *usecasemock.MockTokenValidator
	router    *gin.Engine
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.validator = usecasemock.NewMockTokenValidator(s.ctrl)

	auth := middleware.NewAuthMiddleware(s.validator)
	s.router = gin.New()
	s.router.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		actor, _ := middleware.GetActor(c)
		c.String(http.StatusOK, actor.Email)
	})
	s.router.GET("/admin", auth.RequireAuth(), auth.RequireRole(user.RoleStaff), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

func (s *AuthMiddlewareTestSuite) serve(path string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if mutate != nil {
		mutate(req)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	customer := shared.Actor{ID: uuid.New(), Email: "shopper@example.com", Role: user.RoleCustomer}

	s.Run("cookie token", func() {
		s.validator.EXPECT().ValidateToken("cookie-token").Return(customer, nil)
		w := s.serve("/me", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "cookie-token"})
		})
		s.Equal(http.StatusOK, w.Code)
		s.Equal("shopper@example.com", w.Body.String())
	})

	s.Run("bearer header", func() {
		s.validator.EXPECT().ValidateToken("header-token").Return(customer, nil)
		w := s.serve("/me", func(r *http.Request) { r.Header.Set("Authorization", "Bearer header-token") })
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("missing token", func() {
		w := s.serve("/me", nil)
		s.Equal(http.StatusUnauthorized, w.Code)
		s.Contains(w.Body.String(), "Access token required")
	})

	s.Run("rejected token", func() {
		s.validator.EXPECT().ValidateToken("bad").Return(shared.Actor{}, errs.New("expired"))
		w := s.serve("/me", func(r *http.Request) { r.Header.Set("Authorization", "Bearer bad") })
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRole() {
	for _, tc := range []struct {
		role user.Role
		want int
	}{
		{user.RoleCustomer, http.StatusForbidden},
		{user.RoleStaff, http.StatusNoContent},
		{user.RoleAdmin, http.StatusNoContent},
	} {
		s.Run(string(tc.role), func() {
			s.validator.EXPECT().ValidateToken("t").Return(shared.Actor{ID: uuid.New(), Role: tc.role}, nil)
			w := s.serve("/admin", func(r *http.Request) { r.Header.Set("Authorization", "Bearer t") })
			s.Equal(tc.want, w.Code)
		})
	}
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := middleware.NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2})

	r := gin.New()
	r.POST("/login", rl.Limit("login"), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.POST("/register", rl.Limit("register"), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	hit := func(path, ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.RemoteAddr = ip + ":5555"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusNoContent, hit("/login", "10.0.0.1").Code)
	assert.Equal(t, http.StatusNoContent, hit("/login", "10.0.0.1").Code)
	blocked := hit("/login", "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "1", blocked.Header().Get("Retry-After"))

	// separate buckets per scope and per client
	assert.Equal(t, http.StatusNoContent, hit("/register", "10.0.0.1").Code)
	assert.Equal(t, http.StatusNoContent, hit("/login", "10.0.0.2").Code)

	assert.Equal(t, 0, rl.Cleanup(time.Now()))
	assert.Equal(t, 3, rl.Cleanup(time.Now().Add(11*time.Minute)))
}
